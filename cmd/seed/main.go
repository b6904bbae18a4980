package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/omaroid/user-service/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seeds := []struct {
		email string
		name  string
	}{
		{"john@example.com", "John Doe"},
		{"jane@example.com", "Jane Smith"},
		{"demo@example.com", "Demo User"},
	}

	for _, s := range seeds {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (email, name)
			VALUES ($1, $2)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, s.email, s.name).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", s.email, err)
		}
		fmt.Printf("seeded user: id=%d email=%s name=%s\n", id, s.email, s.name)
	}
}
