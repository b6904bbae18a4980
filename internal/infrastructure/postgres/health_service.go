package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omaroid/user-service/internal/domain/repository"
)

// HealthService probes database connectivity with a lightweight query.
type HealthService struct {
	pool *pgxpool.Pool
}

func NewHealthService(pool *pgxpool.Pool) *HealthService {
	return &HealthService{pool: pool}
}

// CheckHealth executes SELECT 1 against the pool. Any failure is reported
// as unhealthy; this is a liveness signal, errors are never propagated.
func (s *HealthService) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var one int
	if err := s.pool.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return false
	}
	return true
}

var _ repository.HealthService = (*HealthService)(nil)
