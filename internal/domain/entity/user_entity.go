package entity

import (
	"errors"
	"strings"
	"time"
)

// User is the aggregate root for the user domain.
// ID is assigned by storage and immutable afterwards; Email is unique
// across all users (the unique index in storage is the final authority).
type User struct {
	ID        UserID
	Email     Email
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserID is a value object wrapping a positive integer identifier.
type UserID int64

// NewUserID validates and wraps a raw identifier.
func NewUserID(v int64) (UserID, error) {
	if v <= 0 {
		return 0, errors.New("User ID must be positive")
	}
	return UserID(v), nil
}

func (id UserID) Int64() int64 { return int64(id) }

// Email is a value object wrapping a validated email address.
// Validation is intentionally shallow: non-blank and containing an
// @ symbol. Stricter checks would change observable behavior.
type Email string

// NewEmail validates and wraps a raw email string.
func NewEmail(v string) (Email, error) {
	if strings.TrimSpace(v) == "" {
		return "", errors.New("Email cannot be blank")
	}
	if !strings.Contains(v, "@") {
		return "", errors.New("Email must contain @ symbol")
	}
	return Email(v), nil
}

func (e Email) String() string { return string(e) }
