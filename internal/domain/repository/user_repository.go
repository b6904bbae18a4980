package repository

import (
	"context"
	"errors"

	"github.com/omaroid/user-service/internal/domain/entity"
)

// Sentinel errors returned by implementations. ErrUserNotFound marks an
// absent row on point lookups; ErrDuplicateEmail marks a unique-index
// violation raised by storage on insert.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the persistence contract for User entities.
// Implementations own the mapping between entities and storage rows;
// each operation runs as a single statement in its own transaction scope.
type UserRepository interface {
	// Create inserts a new row. Storage assigns the ID and sets both
	// timestamps to the current time.
	Create(ctx context.Context, email entity.Email, name string) (*entity.User, error)

	// FindByID looks up a user by primary key. Returns ErrUserNotFound
	// when no row matches.
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)

	// FindByEmail looks up a user by the unique email index. Returns
	// ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)

	// Update rewrites email and name and refreshes updated_at. The caller
	// supplies the complete entity, unchanged fields included.
	Update(ctx context.Context, user *entity.User) (*entity.User, error)

	// DeleteByID deletes by primary key and reports whether a row was
	// actually removed. A missing row is false, not an error.
	DeleteByID(ctx context.Context, id entity.UserID) (bool, error)

	// FindAll returns rows ordered ascending by id, skipping offset rows
	// and returning at most limit.
	FindAll(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// GetTotalCount returns the total number of users, unfiltered.
	GetTotalCount(ctx context.Context) (int, error)
}
