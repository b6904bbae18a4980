package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/omaroid/user-service/internal/domain/apperrors"
	"github.com/omaroid/user-service/internal/domain/entity"
	repo "github.com/omaroid/user-service/internal/domain/repository"
)

// Service orchestrates the user use cases. It is stateless between calls;
// any number of requests may run through it concurrently.
type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

// CreateUser validates input, rejects duplicate emails and persists a new
// user with a trimmed name. Check order is observable and fixed:
// blank name, email format, duplicate, persist.
func (s *Service) CreateUser(ctx context.Context, email, name string) (*entity.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.BadRequest("Name cannot be blank")
	}

	emailValue, err := entity.NewEmail(email)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	existing, err := s.Repo.FindByEmail(ctx, emailValue)
	if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		return nil, s.internal("find user by email", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("User with email %s already exists", email)
	}

	u, err := s.Repo.Create(ctx, emailValue, strings.TrimSpace(name))
	if err != nil {
		// The pre-check above is best-effort; under concurrent creation the
		// unique index is the final authority.
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("User with email %s already exists", email)
		}
		return nil, s.internal("create user", err)
	}
	return u, nil
}

// GetUser returns the user with the given id.
func (s *Service) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	id, err := entity.NewUserID(userID)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, apperrors.NotFound("User with ID %d not found", userID)
		}
		return nil, s.internal("find user by id", err)
	}
	return u, nil
}

// UpdateUser replaces the user's name, leaving id, email and createdAt
// untouched, and persists the copy.
func (s *Service) UpdateUser(ctx context.Context, userID int64, name string) (*entity.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.BadRequest("Name cannot be blank")
	}

	id, err := entity.NewUserID(userID)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, apperrors.NotFound("User with ID %d not found", userID)
		}
		return nil, s.internal("find user by id", err)
	}

	updated := *existing
	updated.Name = strings.TrimSpace(name)

	u, err := s.Repo.Update(ctx, &updated)
	if err != nil {
		return nil, s.internal("update user", err)
	}
	return u, nil
}

// DeleteUser removes the user after verifying it exists. The repository's
// boolean is propagated as-is, not forced to true.
func (s *Service) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	id, err := entity.NewUserID(userID)
	if err != nil {
		return false, apperrors.BadRequest(err.Error())
	}

	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return false, apperrors.NotFound("User with ID %d not found", userID)
		}
		return false, s.internal("find user by id", err)
	}

	deleted, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return false, s.internal("delete user", err)
	}
	return deleted, nil
}

// ListUsers returns one page of users plus the global total count.
// The transport layer clamps query parameters to defaults before calling;
// this validation is a second check for non-HTTP callers.
func (s *Service) ListUsers(ctx context.Context, page, size int) ([]*entity.User, int, error) {
	if page < 0 {
		return nil, 0, apperrors.BadRequest("Page must be non-negative")
	}
	if size <= 0 {
		return nil, 0, apperrors.BadRequest("Size must be positive")
	}
	if size > 100 {
		return nil, 0, apperrors.BadRequest("Size cannot exceed 100")
	}

	offset := page * size
	users, err := s.Repo.FindAll(ctx, offset, size)
	if err != nil {
		return nil, 0, s.internal("list users", err)
	}
	total, err := s.Repo.GetTotalCount(ctx)
	if err != nil {
		return nil, 0, s.internal("count users", err)
	}
	return users, total, nil
}

func (s *Service) internal(op string, err error) error {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("op", op).Error("repository failure")
	}
	return apperrors.Internal(err)
}
