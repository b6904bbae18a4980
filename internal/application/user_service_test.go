package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omaroid/user-service/internal/application"
	"github.com/omaroid/user-service/internal/domain/apperrors"
	"github.com/omaroid/user-service/internal/domain/entity"
	"github.com/omaroid/user-service/internal/domain/repository"
)

// --- Mock ---

type mockUserRepository struct {
	createFn      func(ctx context.Context, email entity.Email, name string) (*entity.User, error)
	findByIDFn    func(ctx context.Context, id entity.UserID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email entity.Email) (*entity.User, error)
	updateFn      func(ctx context.Context, user *entity.User) (*entity.User, error)
	deleteByIDFn  func(ctx context.Context, id entity.UserID) (bool, error)
	findAllFn     func(ctx context.Context, offset, limit int) ([]*entity.User, error)
	totalCountFn  func(ctx context.Context) (int, error)

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, email entity.Email, name string) (*entity.User, error) {
	m.createCalls++
	return m.createFn(ctx, email, name)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	if m.findByIDFn == nil {
		return nil, repository.ErrUserNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	if m.findByEmailFn == nil {
		return nil, repository.ErrUserNotFound
	}
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	m.updateCalls++
	return m.updateFn(ctx, user)
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, id entity.UserID) (bool, error) {
	m.deleteCalls++
	return m.deleteByIDFn(ctx, id)
}

func (m *mockUserRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	return m.findAllFn(ctx, offset, limit)
}

func (m *mockUserRepository) GetTotalCount(ctx context.Context) (int, error) {
	return m.totalCountFn(ctx)
}

func testUser(id int64, email, name string) *entity.User {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &entity.User{
		ID:        entity.UserID(id),
		Email:     entity.Email(email),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func assertKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	require.Error(t, err)
	ae, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	assert.Equal(t, kind, ae.Kind)
}

// --- CreateUser ---

func TestCreateUser(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, email entity.Email, name string) (*entity.User, error) {
			return testUser(1, email.String(), name), nil
		},
	}
	svc := application.NewService(repo, nil)

	u, err := svc.CreateUser(context.Background(), "john@example.com", "  John Doe  ")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", u.Email.String())
	assert.Equal(t, "John Doe", u.Name, "name must be trimmed before persistence")
	assert.Positive(t, u.ID.Int64())
}

func TestCreateUser_BlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		repo := &mockUserRepository{}
		svc := application.NewService(repo, nil)

		_, err := svc.CreateUser(context.Background(), "john@example.com", name)
		assertKind(t, err, apperrors.KindBadRequest)
		assert.Zero(t, repo.createCalls, "no repository mutation on blank name %q", name)
	}
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	for _, email := range []string{"", "   ", "no-at-symbol"} {
		repo := &mockUserRepository{}
		svc := application.NewService(repo, nil)

		_, err := svc.CreateUser(context.Background(), email, "John")
		assertKind(t, err, apperrors.KindBadRequest)
		assert.Zero(t, repo.createCalls)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email entity.Email) (*entity.User, error) {
			return testUser(1, email.String(), "Existing"), nil
		},
	}
	svc := application.NewService(repo, nil)

	_, err := svc.CreateUser(context.Background(), "a@b.com", "B")
	assertKind(t, err, apperrors.KindConflict)
	assert.Contains(t, err.Error(), "a@b.com")
	assert.Zero(t, repo.createCalls)
}

func TestCreateUser_ChecksNameBeforeEmail(t *testing.T) {
	svc := application.NewService(&mockUserRepository{}, nil)

	// Both name and email invalid: the blank-name rule must win.
	_, err := svc.CreateUser(context.Background(), "not-an-email", " ")
	require.Error(t, err)
	assert.Equal(t, "Name cannot be blank", err.Error())
}

func TestCreateUser_ConstraintRaceMapsToConflict(t *testing.T) {
	// The pre-check misses a concurrent insert; storage raises the
	// unique violation and the service must still answer Conflict.
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, email entity.Email, name string) (*entity.User, error) {
			return nil, repository.ErrDuplicateEmail
		},
	}
	svc := application.NewService(repo, nil)

	_, err := svc.CreateUser(context.Background(), "race@example.com", "Racer")
	assertKind(t, err, apperrors.KindConflict)
}

func TestCreateUser_StorageFailure(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, email entity.Email, name string) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := application.NewService(repo, nil)

	_, err := svc.CreateUser(context.Background(), "x@y.com", "X")
	assertKind(t, err, apperrors.KindInternal)
	assert.NotContains(t, err.Error(), "connection refused", "internal detail must not leak")
}

// --- GetUser ---

func TestGetUser(t *testing.T) {
	want := testUser(42, "a@b.com", "A")
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id entity.UserID) (*entity.User, error) {
			require.EqualValues(t, 42, id)
			return want, nil
		},
	}
	svc := application.NewService(repo, nil)

	got, err := svc.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Idempotent without intervening writes.
	again, err := svc.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestGetUser_InvalidID(t *testing.T) {
	svc := application.NewService(&mockUserRepository{}, nil)

	for _, id := range []int64{0, -1, -42} {
		_, err := svc.GetUser(context.Background(), id)
		assertKind(t, err, apperrors.KindBadRequest)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc := application.NewService(&mockUserRepository{}, nil)

	_, err := svc.GetUser(context.Background(), 999)
	assertKind(t, err, apperrors.KindNotFound)
	assert.Contains(t, err.Error(), "999")
}

// --- UpdateUser ---

func TestUpdateUser(t *testing.T) {
	prior := testUser(7, "keep@example.com", "Old Name")
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id entity.UserID) (*entity.User, error) {
			return prior, nil
		},
		updateFn: func(ctx context.Context, user *entity.User) (*entity.User, error) {
			updated := *user
			updated.UpdatedAt = user.UpdatedAt.Add(time.Second)
			return &updated, nil
		},
	}
	svc := application.NewService(repo, nil)

	got, err := svc.UpdateUser(context.Background(), 7, "  New Name ")
	require.NoError(t, err)
	assert.Equal(t, prior.ID, got.ID)
	assert.Equal(t, prior.Email, got.Email, "email is immutable")
	assert.Equal(t, prior.CreatedAt, got.CreatedAt)
	assert.Equal(t, "New Name", got.Name)
	assert.True(t, got.UpdatedAt.After(prior.UpdatedAt))
	assert.Equal(t, "Old Name", prior.Name, "existing entity must not be mutated in place")
}

func TestUpdateUser_BlankName(t *testing.T) {
	repo := &mockUserRepository{}
	svc := application.NewService(repo, nil)

	_, err := svc.UpdateUser(context.Background(), 7, "   ")
	assertKind(t, err, apperrors.KindBadRequest)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{}
	svc := application.NewService(repo, nil)

	_, err := svc.UpdateUser(context.Background(), 5, "Name")
	assertKind(t, err, apperrors.KindNotFound)
	assert.Zero(t, repo.updateCalls)
}

// --- DeleteUser ---

func TestDeleteUser(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id entity.UserID) (*entity.User, error) {
			return testUser(3, "c@d.com", "C"), nil
		},
		deleteByIDFn: func(ctx context.Context, id entity.UserID) (bool, error) {
			return true, nil
		},
	}
	svc := application.NewService(repo, nil)

	deleted, err := svc.DeleteUser(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{}
	svc := application.NewService(repo, nil)

	_, err := svc.DeleteUser(context.Background(), 999)
	assertKind(t, err, apperrors.KindNotFound)
	assert.Zero(t, repo.deleteCalls)
}

func TestDeleteUser_PropagatesRepositoryBoolean(t *testing.T) {
	// A row vanishing between the existence check and the delete yields
	// false, not an error.
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id entity.UserID) (*entity.User, error) {
			return testUser(3, "c@d.com", "C"), nil
		},
		deleteByIDFn: func(ctx context.Context, id entity.UserID) (bool, error) {
			return false, nil
		},
	}
	svc := application.NewService(repo, nil)

	deleted, err := svc.DeleteUser(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// --- ListUsers ---

func TestListUsers(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &mockUserRepository{
		findAllFn: func(ctx context.Context, offset, limit int) ([]*entity.User, error) {
			gotOffset, gotLimit = offset, limit
			users := make([]*entity.User, 0, limit)
			for i := 0; i < limit; i++ {
				users = append(users, testUser(int64(offset+i+1), "u@e.com", "U"))
			}
			return users, nil
		},
		totalCountFn: func(ctx context.Context) (int, error) { return 25, nil },
	}
	svc := application.NewService(repo, nil)

	users, total, err := svc.ListUsers(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, 10, gotLimit)
	assert.Len(t, users, 10)
	assert.Equal(t, 25, total, "total count is global, not page-filtered")
}

func TestListUsers_Validation(t *testing.T) {
	svc := application.NewService(&mockUserRepository{}, nil)

	cases := []struct {
		page, size int
		message    string
	}{
		{-1, 10, "Page must be non-negative"},
		{0, 0, "Size must be positive"},
		{0, -5, "Size must be positive"},
		{0, 101, "Size cannot exceed 100"},
	}
	for _, tc := range cases {
		_, _, err := svc.ListUsers(context.Background(), tc.page, tc.size)
		assertKind(t, err, apperrors.KindBadRequest)
		assert.Equal(t, tc.message, err.Error())
	}
}

func TestListUsers_Empty(t *testing.T) {
	repo := &mockUserRepository{
		findAllFn: func(ctx context.Context, offset, limit int) ([]*entity.User, error) {
			return []*entity.User{}, nil
		},
		totalCountFn: func(ctx context.Context) (int, error) { return 0, nil },
	}
	svc := application.NewService(repo, nil)

	users, total, err := svc.ListUsers(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Zero(t, total)
}
