package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/usecase"
	"go-swipehire-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// racingUserRepo misses the first GetByID so both sides of a concurrent
// first sync run the create path; the underlying fake absorbs the
// conflicting insert the way the unique constraint does.
type racingUserRepo struct {
	*fakeUserRepo
	missed bool
}

func (r *racingUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !r.missed {
		r.missed = true
		return nil, domain.ErrNotFound
	}
	return r.fakeUserRepo.GetByID(ctx, id)
}

func TestEnsureUserExists(t *testing.T) {
	t.Run("Should reject missing identity", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(newFakeUserRepo())
		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u1", Role: domain.RoleJobSeeker})
		assert.Error(t, err)
	})

	t.Run("Should reject unknown role", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(newFakeUserRepo())
		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u1", Email: "u@example.com", Role: "admin"})
		assert.Error(t, err)
	})

	t.Run("First sync creates the row", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(newFakeUserRepo())
		user := &domain.User{ID: "u1", Email: "u@example.com", Role: domain.RoleJobSeeker}
		require.NoError(t, uc.EnsureUserExists(context.Background(), user))
		assert.Equal(t, domain.RoleJobSeeker, user.Role)
	})

	t.Run("Existing row wins over the submitted role", func(t *testing.T) {
		stored := &domain.User{ID: "u1", Email: "u@example.com", Role: domain.RoleRecruiter}
		uc := usecase.NewAuthUsecase(newFakeUserRepo(stored))

		user := &domain.User{ID: "u1", Email: "u@example.com", Role: domain.RoleJobSeeker}
		require.NoError(t, uc.EnsureUserExists(context.Background(), user))
		assert.Equal(t, domain.RoleRecruiter, user.Role)
	})

	t.Run("Concurrent first syncs settle on the stored role", func(t *testing.T) {
		// Another request won the insert between this caller's miss and
		// its create; the caller must echo the surviving row, not its
		// own submission.
		stored := &domain.User{ID: "u1", Email: "u@example.com", Role: domain.RoleRecruiter}
		uc := usecase.NewAuthUsecase(&racingUserRepo{fakeUserRepo: newFakeUserRepo(stored)})

		user := &domain.User{ID: "u1", Email: "u@example.com", Role: domain.RoleJobSeeker}
		require.NoError(t, uc.EnsureUserExists(context.Background(), user))
		assert.Equal(t, domain.RoleRecruiter, user.Role)
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("Unknown id is a 404", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(newFakeUserRepo())
		_, err := uc.GetCurrentUser(context.Background(), "ghost")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Storage failure is a retryable 500", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(&failingUserRepo{err: errors.New("connection reset by peer")})
		_, err := uc.GetCurrentUser(context.Background(), "u1")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}
