package usecase

import (
	"context"
	"errors"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists syncs the authenticated Supabase subject into the
// local users table. Called on first authenticated request after signup;
// repeat calls are no-ops. Role is required and immutable: once the row
// exists the stored role wins over whatever the client sends.
func (uc *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	if user.ID == "" || user.Email == "" {
		return apperror.BadRequest("User ID and email are required")
	}
	if user.Role != domain.RoleJobSeeker && user.Role != domain.RoleRecruiter {
		return apperror.BadRequest("Role must be job_seeker or recruiter")
	}

	existing, err := uc.userRepo.GetByID(ctx, user.ID)
	if err == nil {
		*user = *existing
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return apperror.Internal(err)
	}

	// Two first-sync requests can both miss the read above; the insert is
	// conflict-absorbed, so re-read to hand every caller the stored row.
	// The role that landed first is the one that sticks.
	stored, err := uc.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	*user = *stored
	return nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
