package usecase

import (
	"context"
	"errors"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	hub         *relay.Hub
	validate    *validator.Validate
}

func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
	hub *relay.Hub,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		hub:         hub,
		validate:    validate,
	}
}

// CreateProfile writes the signup profile. The branch for the other role
// is always forced to NULL so a seeker row never carries recruiter fields
// and vice versa.
func (uc *profileUsecase) CreateProfile(ctx context.Context, userID string, profile *domain.Profile) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	profile.UserID = userID
	applyRoleBranch(user.Role, profile)

	if err := uc.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}

	uc.hub.Publish(relay.Event{Table: relay.TableProfiles, Kind: relay.KindInsert, Payload: profile})
	return nil
}

func (uc *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// GetMyProfile is GetProfile for the acting user; the distinction exists
// so the handler never has to pass an id the client controls.
func (uc *profileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.GetProfile(ctx, userID)
}

// UpdateProfile is owner-only. The UserID on the payload is overwritten
// from the authenticated identity so a client cannot edit someone else's
// profile by smuggling a different id in the body.
func (uc *profileUsecase) UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	profile.UserID = userID
	applyRoleBranch(user.Role, profile)

	if err := uc.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}

	uc.hub.Publish(relay.Event{Table: relay.TableProfiles, Kind: relay.KindUpdate, Payload: profile})
	return nil
}

// applyRoleBranch nulls the role-conditional fields that do not apply.
func applyRoleBranch(role string, p *domain.Profile) {
	if role == domain.RoleRecruiter {
		p.Experience = nil
		p.Education = nil
		p.LinkedinURL = nil
		p.AvatarURL = nil
	} else {
		p.Company = nil
		p.CompanyLogoURL = nil
		p.SalaryRange = nil
	}
}
