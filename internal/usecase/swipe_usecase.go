package usecase

import (
	"context"
	"errors"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/pkg/apperror"
)

type swipeUsecase struct {
	swipeRepo domain.SwipeRepository
	matchRepo domain.MatchRepository
	userRepo  domain.UserRepository
	hub       *relay.Hub
}

// NewSwipeUsecase creates the match detector.
func NewSwipeUsecase(
	swipeRepo domain.SwipeRepository,
	matchRepo domain.MatchRepository,
	userRepo domain.UserRepository,
	hub *relay.Hub,
) domain.SwipeUsecase {
	return &swipeUsecase{
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
		userRepo:  userRepo,
		hub:       hub,
	}
}

// RecordSwipe runs the write-then-check-then-write match protocol:
// record the swipe, look for the reciprocal swipe, and materialize a
// match when both directions exist. There is no transaction around the
// three steps; the uniqueness constraints on swipes and matches are what
// keep concurrent reciprocal swipes from duplicating anything. A failure
// after the swipe insert leaves a perfectly valid pending swipe, so the
// caller can retry the identical call safely.
func (uc *swipeUsecase) RecordSwipe(ctx context.Context, swiperID, swipedID string) (*domain.SwipeResult, error) {
	if swipedID == "" {
		return nil, apperror.BadRequest("swiped_id is required")
	}
	if swiperID == swipedID {
		return nil, apperror.BadRequest("You cannot swipe on yourself")
	}

	swiper, err := uc.userRepo.GetByID(ctx, swiperID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	swiped, err := uc.userRepo.GetByID(ctx, swipedID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Swiped user not found")
		}
		return nil, apperror.Internal(err)
	}
	if swiper.Role == swiped.Role {
		return nil, apperror.BadRequest("You can only swipe on the opposite role")
	}

	// Step 1: record interest. Duplicate swipes are absorbed by the
	// unique constraint and look identical to a first swipe.
	if err := uc.swipeRepo.Insert(ctx, swiperID, swipedID); err != nil {
		return nil, apperror.Internal(err)
	}

	// Step 2: reciprocity check.
	mutual, err := uc.swipeRepo.Exists(ctx, swipedID, swiperID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !mutual {
		return &domain.SwipeResult{Matched: false}, nil
	}

	// Step 3: both directions exist; create the match in canonical
	// (recruiter, job seeker) orientation. Either side may get here
	// first; CreateIfAbsent hands the loser the surviving row.
	recruiterID, jobSeekerID := swiperID, swipedID
	if swiper.Role == domain.RoleJobSeeker {
		recruiterID, jobSeekerID = swipedID, swiperID
	}

	match, created, err := uc.matchRepo.CreateIfAbsent(ctx, recruiterID, jobSeekerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if created {
		uc.hub.Publish(relay.Event{Table: relay.TableMatches, Kind: relay.KindInsert, Payload: match})
	}

	return &domain.SwipeResult{Matched: true, Match: match}, nil
}
