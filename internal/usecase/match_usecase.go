package usecase

import (
	"context"
	"errors"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/apperror"
)

type matchUsecase struct {
	matchRepo   domain.MatchRepository
	profileRepo domain.ProfileRepository
	messageRepo domain.MessageRepository
}

func NewMatchUsecase(
	matchRepo domain.MatchRepository,
	profileRepo domain.ProfileRepository,
	messageRepo domain.MessageRepository,
) domain.MatchUsecase {
	return &matchUsecase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		messageRepo: messageRepo,
	}
}

// ListMatches returns the user's matches joined with the counterpart's
// profile and the per-thread unread count, newest match first.
func (uc *matchUsecase) ListMatches(ctx context.Context, userID string) ([]domain.MatchSummary, error) {
	matches, err := uc.matchRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(matches) == 0 {
		return []domain.MatchSummary{}, nil
	}

	counterpartIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		counterpartIDs = append(counterpartIDs, m.CounterpartID(userID))
	}

	profiles, err := uc.profileRepo.GetByUserIDs(ctx, counterpartIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	byUser := make(map[string]*domain.Profile, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserID] = &profiles[i]
	}

	unread, err := uc.messageRepo.UnreadCountByMatch(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	summaries := make([]domain.MatchSummary, 0, len(matches))
	for _, m := range matches {
		summaries = append(summaries, domain.MatchSummary{
			Match:       m,
			Counterpart: byUser[m.CounterpartID(userID)],
			UnreadCount: unread[m.ID],
		})
	}
	return summaries, nil
}

// GetMatch is the chat-open access check: only participants may resolve
// a match by id.
func (uc *matchUsecase) GetMatch(ctx context.Context, matchID, userID string) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Match not found")
		}
		return nil, apperror.Internal(err)
	}
	if !match.Participant(userID) {
		return nil, apperror.Forbidden("You don't have access to this chat")
	}
	return match, nil
}
