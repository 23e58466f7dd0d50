package usecase

import (
	"context"
	"errors"
	"strings"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	matchRepo   domain.MatchRepository
	hub         *relay.Hub
}

// NewMessageUsecase creates the chat business logic.
func NewMessageUsecase(
	messageRepo domain.MessageRepository,
	matchRepo domain.MatchRepository,
	hub *relay.Hub,
) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		hub:         hub,
	}
}

// requireParticipant loads the match and verifies the caller is one of
// its two sides. The match is the chat's access control token.
func (uc *messageUsecase) requireParticipant(ctx context.Context, matchID, userID string) (*domain.Match, error) {
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

func (uc *messageUsecase) SendMessage(ctx context.Context, matchID, senderID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.BadRequest("Message content cannot be empty")
	}

	match, err := uc.requireParticipant(ctx, matchID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		MatchID:  matchID,
		SenderID: senderID,
		Content:  content,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.hub.Publish(relay.Event{
		Table: relay.TableMessages,
		Kind:  relay.KindInsert,
		Payload: &domain.MessageEvent{
			Message:     msg,
			MatchID:     matchID,
			RecruiterID: match.RecruiterID,
			JobSeekerID: match.JobSeekerID,
		},
	})
	return msg, nil
}

func (uc *messageUsecase) ListMessages(ctx context.Context, matchID, viewerID string) ([]domain.Message, error) {
	if _, err := uc.requireParticipant(ctx, matchID, viewerID); err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

// MarkThreadRead bulk-flips every unread message the viewer received in
// the thread. Idempotent: calling it with nothing unread changes nothing
// and publishes nothing.
func (uc *messageUsecase) MarkThreadRead(ctx context.Context, matchID, viewerID string) error {
	match, err := uc.requireParticipant(ctx, matchID, viewerID)
	if err != nil {
		return err
	}

	flipped, err := uc.messageRepo.MarkRead(ctx, matchID, viewerID)
	if err != nil {
		return apperror.Internal(err)
	}
	if flipped > 0 {
		uc.hub.Publish(relay.Event{
			Table: relay.TableMessages,
			Kind:  relay.KindUpdate,
			Payload: &domain.MessageEvent{
				MatchID:     matchID,
				ReadBy:      viewerID,
				RecruiterID: match.RecruiterID,
				JobSeekerID: match.JobSeekerID,
			},
		})
	}
	return nil
}

func (uc *messageUsecase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := uc.messageRepo.UnreadCountForUser(ctx, userID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
