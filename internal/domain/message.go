package domain

import (
	"context"
	"time"
)

// Message belongs to exactly one match. The sender owns the content; the
// recipient owns the read flag, which only ever flips false -> true via
// the bulk mark-read operation on chat open.
type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageEvent is the relay payload for message changes. Insert events
// carry the new message; read events carry who opened the thread. The
// match's participant ids travel with the event (never serialized to
// clients) so fanout can authorize recipients in memory; relay handlers
// run on the publisher's goroutine and must not reach storage.
type MessageEvent struct {
	Message *Message `json:"message,omitempty"`
	MatchID string   `json:"match_id"`
	ReadBy  string   `json:"read_by,omitempty"`

	RecruiterID string `json:"-"`
	JobSeekerID string `json:"-"`
}

// Participant reports whether userID is on either side of the thread's match.
func (e *MessageEvent) Participant(userID string) bool {
	return e.RecruiterID == userID || e.JobSeekerID == userID
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	GetByMatchID(ctx context.Context, matchID string) ([]Message, error)
	MarkRead(ctx context.Context, matchID, viewerID string) (int64, error)
	UnreadCountForUser(ctx context.Context, userID string) (int64, error)
	UnreadCountByMatch(ctx context.Context, userID string) (map[string]int64, error)
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, matchID, senderID, content string) (*Message, error)
	ListMessages(ctx context.Context, matchID, viewerID string) ([]Message, error)
	MarkThreadRead(ctx context.Context, matchID, viewerID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}
