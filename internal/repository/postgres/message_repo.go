package postgres

import (
	"context"
	"go-swipehire-backend/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, match_id, sender_id, content, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	msg.ID = uuid.NewString()
	msg.Read = false
	msg.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx, query, msg.ID, msg.MatchID, msg.SenderID, msg.Content, msg.Read, msg.CreatedAt)
	return err
}

func (r *messageRepo) GetByMatchID(ctx context.Context, matchID string) ([]domain.Message, error) {
	query := `
		SELECT id, match_id, sender_id, content, read, created_at
		FROM messages
		WHERE match_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.MatchID, &m.SenderID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkRead flips every unread message in the thread that the viewer did
// not send. Bulk and idempotent; returns how many rows actually flipped
// so callers can skip publishing when nothing changed.
func (r *messageRepo) MarkRead(ctx context.Context, matchID, viewerID string) (int64, error) {
	query := `
		UPDATE messages SET read = TRUE
		WHERE match_id = $1 AND sender_id <> $2 AND read = FALSE`

	result, err := r.db.Exec(ctx, query, matchID, viewerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// UnreadCountForUser aggregates unread messages addressed to the user
// across every match they participate in.
func (r *messageRepo) UnreadCountForUser(ctx context.Context, userID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM messages m
		JOIN matches mt ON m.match_id = mt.id
		WHERE (mt.recruiter_id = $1 OR mt.job_seeker_id = $1)
		  AND m.sender_id <> $1
		  AND m.read = FALSE`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

// UnreadCountByMatch returns per-match unread counts for the match list.
func (r *messageRepo) UnreadCountByMatch(ctx context.Context, userID string) (map[string]int64, error) {
	query := `
		SELECT m.match_id, COUNT(*)
		FROM messages m
		JOIN matches mt ON m.match_id = mt.id
		WHERE (mt.recruiter_id = $1 OR mt.job_seeker_id = $1)
		  AND m.sender_id <> $1
		  AND m.read = FALSE
		GROUP BY m.match_id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var matchID string
		var count int64
		if err := rows.Scan(&matchID, &count); err != nil {
			return nil, err
		}
		counts[matchID] = count
	}
	return counts, rows.Err()
}
