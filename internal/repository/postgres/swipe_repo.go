package postgres

import (
	"context"
	"go-swipehire-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type swipeRepo struct {
	db *pgxpool.Pool
}

func NewSwipeRepository(db *pgxpool.Pool) domain.SwipeRepository {
	return &swipeRepo{db: db}
}

// Insert records a swipe. The UNIQUE(swiper_id, swiped_id) constraint
// absorbs duplicates: swiping the same target again is a silent no-op,
// which keeps the whole swipe operation safely retryable.
func (r *swipeRepo) Insert(ctx context.Context, swiperID, swipedID string) error {
	query := `
		INSERT INTO swipes (swiper_id, swiped_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (swiper_id, swiped_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, swiperID, swipedID, time.Now())
	return err
}

// Exists is the reciprocity check: has swipedID already swiped swiperID?
func (r *swipeRepo) Exists(ctx context.Context, swiperID, swipedID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM swipes WHERE swiper_id = $1 AND swiped_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, swiperID, swipedID).Scan(&exists)
	return exists, err
}
