package domain

import (
	"context"
	"time"
)

// Swipe is a one-directional interest edge. At most one row exists per
// ordered (swiper, swiped) pair; repeat swipes are no-ops, never errors.
// Swipes are append-only and never deleted.
type Swipe struct {
	SwiperID  string    `json:"swiper_id"`
	SwipedID  string    `json:"swiped_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SwipeResult is what a right-swipe resolves to: either interest was
// recorded and is pending, or reciprocity was detected and a match exists.
type SwipeResult struct {
	Matched bool   `json:"matched"`
	Match   *Match `json:"match,omitempty"`
}

// SwipeRepository persists interest edges. Insert must rely on the
// storage-level UNIQUE(swiper_id, swiped_id) constraint and report a
// conflicting insert as success; that constraint, not caller sequencing,
// is what makes concurrent duplicate swipes safe.
type SwipeRepository interface {
	Insert(ctx context.Context, swiperID, swipedID string) error
	Exists(ctx context.Context, swiperID, swipedID string) (bool, error)
}

type SwipeUsecase interface {
	RecordSwipe(ctx context.Context, swiperID, swipedID string) (*SwipeResult, error)
}
