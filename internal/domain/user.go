package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Role constants. A user picks exactly one role at signup and it never
// changes afterwards; the whole feed/match flow assumes the two roles
// partition the user base.
const (
	RoleJobSeeker = "job_seeker"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID        string    `json:"id"` // Supabase UUID
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OppositeRole returns the counter-role a user swipes through.
func OppositeRole(role string) string {
	if role == RoleRecruiter {
		return RoleJobSeeker
	}
	return RoleRecruiter
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetIDsByRole(ctx context.Context, role string) ([]string, error)
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
