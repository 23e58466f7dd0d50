package domain

import (
	"context"
	"time"
)

// Profile is the single card-facing record per user. Role-conditional
// fields for the other role are always NULL: a job seeker never carries
// Company/SalaryRange, a recruiter never carries Experience/Education.
type Profile struct {
	UserID   string   `json:"user_id"`
	FullName string   `json:"full_name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
	JobTitle string   `json:"job_title" validate:"required"`

	// Job seeker fields
	Experience  *string `json:"experience,omitempty"`
	Education   *string `json:"education,omitempty"`
	LinkedinURL *string `json:"linkedin_url,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`

	// Recruiter fields
	Company        *string `json:"company,omitempty"`
	CompanyLogoURL *string `json:"company_logo_url,omitempty"`
	SalaryRange    *string `json:"salary_range,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, userID string, profile *Profile) error
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	GetMyProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, profile *Profile) error
}
