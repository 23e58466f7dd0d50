package postgres

import (
	"context"
	"errors"
	"go-swipehire-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `
	user_id, full_name, email, bio, location, skills, job_title,
	experience, education, linkedin_url, avatar_url,
	company, company_logo_url, salary_range,
	created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var skills []string
	err := row.Scan(
		&p.UserID, &p.FullName, &p.Email, &p.Bio, &p.Location, pq.Array(&skills), &p.JobTitle,
		&p.Experience, &p.Education, &p.LinkedinURL, &p.AvatarURL,
		&p.Company, &p.CompanyLogoURL, &p.SalaryRange,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, full_name, email, bio, location, skills, job_title,
			experience, education, linkedin_url, avatar_url,
			company, company_logo_url, salary_range,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		p.UserID, p.FullName, p.Email, p.Bio, p.Location, pq.Array(p.Skills), p.JobTitle,
		p.Experience, p.Education, p.LinkedinURL, p.AvatarURL,
		p.Company, p.CompanyLogoURL, p.SalaryRange,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByUserIDs loads profiles for a set of ids with a stable order so the
// swipe deck is consistent within one fetch.
func (r *profileRepo) GetByUserIDs(ctx context.Context, userIDs []string) ([]domain.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = ANY($1)
		ORDER BY updated_at DESC, user_id ASC`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = $2, email = $3, bio = $4, location = $5, skills = $6, job_title = $7,
			experience = $8, education = $9, linkedin_url = $10, avatar_url = $11,
			company = $12, company_logo_url = $13, salary_range = $14,
			updated_at = $15
		WHERE user_id = $1`

	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		p.UserID, p.FullName, p.Email, p.Bio, p.Location, pq.Array(p.Skills), p.JobTitle,
		p.Experience, p.Education, p.LinkedinURL, p.AvatarURL,
		p.Company, p.CompanyLogoURL, p.SalaryRange,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
