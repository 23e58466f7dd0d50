package postgres

import (
	"context"
	"errors"
	"go-swipehire-backend/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

// CreateIfAbsent materializes a match for a pair, exactly once. Both
// participants can race to create it from their own reciprocity check;
// the UNIQUE(recruiter_id, job_seeker_id) constraint lets exactly one
// insert win and the loser falls through to fetching the surviving row.
// Returns the match and whether this call created it.
func (r *matchRepo) CreateIfAbsent(ctx context.Context, recruiterID, jobSeekerID string) (*domain.Match, bool, error) {
	insert := `
		INSERT INTO matches (id, recruiter_id, job_seeker_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (recruiter_id, job_seeker_id) DO NOTHING`

	match := &domain.Match{
		ID:          uuid.NewString(),
		RecruiterID: recruiterID,
		JobSeekerID: jobSeekerID,
		CreatedAt:   time.Now(),
	}

	result, err := r.db.Exec(ctx, insert, match.ID, match.RecruiterID, match.JobSeekerID, match.CreatedAt)
	if err != nil {
		return nil, false, err
	}
	if result.RowsAffected() > 0 {
		return match, true, nil
	}

	// Lost the race; the pair already has its one match.
	existing, err := r.getByPair(ctx, recruiterID, jobSeekerID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *matchRepo) getByPair(ctx context.Context, recruiterID, jobSeekerID string) (*domain.Match, error) {
	query := `
		SELECT id, recruiter_id, job_seeker_id, created_at
		FROM matches
		WHERE recruiter_id = $1 AND job_seeker_id = $2`

	var m domain.Match
	err := r.db.QueryRow(ctx, query, recruiterID, jobSeekerID).Scan(
		&m.ID, &m.RecruiterID, &m.JobSeekerID, &m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	query := `SELECT id, recruiter_id, job_seeker_id, created_at FROM matches WHERE id = $1`

	var m domain.Match
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.RecruiterID, &m.JobSeekerID, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByUserID returns every match the user participates in, newest first.
func (r *matchRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Match, error) {
	query := `
		SELECT id, recruiter_id, job_seeker_id, created_at
		FROM matches
		WHERE recruiter_id = $1 OR job_seeker_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(&m.ID, &m.RecruiterID, &m.JobSeekerID, &m.CreatedAt); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// CounterpartIDs returns the ids on the other side of every match the
// user is in, for feed exclusion.
func (r *matchRepo) CounterpartIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT CASE WHEN recruiter_id = $1 THEN job_seeker_id ELSE recruiter_id END
		FROM matches
		WHERE recruiter_id = $1 OR job_seeker_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
