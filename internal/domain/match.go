package domain

import (
	"context"
	"time"
)

// Match is the durable unlock token for a chat thread. Canonical
// orientation is (recruiter, job seeker) since roles are always opposite.
// At most one match ever exists per pair; once created it is immutable.
type Match struct {
	ID          string    `json:"id"`
	RecruiterID string    `json:"recruiter_id"`
	JobSeekerID string    `json:"job_seeker_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Participant reports whether userID is one of the two sides.
func (m *Match) Participant(userID string) bool {
	return m.RecruiterID == userID || m.JobSeekerID == userID
}

// CounterpartID returns the other side of the match for userID.
func (m *Match) CounterpartID(userID string) string {
	if m.RecruiterID == userID {
		return m.JobSeekerID
	}
	return m.RecruiterID
}

// MatchSummary is a match joined with the counterpart's profile and the
// viewer's unread message count, for the match list screen.
type MatchSummary struct {
	Match
	Counterpart *Profile `json:"counterpart,omitempty"`
	UnreadCount int64    `json:"unread_count"`
}

// MatchRepository persists confirmed pairs. CreateIfAbsent must lean on
// the UNIQUE(recruiter_id, job_seeker_id) constraint: when two reciprocal
// swipes race, both sides may attempt creation and exactly one row must
// survive, with the loser receiving that surviving row. Swapping the
// storage backend without an equivalent constraint breaks the protocol.
type MatchRepository interface {
	CreateIfAbsent(ctx context.Context, recruiterID, jobSeekerID string) (*Match, bool, error)
	GetByID(ctx context.Context, id string) (*Match, error)
	GetByUserID(ctx context.Context, userID string) ([]Match, error)
	CounterpartIDs(ctx context.Context, userID string) ([]string, error)
}

type MatchUsecase interface {
	ListMatches(ctx context.Context, userID string) ([]MatchSummary, error)
	GetMatch(ctx context.Context, matchID, userID string) (*Match, error)
}
