package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-swipehire-backend/internal/domain"

	"github.com/google/uuid"
)

// In-memory fakes that honor the same uniqueness constraints the real
// Postgres schema enforces, so the race-absorbing protocol behavior is
// exercised for real instead of being scripted per call.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		r.users[user.ID] = user
	}
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetIDsByRole(_ context.Context, role string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, u := range r.users {
		if u.Role == role {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

type fakeSwipeRepo struct {
	mu     sync.Mutex
	swipes map[[2]string]time.Time
}

func newFakeSwipeRepo() *fakeSwipeRepo {
	return &fakeSwipeRepo{swipes: make(map[[2]string]time.Time)}
}

// Insert mirrors ON CONFLICT DO NOTHING.
func (r *fakeSwipeRepo) Insert(_ context.Context, swiperID, swipedID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{swiperID, swipedID}
	if _, ok := r.swipes[key]; !ok {
		r.swipes[key] = time.Now()
	}
	return nil
}

func (r *fakeSwipeRepo) Exists(_ context.Context, swiperID, swipedID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.swipes[[2]string{swiperID, swipedID}]
	return ok, nil
}

func (r *fakeSwipeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.swipes)
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[[2]string]*domain.Match // (recruiter, job seeker) -> match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[[2]string]*domain.Match)}
}

// CreateIfAbsent mirrors the unique-pair constraint: the first insert
// wins, later attempts get the surviving row.
func (r *fakeMatchRepo) CreateIfAbsent(_ context.Context, recruiterID, jobSeekerID string) (*domain.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{recruiterID, jobSeekerID}
	if existing, ok := r.matches[key]; ok {
		return existing, false, nil
	}
	m := &domain.Match{
		ID:          uuid.NewString(),
		RecruiterID: recruiterID,
		JobSeekerID: jobSeekerID,
		CreatedAt:   time.Now(),
	}
	r.matches[key] = m
	return m, true, nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMatchRepo) GetByUserID(_ context.Context, userID string) ([]domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Match
	for _, m := range r.matches {
		if m.Participant(userID) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) CounterpartIDs(_ context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, m := range r.matches {
		if m.Participant(userID) {
			ids = append(ids, m.CounterpartID(userID))
		}
	}
	return ids, nil
}

func (r *fakeMatchRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matches)
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

func newFakeProfileRepo(profiles ...*domain.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
	for _, p := range profiles {
		r.profiles[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

// GetByUserIDs honors the same order the Postgres repository documents:
// updated_at descending, user id ascending on ties.
func (r *fakeProfileRepo) GetByUserIDs(_ context.Context, userIDs []string) ([]domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Profile
	for _, id := range userIDs {
		if p, ok := r.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.UserID]; !ok {
		return domain.ErrNotFound
	}
	r.profiles[p.UserID] = p
	return nil
}

// failingUserRepo simulates a storage outage: every call fails with the
// injected error, which is never domain.ErrNotFound.
type failingUserRepo struct{ err error }

func (r *failingUserRepo) Create(context.Context, *domain.User) error { return r.err }
func (r *failingUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, r.err
}
func (r *failingUserRepo) GetIDsByRole(context.Context, string) ([]string, error) {
	return nil, r.err
}

type failingMatchRepo struct{ err error }

func (r *failingMatchRepo) CreateIfAbsent(context.Context, string, string) (*domain.Match, bool, error) {
	return nil, false, r.err
}
func (r *failingMatchRepo) GetByID(context.Context, string) (*domain.Match, error) {
	return nil, r.err
}
func (r *failingMatchRepo) GetByUserID(context.Context, string) ([]domain.Match, error) {
	return nil, r.err
}
func (r *failingMatchRepo) CounterpartIDs(context.Context, string) ([]string, error) {
	return nil, r.err
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*domain.Message
	matches  *fakeMatchRepo
}

func newFakeMessageRepo(matches *fakeMatchRepo) *fakeMessageRepo {
	return &fakeMessageRepo{matches: matches}
}

func (r *fakeMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = uuid.NewString()
	msg.Read = false
	msg.CreatedAt = time.Now()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeMessageRepo) GetByMatchID(_ context.Context, matchID string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Message
	for _, m := range r.messages {
		if m.MatchID == matchID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(_ context.Context, matchID, viewerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var flipped int64
	for _, m := range r.messages {
		if m.MatchID == matchID && m.SenderID != viewerID && !m.Read {
			m.Read = true
			flipped++
		}
	}
	return flipped, nil
}

func (r *fakeMessageRepo) UnreadCountForUser(ctx context.Context, userID string) (int64, error) {
	matches, _ := r.matches.GetByUserID(ctx, userID)
	inMatch := make(map[string]bool, len(matches))
	for _, m := range matches {
		inMatch[m.ID] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, m := range r.messages {
		if inMatch[m.MatchID] && m.SenderID != userID && !m.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) UnreadCountByMatch(ctx context.Context, userID string) (map[string]int64, error) {
	matches, _ := r.matches.GetByUserID(ctx, userID)
	inMatch := make(map[string]bool, len(matches))
	for _, m := range matches {
		inMatch[m.ID] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64)
	for _, m := range r.messages {
		if inMatch[m.MatchID] && m.SenderID != userID && !m.Read {
			counts[m.MatchID]++
		}
	}
	return counts, nil
}
