package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/internal/usecase"
	"go-swipehire-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildFeedProjection(t *testing.T) {
	seeker := &domain.User{ID: "seeker-1", Email: "s@example.com", Role: domain.RoleJobSeeker}
	recruiter := &domain.User{ID: "recruiter-1", Email: "r@example.com", Role: domain.RoleRecruiter}
	users := newFakeUserRepo(seeker, recruiter)
	profiles := newFakeProfileRepo(
		&domain.Profile{
			UserID: seeker.ID, FullName: "Sam Seeker", Email: seeker.Email,
			JobTitle: "Go Developer", Skills: []string{"Go", "Postgres"},
			Experience: strPtr("5 years"), Education: strPtr("BSc"),
		},
		&domain.Profile{
			UserID: recruiter.ID, FullName: "Rae Recruiter", Email: recruiter.Email,
			JobTitle: "Backend Engineer", Company: strPtr("Acme"),
			SalaryRange: strPtr("$100k-$140k"), Bio: "Join us",
		},
	)
	uc := usecase.NewFeedUsecase(users, newFakeMatchRepo(), profiles)

	t.Run("Seeker sees recruiter profiles as job postings", func(t *testing.T) {
		feed, err := uc.BuildFeed(context.Background(), seeker.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleJobSeeker, feed.Role)
		require.Len(t, feed.Jobs, 1)
		job := feed.Jobs[0]
		assert.Equal(t, recruiter.ID, job.ID)
		assert.Equal(t, "Backend Engineer", job.Title)
		assert.Equal(t, "Acme", job.Company)
		assert.Equal(t, "$100k-$140k", job.Salary)
	})

	t.Run("Recruiter sees seeker profiles as candidate cards", func(t *testing.T) {
		feed, err := uc.BuildFeed(context.Background(), recruiter.ID)
		require.NoError(t, err)
		require.Len(t, feed.Candidates, 1)
		card := feed.Candidates[0]
		assert.Equal(t, seeker.ID, card.ID)
		assert.Equal(t, "Sam Seeker", card.Name)
		assert.Equal(t, "5 years", card.Experience)
	})

	t.Run("Missing optional fields fall back to display defaults", func(t *testing.T) {
		bare := &domain.User{ID: "recruiter-2", Email: "r2@example.com", Role: domain.RoleRecruiter}
		users := newFakeUserRepo(seeker, bare)
		profiles := newFakeProfileRepo(&domain.Profile{UserID: bare.ID, FullName: "Bare", Email: bare.Email})
		uc := usecase.NewFeedUsecase(users, newFakeMatchRepo(), profiles)

		feed, err := uc.BuildFeed(context.Background(), seeker.ID)
		require.NoError(t, err)
		require.Len(t, feed.Jobs, 1)
		assert.Equal(t, "Position Available", feed.Jobs[0].Title)
		assert.Equal(t, "Company", feed.Jobs[0].Company)
		assert.Equal(t, "Competitive", feed.Jobs[0].Salary)
	})
}

func TestBuildFeedOrdering(t *testing.T) {
	seeker := &domain.User{ID: "seeker-1", Email: "s@example.com", Role: domain.RoleJobSeeker}
	recruiters := []*domain.User{
		{ID: "recruiter-a", Email: "a@example.com", Role: domain.RoleRecruiter},
		{ID: "recruiter-b", Email: "b@example.com", Role: domain.RoleRecruiter},
		{ID: "recruiter-c", Email: "c@example.com", Role: domain.RoleRecruiter},
	}
	users := newFakeUserRepo(append([]*domain.User{seeker}, recruiters...)...)

	// c updated most recently; a and b tie, so their ids break it.
	base := time.Now()
	profiles := newFakeProfileRepo(
		&domain.Profile{UserID: "recruiter-a", FullName: "A", Email: "a@example.com", JobTitle: "X", UpdatedAt: base},
		&domain.Profile{UserID: "recruiter-b", FullName: "B", Email: "b@example.com", JobTitle: "Y", UpdatedAt: base},
		&domain.Profile{UserID: "recruiter-c", FullName: "C", Email: "c@example.com", JobTitle: "Z", UpdatedAt: base.Add(time.Hour)},
	)
	uc := usecase.NewFeedUsecase(users, newFakeMatchRepo(), profiles)

	feed, err := uc.BuildFeed(context.Background(), seeker.ID)
	require.NoError(t, err)
	require.Len(t, feed.Jobs, 3)

	got := []string{feed.Jobs[0].ID, feed.Jobs[1].ID, feed.Jobs[2].ID}
	assert.Equal(t, []string{"recruiter-c", "recruiter-a", "recruiter-b"}, got)
}

func TestBuildFeedStorageFailure(t *testing.T) {
	users := &failingUserRepo{err: errors.New("connection reset by peer")}
	uc := usecase.NewFeedUsecase(users, newFakeMatchRepo(), newFakeProfileRepo())

	_, err := uc.BuildFeed(context.Background(), "seeker-1")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestBuildFeedExclusions(t *testing.T) {
	seeker := &domain.User{ID: "seeker-1", Email: "s@example.com", Role: domain.RoleJobSeeker}
	recruiterA := &domain.User{ID: "recruiter-a", Email: "a@example.com", Role: domain.RoleRecruiter}
	recruiterB := &domain.User{ID: "recruiter-b", Email: "b@example.com", Role: domain.RoleRecruiter}
	users := newFakeUserRepo(seeker, recruiterA, recruiterB)
	profiles := newFakeProfileRepo(
		&domain.Profile{UserID: recruiterA.ID, FullName: "A", Email: recruiterA.Email, JobTitle: "X"},
		&domain.Profile{UserID: recruiterB.ID, FullName: "B", Email: recruiterB.Email, JobTitle: "Y"},
	)
	matches := newFakeMatchRepo()
	uc := usecase.NewFeedUsecase(users, matches, profiles)

	t.Run("Matched counterparts never reappear", func(t *testing.T) {
		_, _, err := matches.CreateIfAbsent(context.Background(), recruiterA.ID, seeker.ID)
		require.NoError(t, err)

		feed, err := uc.BuildFeed(context.Background(), seeker.ID)
		require.NoError(t, err)
		require.Len(t, feed.Jobs, 1)
		assert.Equal(t, recruiterB.ID, feed.Jobs[0].ID)

		// The exclusion is symmetric.
		recruiterFeed, err := uc.BuildFeed(context.Background(), recruiterA.ID)
		require.NoError(t, err)
		assert.Empty(t, recruiterFeed.Candidates)
	})

	t.Run("Pending swipes do not filter the deck", func(t *testing.T) {
		swipes := newFakeSwipeRepo()
		swipeUC := usecase.NewSwipeUsecase(swipes, matches, users, relay.NewHub())
		_, err := swipeUC.RecordSwipe(context.Background(), seeker.ID, recruiterB.ID)
		require.NoError(t, err)

		// One-sided interest: recruiterB stays in the deck on refresh.
		feed, err := uc.BuildFeed(context.Background(), seeker.ID)
		require.NoError(t, err)
		require.Len(t, feed.Jobs, 1)
		assert.Equal(t, recruiterB.ID, feed.Jobs[0].ID)
	})

	t.Run("Everyone matched short-circuits to an empty feed", func(t *testing.T) {
		_, _, err := matches.CreateIfAbsent(context.Background(), recruiterB.ID, seeker.ID)
		require.NoError(t, err)

		feed, err := uc.BuildFeed(context.Background(), seeker.ID)
		require.NoError(t, err)
		assert.Empty(t, feed.Jobs)
		assert.Empty(t, feed.Candidates)
	})
}
