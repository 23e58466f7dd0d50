package usecase_test

import (
	"context"
	"testing"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMatches(t *testing.T) {
	matches := newFakeMatchRepo()
	match, _, err := matches.CreateIfAbsent(context.Background(), "recruiter-1", "seeker-1")
	require.NoError(t, err)

	profiles := newFakeProfileRepo(
		&domain.Profile{UserID: "recruiter-1", FullName: "Rae", Email: "r@example.com", JobTitle: "Backend Engineer"},
		&domain.Profile{UserID: "seeker-1", FullName: "Sam", Email: "s@example.com", JobTitle: "Go Developer"},
	)
	messages := newFakeMessageRepo(matches)
	messageUC := usecase.NewMessageUsecase(messages, matches, relay.NewHub())
	uc := usecase.NewMatchUsecase(matches, profiles, messages)

	_, err = messageUC.SendMessage(context.Background(), match.ID, "recruiter-1", "hello")
	require.NoError(t, err)

	t.Run("Summary joins counterpart profile and unread count", func(t *testing.T) {
		summaries, err := uc.ListMatches(context.Background(), "seeker-1")
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		require.NotNil(t, summaries[0].Counterpart)
		assert.Equal(t, "recruiter-1", summaries[0].Counterpart.UserID)
		assert.Equal(t, int64(1), summaries[0].UnreadCount)
	})

	t.Run("Sender's own messages are not their unread", func(t *testing.T) {
		summaries, err := uc.ListMatches(context.Background(), "recruiter-1")
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "seeker-1", summaries[0].Counterpart.UserID)
		assert.Equal(t, int64(0), summaries[0].UnreadCount)
	})

	t.Run("No matches yields an empty list", func(t *testing.T) {
		summaries, err := uc.ListMatches(context.Background(), "stranger")
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestGetMatchAccess(t *testing.T) {
	matches := newFakeMatchRepo()
	match, _, err := matches.CreateIfAbsent(context.Background(), "recruiter-1", "seeker-1")
	require.NoError(t, err)

	uc := usecase.NewMatchUsecase(matches, newFakeProfileRepo(), newFakeMessageRepo(matches))

	t.Run("Participant resolves the match", func(t *testing.T) {
		got, err := uc.GetMatch(context.Background(), match.ID, "recruiter-1")
		require.NoError(t, err)
		assert.Equal(t, match.ID, got.ID)
	})

	t.Run("Non-participant is denied", func(t *testing.T) {
		_, err := uc.GetMatch(context.Background(), match.ID, "intruder")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access")
	})

	t.Run("Unknown match is not found", func(t *testing.T) {
		_, err := uc.GetMatch(context.Background(), "missing", "recruiter-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
