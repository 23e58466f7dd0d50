package usecase

import (
	"context"
	"errors"

	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/apperror"
)

type feedUsecase struct {
	userRepo    domain.UserRepository
	matchRepo   domain.MatchRepository
	profileRepo domain.ProfileRepository
}

// NewFeedUsecase creates the swipe-deck builder.
func NewFeedUsecase(
	userRepo domain.UserRepository,
	matchRepo domain.MatchRepository,
	profileRepo domain.ProfileRepository,
) domain.FeedUsecase {
	return &feedUsecase{
		userRepo:    userRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
	}
}

// BuildFeed assembles the deck for one fetch: every opposite-role user,
// minus the viewer, minus anyone already matched with the viewer.
// Swipes without a reciprocal are deliberately NOT filtered out, so a
// previously passed counterpart can reappear after a refresh. Any empty
// stage short-circuits to an empty feed.
func (uc *feedUsecase) BuildFeed(ctx context.Context, userID string) (*domain.Feed, error) {
	viewer, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	feed := &domain.Feed{Role: viewer.Role}

	candidateIDs, err := uc.userRepo.GetIDsByRole(ctx, domain.OppositeRole(viewer.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	matchedIDs, err := uc.matchRepo.CounterpartIDs(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	excluded := make(map[string]bool, len(matchedIDs)+1)
	excluded[userID] = true // the viewer never appears in their own deck
	for _, id := range matchedIDs {
		excluded[id] = true
	}

	available := candidateIDs[:0:0]
	for _, id := range candidateIDs {
		if !excluded[id] {
			available = append(available, id)
		}
	}
	if len(available) == 0 {
		return feed, nil
	}

	profiles, err := uc.profileRepo.GetByUserIDs(ctx, available)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if viewer.Role == domain.RoleJobSeeker {
		feed.Jobs = projectJobPostings(profiles)
	} else {
		feed.Candidates = projectCandidateCards(profiles)
	}
	return feed, nil
}

// projectJobPostings turns recruiter profiles into the job cards a seeker
// swipes through. Missing optional fields get display fallbacks so the
// deck never renders blanks.
func projectJobPostings(profiles []domain.Profile) []domain.JobPosting {
	jobs := make([]domain.JobPosting, 0, len(profiles))
	for _, p := range profiles {
		job := domain.JobPosting{
			ID:          p.UserID,
			Title:       fallback(p.JobTitle, "Position Available"),
			Company:     fallback(deref(p.Company), "Company"),
			CompanyLogo: p.CompanyLogoURL,
			Location:    fallback(p.Location, "Location not specified"),
			Salary:      fallback(deref(p.SalaryRange), "Competitive"),
			Description: fallback(p.Bio, "No description available"),
			Skills:      p.Skills,
			PostedAt:    p.UpdatedAt.Format("2006-01-02"),
		}
		jobs = append(jobs, job)
	}
	return jobs
}

func projectCandidateCards(profiles []domain.Profile) []domain.CandidateCard {
	cards := make([]domain.CandidateCard, 0, len(profiles))
	for _, p := range profiles {
		card := domain.CandidateCard{
			ID:         p.UserID,
			Name:       fallback(p.FullName, p.Email),
			Title:      p.JobTitle,
			Location:   fallback(p.Location, "Not specified"),
			Experience: fallback(deref(p.Experience), "Not specified"),
			Education:  fallback(deref(p.Education), "Not specified"),
			Email:      p.Email,
			Linkedin:   p.LinkedinURL,
			Bio:        p.Bio,
			Skills:     p.Skills,
			Avatar:     p.AvatarURL,
		}
		cards = append(cards, card)
	}
	return cards
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
