package domain

import "context"

// JobPosting is a recruiter profile projected into the card a job seeker
// swipes through.
type JobPosting struct {
	ID          string   `json:"id"` // recruiter user id
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	CompanyLogo *string  `json:"company_logo,omitempty"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	PostedAt    string   `json:"posted_at"`
}

// CandidateCard is a job seeker profile projected into the card a
// recruiter swipes through.
type CandidateCard struct {
	ID         string   `json:"id"` // job seeker user id
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Email      string   `json:"email"`
	Linkedin   *string  `json:"linkedin,omitempty"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Avatar     *string  `json:"avatar,omitempty"`
}

// Feed is the deck for one fetch. Exactly one of Jobs/Candidates is
// populated depending on the viewer's role. Order is stable within a
// fetch but carries no ranking semantics.
type Feed struct {
	Role       string          `json:"role"`
	Jobs       []JobPosting    `json:"jobs,omitempty"`
	Candidates []CandidateCard `json:"candidates,omitempty"`
}

type FeedUsecase interface {
	BuildFeed(ctx context.Context, userID string) (*Feed, error)
}
