package domain

import "context"

// DraftCandidate is one generated draft returned by the content generator.
type DraftCandidate struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	MainKeyword string `json:"main_keyword"`
}

// DraftGenerator produces draft candidates for a customer, steering away
// from the given previously used titles. An empty result means generation
// failed; the content-length floor is the generator's concern.
type DraftGenerator interface {
	Generate(ctx context.Context, customer *Customer, excludeTitles []string) ([]DraftCandidate, error)
}
