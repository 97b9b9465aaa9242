package domain

import "context"

// Generator issues one outbound text-generation call for a prompt and
// returns the model's raw text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
