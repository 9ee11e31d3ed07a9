package repository

import "context"

// GenerativeRepository - text-generation API used as a best-effort
// fallback resolver. The response is unstructured text, first candidate only.
type GenerativeRepository interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
