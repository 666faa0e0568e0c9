package repository

import (
	"context"
)

// GeminiRepository defines the interface for LLM text generation
type GeminiRepository interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
