package ai

import (
	"context"
)

// Generator defines the contract for interacting with language models.
// This interface allows for swapping different providers (Gemini, OpenAI, etc.) in the future.
type Generator interface {
	// Generate sends a system instruction plus user content to the model and
	// returns its free-text reply, trimmed. A blank reply is not an error;
	// callers must treat it as "no usable output".
	Generate(ctx context.Context, systemInstruction, userContent string) (string, error)
}
