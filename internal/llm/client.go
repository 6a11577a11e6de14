// Package llm wraps the external chat-completion service used to generate
// wake-up phrases. The production client talks to the Groq API; tests
// inject a stub.
package llm

import "context"

// CompletionClient performs a single-turn, non-streaming completion of a
// system-role prompt and returns the generated text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
