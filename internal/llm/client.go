// Package llm adapts a structured-output large language model into a
// typed request/response contract the rest of the repo can call without
// depending on any provider SDK directly.
package llm

import (
	"context"
)

// Request is one structured-generation call: a prompt plus the JSON
// schema the response must conform to.
type Request struct {
	// Prompt is the full instruction text, including any serialized
	// context data the caller has already assembled.
	Prompt string
	// Schema is a JSON-Schema-shaped map describing the required
	// top-level keys of the response object.
	Schema map[string]interface{}
	// RequiredKeys are the top-level keys Validate checks for after
	// unmarshaling, independent of what Schema itself declares.
	RequiredKeys []string
}

// Response is the adapter's structured result: the validated JSON bytes
// the model returned.
type Response struct {
	JSON []byte
}

// Client is the contract every component that needs LLM-synthesized
// content (suggestion narratives, weekly summaries) depends on. Kept
// provider-agnostic so tests and degraded-mode paths can substitute a
// stub without touching a real API.
type Client interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
