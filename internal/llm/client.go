// Package llm wraps the hosted language-model endpoint behind a plain
// text-in/text-out contract. Callers treat the model as an external
// collaborator; transport, auth, and quota behavior stay inside this
// package.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model replies without any usable text.
var ErrEmptyResponse = errors.New("empty response from model")

// Client is the text-in/text-out model contract. Generate blocks for one
// request-response round trip bounded by the client's configured timeout;
// there is no retry loop; callers degrade at their own scope.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// Params carries the sampling parameters applied to every call.
type Params struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}
