package llm

import (
	"context"
	"sync"
)

// Fake is an in-memory Client for tests. Responses are consumed in order;
// when the script runs out, Default (or a canned string) is returned.
type Fake struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Default   string
	Prompts   []string
}

// NewFake returns a Fake that always answers with def.
func NewFake(def string) *Fake {
	return &Fake{Default: def}
}

func (f *Fake) ModelName() string { return "fake-model" }

func (f *Fake) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) > 0 {
		resp := f.Responses[0]
		f.Responses = f.Responses[1:]
		return resp, nil
	}
	if f.Default != "" {
		return f.Default, nil
	}
	return "fake response", nil
}
