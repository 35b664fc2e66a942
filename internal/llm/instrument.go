package llm

import (
	"context"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/metrics"
)

// Instrumented decorates a Client so every model call is timed and its
// result recorded, regardless of which pipeline stage issued it.
type Instrumented struct {
	inner    Client
	recorder metrics.Recorder
}

// NewInstrumented wraps client with call recording. A nil recorder returns
// the client unwrapped.
func NewInstrumented(client Client, recorder metrics.Recorder) Client {
	if recorder == nil {
		return client
	}
	return &Instrumented{inner: client, recorder: recorder}
}

func (i *Instrumented) ModelName() string { return i.inner.ModelName() }

func (i *Instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := i.inner.Generate(ctx, prompt)
	i.recorder.ObserveModelCallDuration(i.inner.ModelName(), time.Since(start), err == nil)
	return out, err
}
