package metrics

import "time"

// ResultLabel enumerates outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFallback ResultLabel = "fallback"
	ResultError    ResultLabel = "error"
)

// Recorder defines observability hooks for the generation pipeline.
// Implementations may forward to Prometheus, OpenTelemetry, etc. All
// methods must be safe on the NoopRecorder (allowing optional injection).
type Recorder interface {
	ObserveRequestDuration(d time.Duration)
	IncRequestResult(result ResultLabel)
	ObserveCloneDuration(d time.Duration, success bool)
	ObserveModelCallDuration(model string, d time.Duration, success bool)
	IncFallback(reason string)
	IncDegradedStage(stage string)
	IncCacheResult(hit bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRequestDuration(time.Duration)                    {}
func (NoopRecorder) IncRequestResult(ResultLabel)                            {}
func (NoopRecorder) ObserveCloneDuration(time.Duration, bool)                {}
func (NoopRecorder) ObserveModelCallDuration(string, time.Duration, bool)    {}
func (NoopRecorder) IncFallback(string)                                      {}
func (NoopRecorder) IncDegradedStage(string)                                 {}
func (NoopRecorder) IncCacheResult(bool)                                     {}
