// Package metrics provides an abstraction (Recorder) for emitting
// request, clone, and model-call metrics with a Prometheus-backed
// implementation and a no-op default.
package metrics
