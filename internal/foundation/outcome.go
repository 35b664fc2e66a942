// Package foundation provides generic utilities for type-safe operations.
package foundation

// Outcome is a stage result that distinguishes a clean value from a degraded
// one. A degraded Outcome still carries a usable value (a placeholder or a
// sentinel) plus the reason the stage could not produce its real result.
// Pipelines substitute degraded values and keep going instead of aborting.
type Outcome[T any] struct {
	value    T
	reason   string
	degraded bool
}

// Good creates a non-degraded Outcome.
func Good[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Degraded creates an Outcome carrying a substitute value and the reason
// the stage degraded.
func Degraded[T any](substitute T, reason string) Outcome[T] {
	return Outcome[T]{value: substitute, reason: reason, degraded: true}
}

// Value returns the carried value, degraded or not.
func (o Outcome[T]) Value() T { return o.value }

// IsDegraded reports whether the stage fell back to a substitute value.
func (o Outcome[T]) IsDegraded() bool { return o.degraded }

// Reason returns the degradation reason, empty for good outcomes.
func (o Outcome[T]) Reason() string { return o.reason }
