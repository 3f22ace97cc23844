package model

// Result is the value returned by a best-effort dependency such as the object
// store or the LLM. A degraded result holds the zero value of T and the reason
// the dependency failed; callers decide whether that is fatal.
type Result[T any] struct {
	Value  T
	Reason error
}

// Ok wraps a value produced without failure.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Degraded records a swallowed failure.
func Degraded[T any](reason error) Result[T] {
	return Result[T]{Reason: reason}
}

// IsDegraded reports whether the dependency failed.
func (r Result[T]) IsDegraded() bool {
	return r.Reason != nil
}
