package result

import "fmt"

// Result represents the outcome of an operation that either succeeded with a
// payload or failed with an error. Exactly one side is meaningful:
//   - Success true  => Data holds the payload, Err is nil
//   - Success false => Err holds the failure, Data is the zero value
//
// A Result is terminal once constructed. The zero value is a failure with a
// nil error; prefer the Ok / Err constructors.
type Result[T any] struct {
	Success bool
	Data    T
	Err     error
}

// Ok creates a successful result carrying data.
func Ok[T any](data T) Result[T] { return Result[T]{Success: true, Data: data} }

// Err creates a failed result carrying err.
func Err[T any](err error) Result[T] { return Result[T]{Err: err} }

// Errf creates a failed result from a formatted message. It supports the %w
// verb for wrapping an underlying error.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{Err: fmt.Errorf(format, args...)}
}

// IsOk reports whether the result is a success.
func (r Result[T]) IsOk() bool { return r.Success }

// IsErr reports whether the result is a failure.
func (r Result[T]) IsErr() bool { return !r.Success }

// Unwrap returns the payload and error in conventional Go form, bridging
// result-oriented code to (T, error) call sites.
func (r Result[T]) Unwrap() (T, error) { return r.Data, r.Err }

// OrElse returns the payload on success or fallback on failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.Success {
		return r.Data
	}
	return fallback
}

// String renders the result for logs and debugging output.
func (r Result[T]) String() string {
	if r.Success {
		return fmt.Sprintf("Ok(%v)", r.Data)
	}
	return fmt.Sprintf("Err(%v)", r.Err)
}
