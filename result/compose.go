package result

import "errors"

// ErrNoOperations is returned by Chain when no seed operation is supplied.
var ErrNoOperations = errors.New("no operation provided")

// SeedFunc produces the first result of a pipeline. It takes no arguments;
// a pipeline starts from a produced value, not from prior state.
type SeedFunc func() Result[any]

// StepFunc transforms the payload of the previous pipeline step.
type StepFunc func(prev any) Result[any]

// Safe invokes fn and wraps its outcome. A returned error and a recovered
// panic both become failures carrying the failure text; neither propagates
// past this boundary.
func Safe[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Errf[T]("panic recovered: %v", r)
		}
	}()
	v, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Chain runs seed and feeds each step the payload of the preceding result.
// The first failure is returned unchanged and all remaining steps are
// skipped. A nil seed yields ErrNoOperations.
func Chain(seed SeedFunc, steps ...StepFunc) Result[any] {
	if seed == nil {
		return Err[any](ErrNoOperations)
	}
	res := seed()
	for i, step := range steps {
		if res.IsErr() {
			return res
		}
		if step == nil {
			return Errf[any]("chain: step %d is nil", i+1)
		}
		res = step(res.Data)
	}
	return res
}

// Collect returns the payloads of all results in order when every element is
// a success, and otherwise the first failure's error verbatim.
func Collect[T any](results []Result[T]) Result[[]T] {
	collected := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsErr() {
			return Err[[]T](r.Err)
		}
		collected = append(collected, r.Data)
	}
	return Ok(collected)
}

// Then applies fn to the payload of a successful result and propagates
// failures unchanged. It is the typed counterpart of a single Chain step.
func Then[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Err[U](r.Err)
	}
	return fn(r.Data)
}

// Map transforms the payload of a successful result with a plain function.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsErr() {
		return Err[U](r.Err)
	}
	return Ok(fn(r.Data))
}
