package postmark

import (
	"context"
	"fmt"
)

// Callback receives a settled result error-first: on failure err is non-nil
// and result is the zero value, on success err is nil.
type Callback[T any] func(err error, result T)

// Future holds the single settled result of an asynchronous call.
type Future[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Async runs call once in its own goroutine. When it returns, the result is
// stored in the returned Future and each callback is invoked exactly once with
// the same value. Callbacks fire whether or not the Future is awaited.
func Async[T any](ctx context.Context, call func(context.Context) (T, error), callbacks ...Callback[T]) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}

	go func() {
		result, err := safeCall(ctx, call)
		if err != nil {
			var zero T

			result = zero
		}

		future.result = result
		future.err = err
		close(future.done)

		for _, callback := range callbacks {
			if callback != nil {
				callback(err, result)
			}
		}
	}()

	return future
}

func safeCall[T any](ctx context.Context, call func(context.Context) (T, error)) (result T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %v", ErrCallPanicked, recovered)
		}
	}()

	return call(ctx)
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done. Cancelling ctx
// stops the wait, not the call.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T

		return zero, fmt.Errorf("awaiting result: %w", ctx.Err())
	}
}

// Result blocks until the result is available.
func (f *Future[T]) Result() (T, error) {
	<-f.done

	return f.result, f.err
}
