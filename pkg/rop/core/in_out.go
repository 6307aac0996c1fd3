package core

import (
	"context"

	"github.com/ib-77/optrop/pkg/rop"
)

// Promise runs fn in its own goroutine and returns the channel its value is
// delivered on. The channel is closed without a value if ctx is done first.
func Promise[T any](ctx context.Context, fn func(ctx context.Context) T) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		v := fn(ctx)
		select {
		case out <- v:
		case <-ctx.Done():
		}
	}()

	return out
}

// ToChan returns an already completed computation holding value.
func ToChan[T any](value T) <-chan T {
	out := make(chan T, 1)
	out <- value
	close(out)
	return out
}

// Closed returns a computation that finished without a value.
func Closed[T any]() <-chan T {
	out := make(chan T)
	close(out)
	return out
}

// Await blocks until in delivers its value. It fails with rop.ErrNoValue
// when in is closed empty, and with the context error when ctx is done.
func Await[T any](ctx context.Context, in <-chan T) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	select {
	case v, ok := <-in:
		if !ok {
			return zero, rop.ErrNoValue
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func AwaitOrDefault[T any](ctx context.Context, in <-chan T, defaultV T) T {
	v, err := Await(ctx, in)
	if err != nil {
		return defaultV
	}
	return v
}
