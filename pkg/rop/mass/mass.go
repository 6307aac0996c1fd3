package mass

import (
	"context"
	"errors"

	"github.com/ib-77/optrop/pkg/rop"
	"github.com/ib-77/optrop/pkg/rop/core"
	"github.com/ib-77/optrop/pkg/rop/option"
	"github.com/ib-77/optrop/pkg/rop/solo"
)

// Converting awaits an Option and converts it like option.ToResultFunc.
func Converting[T any](ctx context.Context, input <-chan option.Option[T],
	onAbsent func(ctx context.Context) error,
	onCancel func(ctx context.Context, err error)) <-chan rop.Result[T] {

	return awaiting(ctx, input, option.None[T](),
		func(ctx context.Context, o option.Option[T]) rop.Result[T] {
			return o.ToResultFunc(func() error { return onAbsent(ctx) })
		}, onCancel)
}

// Collapsing awaits a Result[Option[T]] and collapses it like solo.CollapseFunc.
func Collapsing[T any](ctx context.Context, input <-chan rop.Result[option.Option[T]],
	onAbsent func(ctx context.Context) error,
	onCancel func(ctx context.Context, err error)) <-chan rop.Result[T] {

	return awaiting(ctx, input, rop.Success(option.None[T]()),
		func(ctx context.Context, r rop.Result[option.Option[T]]) rop.Result[T] {
			return solo.CollapseFunc(ctx, r, onAbsent)
		}, onCancel)
}

func MapSwitching[T, Out any](ctx context.Context, input <-chan rop.Result[option.Option[T]],
	onValue func(ctx context.Context, r T) Out,
	onAbsent func(ctx context.Context) Out,
	onCancel func(ctx context.Context, err error)) <-chan rop.Result[Out] {

	return awaiting(ctx, input, rop.Success(option.None[T]()),
		func(ctx context.Context, r rop.Result[option.Option[T]]) rop.Result[Out] {
			return solo.MapSwitch(ctx, r, onValue, onAbsent)
		}, onCancel)
}

func ThenSwitching[T, Out any](ctx context.Context, input <-chan rop.Result[option.Option[T]],
	onValue func(ctx context.Context, r T) rop.Result[Out],
	onAbsent func(ctx context.Context) rop.Result[Out],
	onCancel func(ctx context.Context, err error)) <-chan rop.Result[Out] {

	return awaiting(ctx, input, rop.Success(option.None[T]()),
		func(ctx context.Context, r rop.Result[option.Option[T]]) rop.Result[Out] {
			return solo.ThenSwitch(ctx, r, onValue, onAbsent)
		}, onCancel)
}

// awaiting delivers exactly one result. A closed input is read as absent
// unless the context asks for it to be reported as a cancellation.
func awaiting[In, Out any](ctx context.Context, input <-chan In, absent In,
	apply func(ctx context.Context, in In) rop.Result[Out],
	onCancel func(ctx context.Context, err error)) <-chan rop.Result[Out] {

	out := make(chan rop.Result[Out], 1)

	go func() {
		defer close(out)

		in, err := core.Await(ctx, input)
		switch {
		case err == nil:
			out <- apply(ctx, in)
		case errors.Is(err, rop.ErrNoValue) && !core.IsClosedAsCancel(ctx, true):
			out <- apply(ctx, absent)
		default:
			if onCancel != nil {
				onCancel(ctx, err)
			}
			out <- solo.Cancel[Out](err)
		}
	}()

	return out
}
