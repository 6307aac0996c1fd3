package solo

import (
	"context"
	"errors"

	"github.com/ib-77/optrop/pkg/rop"
	"github.com/ib-77/optrop/pkg/rop/option"
)

// ToOption keeps the value of a successful result.
func ToOption[T any](_ context.Context, input rop.Result[T]) option.Option[T] {
	return option.FromResult(input)
}

// Collapse turns Result[Option[T]] into Result[T]. An outer failure is
// returned unchanged, an absent inner value fails with err.
func Collapse[T any](ctx context.Context, input rop.Result[option.Option[T]], err error) rop.Result[T] {
	return CollapseFunc(ctx, input, func(context.Context) error { return err })
}

func CollapseMessage[T any](ctx context.Context, input rop.Result[option.Option[T]], msg string) rop.Result[T] {
	return CollapseFunc(ctx, input, func(context.Context) error { return errors.New(msg) })
}

// CollapseFunc calls onAbsent only for a successful result holding no value.
func CollapseFunc[T any](ctx context.Context, input rop.Result[option.Option[T]],
	onAbsent func(ctx context.Context) error) rop.Result[T] {

	return ThenSwitch(ctx, input,
		func(_ context.Context, v T) rop.Result[T] {
			return rop.Success(v)
		},
		func(ctx context.Context) rop.Result[T] {
			return rop.Fail[T](onAbsent(ctx))
		})
}

// MapSwitch dispatches a successful Result[Option[T]] to exactly one
// branch and wraps its value as success. A failure skips both branches.
func MapSwitch[T, Out any](ctx context.Context, input rop.Result[option.Option[T]],
	onValue func(ctx context.Context, r T) Out,
	onAbsent func(ctx context.Context) Out) rop.Result[Out] {

	return Map(ctx, input, func(ctx context.Context, o option.Option[T]) Out {
		return option.Switch(o,
			func(v T) Out { return onValue(ctx, v) },
			func() Out { return onAbsent(ctx) })
	})
}

// ThenSwitch is MapSwitch for branches that return a Result themselves.
// The branch result is returned as is.
func ThenSwitch[T, Out any](ctx context.Context, input rop.Result[option.Option[T]],
	onValue func(ctx context.Context, r T) rop.Result[Out],
	onAbsent func(ctx context.Context) rop.Result[Out]) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, o option.Option[T]) rop.Result[Out] {
		return option.Switch(o,
			func(v T) rop.Result[Out] { return onValue(ctx, v) },
			func() rop.Result[Out] { return onAbsent(ctx) })
	})
}
