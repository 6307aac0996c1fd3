package core

import "context"

type OptionKey string

const AwaitOptionKey OptionKey = "await_options"

type AwaitOptions struct {
	// ClosedAsCancel reports a computation closed without a value as a
	// cancellation. When false it is read as an absent value.
	ClosedAsCancel bool
}

func WithAwaitOptions(ctx context.Context, closedAsCancel bool) context.Context {
	return context.WithValue(ctx, AwaitOptionKey, AwaitOptions{ClosedAsCancel: closedAsCancel})
}

func IsClosedAsCancel(ctx context.Context, defaultClosedAsCancel bool) bool {
	options, ok := ctx.Value(AwaitOptionKey).(AwaitOptions)
	if ok {
		return options.ClosedAsCancel
	}
	return defaultClosedAsCancel
}
