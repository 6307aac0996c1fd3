package mass

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/optrop/pkg/rop"
	"github.com/ib-77/optrop/pkg/rop/core"
	"github.com/ib-77/optrop/pkg/rop/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAbsent = errors.New("absent")

func receive[T any](t *testing.T, ch <-chan rop.Result[T]) rop.Result[T] {
	t.Helper()

	select {
	case r, ok := <-ch:
		require.True(t, ok, "channel closed without result")
		return r
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result")
	}
	return rop.Result[T]{}
}

func TestConverting_ErrorProducedAfterCompletion(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	gate := make(chan struct{})
	var completed atomic.Bool
	in := core.Promise(ctx, func(ctx context.Context) option.Option[int] {
		<-gate
		completed.Store(true)
		return option.None[int]()
	})

	var calls atomic.Int32
	out := Converting(ctx, in, func(ctx context.Context) error {
		if !completed.Load() {
			t.Error("error producer ran before the antecedent completed")
		}
		calls.Add(1)
		return errAbsent
	}, nil)

	close(gate)
	r := receive(t, out)

	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), errAbsent)
	assert.Equal(t, int32(1), calls.Load())
}

func TestConverting_PresentSkipsErrorProducer(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Converting(context.Background(), core.ToChan(option.Some("v")),
		func(ctx context.Context) error {
			calls++
			return errAbsent
		}, nil)

	r := receive(t, out)
	assert.True(t, r.IsSuccess())
	assert.Equal(t, "v", r.Result())
	assert.Equal(t, 0, calls)
}

func TestConverting_CancelPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	never := make(chan option.Option[int])
	var cancelErr error
	out := Converting(ctx, never,
		func(ctx context.Context) error { return errAbsent },
		func(ctx context.Context, err error) { cancelErr = err })

	cancel()
	r := receive(t, out)

	assert.True(t, r.IsCancel())
	assert.ErrorIs(t, r.Err(), context.Canceled)
	assert.ErrorIs(t, cancelErr, context.Canceled)
}

func TestConverting_ClosedInput(t *testing.T) {
	t.Parallel()

	onAbsent := func(ctx context.Context) error { return errAbsent }

	r := receive(t, Converting(context.Background(), core.Closed[option.Option[int]](), onAbsent, nil))
	assert.True(t, r.IsCancel())
	assert.ErrorIs(t, r.Err(), rop.ErrNoValue)

	ctx := core.WithAwaitOptions(context.Background(), false)
	r = receive(t, Converting(ctx, core.Closed[option.Option[int]](), onAbsent, nil))
	assert.False(t, r.IsCancel())
	assert.ErrorIs(t, r.Err(), errAbsent)
}

func TestCollapsing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onAbsent := func(ctx context.Context) error { return errAbsent }

	ok := receive(t, Collapsing(ctx, core.ToChan(rop.Success(option.Some(3))), onAbsent, nil))
	assert.Equal(t, 3, ok.Result())

	absent := receive(t, Collapsing(ctx, core.ToChan(rop.Success(option.None[int]())), onAbsent, nil))
	assert.ErrorIs(t, absent.Err(), errAbsent)

	errOuter := errors.New("outer")
	outer := rop.Fail[option.Option[int]](errOuter)
	failed := receive(t, Collapsing(ctx, core.ToChan(outer), onAbsent, nil))
	assert.Same(t, errOuter, failed.Err())
	assert.Equal(t, outer.Id(), failed.Id())
}

func TestMapSwitching(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onValue := func(ctx context.Context, v int) string { return "value" }
	onAbsent := func(ctx context.Context) string { return "absent" }

	r := receive(t, MapSwitching(ctx, core.ToChan(rop.Success(option.Some(1))), onValue, onAbsent, nil))
	assert.Equal(t, "value", r.Result())

	r = receive(t, MapSwitching(ctx, core.ToChan(rop.Success(option.None[int]())), onValue, onAbsent, nil))
	assert.Equal(t, "absent", r.Result())
}

func TestThenSwitching(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	onValue := func(ctx context.Context, v int) rop.Result[int] {
		calls++
		return rop.Success(v + 1)
	}
	onAbsent := func(ctx context.Context) rop.Result[int] {
		calls++
		return rop.FailMessage[int]("absent")
	}

	r := receive(t, ThenSwitching(ctx, core.ToChan(rop.Success(option.Some(1))), onValue, onAbsent, nil))
	assert.Equal(t, 2, r.Result())

	r = receive(t, ThenSwitching(ctx, core.ToChan(rop.Success(option.None[int]())), onValue, onAbsent, nil))
	assert.EqualError(t, r.Err(), "absent")

	r = receive(t, ThenSwitching(ctx, core.ToChan(rop.Fail[option.Option[int]](errors.New("outer"))), onValue, onAbsent, nil))
	assert.EqualError(t, r.Err(), "outer")
	assert.Equal(t, 2, calls)
}
