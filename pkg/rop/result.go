package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result is the success-or-failure container the option package converts to.
// A failure may additionally be flagged as a cancellation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMessage builds a failure whose error carries only msg.
func FailMessage[T any](msg string) Result[T] {
	return Fail[T](errors.New(msg))
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failed or cancelled result, keeping its error,
// cancel flag, id and creation time. Calling it with a successful
// result is a programming error.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic(InvalidOperation("FailFrom called on a successful result"))
	}
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports a failed result, cancellations included.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
