package option

import (
	"errors"

	"github.com/ib-77/optrop/pkg/rop"
)

// ToResult converts o into a success, or a failure carrying err.
func (o Option[T]) ToResult(err error) rop.Result[T] {
	if o.HasValue() {
		return rop.Success(o.mustValue())
	}
	return rop.Fail[T](err)
}

func (o Option[T]) ToResultMessage(msg string) rop.Result[T] {
	if o.HasValue() {
		return rop.Success(o.mustValue())
	}
	return rop.FailMessage[T](msg)
}

// ToResultFunc calls errFn only when o is absent.
func (o Option[T]) ToResultFunc(errFn func() error) rop.Result[T] {
	if o.HasValue() {
		return rop.Success(o.mustValue())
	}
	return rop.Fail[T](errFn())
}

// ToResultMessageFunc calls msgFn only when o is absent.
func (o Option[T]) ToResultMessageFunc(msgFn func() string) rop.Result[T] {
	return o.ToResultFunc(func() error { return errors.New(msgFn()) })
}

// FromResult keeps a successful value and drops the error of a failure.
func FromResult[T any](r rop.Result[T]) Option[T] {
	if r.IsSuccess() {
		return Some(r.Result())
	}
	return None[T]()
}
