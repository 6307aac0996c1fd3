package seq

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ib-77/optrop/pkg/rop"
	"github.com/ib-77/optrop/pkg/rop/option"
)

var ErrNotSingle = errors.New("sequence contains more than one matching element")

// Choose yields the payloads of the present elements of s.
func Choose[T any](s iter.Seq[option.Option[T]]) iter.Seq[T] {
	return Map(s, func(v T) T { return v })
}

// Map yields f of every present payload; absent elements are dropped.
func Map[T, R any](s iter.Seq[option.Option[T]], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for o := range s {
			v, ok := o.Get()
			if !ok {
				continue
			}
			if !yield(f(v)) {
				return
			}
		}
	}
}

// MapSwitch yields one value per element of s, produced by onValue or
// onAbsent.
func MapSwitch[T, R any](s iter.Seq[option.Option[T]], onValue func(T) R, onAbsent func() R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for o := range s {
			if !yield(option.Switch(o, onValue, onAbsent)) {
				return
			}
		}
	}
}

// Pick returns the first present element of s and stops pulling from s
// once found.
func Pick[T any](s iter.Seq[option.Option[T]]) option.Option[T] {
	for o := range s {
		if o.HasValue() {
			return o
		}
	}
	return option.None[T]()
}

func TryFirst[T any](s iter.Seq[T]) option.Option[T] {
	for v := range s {
		return option.Some(v)
	}
	return option.None[T]()
}

func TryFirstFunc[T any](s iter.Seq[T], predicate func(T) bool) option.Option[T] {
	return TryFirst(filter(s, predicate))
}

func TryLast[T any](s iter.Seq[T]) option.Option[T] {
	last := option.None[T]()
	for v := range s {
		last = option.Some(v)
	}
	return last
}

func TryLastFunc[T any](s iter.Seq[T], predicate func(T) bool) option.Option[T] {
	return TryLast(filter(s, predicate))
}

// TryElementAt returns the element at index, or None when index is out
// of range.
func TryElementAt[T any](s iter.Seq[T], index int) option.Option[T] {
	if index < 0 {
		return option.None[T]()
	}

	i := 0
	for v := range s {
		if i == index {
			return option.Some(v)
		}
		i++
	}
	return option.None[T]()
}

// TrySingle succeeds with None for an empty s and with the element for a
// single-element s. More elements fail with an error wrapping
// ErrNotSingle; name describes the sequence in that error.
func TrySingle[T any](s iter.Seq[T], name string) rop.Result[option.Option[T]] {
	return trySingle(s, "TrySingle", name)
}

func TrySingleFunc[T any](s iter.Seq[T], predicate func(T) bool, name string) rop.Result[option.Option[T]] {
	return trySingle(filter(s, predicate), "TrySingleFunc", name)
}

func trySingle[T any](s iter.Seq[T], op, name string) rop.Result[option.Option[T]] {
	found := option.None[T]()
	for v := range s {
		if found.HasValue() {
			return rop.Fail[option.Option[T]](fmt.Errorf("%s(%s): %w", op, name, ErrNotSingle))
		}
		found = option.Some(v)
	}
	return rop.Success(found)
}

func filter[T any](s iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}
