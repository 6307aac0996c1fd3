package option

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"github.com/ib-77/optrop/pkg/rop"
)

// Option holds a value of type T or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v as a present value, even when v is nil.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option of T. It is the zero value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From wraps v, treating a nil pointer, map, slice, channel, function or
// interface as absence.
func From[T any](v T) Option[T] {
	if rop.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk mirrors the comma-ok idiom of map reads and type assertions.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) HasValue() bool {
	return o.ok
}

func (o Option[T]) HasNoValue() bool {
	return !o.ok
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) mustValue() T {
	if !o.ok {
		panic(rop.InvalidOperation("no value for %s", typeName[T]()))
	}
	return o.value
}

// String renders the payload, or a placeholder naming T when absent.
func (o Option[T]) String() string {
	return o.StringOr(fmt.Sprintf("No value for %s", typeName[T]()))
}

func (o Option[T]) StringOr(def string) string {
	if !o.ok {
		return def
	}
	return fmt.Sprint(o.value)
}

// Equal reports whether a and b are both absent or both present with equal
// payloads. For comparable T this matches a == b.
func Equal[T comparable](a, b Option[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b Option[T], eq func(x, y T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || eq(a.value, b.value)
}

// EqualValue reports whether o is present and holds v.
func EqualValue[T comparable](o Option[T], v T) bool {
	return o.ok && o.value == v
}

// Hash returns 0 for an absent option and the payload hash otherwise.
// All absent options of one T collide.
func Hash[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	if !o.ok {
		return 0
	}
	return maphash.Comparable(seed, o.value)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
