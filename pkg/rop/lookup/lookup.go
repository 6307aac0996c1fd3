package lookup

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ib-77/optrop/pkg/rop"
	"github.com/ib-77/optrop/pkg/rop/option"
)

// Getter is any keyed container with a comma-ok read.
type Getter[K, V any] interface {
	Get(key K) (V, bool)
}

// TryGetValue reads key from m. A nil map reads as empty.
func TryGetValue[K comparable, V any](m map[K]V, key K) option.Option[V] {
	v, ok := m[key]
	return option.FromOk(v, ok)
}

// GetValue reads key from m and fails with errMsg when it is missing.
func GetValue[K comparable, V any](m map[K]V, key K, errMsg string) rop.Result[V] {
	return TryGetValue(m, key).ToResultMessage(errMsg)
}

func TryGet[K, V any](g Getter[K, V], key K) option.Option[V] {
	if rop.IsNil(g) {
		return option.None[V]()
	}
	return option.FromOk(g.Get(key))
}

// TryLoad reads key from m like TryGetValue reads a map[K]V: a stored nil
// is present when V can hold nil. A stored value of another type reads as
// absent.
func TryLoad[K comparable, V any](m *sync.Map, key K) option.Option[V] {
	if m == nil {
		return option.None[V]()
	}
	v, ok := m.Load(key)
	if !ok {
		return option.None[V]()
	}
	return Cast[V](v)
}

// Cast returns v as a T when its dynamic type is assignable to T. A nil v
// is assignable to interface, pointer, map, slice, channel and function
// types.
func Cast[T any](v any) option.Option[T] {
	if v == nil {
		var zero T
		return option.FromOk(zero, nillable[T]())
	}
	t, ok := v.(T)
	return option.FromOk(t, ok)
}

func CastResult[T any](v any) rop.Result[T] {
	return Cast[T](v).ToResultFunc(func() error {
		return fmt.Errorf("cannot cast %T to %s", v, reflect.TypeFor[T]())
	})
}

func nillable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
