package option

// Map transforms a present value. f is never called on absence.
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if o.HasNoValue() {
		return None[R]()
	}
	return Some(f(o.mustValue()))
}

// Bind transforms a present value with a function that may itself
// produce absence.
func Bind[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if o.HasNoValue() {
		return None[R]()
	}
	return f(o.mustValue())
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	return Bind(o, func(inner Option[T]) Option[T] { return inner })
}

// Switch calls exactly one of onValue or onAbsent.
func Switch[T, R any](o Option[T], onValue func(T) R, onAbsent func() R) R {
	if o.HasValue() {
		return onValue(o.mustValue())
	}
	return onAbsent()
}

// SwitchIf dispatches a present value on predicate. Absence maps to
// absence without evaluating predicate or either branch.
func SwitchIf[T, R any](o Option[T], predicate func(T) bool,
	onTrue func(T) R, onFalse func(T) R) Option[R] {

	if o.HasNoValue() {
		return None[R]()
	}

	v := o.mustValue()
	if predicate(v) {
		return Some(onTrue(v))
	}
	return Some(onFalse(v))
}

// Do runs exactly one of the side effects and returns o unchanged.
// Nil callbacks are skipped.
func (o Option[T]) Do(onValue func(T), onAbsent func()) Option[T] {
	if o.HasValue() {
		if onValue != nil {
			onValue(o.mustValue())
		}
		return o
	}

	if onAbsent != nil {
		onAbsent()
	}
	return o
}

// Tee runs onValue for a present value and returns o unchanged.
func (o Option[T]) Tee(onValue func(T)) Option[T] {
	return o.Do(onValue, nil)
}

// Where keeps a present value only if predicate holds.
func (o Option[T]) Where(predicate func(T) bool) Option[T] {
	if o.HasValue() && predicate(o.mustValue()) {
		return o
	}
	return None[T]()
}

func (o Option[T]) GetValueOrDefault(def T) T {
	if o.HasValue() {
		return o.mustValue()
	}
	return def
}

// GetValueOrElse calls def only when o is absent.
func (o Option[T]) GetValueOrElse(def func() T) T {
	if o.HasValue() {
		return o.mustValue()
	}
	return def()
}

func GetOrDefaultMap[T, R any](o Option[T], selector func(T) R, def R) R {
	if o.HasValue() {
		return selector(o.mustValue())
	}
	return def
}

func GetOrElseMap[T, R any](o Option[T], selector func(T) R, def func() R) R {
	return Switch(o, selector, def)
}

func (o Option[T]) OrElse(alt T) Option[T] {
	if o.HasValue() {
		return o
	}
	return Some(alt)
}

func (o Option[T]) OrElseFunc(alt func() T) Option[T] {
	if o.HasValue() {
		return o
	}
	return Some(alt())
}

func (o Option[T]) OrElseOption(alt Option[T]) Option[T] {
	if o.HasValue() {
		return o
	}
	return alt
}

func (o Option[T]) OrElseOptionFunc(alt func() Option[T]) Option[T] {
	if o.HasValue() {
		return o
	}
	return alt()
}

// ToPtr returns a pointer to a copy of the payload, or nil.
func ToPtr[T any](o Option[T]) *T {
	return ToPtrMap(o, func(v T) T { return v })
}

func ToPtrMap[T, R any](o Option[T], selector func(T) R) *R {
	if o.HasNoValue() {
		return nil
	}
	r := selector(o.mustValue())
	return &r
}
