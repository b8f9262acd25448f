package gobble

// Option holds the result of a parser that is allowed to not match, such as
// those built by match.Maybe. It is either Some value or None.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, ok: true}
}

// None returns the empty Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and true, or the zero value and false when the
// Option is None.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

// Or returns the held value, or def when the Option is None.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}
