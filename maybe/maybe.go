/*
Package maybe provides an option type for values which may be absent.

It follows the pattern-matching style of Elm's Maybe: clients receive a
Matcher and switch over the possible cases, binding the wrapped value on the
way:

	var root *xmldom.Element
	switch m := xmldom.LoadFromFile(path).Match(); m {
	case m.Just(&root):
		…
	case m.Nothing():
		…
	}
*/
package maybe

// Maybe wraps a value of type T which is either present or absent.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
}

type maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, ok: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault unwraps the value, substituting a default for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match on a Maybe within a switch statement.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.ok {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.ok {
		return mm
	}
	return nil
}
