package styling

import (
	apperrors "github.com/razvanlitianu/stylekit/pkg/errors"
)

// keyState is the shared identity of a declared key. Two keys are the same
// slot only when they share the same state pointer, so independently declared
// keys never collide even with equal names.
type keyState struct {
	name       string
	hasDefault bool
}

// Key is a typed environment slot. Declare keys once, at package level, and
// reuse them across render passes. The value type is fixed at declaration;
// binding a value of another type is a compile error.
type Key[T any] struct {
	state *keyState
	def   T
}

// NewKey declares a key with a default value. Reads with no enclosing frame
// return the default.
func NewKey[T any](name string, def T) Key[T] {
	return Key[T]{state: &keyState{name: name, hasDefault: true}, def: def}
}

// MustKey declares a key without a default. Require fails with a
// MissingDefaultError when no enclosing frame binds the key.
func MustKey[T any](name string) Key[T] {
	return Key[T]{state: &keyState{name: name}}
}

// Name returns the declared key name. Names are informational only and carry
// no identity.
func (k Key[T]) Name() string {
	return k.state.name
}

// Environment is an immutable chain of context frames. The zero value is the
// empty environment. Deriving a frame never mutates the receiver, so a single
// environment may be shared across concurrent render passes.
type Environment struct {
	parent *Environment
	key    *keyState
	value  any
}

// NewEnvironment returns the empty environment.
func NewEnvironment() Environment {
	return Environment{}
}

// With returns a child environment in which key is bound to value, shadowing
// any enclosing binding of the same key.
func With[T any](env Environment, key Key[T], value T) Environment {
	parent := env
	return Environment{parent: &parent, key: key.state, value: value}
}

// WithValue establishes value for key for the duration of body. The binding is
// scoped to the derived environment passed to body; the caller's environment
// is untouched.
func WithValue[T any](env Environment, key Key[T], value T, body func(Environment)) {
	body(With(env, key, value))
}

// Lookup reports the nearest enclosing binding of k, walking frames from the
// innermost outward.
func (k Key[T]) Lookup(env Environment) (T, bool) {
	for frame := &env; frame != nil; frame = frame.parent {
		if frame.key == k.state {
			return frame.value.(T), true
		}
	}
	var zero T
	return zero, false
}

// Get returns the nearest enclosing value of k, or the declared default when
// no frame binds it. For keys declared with MustKey, Get returns the zero
// value; use Require to observe the missing default.
func (k Key[T]) Get(env Environment) T {
	if v, ok := k.Lookup(env); ok {
		return v
	}
	return k.def
}

// Require returns the nearest enclosing value of k or its declared default,
// failing with a MissingDefaultError when the key has neither.
func (k Key[T]) Require(env Environment) (T, error) {
	if v, ok := k.Lookup(env); ok {
		return v, nil
	}
	if k.state.hasDefault {
		return k.def, nil
	}
	var zero T
	return zero, apperrors.NewMissingDefaultError(k.state.name)
}
