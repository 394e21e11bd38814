package styling

import (
	"reflect"
)

// Content is the renderable description a component derives from its own data
// plus the environment in scope. It is deliberately renderer-agnostic.
type Content struct {
	Title  string
	Lines  []string
	Badges []string
}

// Component is a minimal data-holding entity. Implementations carry required
// fields only; all optional presentation arrives through modifiers. Components
// must be immutable value types whose Kind is stable on the zero value.
type Component interface {
	// Kind is the component's type discriminant, used by the dynamic style
	// registry to reject cross-kind application.
	Kind() string

	// Content produces the renderable description for the environment in
	// scope. Pure; no I/O.
	Content(env Environment) Content
}

// Decoration wraps a component plus an ordered list of applied effects. It is
// immutable: every derivation returns a new value, and effect slices are never
// aliased between decorations.
type Decoration struct {
	component Component
	env       Environment
	effects   []Effect
}

// NewDecoration returns the fully-default decoration for a component: no
// effects applied, environment captured as given. This is the baseline every
// modifier chain starts from.
func NewDecoration(c Component, env Environment) Decoration {
	return Decoration{component: c, env: env}
}

// Component returns the wrapped component.
func (d Decoration) Component() Component {
	return d.component
}

// Environment returns the environment the component will be described under,
// including any overrides recorded by context-setting modifiers.
func (d Decoration) Environment() Environment {
	return d.env
}

// Effects returns the applied effects in application order. The returned
// slice is a copy.
func (d Decoration) Effects() []Effect {
	out := make([]Effect, len(d.effects))
	copy(out, d.effects)
	return out
}

// WithEffect returns a decoration with e appended as the outermost effect.
func (d Decoration) WithEffect(e Effect) Decoration {
	effects := make([]Effect, len(d.effects), len(d.effects)+1)
	copy(effects, d.effects)
	d.effects = append(effects, e)
	return d
}

// WithEnvironment returns a decoration whose component will be described
// under env. Context-setting modifiers use this to shadow ambient values.
func (d Decoration) WithEnvironment(env Environment) Decoration {
	d.env = env
	return d
}

// Describe resolves the component's content under the decoration's
// environment.
func (d Decoration) Describe() Content {
	if d.component == nil {
		return Content{}
	}
	return d.component.Content(d.env)
}

// Equal reports structural equality: same component data, same effects in the
// same order, and the same resolved content. Gesture effects compare by
// action name, not handler identity.
func (d Decoration) Equal(other Decoration) bool {
	if (d.component == nil) != (other.component == nil) {
		return false
	}
	if d.component != nil && !reflect.DeepEqual(d.component, other.component) {
		return false
	}
	if len(d.effects) != len(other.effects) {
		return false
	}
	for i := range d.effects {
		if !effectsEqual(d.effects[i], other.effects[i]) {
			return false
		}
	}
	return reflect.DeepEqual(d.Describe(), other.Describe())
}

func effectsEqual(a, b Effect) bool {
	ga, aIsGesture := a.(GestureEffect)
	gb, bIsGesture := b.(GestureEffect)
	if aIsGesture || bIsGesture {
		return aIsGesture && bIsGesture && ga.Action == gb.Action
	}
	return reflect.DeepEqual(a, b)
}
