package styling

// Style is a named, reusable bundle of modifiers bound to exactly one
// component type. The binding is enforced by the compiler: a Style[ProfileCard]
// simply cannot be applied to another component type. Styles carry no mutable
// state and are safe to share across concurrent render passes.
type Style[T Component] struct {
	name string
	mods []Modifier
}

// NewStyle declares a style for component type T. Modifiers expand in written
// order when the style is applied.
func NewStyle[T Component](name string, mods ...Modifier) Style[T] {
	owned := make([]Modifier, len(mods))
	copy(owned, mods)
	return Style[T]{name: name, mods: owned}
}

// Name returns the style's registered name.
func (s Style[T]) Name() string {
	return s.name
}

// Modifiers returns the style's expansion as a copy.
func (s Style[T]) Modifiers() []Modifier {
	out := make([]Modifier, len(s.mods))
	copy(out, s.mods)
	return out
}

// Apply decorates c under env by expanding the style's modifier sequence over
// the component's default decoration.
func (s Style[T]) Apply(c T, env Environment) (Decoration, error) {
	return Apply(NewDecoration(c, env), s.mods...)
}
