package styling

// Modifier is a pure transformation from one Decoration to another. Modifiers
// never mutate their input, never perform I/O, and need no knowledge of any
// other modifier in the chain.
type Modifier func(Decoration) (Decoration, error)

// Apply folds the modifiers over d in written order: the first modifier runs
// first, and the last modifier's effect lands outermost. Application stops at
// the first failing modifier.
func Apply(d Decoration, mods ...Modifier) (Decoration, error) {
	for _, mod := range mods {
		var err error
		d, err = mod(d)
		if err != nil {
			return Decoration{}, err
		}
	}
	return d, nil
}

// Chain collapses a modifier sequence into a single modifier preserving
// written-order application.
func Chain(mods ...Modifier) Modifier {
	return func(d Decoration) (Decoration, error) {
		return Apply(d, mods...)
	}
}

// SetEnv returns a context-setting modifier: instead of touching the effect
// list, it shadows key with value in the decoration's environment, changing
// what the component itself decides to show. Applied later in the chain means
// nearer in scope, so the last-applied binding wins.
func SetEnv[T any](key Key[T], value T) Modifier {
	return func(d Decoration) (Decoration, error) {
		return d.WithEnvironment(With(d.Environment(), key, value)), nil
	}
}
