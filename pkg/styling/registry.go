package styling

import (
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/razvanlitianu/stylekit/pkg/errors"
)

// registeredStyle is the type-erased form a Style takes inside the registry.
// The kind tag preserves the compile-time binding for the dynamic path.
type registeredStyle struct {
	name  string
	kind  string
	apply func(Component, Environment) (Decoration, error)
}

// Registry resolves style names at runtime while preserving the per-type
// binding: binding a name to a component of the wrong kind fails at
// construction, before any Decoration exists. Registered styles are
// read-only; the registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]registeredStyle
}

// NewRegistry creates an empty style registry.
func NewRegistry() *Registry {
	return &Registry{styles: make(map[string]registeredStyle)}
}

// RegisterStyle adds a typed style to the registry under its declared name.
// The component kind is derived from T's zero value, so component types must
// report a stable Kind on their zero value.
func RegisterStyle[T Component](r *Registry, style Style[T]) error {
	var zero T
	kind := zero.Kind()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.styles[style.Name()]; exists {
		return fmt.Errorf("style %q already registered", style.Name())
	}

	r.styles[style.Name()] = registeredStyle{
		name: style.Name(),
		kind: kind,
		apply: func(c Component, env Environment) (Decoration, error) {
			t, ok := c.(T)
			if !ok {
				return Decoration{}, apperrors.NewTypeMismatchError(style.Name(), kind, c.Kind())
			}
			return style.Apply(t, env)
		},
	}
	return nil
}

// Names lists the registered style names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BoundStyle is a style already checked against one concrete component.
// Decorate may be called repeatedly, once per render pass.
type BoundStyle struct {
	style     registeredStyle
	component Component
}

// Bind resolves name and checks it against c's kind. A kind mismatch fails
// here, at construction, with a TypeMismatchError.
func (r *Registry) Bind(name string, c Component) (BoundStyle, error) {
	r.mu.RLock()
	style, ok := r.styles[name]
	r.mu.RUnlock()

	if !ok {
		return BoundStyle{}, fmt.Errorf("unknown style %q", name)
	}
	if style.kind != c.Kind() {
		return BoundStyle{}, apperrors.NewTypeMismatchError(name, style.kind, c.Kind())
	}
	return BoundStyle{style: style, component: c}, nil
}

// Decorate expands the bound style over the component under env.
func (b BoundStyle) Decorate(env Environment) (Decoration, error) {
	return b.style.apply(b.component, env)
}

// Name returns the bound style's name.
func (b BoundStyle) Name() string {
	return b.style.name
}
