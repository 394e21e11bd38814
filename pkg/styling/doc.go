// Package styling implements a composable, type-safe declarative styling layer
// for UI components.
//
// # Overview
//
// A base component carries only its required data. Optional appearance and
// behavior arrive through modifiers: pure transformations over an immutable
// Decoration value. Ambient flags (verified, premium) flow through lexically
// scoped, typed environment frames instead of global state. Named styles bundle
// modifiers and are bound to exactly one component type, checked at compile
// time through generics.
//
// # Architecture
//
// The package has four layers:
//
//  1. Environment - scope-nested, typed contextual defaults
//  2. Decoration - an immutable component description plus an ordered effect list
//  3. Modifier - chainable Decoration transformations with validated parameters
//  4. Style - named, type-bound modifier bundles with a dynamic registry
//
// # Composition
//
// Modifiers compose by plain sequencing; application order is the written
// order, and the last-applied modifier's effect lands outermost:
//
//	card := components.ProfileCard{Username: "ada", Followers: 42}
//	dec, err := styling.Apply(card.Render(env),
//		styling.CardStyle(styling.BorderColor("#6b7280"), styling.BorderWidth(1)),
//		styling.CardShadow(),
//	)
//
// # Environment scoping
//
//	env := styling.NewEnvironment()
//	styling.WithValue(env, components.KeyVerified, true, func(env styling.Environment) {
//		dec := card.Render(env) // verified badge visible here
//	})
//
// Everything in this package is a pure transformation over immutable values;
// concurrent render passes never share state. The package never performs I/O
// and never logs.
package styling
