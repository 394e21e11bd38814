// Package components provides the base components of the card library.
//
// Components hold required data only; everything optional arrives through the
// styling package's modifier chain or through the canonical styles declared
// here. A component with zero modifiers renders a complete, usable default.
package components
