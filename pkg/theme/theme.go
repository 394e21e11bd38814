package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette describes the semantic colour slots the renderer draws from.
type Palette struct {
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Badge      lipgloss.AdaptiveColor
	Button     lipgloss.AdaptiveColor
	Shadow     lipgloss.AdaptiveColor
}

// BorderSet groups the frame styles the renderer chooses between based on a
// decoration's corner radius.
type BorderSet struct {
	Square  lipgloss.Border
	Rounded lipgloss.Border
}

// SpacingScale holds the spacing tokens used when laying out a card.
type SpacingScale struct {
	CardPadding int
	BadgeGap    int
}

// Theme is an immutable bundle of styling tokens. Themes are value types:
// create once, reuse across render passes, never mutate.
type Theme struct {
	Name    string
	Palette Palette
	Borders BorderSet
	Spacing SpacingScale
}

// Default returns the built-in theme.
func Default() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Theme{
		Name: "default",
		Palette: Palette{
			Foreground: ac("#0f172a", "#e2e8f0"),
			Muted:      ac("#64748b", "#94a3b8"),
			Accent:     ac("#3b82f6", "#60a5fa"),
			Badge:      ac("#2563eb", "#93c5fd"),
			Button:     ac("#1d4ed8", "#3b82f6"),
			Shadow:     ac("#cbd5e1", "#1e293b"),
		},
		Borders: BorderSet{
			Square:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
		},
		Spacing: SpacingScale{
			CardPadding: 1,
			BadgeGap:    1,
		},
	}
}
