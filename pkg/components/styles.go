package components

import (
	"github.com/razvanlitianu/stylekit/pkg/styling"
)

// Canonical profile card styles. Declared once, immutable, safe to share
// across concurrent render passes.
var (
	// StyleVerified shows the verified badge inside a thin gray frame.
	StyleVerified = styling.NewStyle[ProfileCard]("verified",
		Verified(),
		styling.CardStyle(
			styling.BorderColor("#6b7280"),
			styling.BorderWidth(1),
		),
	)

	// StylePremium is the full treatment: verified and premium badges, gold
	// frame, drop shadow and a follow button.
	StylePremium = styling.NewStyle[ProfileCard]("premium",
		Verified(),
		Premium(),
		styling.CardStyle(
			styling.BackgroundColor("#1e1b4b"),
			styling.BorderColor("#eab308"),
			styling.BorderWidth(1),
		),
		styling.CardShadow(),
		styling.FollowButton(),
	)

	// StyleSpotlight frames a story post for pinned placement.
	StyleSpotlight = styling.NewStyle[StoryPost]("spotlight",
		styling.CardStyle(
			styling.BorderColor("#3b82f6"),
			styling.BorderWidth(1),
		),
		styling.CardShadow(),
	)
)

// RegisterDefaults adds the canonical styles to a registry, enabling lookup
// by name from configuration or user input.
func RegisterDefaults(registry *styling.Registry) error {
	if err := styling.RegisterStyle(registry, StyleVerified); err != nil {
		return err
	}
	if err := styling.RegisterStyle(registry, StylePremium); err != nil {
		return err
	}
	return styling.RegisterStyle(registry, StyleSpotlight)
}
