package gallery

import (
	"github.com/razvanlitianu/stylekit/pkg/components"
	"github.com/razvanlitianu/stylekit/pkg/styling"
)

// Entry is one gallery page: a named decoration recipe rendered on demand.
type Entry struct {
	Title       string
	Description string
	Build       func(env styling.Environment) (styling.Decoration, error)
}

// DefaultEntries returns the built-in showcase walking the styling surface
// from the bare component to the full premium treatment.
func DefaultEntries() []Entry {
	card := components.ProfileCard{
		Username:  "newuser",
		Followers: 42,
		Following: 108,
		Bio:       "Just joined!",
	}
	post := components.StoryPost{
		Author: "newuser",
		Likes:  7,
		Body:   "First post — hello everyone!",
	}

	return []Entry{
		{
			Title:       "Default card",
			Description: "Required data only; zero modifiers.",
			Build: func(env styling.Environment) (styling.Decoration, error) {
				return card.Render(env), nil
			},
		},
		{
			Title:       "Verified chain",
			Description: "Verified() then a thin gray frame, applied in written order.",
			Build: func(env styling.Environment) (styling.Decoration, error) {
				return styling.Apply(card.Render(env),
					components.Verified(),
					styling.CardStyle(styling.BorderColor("#6b7280"), styling.BorderWidth(1)),
				)
			},
		},
		{
			Title:       "Premium style",
			Description: "The named premium style expanding to its full modifier chain.",
			Build: func(env styling.Environment) (styling.Decoration, error) {
				return components.StylePremium.Apply(card, env)
			},
		},
		{
			Title:       "Scoped context",
			Description: "Verified flag inherited from an enclosing environment frame.",
			Build: func(env styling.Environment) (styling.Decoration, error) {
				var dec styling.Decoration
				styling.WithValue(env, components.KeyVerified, true, func(env styling.Environment) {
					dec = card.Render(env)
				})
				return dec, nil
			},
		},
		{
			Title:       "Shadow before frame",
			Description: "Same modifiers as the verified chain plus a shadow, reordered.",
			Build: func(env styling.Environment) (styling.Decoration, error) {
				return styling.Apply(card.Render(env),
					styling.CardShadow(),
					styling.CardStyle(styling.BorderColor("#6b7280"), styling.BorderWidth(1)),
				)
			},
		},
		{
			Title:       "Story spotlight",
			Description: "A different component kind with its own named style.",
			Build: func(env styling.Environment) (styling.Decoration, error) {
				return components.StyleSpotlight.Apply(post, env)
			},
		},
	}
}
