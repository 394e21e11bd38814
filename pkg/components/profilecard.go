package components

import (
	"fmt"

	"github.com/razvanlitianu/stylekit/pkg/styling"
)

// Badge labels produced by components when the matching ambient flag is set.
const (
	VerifiedBadgeLabel = "✔ Verified"
	PremiumBadgeLabel  = "★ Premium"
)

// ProfileCard is a user profile summary. The constructor surface is the
// struct literal: identity, counts and free text only, no presentation
// parameters.
type ProfileCard struct {
	Username  string
	Followers int
	Following int
	Bio       string
	AvatarRef string
}

// Kind implements styling.Component.
func (ProfileCard) Kind() string { return "profile_card" }

// Content derives the card's renderable description. Badge visibility is the
// card's own decision, driven by the ambient verified/premium flags. Image
// loading stays outside this layer; an avatar reference shows as a placeholder
// mark next to the username.
func (c ProfileCard) Content(env styling.Environment) styling.Content {
	title := c.Username
	if c.AvatarRef != "" {
		title = "◉ " + title
	}
	content := styling.Content{
		Title: title,
		Lines: []string{
			fmt.Sprintf("%d followers · %d following", c.Followers, c.Following),
		},
	}
	if c.Bio != "" {
		content.Lines = append(content.Lines, c.Bio)
	}
	if KeyVerified.Get(env) {
		content.Badges = append(content.Badges, VerifiedBadgeLabel)
	}
	if KeyPremium.Get(env) {
		content.Badges = append(content.Badges, PremiumBadgeLabel)
	}
	return content
}

// Render produces the card's fully-default decoration under env: no effects,
// visually complete with zero modifiers.
func (c ProfileCard) Render(env styling.Environment) styling.Decoration {
	return styling.NewDecoration(c, env)
}
