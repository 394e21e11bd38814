package components

import (
	"fmt"

	"github.com/razvanlitianu/stylekit/pkg/styling"
)

// StoryPost is a feed entry: author, like count and body text.
type StoryPost struct {
	Author string
	Likes  int
	Body   string
}

// Kind implements styling.Component.
func (StoryPost) Kind() string { return "story_post" }

// Content derives the post's renderable description. Posts show the author's
// verified badge when the ambient flag is set; premium has no effect here.
func (p StoryPost) Content(env styling.Environment) styling.Content {
	content := styling.Content{
		Title: p.Author,
		Lines: []string{
			p.Body,
			fmt.Sprintf("%d likes", p.Likes),
		},
	}
	if KeyVerified.Get(env) {
		content.Badges = append(content.Badges, VerifiedBadgeLabel)
	}
	return content
}

// Render produces the post's fully-default decoration under env.
func (p StoryPost) Render(env styling.Environment) styling.Decoration {
	return styling.NewDecoration(p, env)
}
