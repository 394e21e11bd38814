package styling

import (
	"strconv"
)

// note is the component used across this package's tests: the smallest thing
// that satisfies Component and reacts to an environment key.
type note struct {
	Author string
	Text   string
}

var keyPinned = NewKey("note_pinned", false)

func (note) Kind() string { return "note" }

func (n note) Content(env Environment) Content {
	content := Content{
		Title: n.Author,
		Lines: []string{n.Text},
	}
	if keyPinned.Get(env) {
		content.Badges = append(content.Badges, "Pinned")
	}
	return content
}

// memo is a second kind, for cross-kind rejection tests.
type memo struct {
	Subject string
	Urgency int
}

func (memo) Kind() string { return "memo" }

func (m memo) Content(Environment) Content {
	return Content{
		Title: m.Subject,
		Lines: []string{"urgency " + strconv.Itoa(m.Urgency)},
	}
}

func exampleNote() note {
	return note{Author: "ada", Text: "ship it"}
}
