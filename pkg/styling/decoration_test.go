package styling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDecorationIsFullyDefault(t *testing.T) {
	t.Parallel()

	dec := NewDecoration(exampleNote(), NewEnvironment())

	require.Empty(t, dec.Effects())
	content := dec.Describe()
	require.Equal(t, "ada", content.Title)
	require.Equal(t, []string{"ship it"}, content.Lines)
	require.Empty(t, content.Badges)
}

func TestWithEffectDoesNotAliasEffectSlices(t *testing.T) {
	t.Parallel()

	base := NewDecoration(exampleNote(), NewEnvironment())
	withBorder := base.WithEffect(BorderEffect{Width: 1})

	// Deriving two decorations from the same parent must not let one leak
	// into the other.
	left := withBorder.WithEffect(ShadowEffect{Radius: 1})
	right := withBorder.WithEffect(FillEffect{Color: "#000"})

	require.Empty(t, base.Effects())
	require.Len(t, withBorder.Effects(), 1)
	require.Equal(t, ShadowEffect{Radius: 1}, left.Effects()[1])
	require.Equal(t, FillEffect{Color: "#000"}, right.Effects()[1])
}

func TestEffectsReturnsCopy(t *testing.T) {
	t.Parallel()

	dec := NewDecoration(exampleNote(), NewEnvironment()).WithEffect(BorderEffect{Width: 1})

	effects := dec.Effects()
	effects[0] = FillEffect{Color: "#fff"}

	require.Equal(t, BorderEffect{Width: 1}, dec.Effects()[0])
}

func TestEqualIsStructural(t *testing.T) {
	t.Parallel()

	env := NewEnvironment()
	first := NewDecoration(exampleNote(), env).WithEffect(BorderEffect{Width: 1})
	second := NewDecoration(exampleNote(), env).WithEffect(BorderEffect{Width: 1})

	require.True(t, first.Equal(second))

	reordered := NewDecoration(exampleNote(), env).WithEffect(FillEffect{Color: "#000"}).WithEffect(BorderEffect{Width: 1})
	ordered := NewDecoration(exampleNote(), env).WithEffect(BorderEffect{Width: 1}).WithEffect(FillEffect{Color: "#000"})
	require.False(t, reordered.Equal(ordered), "same effects in different order describe different results")
}

func TestEqualComparesGesturesByAction(t *testing.T) {
	t.Parallel()

	env := NewEnvironment()
	first := NewDecoration(exampleNote(), env).WithEffect(GestureEffect{Action: "open", Handler: func() {}})
	second := NewDecoration(exampleNote(), env).WithEffect(GestureEffect{Action: "open", Handler: func() {}})
	other := NewDecoration(exampleNote(), env).WithEffect(GestureEffect{Action: "dismiss", Handler: func() {}})

	require.True(t, first.Equal(second))
	require.False(t, first.Equal(other))
}

func TestEqualSeesEnvironmentThroughContent(t *testing.T) {
	t.Parallel()

	plain := NewDecoration(exampleNote(), NewEnvironment())
	pinned := NewDecoration(exampleNote(), With(NewEnvironment(), keyPinned, true))

	require.False(t, plain.Equal(pinned))
	require.Equal(t, []string{"Pinned"}, pinned.Describe().Badges)
}
