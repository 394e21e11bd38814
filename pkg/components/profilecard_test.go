package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/razvanlitianu/stylekit/pkg/errors"
	"github.com/razvanlitianu/stylekit/pkg/styling"
)

func newUserCard() ProfileCard {
	return ProfileCard{
		Username:  "newuser",
		Followers: 42,
		Following: 108,
		Bio:       "Just joined!",
	}
}

func TestProfileCardDefaultRender(t *testing.T) {
	t.Parallel()

	dec := newUserCard().Render(styling.NewEnvironment())

	require.Empty(t, dec.Effects())

	content := dec.Describe()
	require.Equal(t, "newuser", content.Title)
	require.Equal(t, []string{"42 followers · 108 following", "Just joined!"}, content.Lines)
	require.Empty(t, content.Badges, "no modifiers means no verified or premium badge")
}

func TestProfileCardAvatarPlaceholder(t *testing.T) {
	t.Parallel()

	card := newUserCard()
	card.AvatarRef = "avatars/newuser.png"

	content := card.Render(styling.NewEnvironment()).Describe()
	require.Equal(t, "◉ newuser", content.Title)
}

func TestProfileCardVerifiedWithGrayBorder(t *testing.T) {
	t.Parallel()

	card := newUserCard()
	dec, err := styling.Apply(card.Render(styling.NewEnvironment()),
		Verified(),
		styling.CardStyle(styling.BorderColor("#6b7280"), styling.BorderWidth(1)),
	)
	require.NoError(t, err)

	require.Equal(t, []string{VerifiedBadgeLabel}, dec.Describe().Badges)

	effects := dec.Effects()
	require.Len(t, effects, 1)
	border, ok := effects[0].(styling.BorderEffect)
	require.True(t, ok)
	require.Equal(t, "#6b7280", border.Color)
	require.Equal(t, 1, border.Width)
	// Background untouched: no fill effect was appended.
	for _, effect := range effects {
		require.NotEqual(t, "fill", effect.EffectName())
	}
}

func TestProfileCardContextScoping(t *testing.T) {
	t.Parallel()

	card := newUserCard()
	env := styling.NewEnvironment()

	require.Empty(t, card.Render(env).Describe().Badges)

	styling.WithValue(env, KeyVerified, true, func(env styling.Environment) {
		require.Equal(t, []string{VerifiedBadgeLabel}, card.Render(env).Describe().Badges)

		styling.WithValue(env, KeyVerified, false, func(env styling.Environment) {
			require.Empty(t, card.Render(env).Describe().Badges, "inner frame shadows the outer true")
		})

		// Inner frame exited; outer binding restored.
		require.Equal(t, []string{VerifiedBadgeLabel}, card.Render(env).Describe().Badges)
	})

	require.Empty(t, card.Render(env).Describe().Badges)
}

func TestVerifiedModifierDefaultsToTrue(t *testing.T) {
	t.Parallel()

	dec, err := styling.Apply(newUserCard().Render(styling.NewEnvironment()), Verified())
	require.NoError(t, err)
	require.Equal(t, []string{VerifiedBadgeLabel}, dec.Describe().Badges)

	dec, err = styling.Apply(dec, Verified(false))
	require.NoError(t, err)
	require.Empty(t, dec.Describe().Badges)
}

func TestStylePremiumExpansion(t *testing.T) {
	t.Parallel()

	dec, err := StylePremium.Apply(newUserCard(), styling.NewEnvironment())
	require.NoError(t, err)

	content := dec.Describe()
	require.Equal(t, []string{VerifiedBadgeLabel, PremiumBadgeLabel}, content.Badges)

	names := make([]string, 0)
	for _, effect := range dec.Effects() {
		names = append(names, effect.EffectName())
	}
	require.Equal(t, []string{"fill", "border", "shadow", "overlay"}, names)
}

func TestStylePremiumDeterministic(t *testing.T) {
	t.Parallel()

	first, err := StylePremium.Apply(newUserCard(), styling.NewEnvironment())
	require.NoError(t, err)
	second, err := StylePremium.Apply(newUserCard(), styling.NewEnvironment())
	require.NoError(t, err)

	require.True(t, first.Equal(second))
}

func TestRegisterDefaultsAndCrossKindRejection(t *testing.T) {
	t.Parallel()

	registry := styling.NewRegistry()
	require.NoError(t, RegisterDefaults(registry))
	require.Equal(t, []string{"premium", "spotlight", "verified"}, registry.Names())

	post := StoryPost{Author: "ada", Likes: 7, Body: "hello"}
	_, err := registry.Bind("premium", post)

	var mismatch *apperrors.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "profile_card", mismatch.Expected)
	require.Equal(t, "story_post", mismatch.Actual)
}

func TestStoryPostDefaultRender(t *testing.T) {
	t.Parallel()

	post := StoryPost{Author: "ada", Likes: 7, Body: "hello"}
	content := post.Render(styling.NewEnvironment()).Describe()

	require.Equal(t, "ada", content.Title)
	require.Equal(t, []string{"hello", "7 likes"}, content.Lines)
	require.Empty(t, content.Badges)
}

func TestConcurrentRenderPassesShareNothing(t *testing.T) {
	t.Parallel()

	card := newUserCard()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		verified := i%2 == 0
		go func() {
			defer func() { done <- struct{}{} }()
			env := styling.With(styling.NewEnvironment(), KeyVerified, verified)
			content := card.Render(env).Describe()
			if verified != (len(content.Badges) == 1) {
				t.Errorf("verified=%v got badges %v", verified, content.Badges)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
