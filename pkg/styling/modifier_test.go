package styling

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/razvanlitianu/stylekit/pkg/errors"
)

func TestApplyFoldsInWrittenOrder(t *testing.T) {
	t.Parallel()

	base := NewDecoration(exampleNote(), NewEnvironment())

	dec, err := Apply(base,
		CardStyle(BorderColor("#eab308"), BorderWidth(1)),
		CardShadow(),
	)
	require.NoError(t, err)

	effects := dec.Effects()
	require.Len(t, effects, 2)
	require.Equal(t, "border", effects[0].EffectName())
	require.Equal(t, "shadow", effects[1].EffectName())
}

func TestApplyIsDeterministic(t *testing.T) {
	t.Parallel()

	chain := []Modifier{
		CardStyle(BackgroundColor("#0f172a"), BorderColor("#eab308"), BorderWidth(2)),
		CardShadow(ShadowRadius(2)),
		FollowButton(),
	}

	first, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), chain...)
	require.NoError(t, err)
	second, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), chain...)
	require.NoError(t, err)

	require.True(t, first.Equal(second))
}

func TestOrderSensitivity(t *testing.T) {
	t.Parallel()

	styleThenShadow, err := Apply(NewDecoration(exampleNote(), NewEnvironment()),
		CardStyle(BorderColor("#eab308"), BorderWidth(1)),
		CardShadow(),
	)
	require.NoError(t, err)

	shadowThenStyle, err := Apply(NewDecoration(exampleNote(), NewEnvironment()),
		CardShadow(),
		CardStyle(BorderColor("#eab308"), BorderWidth(1)),
	)
	require.NoError(t, err)

	require.False(t, styleThenShadow.Equal(shadowThenStyle))
}

func TestModifiersDoNotMutateInput(t *testing.T) {
	t.Parallel()

	base := NewDecoration(exampleNote(), NewEnvironment())

	_, err := Apply(base, CardStyle(BorderWidth(1)), CardShadow(), Badge("New"))
	require.NoError(t, err)

	require.Empty(t, base.Effects())
}

func TestCardStyleDefaults(t *testing.T) {
	t.Parallel()

	dec, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), CardStyle())
	require.NoError(t, err)

	effects := dec.Effects()
	require.Len(t, effects, 1)
	border, ok := effects[0].(BorderEffect)
	require.True(t, ok)
	require.Zero(t, border.Width, "border defaults to none")
	require.Equal(t, DefaultCornerRadius, border.CornerRadius)
}

func TestCardStyleRejectsOutOfRangeParameters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		mod   Modifier
		param string
	}{
		{"negative border width", CardStyle(BorderWidth(-1)), "borderwidth"},
		{"negative corner radius", CardStyle(CornerRadius(-3)), "cornerradius"},
		{"oversized corner radius", CardStyle(CornerRadius(64)), "cornerradius"},
		{"negative shadow radius", CardShadow(ShadowRadius(-2)), "radius"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), tc.mod)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.param, validationErr.Param)
		})
	}
}

func TestFollowButtonDefaultLabel(t *testing.T) {
	t.Parallel()

	dec, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), FollowButton())
	require.NoError(t, err)

	overlay, ok := dec.Effects()[0].(OverlayEffect)
	require.True(t, ok)
	require.Equal(t, OverlayButton, overlay.Kind)
	require.Equal(t, DefaultFollowLabel, overlay.Label)
}

func TestOnTapValidation(t *testing.T) {
	t.Parallel()

	_, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), OnTap("", func() {}))
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "action", validationErr.Param)

	_, err = Apply(NewDecoration(exampleNote(), NewEnvironment()), OnTap("open", nil))
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "handler", validationErr.Param)
}

func TestSetEnvAffectsComponentDecision(t *testing.T) {
	t.Parallel()

	dec, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), SetEnv(keyPinned, true))
	require.NoError(t, err)

	require.Empty(t, dec.Effects(), "context modifiers never touch the effect list")
	require.Equal(t, []string{"Pinned"}, dec.Describe().Badges)
}

func TestSetEnvLastAppliedWins(t *testing.T) {
	t.Parallel()

	dec, err := Apply(NewDecoration(exampleNote(), With(NewEnvironment(), keyPinned, true)),
		SetEnv(keyPinned, false),
	)
	require.NoError(t, err)
	require.Empty(t, dec.Describe().Badges)
}

func TestChainCollapsesSequence(t *testing.T) {
	t.Parallel()

	combined := Chain(CardStyle(BorderWidth(1)), CardShadow())

	viaChain, err := Apply(NewDecoration(exampleNote(), NewEnvironment()), combined)
	require.NoError(t, err)
	viaSequence, err := Apply(NewDecoration(exampleNote(), NewEnvironment()),
		CardStyle(BorderWidth(1)), CardShadow())
	require.NoError(t, err)

	require.True(t, viaChain.Equal(viaSequence))
}
