package styling

import (
	apperrors "github.com/razvanlitianu/stylekit/pkg/errors"
)

// Defaults for decoration modifiers applied with no arguments.
const (
	DefaultCornerRadius = 2
	DefaultShadowRadius = 1
	DefaultFollowLabel  = "Follow"
)

type cardStyleParams struct {
	Background   string
	BorderColor  string
	BorderWidth  int `validate:"gte=0,lte=8"`
	CornerRadius int `validate:"gte=0,lte=16"`
}

// CardStyleOption adjusts one CardStyle parameter; unset parameters keep
// their documented defaults.
type CardStyleOption func(*cardStyleParams)

// BackgroundColor sets the card background fill.
func BackgroundColor(color string) CardStyleOption {
	return func(p *cardStyleParams) { p.Background = color }
}

// BorderColor sets the border color. The border stays invisible until a
// positive BorderWidth is also set.
func BorderColor(color string) CardStyleOption {
	return func(p *cardStyleParams) { p.BorderColor = color }
}

// BorderWidth sets the border thickness in cells. Defaults to zero (no
// border).
func BorderWidth(width int) CardStyleOption {
	return func(p *cardStyleParams) { p.BorderWidth = width }
}

// CornerRadius sets the frame corner rounding.
func CornerRadius(radius int) CardStyleOption {
	return func(p *cardStyleParams) { p.CornerRadius = radius }
}

// CardStyle frames the component as a card. With no options it applies the
// default frame: no fill, no border, corner radius DefaultCornerRadius.
// Out-of-range parameters fail with a ValidationError; values are never
// clamped.
func CardStyle(opts ...CardStyleOption) Modifier {
	params := cardStyleParams{CornerRadius: DefaultCornerRadius}
	for _, opt := range opts {
		opt(&params)
	}

	return func(d Decoration) (Decoration, error) {
		if err := checkParams("CardStyle", params); err != nil {
			return Decoration{}, err
		}
		if params.Background != "" {
			d = d.WithEffect(FillEffect{Color: params.Background})
		}
		return d.WithEffect(BorderEffect{
			Color:        params.BorderColor,
			Width:        params.BorderWidth,
			CornerRadius: params.CornerRadius,
		}), nil
	}
}

type shadowParams struct {
	Radius  int `validate:"gte=0,lte=8"`
	OffsetX int `validate:"gte=-4,lte=4"`
	OffsetY int `validate:"gte=-4,lte=4"`
	Color   string
}

// ShadowOption adjusts one CardShadow parameter.
type ShadowOption func(*shadowParams)

// ShadowRadius sets the shadow spread. Defaults to DefaultShadowRadius.
func ShadowRadius(radius int) ShadowOption {
	return func(p *shadowParams) { p.Radius = radius }
}

// ShadowOffset sets the shadow displacement.
func ShadowOffset(x, y int) ShadowOption {
	return func(p *shadowParams) {
		p.OffsetX = x
		p.OffsetY = y
	}
}

// ShadowColor sets the shadow color.
func ShadowColor(color string) ShadowOption {
	return func(p *shadowParams) { p.Color = color }
}

// CardShadow casts a drop shadow from the bounds the component has at this
// point in the chain, so its position relative to CardStyle is observable.
func CardShadow(opts ...ShadowOption) Modifier {
	params := shadowParams{Radius: DefaultShadowRadius, OffsetX: 1, OffsetY: 1}
	for _, opt := range opts {
		opt(&params)
	}

	return func(d Decoration) (Decoration, error) {
		if err := checkParams("CardShadow", params); err != nil {
			return Decoration{}, err
		}
		return d.WithEffect(ShadowEffect{
			Radius:  params.Radius,
			OffsetX: params.OffsetX,
			OffsetY: params.OffsetY,
			Color:   params.Color,
		}), nil
	}
}

// Badge overlays a text badge on the component.
func Badge(label string) Modifier {
	return func(d Decoration) (Decoration, error) {
		if label == "" {
			return Decoration{}, apperrors.NewValidationError("Badge", "label", "must not be empty", nil)
		}
		return d.WithEffect(OverlayEffect{Kind: OverlayBadge, Label: label}), nil
	}
}

// FollowButton overlays a follow button. The label defaults to
// DefaultFollowLabel when omitted.
func FollowButton(label ...string) Modifier {
	text := DefaultFollowLabel
	if len(label) > 0 {
		text = label[0]
	}

	return func(d Decoration) (Decoration, error) {
		if text == "" {
			return Decoration{}, apperrors.NewValidationError("FollowButton", "label", "must not be empty", nil)
		}
		return d.WithEffect(OverlayEffect{Kind: OverlayButton, Label: text}), nil
	}
}

// OnTap binds a named tap action. The action name identifies the binding; the
// handler is invoked by the host application.
func OnTap(action string, handler func()) Modifier {
	return func(d Decoration) (Decoration, error) {
		if action == "" {
			return Decoration{}, apperrors.NewValidationError("OnTap", "action", "must not be empty", nil)
		}
		if handler == nil {
			return Decoration{}, apperrors.NewValidationError("OnTap", "handler", "must not be nil", nil)
		}
		return d.WithEffect(GestureEffect{Action: action, Handler: handler}), nil
	}
}
