package styling

// Effect is one applied concern in a Decoration's ordered effect list. The
// renderer applies effects strictly in list order, so the same effects in a
// different order describe a different visual result.
type Effect interface {
	// EffectName identifies the effect kind for diagnostics and equality.
	EffectName() string
}

// FillEffect paints the component background.
type FillEffect struct {
	Color string
}

func (FillEffect) EffectName() string { return "fill" }

// BorderEffect frames the component. Width zero means no visible border.
type BorderEffect struct {
	Color        string
	Width        int
	CornerRadius int
}

func (BorderEffect) EffectName() string { return "border" }

// ShadowEffect casts a drop shadow computed from the bounds the component has
// at the moment the effect is applied. A shadow applied after a border
// therefore includes the border in its bounds; applied before, it does not.
type ShadowEffect struct {
	Radius  int
	OffsetX int
	OffsetY int
	Color   string
}

func (ShadowEffect) EffectName() string { return "shadow" }

// OverlayKind discriminates overlay effects.
type OverlayKind int

const (
	OverlayBadge OverlayKind = iota
	OverlayButton
)

// OverlayEffect places a badge or button on top of the component.
type OverlayEffect struct {
	Kind  OverlayKind
	Label string
}

func (OverlayEffect) EffectName() string { return "overlay" }

// GestureEffect binds a named tap action. Handlers are invoked by the host
// application, never by the styling layer; gestures compare by Action so that
// decorations built from the same chain stay structurally equal.
type GestureEffect struct {
	Action  string
	Handler func()
}

func (GestureEffect) EffectName() string { return "gesture" }
