// Package termrender renders finished decorations to terminal strings through
// lipgloss. It is the concrete rendering boundary: the styling layer only
// assembles descriptions, this package turns them into drawable output.
package termrender

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/razvanlitianu/stylekit/pkg/styling"
	"github.com/razvanlitianu/stylekit/pkg/theme"
)

// Renderer renders decorations under one theme. Renderers are stateless
// beyond the theme value and safe for concurrent use.
type Renderer struct {
	theme theme.Theme
}

// New creates a renderer for the given theme.
func New(th theme.Theme) *Renderer {
	return &Renderer{theme: th}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

// Render draws the decoration: the component's content first, then each
// effect in application order. The order matters — a shadow cast after a
// border includes the border in its bounds.
func (r *Renderer) Render(dec styling.Decoration) (string, error) {
	if dec.Component() == nil {
		return "", fmt.Errorf("render: decoration has no component")
	}

	block := r.renderContent(dec.Describe())

	for _, effect := range dec.Effects() {
		var err error
		block, err = r.applyEffect(block, effect)
		if err != nil {
			return "", err
		}
	}

	return block, nil
}

// Bindings lists the tap actions bound to the decoration, in application
// order. The renderer never invokes handlers.
func (r *Renderer) Bindings(dec styling.Decoration) []string {
	var actions []string
	for _, effect := range dec.Effects() {
		if gesture, ok := effect.(styling.GestureEffect); ok {
			actions = append(actions, gesture.Action)
		}
	}
	return actions
}

func (r *Renderer) renderContent(content styling.Content) string {
	palette := r.theme.Palette

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(palette.Foreground)
	title := titleStyle.Render(content.Title)

	if len(content.Badges) > 0 {
		badgeStyle := lipgloss.NewStyle().Foreground(palette.Badge)
		badges := make([]string, 0, len(content.Badges))
		for _, badge := range content.Badges {
			badges = append(badges, badgeStyle.Render(badge))
		}
		gap := strings.Repeat(" ", r.theme.Spacing.BadgeGap)
		title = title + gap + strings.Join(badges, gap)
	}

	lineStyle := lipgloss.NewStyle().Foreground(palette.Muted)
	rows := []string{title}
	for _, line := range content.Lines {
		rows = append(rows, lineStyle.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) applyEffect(block string, effect styling.Effect) (string, error) {
	switch e := effect.(type) {
	case styling.FillEffect:
		return lipgloss.NewStyle().Background(lipgloss.Color(e.Color)).Render(block), nil
	case styling.BorderEffect:
		return r.applyBorder(block, e), nil
	case styling.ShadowEffect:
		return r.applyShadow(block, e), nil
	case styling.OverlayEffect:
		return r.applyOverlay(block, e), nil
	case styling.GestureEffect:
		// Non-visual; exposed through Bindings.
		return block, nil
	default:
		return "", fmt.Errorf("render: unsupported effect %q", effect.EffectName())
	}
}

func (r *Renderer) applyBorder(block string, e styling.BorderEffect) string {
	style := lipgloss.NewStyle().Padding(0, r.theme.Spacing.CardPadding)

	if e.Width > 0 {
		border := r.theme.Borders.Square
		if e.CornerRadius > 0 {
			border = r.theme.Borders.Rounded
		}
		style = style.BorderStyle(border)
		if e.Color != "" {
			style = style.BorderForeground(lipgloss.Color(e.Color))
		}
		// Terminal borders are one cell thick; extra width becomes inset.
		if e.Width > 1 {
			style = style.Padding(e.Width-1, r.theme.Spacing.CardPadding+e.Width-1)
		}
	}

	return style.Render(block)
}

// applyShadow casts a shadow from the block's current bounds, offset down and
// right. Radius picks the glyph density.
func (r *Renderer) applyShadow(block string, e styling.ShadowEffect) string {
	if e.Radius == 0 || e.OffsetX < 0 || e.OffsetY < 0 {
		return block
	}

	glyph := "░"
	if e.Radius > 2 {
		glyph = "▓"
	}

	var color lipgloss.TerminalColor = r.theme.Palette.Shadow
	if e.Color != "" {
		color = lipgloss.Color(e.Color)
	}
	shadowStyle := lipgloss.NewStyle().Foreground(color)

	height := lipgloss.Height(block)
	column := make([]string, 0, height)
	for i := 0; i < height; i++ {
		if i < e.OffsetY {
			column = append(column, strings.Repeat(" ", e.OffsetX))
		} else {
			column = append(column, shadowStyle.Render(strings.Repeat(glyph, e.OffsetX)))
		}
	}
	withColumn := lipgloss.JoinHorizontal(lipgloss.Top, block, strings.Join(column, "\n"))

	width := lipgloss.Width(withColumn)
	if width <= e.OffsetX {
		return withColumn
	}
	bottom := strings.Repeat(" ", e.OffsetX) + shadowStyle.Render(strings.Repeat(glyph, width-e.OffsetX))

	return lipgloss.JoinVertical(lipgloss.Left, withColumn, bottom)
}

func (r *Renderer) applyOverlay(block string, e styling.OverlayEffect) string {
	palette := r.theme.Palette

	switch e.Kind {
	case styling.OverlayBadge:
		badge := lipgloss.NewStyle().Foreground(palette.Badge).Render("[" + e.Label + "]")
		return lipgloss.JoinVertical(lipgloss.Left, badge, block)
	case styling.OverlayButton:
		button := lipgloss.NewStyle().
			Foreground(palette.Foreground).
			Background(palette.Button).
			Padding(0, 1).
			Render(e.Label)
		return lipgloss.JoinVertical(lipgloss.Center, block, button)
	default:
		return block
	}
}
