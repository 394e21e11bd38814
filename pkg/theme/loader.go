package theme

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/razvanlitianu/stylekit/pkg/errors"
)

// colorPair is the YAML form of an adaptive colour.
type colorPair struct {
	Light string `yaml:"light" validate:"omitempty,hexcolor"`
	Dark  string `yaml:"dark" validate:"omitempty,hexcolor"`
}

// Definition is the YAML schema for a theme file. Unset fields keep the
// default theme's values.
type Definition struct {
	Name    string `yaml:"name" validate:"required,theme_name"`
	Palette struct {
		Foreground *colorPair `yaml:"foreground"`
		Muted      *colorPair `yaml:"muted"`
		Accent     *colorPair `yaml:"accent"`
		Badge      *colorPair `yaml:"badge"`
		Button     *colorPair `yaml:"button"`
		Shadow     *colorPair `yaml:"shadow"`
	} `yaml:"palette"`
	Spacing struct {
		CardPadding *int `yaml:"card_padding" validate:"omitempty,gte=0,lte=8"`
		BadgeGap    *int `yaml:"badge_gap" validate:"omitempty,gte=0,lte=8"`
	} `yaml:"spacing"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return name != "" && !strings.ContainsAny(name, " /\\")
		})
		validateInst = v
	})
	return validateInst
}

// Parse decodes and validates a YAML theme definition, overlaying it on the
// default theme.
func Parse(data []byte) (Theme, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}

	if err := validatorInstance().Struct(def); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			ve := ves[0]
			return Theme{}, apperrors.NewValidationError("theme", strings.ToLower(ve.Field()),
				fmt.Sprintf("failed validation for tag '%s'", ve.Tag()), err)
		}
		return Theme{}, err
	}

	t := Default()
	t.Name = def.Name

	overlay := func(dst *lipgloss.AdaptiveColor, src *colorPair) {
		if src == nil {
			return
		}
		if src.Light != "" {
			dst.Light = src.Light
		}
		if src.Dark != "" {
			dst.Dark = src.Dark
		}
	}
	overlay(&t.Palette.Foreground, def.Palette.Foreground)
	overlay(&t.Palette.Muted, def.Palette.Muted)
	overlay(&t.Palette.Accent, def.Palette.Accent)
	overlay(&t.Palette.Badge, def.Palette.Badge)
	overlay(&t.Palette.Button, def.Palette.Button)
	overlay(&t.Palette.Shadow, def.Palette.Shadow)

	if def.Spacing.CardPadding != nil {
		t.Spacing.CardPadding = *def.Spacing.CardPadding
	}
	if def.Spacing.BadgeGap != nil {
		t.Spacing.BadgeGap = *def.Spacing.BadgeGap
	}

	return t, nil
}

// Load reads and parses a theme file from disk.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	return Parse(data)
}
