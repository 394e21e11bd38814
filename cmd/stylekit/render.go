package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/razvanlitianu/stylekit/internal/logger"
	"github.com/razvanlitianu/stylekit/pkg/components"
	"github.com/razvanlitianu/stylekit/pkg/styling"
	"github.com/razvanlitianu/stylekit/pkg/termrender"
	"github.com/razvanlitianu/stylekit/pkg/theme"
)

type renderFlags struct {
	username  string
	followers int
	following int
	bio       string

	style       string
	verified    bool
	premium     bool
	borderColor string
	borderWidth int
	shadow      bool
	follow      bool
}

func newRenderCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a profile card with the selected modifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, flags, log)
		},
	}

	cmd.Flags().StringVar(&flags.username, "username", "newuser", "Card username")
	cmd.Flags().IntVar(&flags.followers, "followers", 42, "Follower count")
	cmd.Flags().IntVar(&flags.following, "following", 108, "Following count")
	cmd.Flags().StringVar(&flags.bio, "bio", "Just joined!", "Card bio text")

	cmd.Flags().StringVar(&flags.style, "style", "", "Apply a named style (verified, premium)")
	cmd.Flags().BoolVar(&flags.verified, "verified", false, "Set the verified flag")
	cmd.Flags().BoolVar(&flags.premium, "premium", false, "Set the premium flag")
	cmd.Flags().StringVar(&flags.borderColor, "border-color", "", "Card border color (hex)")
	cmd.Flags().IntVar(&flags.borderWidth, "border-width", 0, "Card border width")
	cmd.Flags().BoolVar(&flags.shadow, "shadow", false, "Add a drop shadow")
	cmd.Flags().BoolVar(&flags.follow, "follow", false, "Add a follow button")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, flags *renderFlags, log *logger.Logger) error {
	th, err := resolveTheme(root)
	if err != nil {
		return err
	}

	card := components.ProfileCard{
		Username:  flags.username,
		Followers: flags.followers,
		Following: flags.following,
		Bio:       flags.bio,
	}

	var dec styling.Decoration
	if flags.style != "" {
		registry := styling.NewRegistry()
		if err := components.RegisterDefaults(registry); err != nil {
			return err
		}
		bound, err := registry.Bind(flags.style, card)
		if err != nil {
			return err
		}
		dec, err = bound.Decorate(styling.NewEnvironment())
		if err != nil {
			return err
		}
	} else {
		dec, err = styling.Apply(card.Render(styling.NewEnvironment()), flagModifiers(flags)...)
		if err != nil {
			return err
		}
	}

	out, err := termrender.New(th).Render(dec)
	if err != nil {
		return err
	}

	if width, ok := terminalWidth(); ok {
		log.WithField("width", width).Debug("rendering to terminal")
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func flagModifiers(flags *renderFlags) []styling.Modifier {
	var mods []styling.Modifier
	if flags.verified {
		mods = append(mods, components.Verified())
	}
	if flags.premium {
		mods = append(mods, components.Premium())
	}
	if flags.borderColor != "" || flags.borderWidth > 0 {
		var opts []styling.CardStyleOption
		if flags.borderColor != "" {
			opts = append(opts, styling.BorderColor(flags.borderColor))
		}
		if flags.borderWidth > 0 {
			opts = append(opts, styling.BorderWidth(flags.borderWidth))
		}
		mods = append(mods, styling.CardStyle(opts...))
	}
	if flags.shadow {
		mods = append(mods, styling.CardShadow())
	}
	if flags.follow {
		mods = append(mods, styling.FollowButton())
	}
	return mods
}

func resolveTheme(root *rootFlags) (theme.Theme, error) {
	if root.themePath == "" {
		return theme.Default(), nil
	}
	return theme.Load(root.themePath)
}

func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return width, true
}
