package main

import (
	"github.com/spf13/cobra"

	"github.com/razvanlitianu/stylekit/internal/logger"
)

type rootFlags struct {
	verbose   bool
	themePath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "Stylekit renders composable, type-safe styled components in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the gallery.
			if len(args) == 0 {
				return runGallery(flags, log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Path to a YAML theme file")

	cmd.AddCommand(newRenderCmd(flags, log))
	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newThemeCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
