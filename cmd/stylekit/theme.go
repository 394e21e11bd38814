package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"github.com/razvanlitianu/stylekit/internal/logger"
	"github.com/razvanlitianu/stylekit/internal/themereg"
)

func newThemeCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage installed theme packs",
	}

	cmd.AddCommand(newThemeListCmd())
	cmd.AddCommand(newThemeInstallCmd(log))
	cmd.AddCommand(newThemeRemoveCmd(log))

	return cmd
}

func openThemeRegistry() (*themereg.Registry, error) {
	path, err := defaultRegistryPath()
	if err != nil {
		return nil, err
	}
	return themereg.New(path)
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed theme packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := openThemeRegistry()
			if err != nil {
				return err
			}

			packs := registry.List()
			if len(packs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no theme packs installed")
				return nil
			}
			for _, pack := range packs {
				themeCount := len(packThemes(pack.Path))
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d theme(s)\t%s\n", pack.Name, themeCount, pack.SourceURL)
			}
			return nil
		},
	}
}

func newThemeInstallCmd(log *logger.Logger) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "install <name> <git-url>",
		Short: "Install a theme pack from a git repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, url := args[0], args[1]

			registry, err := openThemeRegistry()
			if err != nil {
				return err
			}
			if _, exists := registry.Get(name); exists {
				return fmt.Errorf("theme pack %q already installed", name)
			}

			dir, err := themesDir()
			if err != nil {
				return err
			}
			destination := filepath.Join(dir, name)

			log.WithField("url", url).Info("cloning theme pack")
			cloneOpts := &git.CloneOptions{URL: url}
			if depth > 0 {
				cloneOpts.Depth = depth
			}
			if _, err := git.PlainCloneContext(cmd.Context(), destination, false, cloneOpts); err != nil {
				return fmt.Errorf("clone theme pack: %w", err)
			}

			if len(packThemes(destination)) == 0 {
				os.RemoveAll(destination)
				return fmt.Errorf("repository %s contains no theme files", url)
			}

			pack := themereg.Pack{
				Name:        name,
				Path:        destination,
				SourceURL:   url,
				InstalledAt: time.Now().UTC(),
			}
			if err := registry.Add(pack); err != nil {
				return err
			}
			if err := registry.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "installed theme pack %q\n", name)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 1, "Clone depth (0 for full history)")

	return cmd
}

func newThemeRemoveCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an installed theme pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			registry, err := openThemeRegistry()
			if err != nil {
				return err
			}

			pack, ok := registry.Get(name)
			if !ok {
				return fmt.Errorf("theme pack %q not installed", name)
			}

			if err := registry.Remove(name); err != nil {
				return err
			}
			if err := registry.Save(); err != nil {
				return err
			}
			if err := os.RemoveAll(pack.Path); err != nil {
				log.Error(err, "failed to delete theme pack files")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed theme pack %q\n", name)
			return nil
		},
	}
}
