package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/razvanlitianu/stylekit/internal/gallery"
	"github.com/razvanlitianu/stylekit/internal/logger"
	"github.com/razvanlitianu/stylekit/internal/themereg"
	"github.com/razvanlitianu/stylekit/pkg/theme"
)

func newGalleryCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive component gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(root, log)
		},
	}
}

func runGallery(root *rootFlags, log *logger.Logger) error {
	themes, err := availableThemes(root)
	if err != nil {
		return err
	}
	log.WithField("themes", len(themes)).Debug("gallery starting")

	model := gallery.NewModel(gallery.DefaultEntries(), themes)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error(err, "gallery failed")
		return fmt.Errorf("run gallery: %w", err)
	}
	return nil
}

// availableThemes collects the default theme, any --theme file, and every
// theme shipped by installed packs.
func availableThemes(root *rootFlags) ([]theme.Theme, error) {
	themes := []theme.Theme{theme.Default()}

	if root.themePath != "" {
		th, err := theme.Load(root.themePath)
		if err != nil {
			return nil, err
		}
		themes = append(themes, th)
	}

	registryPath, err := defaultRegistryPath()
	if err != nil {
		return themes, nil
	}
	registry, err := themereg.New(registryPath)
	if err != nil {
		// A corrupt registry shouldn't block the gallery.
		return themes, nil
	}

	for _, pack := range registry.List() {
		themes = append(themes, packThemes(pack.Path)...)
	}
	return themes, nil
}

func packThemes(dir string) []theme.Theme {
	var themes []theme.Theme

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if !entry.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		th, err := theme.Load(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		themes = append(themes, th)
	}
	return themes
}
