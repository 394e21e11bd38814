// Package themereg tracks installed theme packs in a JSON registry file.
package themereg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Pack is one installed theme pack.
type Pack struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	SourceURL   string    `json:"source_url,omitempty"`
	InstalledAt time.Time `json:"installed_at"`
}

type registryFile struct {
	Version string `json:"version"`
	Packs   []Pack `json:"packs"`
}

// Registry manages theme pack registration and persistence.
type Registry struct {
	path  string
	mu    sync.RWMutex
	packs []Pack
}

// New creates a Registry backed by the file at path, loading existing state
// when present.
func New(path string) (*Registry, error) {
	r := &Registry{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create registry directory: %w", err)
	}

	if err := r.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse theme registry: %w", err)
	}

	r.packs = file.Packs
	return nil
}

// Save writes the registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	file := registryFile{Version: "1.0", Packs: r.packs}
	r.mu.RUnlock()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal theme registry: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary registry file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace registry file: %w", err)
	}

	return nil
}

// Add registers a pack, rejecting duplicate names.
func (r *Registry) Add(pack Pack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.packs {
		if existing.Name == pack.Name {
			return fmt.Errorf("theme pack %q already installed", pack.Name)
		}
	}
	r.packs = append(r.packs, pack)
	return nil
}

// Remove unregisters the named pack.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, pack := range r.packs {
		if pack.Name == name {
			r.packs = append(r.packs[:i], r.packs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("theme pack %q not installed", name)
}

// Get returns the named pack.
func (r *Registry) Get(name string) (Pack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pack := range r.packs {
		if pack.Name == name {
			return pack, true
		}
	}
	return Pack{}, false
}

// List returns all installed packs sorted by name.
func (r *Registry) List() []Pack {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Pack, len(r.packs))
	copy(out, r.packs)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
