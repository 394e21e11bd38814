package themereg

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testPack(name string) Pack {
	return Pack{
		Name:        name,
		Path:        "/themes/" + name,
		SourceURL:   "https://example.com/" + name + ".git",
		InstalledAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAddListSorted(t *testing.T) {
	t.Parallel()

	reg, err := New(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)

	require.NoError(t, reg.Add(testPack("zen")))
	require.NoError(t, reg.Add(testPack("aurora")))

	packs := reg.List()
	require.Len(t, packs, 2)
	require.Equal(t, "aurora", packs[0].Name)
	require.Equal(t, "zen", packs[1].Name)
}

func TestAddRejectsDuplicate(t *testing.T) {
	t.Parallel()

	reg, err := New(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)

	require.NoError(t, reg.Add(testPack("zen")))
	require.ErrorContains(t, reg.Add(testPack("zen")), "already installed")
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "registry.json")

	reg, err := New(path)
	require.NoError(t, err)
	require.NoError(t, reg.Add(testPack("aurora")))
	require.NoError(t, reg.Save())

	reloaded, err := New(path)
	require.NoError(t, err)

	pack, ok := reloaded.Get("aurora")
	require.True(t, ok)
	require.Equal(t, testPack("aurora"), pack)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	reg, err := New(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)

	require.NoError(t, reg.Add(testPack("zen")))
	require.NoError(t, reg.Remove("zen"))
	require.Empty(t, reg.List())
	require.ErrorContains(t, reg.Remove("zen"), "not installed")
}

func TestNewWithMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	reg, err := New(filepath.Join(t.TempDir(), "nested", "registry.json"))
	require.NoError(t, err)
	require.Empty(t, reg.List())
}
