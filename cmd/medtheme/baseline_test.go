package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPalette = `palette:
  primary: {lighter: "#dbeafe", light: "#93c5fd", normal: "#1d4ed8", dark: "#1e40af", darker: "#1e3a8a"}
  neutral: {lighter: "#f1f5f9", light: "#cbd5e1", normal: "#64748b", dark: "#334155", darker: "#0f172a"}
  success: {lighter: "#dcfce7", light: "#86efac", normal: "#15803d", dark: "#166534", darker: "#14532d"}
  warning: {lighter: "#fef3c7", light: "#fcd34d", normal: "#b45309", dark: "#92400e", darker: "#78350f"}
  error: {lighter: "#fee2e2", light: "#fca5a5", normal: "#b91c1c", dark: "#991b1b", darker: "#7f1d1d"}
  info: {lighter: "#cffafe", light: "#67e8f9", normal: "#0e7490", dark: "#155e75", darker: "#164e63"}
`

// initPaletteRepo creates a repository with a committed palette file and
// returns the file path.
func initPaletteRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPalette), 0o644))
	_, err = wt.Add("palette.yaml")
	require.NoError(t, err)

	_, err = wt.Commit("add palette", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "medtheme",
			Email: "medtheme@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return path
}

func TestBaselineNoChanges(t *testing.T) {
	path := initPaletteRepo(t)

	out, err := runCommand(t, "baseline", "--palette", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no token changes against HEAD")
}

func TestBaselineFlagsContrastRegression(t *testing.T) {
	path := initPaletteRepo(t)

	// #ca8a04 measures 2.94:1 on white: losing AA on an alert color is the
	// exact regression the command exists to catch.
	modified := strings.Replace(testPalette, "#b45309", "#ca8a04", 1)
	require.NoError(t, os.WriteFile(path, []byte(modified), 0o644))

	out, err := runCommand(t, "baseline", "--palette", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "regressed")
	assert.Contains(t, out, "warning.normal")
	assert.Contains(t, out, "#b45309 -> #ca8a04")
}

func TestBaselineBenignChangeExitsZero(t *testing.T) {
	path := initPaletteRepo(t)

	// Darkening primary raises its ratio on white; no compliance is lost.
	modified := strings.Replace(testPalette, `normal: "#1d4ed8"`, `normal: "#1e3a8a"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(modified), 0o644))

	out, err := runCommand(t, "baseline", "--palette", path)
	require.NoError(t, err)
	assert.Contains(t, out, "primary.normal")
	assert.Contains(t, out, "0 contrast regressions")
}

func TestBaselineRequiresPaletteFlag(t *testing.T) {
	_, err := runCommand(t, "baseline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--palette")
}
