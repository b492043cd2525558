//go:build e2e && unix

package main

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWithCatalog(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	path, err := tf.WriteCatalog(defaultCatalog)
	require.NoError(t, err, "Failed to write catalog")

	require.NoError(t, tf.StartApp(path), "Failed to start app")
	require.True(t, tf.Ready(), "Should show the title")
	require.True(t, tf.SeePlain("4 of 4 projects"), "catalog should load")
	return tf
}

func TestBrowseShowsCatalog(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)

	require.True(t, tf.SeePlain("github.com/acme/foo"))
	require.True(t, tf.SeePlain("ml (3)"), "top tag chip should be ranked first")
	require.True(t, tf.SeePlain("infra (2)"))
}

func TestBrowseSearch(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)

	require.NoError(t, tf.Search("BETA"))
	require.True(t, tf.SeePlain("2 of 4 projects"), "search should narrow to beta projects")

	// esc clears the search
	tf.MarkOutput()
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.SeePlain("4 of 4 projects"))
}

func TestBrowseSearchWithoutMatches(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)

	require.NoError(t, tf.Search("zzz"))
	require.True(t, tf.SeePlain("No projects found"))
	require.True(t, tf.SeePlain("0 of 4 projects"))
}

func TestBrowseTagChips(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)

	require.NoError(t, tf.ToggleChip(1))
	require.True(t, tf.SeePlain("3 of 4 projects"), "ml selects three projects")

	require.NoError(t, tf.ToggleChip(2))
	require.True(t, tf.SeePlain("2 of 4 projects"), "ml and infra select two projects")

	require.NoError(t, tf.SendKeys(KeyClear))
	require.True(t, tf.SeePlain("Tag filters cleared"))
	require.True(t, tf.SeePlain("4 of 4 projects"))
}

func TestBrowseTagDropdown(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)

	require.NoError(t, tf.SendKeys(KeyAllTags))
	require.True(t, tf.SeePlain("[ ] web (1)"), "dropdown should list every tag")

	// alphabetical: infra, ml, web
	require.NoError(t, tf.SendKeys(KeyDown))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tf.SendKeys(KeyDown))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.SeePlain("1 of 4 projects"), "web selects one project")
}

func TestBrowseRemoteSource(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	url := tf.ServeCatalog(http.StatusOK, defaultCatalog)
	require.NoError(t, tf.StartApp(url))
	require.True(t, tf.OutputContainsPlain("4 of 4 projects", 5*time.Second))
}

func TestBrowseLoadFailureShowsEmptyCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	url := tf.ServeCatalog(http.StatusInternalServerError, nil)
	require.NoError(t, tf.StartApp(url))
	require.True(t, tf.OutputContainsPlain("0 of 0 projects", 5*time.Second))
	require.True(t, tf.SeePlain("No projects found"))
}

func TestBrowseMissingFileShowsEmptyCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.StartApp(filepath.Join(tf.workspace, "missing.json")))
	require.True(t, tf.OutputContainsPlain("No projects found", 5*time.Second))
}
