//go:build e2e && unix

package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "list")
	require.Contains(t, output, "serve")
	require.Contains(t, output, "--config")
}

func TestListCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	path, err := tf.WriteCatalog(defaultCatalog)
	require.NoError(t, err)

	cmd := exec.Command(binPath, "--log-file", tf.workspace+"/tagscope.log", "list", path, "-t", "infra", "--json")
	out, err := cmd.Output()
	require.NoError(t, err)

	var projects []testProject
	require.NoError(t, json.Unmarshal(out, &projects))
	require.Len(t, projects, 2)
	require.Equal(t, "github.com/acme/foo", projects[0].URL)
	require.Equal(t, "gitlab.com/gamma/qux", projects[1].URL)
}
