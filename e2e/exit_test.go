//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitExit(t *testing.T, tf *TUITestFramework, send func() error) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, send())

	select {
	case err := <-done:
		require.NoError(t, err, "process should exit cleanly")
	case <-time.After(2 * time.Second):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("application did not exit")
	}
	// Wait already reaped the process
	tf.cmd = nil
}

func TestApplicationExitWithQ(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)
	waitExit(t, tf, tf.Quit)
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)
	waitExit(t, tf, tf.SendCtrlC)
}

func TestQuitKeyInSearchIsText(t *testing.T) {
	t.Parallel()
	tf := startWithCatalog(t)

	require.NoError(t, tf.Search("q"))
	require.True(t, tf.SeePlain("1 of 4 projects"), "q is typed into the search, matching gitlab.com/gamma/qux")
}
