//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
)

type testProject struct {
	URL      string   `json:"url"`
	Org      string   `json:"org"`
	Stars    int      `json:"stars"`
	Released string   `json:"released"`
	Tags     []string `json:"tags"`
}

// defaultCatalog ranks its tags ml (3), infra (2), web (1)
var defaultCatalog = []testProject{
	{URL: "github.com/acme/foo", Org: "acme", Stars: 120, Released: "2023-04-01", Tags: []string{"ml", "infra"}},
	{URL: "github.com/beta/bar", Org: "beta", Stars: 7, Released: "2024-01-15", Tags: []string{"ml"}},
	{URL: "github.com/beta/baz", Org: "beta", Stars: 0, Released: "2022-09-09", Tags: []string{"web"}},
	{URL: "gitlab.com/gamma/qux", Org: "gamma", Stars: 42, Released: "2021-02-03", Tags: []string{"ml", "infra"}},
}

// CreateTestWorkspace creates a temporary directory for config, logs and catalogs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes projects as data.json in the workspace
func (tf *TUITestFramework) WriteCatalog(projects []testProject) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, "data.json")
	return path, os.WriteFile(path, data, 0644)
}

// ServeCatalog serves projects over HTTP and returns the URL of data.json
func (tf *TUITestFramework) ServeCatalog(status int, projects []testProject) string {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(projects)
	}))
	tf.t.Cleanup(srv.Close)
	return srv.URL + "/data.json"
}
