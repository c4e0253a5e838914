// Package testutil provides common test helpers for the cloudctx project.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestRemoteURL is the remote every TempGitRepo is created with.
const TestRemoteURL = "user@git.host:path/to/repo.git"

// TempGitRepo creates a temporary git repository with a "testremote" remote
// pointing at TestRemoteURL and returns its path.
// The repository is automatically cleaned up when the test finishes.
func TempGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	cmds := [][]string{
		{"git", "init", "-q"},
		{"git", "config", "user.email", "test@cloudctx.test"},
		{"git", "config", "user.name", "cloudctx test"},
		{"git", "remote", "add", "testremote", TestRemoteURL},
	}
	runGit(t, dir, cmds...)

	return dir
}

// TempGitRepoWithRemote creates a temporary git repository with an additional
// "origin" remote configured to the given URL.
func TempGitRepoWithRemote(t *testing.T, remoteURL string) string {
	t.Helper()

	dir := TempGitRepo(t)
	runGit(t, dir, []string{"git", "remote", "add", "origin", remoteURL})

	return dir
}

func runGit(t *testing.T, dir string, cmds ...[]string) {
	t.Helper()

	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("testutil: %v failed: %v\n%s", args, err, out)
		}
	}
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// ConfigFor returns config.toml content pointing at endpoint with a test token.
func ConfigFor(endpoint string) string {
	return `version = 1
endpoint = "` + endpoint + `"
api_token = "test-token"
timeout_seconds = 5
`
}

// WriteRepoHints writes a .cloudctx.yml into repoDir.
func WriteRepoHints(t *testing.T, repoDir, content string) {
	t.Helper()

	path := filepath.Join(repoDir, ".cloudctx.yml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteRepoHints: write failed: %v", err)
	}
}
