package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePlaylist = `{
  "tracks": [
    {"name": "Song A", "artist": "Bob", "album_name": "X", "isrc": "US123"},
    {"name": "Song A (Remix)", "artist": "Bob", "album_name": "X", "isrc": "US123"},
    {"name": "Hello World", "artist": "Jane Doe", "album_name": "LP1"},
    {"name": "Hello World!", "artist": "Jane Doe", "album_name": "LP2", "isrc": null},
    {"name": "Africa", "artist": "Toto", "album_name": "Toto IV"}
  ]
}`

// isolateEnv points HOME at a temp dir and clears the purifier environment
// so a developer's own configuration never leaks into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PURIFIER_WORKERS", "")
	t.Setenv("PURIFIER_LOCALE", "")
	return home
}

func writePlaylist(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "playlist.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
