//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates an isolated $HOME holding the given config.
// Logs go to the workspace and URLs are printed instead of opened.
func (tf *TUITestFramework) CreateTestWorkspace(extraConfig string) (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	configDir := filepath.Join(tmpDir, ".config", "odgrip")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	config := "dispatch = \"print\"\n" +
		"log_file = \"" + filepath.Join(tmpDir, "odgrip.log") + "\"\n" +
		extraConfig
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0644); err != nil {
		return "", err
	}
	return tmpDir, nil
}
