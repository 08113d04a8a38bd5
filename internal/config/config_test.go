package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadConfig(home)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "https://pypi.org/pypi", cfg.IndexURL)
	assert.Equal(t, "https://test.pypi.org/pypi", cfg.StagingIndexURL)
	assert.Equal(t, "pyproject.toml", cfg.ManifestPath)
	assert.Equal(t, "VERSION.json", cfg.VersionRecord)
	assert.Equal(t, 5, cfg.CacheTTLMinutes)

	_, err = os.Stat(filepath.Join(home, ".releasecraft", "config.json"))
	assert.NoError(t, err)
}

func TestLoadConfig_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	existing := map[string]interface{}{
		"package_name":  "adri",
		"project_label": "ADRI",
		"language":      "en",
		"index_url":     "https://pypi.example/pypi",
	}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "adri", cfg.PackageName)
	assert.Equal(t, "ADRI", cfg.Project())
	assert.Equal(t, "https://pypi.example/pypi", cfg.IndexURL)
	// omitted fields pick up defaults
	assert.Equal(t, "pyproject.toml", cfg.ManifestPath)
	assert.Equal(t, "templates/release-notes", cfg.TemplatesDir)
	assert.Equal(t, path, cfg.PathFile)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	cfg.PackageName = "adri"
	cfg.GitHubToken = "token-123"
	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "adri", loaded.PackageName)
	assert.Equal(t, "token-123", loaded.GitHubToken)
}

func TestSaveConfig_WithoutPath(t *testing.T) {
	cfg := &Config{
		Language:        "en",
		IndexURL:        "https://pypi.org/pypi",
		CacheTTLMinutes: 5,
	}
	assert.Error(t, SaveConfig(cfg))
}

func TestProject_FallsBackToPackageName(t *testing.T) {
	cfg := &Config{PackageName: "adri"}
	assert.Equal(t, "adri", cfg.Project())

	cfg.ProjectLabel = "ADRI Validator"
	assert.Equal(t, "ADRI Validator", cfg.Project())
}
