package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	PackageName     string `json:"package_name"`
	ProjectLabel    string `json:"project_label,omitempty"`
	IndexURL        string `json:"index_url"`
	StagingIndexURL string `json:"staging_index_url"`
	ManifestPath    string `json:"manifest_path"`
	VersionRecord   string `json:"version_record"`
	TemplatesDir    string `json:"templates_dir"`
	GitHubToken     string `json:"github_token,omitempty"`
	Language        string `json:"language"`
	CacheTTLMinutes int    `json:"cache_ttl_minutes"`
	PathFile        string `json:"path_file"`
}

const (
	defaultLang       = "en"
	defaultIndexURL   = "https://pypi.org/pypi"
	defaultStagingURL = "https://test.pypi.org/pypi"
	defaultManifest   = "pyproject.toml"
	defaultRecord     = "VERSION.json"
	defaultTemplates  = "templates/release-notes"
	defaultCacheTTL   = 5
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".releasecraft")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	applyDefaults(&config)
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded config is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:        defaultLang,
		IndexURL:        defaultIndexURL,
		StagingIndexURL: defaultStagingURL,
		ManifestPath:    defaultManifest,
		VersionRecord:   defaultRecord,
		TemplatesDir:    defaultTemplates,
		CacheTTLMinutes: defaultCacheTTL,
		PathFile:        path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// Project returns the label used in release titles and draft cleanup,
// falling back to the package name.
func (c *Config) Project() string {
	if c.ProjectLabel != "" {
		return c.ProjectLabel
	}
	return c.PackageName
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.IndexURL == "" {
		config.IndexURL = defaultIndexURL
	}
	if config.StagingIndexURL == "" {
		config.StagingIndexURL = defaultStagingURL
	}
	if config.ManifestPath == "" {
		config.ManifestPath = defaultManifest
	}
	if config.VersionRecord == "" {
		config.VersionRecord = defaultRecord
	}
	if config.TemplatesDir == "" {
		config.TemplatesDir = defaultTemplates
	}
	if config.CacheTTLMinutes <= 0 {
		config.CacheTTLMinutes = defaultCacheTTL
	}
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language must not be empty")
	}
	if config.IndexURL == "" {
		return errors.New("index URL must not be empty")
	}
	if config.CacheTTLMinutes <= 0 {
		return errors.New("cache TTL must be greater than 0")
	}
	return nil
}
