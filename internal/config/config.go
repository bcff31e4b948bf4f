package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// DefaultStyle is the style used when none is requested
	DefaultStyle string `json:"default_style"`

	// Sources to assemble datasets from
	Sources SourcesConfig `json:"sources"`

	// Vocabulary overrides for the detection heuristics.
	// Empty lists mean "use the built-in tables".
	Vocabulary VocabularyConfig `json:"vocabulary"`

	// History controls brief persistence
	History HistoryConfig `json:"history"`
}

// SourcesConfig lists where dataset records come from
type SourcesConfig struct {
	// DatasetFile is a normalized UnifiedDataset JSON file (primary input)
	DatasetFile string `json:"dataset_file,omitempty"`

	// MessageFeeds are RSS/Atom feeds folded into the email list
	MessageFeeds []FeedConfig `json:"message_feeds,omitempty"`
}

// FeedConfig describes one RSS/Atom message feed
type FeedConfig struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// VocabularyConfig lets deployments tune the keyword heuristics
// without a rebuild
type VocabularyConfig struct {
	Churn       []string `json:"churn,omitempty"`
	Support     []string `json:"support,omitempty"`
	Opportunity []string `json:"opportunity,omitempty"`
}

// HistoryConfig controls the sqlite brief history
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	DBPath  string `json:"db_path,omitempty"` // defaults to ~/.brief/brief.db
	Keep    int    `json:"keep"`              // briefs retained per style
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DefaultStyle: "mission_brief",
		Sources:      SourcesConfig{},
		History: HistoryConfig{
			Enabled: true,
			Keep:    30,
		},
	}
}

// DataDir returns ~/.brief, creating it if needed
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".brief")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".brief", "config.json")
}

// DBPath returns the configured history database path, or the default
func (c *Config) DBPath() string {
	if c.History.DBPath != "" {
		return c.History.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".brief", "brief.db")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from an explicit path, or returns defaults
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = "mission_brief"
	}
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
