package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tailscale/hujson"

	"github.com/ghfeed/ghfeed/internal/feed"
)

// Config holds application configuration. It is constructed once at
// startup and passed by value into the core; nothing below cmd/ reads
// ambient process state.
type Config struct {
	// Token authenticates against the GitHub API. Falls back to the
	// GITHUB_TOKEN environment variable when empty.
	Token string `json:"token,omitempty"`

	// Organizations are the candidate organizations; the first is the
	// default when no positional argument selects one.
	Organizations []string `json:"organizations"`

	// Teams whose review queues are folded into the to-review view.
	Teams []string `json:"teams"`

	// WorkOrganizations are repository-name prefixes whose items get a
	// priority boost. Defaults to Organizations.
	WorkOrganizations []string `json:"workOrganizations"`

	// ListLimit caps the full listing; 0 means unlimited.
	ListLimit int `json:"listLimit"`

	// FeedLimit caps the notification summary.
	FeedLimit int `json:"feedLimit"`

	// DoneWindowDays is how far back the done view looks for recently
	// closed assigned items.
	DoneWindowDays int `json:"doneWindowDays"`

	// TodoFile overrides the todo storage path.
	TodoFile string `json:"todoFile,omitempty"`
}

// Defaults
const (
	DefaultFeedLimit = 10
)

// DefaultConfigDir returns the platform-appropriate config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "ghfeed")
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, ".config", "ghfeed")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ghfeed")
		}
		return filepath.Join(home, ".config", "ghfeed")
	default: // linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "ghfeed")
		}
		return filepath.Join(home, ".config", "ghfeed")
	}
}

// Load reads the config file, returning defaults for missing fields.
// The file may contain comments and trailing commas.
func Load() (*Config, error) {
	return loadFrom(filepath.Join(DefaultConfigDir(), "config.json"))
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	dir := DefaultConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(dir, "config.json")
	tmpPath := configPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename config: %w", err)
	}

	return nil
}

// ResolveOrganization picks the organization for a run: the positional
// argument if given, otherwise the first configured candidate. With
// neither, it fails with feed.ErrNoOrganization.
func (c *Config) ResolveOrganization(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if len(c.Organizations) > 0 {
		return c.Organizations[0], nil
	}
	return "", fmt.Errorf("%w: pass one as an argument or set \"organizations\" in the config file", feed.ErrNoOrganization)
}

// WorkPrefixes returns the repository-name prefixes that earn the
// priority boost, falling back to the organization list.
func (c *Config) WorkPrefixes() []string {
	if len(c.WorkOrganizations) > 0 {
		return c.WorkOrganizations
	}
	return c.Organizations
}

// TodoPath returns the todo storage path.
func (c *Config) TodoPath() string {
	if c.TodoFile != "" {
		return c.TodoFile
	}
	return filepath.Join(DefaultConfigDir(), "todo.json")
}

// ResolveToken returns the configured token, falling back to the
// GITHUB_TOKEN environment variable.
func (c *Config) ResolveToken() string {
	if c.Token != "" {
		return c.Token
	}
	return os.Getenv("GITHUB_TOKEN")
}

func applyDefaults(cfg *Config) {
	if cfg.FeedLimit == 0 {
		cfg.FeedLimit = DefaultFeedLimit
	}
	if cfg.DoneWindowDays == 0 {
		cfg.DoneWindowDays = feed.DefaultDoneWindowDays
	}
}
