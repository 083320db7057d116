// Package file provides the TOML application config: catalog API access
// and storage locations. User data does not live here; it belongs to the
// key-value store.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for a fresh config.
const (
	defaultBaseURL  = "https://api.spoonacular.com"
	defaultCacheTTL = 10 * time.Minute

	configFileName = "config.toml"
)

// envAPIKey overrides the configured catalog API key when set.
const envAPIKey = "PLATEFUL_API_KEY"

// CatalogConfig holds recipe catalog API settings.
type CatalogConfig struct {
	// APIKey authenticates against the catalog API.
	APIKey string `toml:"api_key"`

	// BaseURL is the catalog endpoint.
	BaseURL string `toml:"base_url"`

	// CacheTTLMinutes is how long catalog responses stay cached.
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`
}

// StorageConfig holds local storage settings.
type StorageConfig struct {
	// DataDir is where the key-value database lives. Empty means the
	// default under the config directory.
	DataDir string `toml:"data_dir"`
}

// Config is the application configuration.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Storage StorageConfig `toml:"storage"`

	path string
}

// DefaultConfig returns a config with documented defaults and no API key.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:         defaultBaseURL,
			CacheTTLMinutes: int(defaultCacheTTL.Minutes()),
		},
	}
}

// Load reads the config from configDir, defaulting to ~/.plateful.
// A missing file yields the defaults; the file is not created until Save.
func Load(configDir string) (*Config, error) {
	dir, err := resolveDir(configDir)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.path = filepath.Join(dir, configFileName)

	data, err := os.ReadFile(cfg.path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = defaultBaseURL
	}
	if cfg.Catalog.CacheTTLMinutes <= 0 {
		cfg.Catalog.CacheTTLMinutes = int(defaultCacheTTL.Minutes())
	}
	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config with restricted permissions (it holds the API
// key).
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(c.path, data, 0600)
}

// Path returns the configuration file path.
func (c *Config) Path() string {
	return c.path
}

// CacheTTL returns the catalog cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Catalog.CacheTTLMinutes) * time.Minute
}

// DataDir returns the key-value store directory, defaulting to a data
// directory next to the config file.
func (c *Config) DataDir() string {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir
	}
	return filepath.Join(filepath.Dir(c.path), "data")
}

func (c *Config) applyEnv() {
	if key := os.Getenv(envAPIKey); key != "" {
		c.Catalog.APIKey = key
	}
}

func resolveDir(configDir string) (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".plateful"), nil
}
