// Package config handles the global configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/issuekit/config.yml.
type GlobalConfig struct {
	LookupBaseURL string  `yaml:"lookup_base_url,omitempty"`
	Mailto        string  `yaml:"mailto,omitempty"`
	LookupRate    float64 `yaml:"lookup_rate,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "issuekit"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/issuekit/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetMailto returns the contact address for resolver requests, preferring
// the ISSUEKIT_MAILTO environment variable over the config file.
func GetMailto() string {
	if v := os.Getenv("ISSUEKIT_MAILTO"); v != "" {
		return v
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.Mailto
}

// GetLookupBaseURL returns the metadata resolver base URL, preferring
// the ISSUEKIT_LOOKUP_URL environment variable over the config file.
func GetLookupBaseURL() string {
	if v := os.Getenv("ISSUEKIT_LOOKUP_URL"); v != "" {
		return v
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.LookupBaseURL
}

// GetLookupRate returns the resolver request rate in requests per second,
// or zero when unset.
func GetLookupRate() float64 {
	cfg, _ := LoadGlobalConfig()
	return cfg.LookupRate
}
