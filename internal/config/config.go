package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config contains every tunable of the simulator tool in one place.
type Config struct {
	// AssetsPath is the base directory for everything the tool writes
	AssetsPath string `yaml:"assetsPath"`

	// ResultsDir is where rendered result files are written
	ResultsDir string `yaml:"resultsDir"`

	// DbPath is the location of the run-history sqlite database
	DbPath string `yaml:"dbPath"`

	// LogOutput routes logs: "console" or "file"
	LogOutput string `yaml:"logOutput"`

	// LogFilePath is the log file used when LogOutput is "file"
	LogFilePath string `yaml:"logFilePath"`

	// DefaultSimulations is the batch size used when none is given
	DefaultSimulations int `yaml:"defaultSimulations"`

	// ListenAddr is the HTTP bind address of serve mode
	ListenAddr string `yaml:"listenAddr"`

	// HistoryLimit caps how many runs the history command shows
	HistoryLimit int `yaml:"historyLimit"`
}

// DefaultConfig returns the default configuration with all standard values
func DefaultConfig() *Config {
	base := ".scoresim"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".scoresim")
	}

	return &Config{
		AssetsPath:         base,
		ResultsDir:         filepath.Join(base, "results"),
		DbPath:             filepath.Join(base, "scoresim.db"),
		LogOutput:          "console",
		LogFilePath:        filepath.Join(base, "scoresim.log"),
		DefaultSimulations: 100,
		ListenAddr:         ":8642",
		HistoryLimit:       20,
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all configuration values are within reasonable ranges
func (c *Config) Validate() error {
	if c.DefaultSimulations < 1 || c.DefaultSimulations > 1_000_000 {
		return fmt.Errorf("defaultSimulations must be between 1 and 1000000, got: %d", c.DefaultSimulations)
	}

	switch c.LogOutput {
	case "console", "file":
	default:
		return fmt.Errorf("logOutput must be \"console\" or \"file\", got: %q", c.LogOutput)
	}

	if c.HistoryLimit < 1 {
		return fmt.Errorf("historyLimit must be at least 1, got: %d", c.HistoryLimit)
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("listenAddr must not be empty")
	}

	return nil
}

// EnsureDirs creates the directories the tool writes into.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.AssetsPath, c.ResultsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
