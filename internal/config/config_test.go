package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DefaultSimulations != DefaultConfig().DefaultSimulations {
		t.Fatalf("got %d default simulations, want %d",
			cfg.DefaultSimulations, DefaultConfig().DefaultSimulations)
	}
}

func TestLoadOverlaysYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "defaultSimulations: 500\nlistenAddr: \":9000\"\nlogOutput: console\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.DefaultSimulations != 500 {
		t.Fatalf("defaultSimulations = %d, want 500", cfg.DefaultSimulations)
	}
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("listenAddr = %q, want :9000", cfg.ListenAddr)
	}
	// Untouched keys keep their defaults
	if cfg.HistoryLimit != DefaultConfig().HistoryLimit {
		t.Fatalf("historyLimit = %d, want default %d", cfg.HistoryLimit, DefaultConfig().HistoryLimit)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero simulations", "defaultSimulations: 0\n"},
		{"too many simulations", "defaultSimulations: 2000000\n"},
		{"bad log output", "logOutput: syslog\n"},
		{"empty listen addr", "listenAddr: \"\"\n"},
		{"bad history limit", "historyLimit: 0\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected a validation error, got none")
			}
		})
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
