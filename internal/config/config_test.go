package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetDataPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				DataPath:    ".",
				Flags:       Flags{},
			},
			expected: ".",
		},
		{
			name: "with data path flag",
			config: &Config{
				ProjectPath: "/project",
				DataPath:    ".",
				Flags: Flags{
					DataPath: "test",
				},
			},
			expected: filepath.Join("/project", "test"),
		},
		{
			name: "absolute data path flag",
			config: &Config{
				ProjectPath: "/project",
				DataPath:    ".",
				Flags: Flags{
					DataPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
		{
			name: "absolute configured data path",
			config: &Config{
				ProjectPath: "/project",
				DataPath:    "/data",
				Flags:       Flags{},
			},
			expected: "/data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetDataPath(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLoad_FlagOverrides(t *testing.T) {
	cfg := Load(Flags{Workers: 8})
	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}

	cfg = Load(Flags{})
	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected default workers, got %d", cfg.Workers)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TDP_DATA_PATH", "/env/data")
	t.Setenv("TDP_WORKERS", "7")

	cfg := Load(Flags{})
	if cfg.DataPath != "/env/data" {
		t.Errorf("expected env data path, got %q", cfg.DataPath)
	}
	if cfg.Workers != 7 {
		t.Errorf("expected 7 workers from env, got %d", cfg.Workers)
	}

	t.Run("invalid worker count ignored", func(t *testing.T) {
		t.Setenv("TDP_WORKERS", "zero")
		cfg := Load(Flags{})
		if cfg.Workers != DefaultWorkers {
			t.Errorf("expected default workers, got %d", cfg.Workers)
		}
	})
}
