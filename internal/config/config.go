package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	DataPath    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Collection settings
	Workers int

	// Directories to ignore when scanning for data files
	DirsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers    int
	DataPath   string
	NameFilter string
	Locations  bool
	NoSave     bool
	Verbose    bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		DataPath:       DefaultDataPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
		Flags:          Flags{Workers: DefaultWorkers},
	}
	cfg.DirsToIgnore = make([]string, len(DefaultDirsToIgnore))
	copy(cfg.DirsToIgnore, DefaultDirsToIgnore)
	return cfg
}

// Load creates a config, applies .env overrides, then applies flags.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.applyEnv()
	cfg.Flags = flags

	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}

	return cfg
}

// applyEnv loads a .env file when present and applies TDP_* overrides.
// A missing .env file is not an error.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	_ = godotenv.Load(envPath)

	if dataPath := os.Getenv("TDP_DATA_PATH"); dataPath != "" {
		c.DataPath = dataPath
	}
	if workers := os.Getenv("TDP_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			c.Workers = n
		}
	}
}

// GetDataPath returns the test-data directory, using the flag if provided
func (c *Config) GetDataPath() string {
	if c.Flags.DataPath != "" {
		if filepath.IsAbs(c.Flags.DataPath) {
			return c.Flags.DataPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.DataPath)
	}

	if filepath.IsAbs(c.DataPath) {
		return c.DataPath
	}
	return filepath.Join(c.ProjectPath, c.DataPath)
}

// GetOutputPath returns the full path to the output JSON file (under project so expand and view use the same file).
// Resolves to an absolute path so expand and view always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
