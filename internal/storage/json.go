package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tdp/internal/config"
	"tdp/internal/domain"
)

// JSONStorage stores collection outputs in a JSON file under the configured
// output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// SaveOutput writes the full collection output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.CollectionOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// Load reads the last collection output from the configured JSON file.
func (s *JSONStorage) Load() (*domain.CollectionOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection file: %w", err)
	}
	var output domain.CollectionOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}
	return &output, nil
}
