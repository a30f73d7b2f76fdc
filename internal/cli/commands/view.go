package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tdp/internal/config"
	"tdp/internal/storage"
	"tdp/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := vc.storage.Load()
	if err != nil {
		return fmt.Errorf("no collection report to view (run 'tdp expand' first): %w", err)
	}

	return vc.viewer.View(output)
}
