package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tdp/internal/config"
	"tdp/internal/discovery"
	"tdp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	dataPath := lc.config.GetDataPath()
	files, err := lc.scanner.Scan(dataPath)
	if err != nil {
		return err
	}

	files = lc.filter.FilterByName(files, lc.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No data files found")
		return nil
	}

	if lc.config.Flags.Locations {
		return lc.formatter.PrintLocationTree(files)
	}

	lc.formatter.PrintDataFileList(files)
	return nil
}
