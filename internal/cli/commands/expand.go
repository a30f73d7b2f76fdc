package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tdp/internal/collect"
	"tdp/internal/config"
	"tdp/internal/discovery"
	"tdp/internal/domain"
	"tdp/internal/engine"
	"tdp/internal/storage"
	"tdp/internal/ui"
)

// ExpandCommand handles the expand command
type ExpandCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	parser    *discovery.Parser
	engine    *engine.Engine
	pool      *collect.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewExpandCommand creates a new ExpandCommand
func NewExpandCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *discovery.Parser,
	eng *engine.Engine,
	pool *collect.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
) *ExpandCommand {
	return &ExpandCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		parser:    parser,
		engine:    eng,
		pool:      pool,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (ec *ExpandCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return ec.expandOne(args[0])
	}
	return ec.expandAll()
}

// expandOne expands a single module[::Class]::function location
func (ec *ExpandCommand) expandOne(arg string) error {
	loc, err := domain.ParseLocation(arg)
	if err != nil {
		return err
	}

	result := ec.engine.Generate(loc)
	ec.formatter.PrintResult(loc, result)
	return nil
}

// expandAll runs a collection pass over every discovered location
func (ec *ExpandCommand) expandAll() error {
	dataPath := ec.config.GetDataPath()
	files, err := ec.scanner.Scan(dataPath)
	if err != nil {
		return err
	}

	files = ec.filter.FilterByName(files, ec.config.Flags.NameFilter)

	var locations []domain.Location
	for _, file := range files {
		locs, err := ec.parser.Locations(file)
		if err != nil {
			color.Yellow("Skipping unreadable data file %s: %v", file, err)
			continue
		}
		locations = append(locations, locs...)
	}

	if len(locations) == 0 {
		color.Yellow("No locations to expand")
		return nil
	}

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(locations))
	ec.pool.SetProgress(progressBar)

	collections, duration, err := ec.pool.Collect(locations)
	if err != nil {
		return err
	}

	output := storage.BuildOutput(collections, duration, ec.config.Workers)

	if !ec.config.Flags.NoSave {
		if err := ec.storage.SaveOutput(output); err != nil {
			return fmt.Errorf("failed to save collection report: %w", err)
		}
	}

	return ec.formatter.PrintMetaStats(output)
}
