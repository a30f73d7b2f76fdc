package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tdp/internal/cli"
	"tdp/internal/collect"
	"tdp/internal/config"
	"tdp/internal/discovery"
	"tdp/internal/engine"
	"tdp/internal/storage"
	"tdp/internal/store"
	"tdp/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Expand   *ExpandCommand
	List     *ListCommand
	Validate *ValidateCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *log.Logger) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.DirsToIgnore)
	filter := discovery.NewFilter()
	locationParser := discovery.NewParser()
	dataStore := store.NewJSONStore(cfg)
	eng := engine.New(dataStore, logger)
	pool := collect.NewWorkerPool(cfg, eng)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, locationParser)
	viewer := ui.NewTableViewer(cfg)

	return &Commands{
		Expand:   NewExpandCommand(cfg, scanner, filter, locationParser, eng, pool, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Validate: NewValidateCommand(cfg, scanner, filter, locationParser, dataStore),
		View:     NewViewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		if flags.Workers > 0 {
			cfg.Workers = flags.Workers
		}
		return nil
	}

	// Expand command
	expandCmd := &cobra.Command{
		Use:   "expand [location]",
		Short: "Expand parametrization specs into parameter tables",
		Long: "Expand the spec for one module[::Class]::function location, or every " +
			"location in the discovered data files when no location is given",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Expand.Execute,
		PreRunE: applyFlags,
	}
	expandCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 4, "Number of collection workers to use")
	expandCmd.Flags().StringVarP(&flags.DataPath, "data-path", "d", "", "Path to the folder where data-file discovery should start")
	expandCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter data files by name pattern (supports wildcards, e.g., '*math*' or 'data.json')")
	expandCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not write the collection report to storage")
	rootCmd.AddCommand(expandCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered data files",
		Long:    "Scan and list all test-data files without expanding them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter data files by name pattern (supports wildcards, e.g., '*math*' or 'data.json')")
	listCmd.Flags().StringVarP(&flags.DataPath, "data-path", "d", "", "Path to the folder where data-file discovery should start")
	listCmd.Flags().BoolVarP(&flags.Locations, "locations", "l", false, "List the locations each data file parametrizes")
	rootCmd.AddCommand(listCmd)

	// Validate command
	validateCmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validate test-data files",
		Long:    "Parse every data file and report malformed documents, strategy fallbacks and degenerate zip specs",
		RunE:    c.Validate.Execute,
		PreRunE: applyFlags,
	}
	validateCmd.Flags().StringVarP(&flags.DataPath, "data-path", "d", "", "Path to the folder where data-file discovery should start")
	validateCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter data files by name pattern")
	rootCmd.AddCommand(validateCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "View the last collection pass interactively",
		Long:  "Display the parameter tables from the last collection pass in an interactive viewer",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
