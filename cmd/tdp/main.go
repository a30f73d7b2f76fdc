package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tdp/internal/cli"
	"tdp/internal/cli/commands"
	"tdp/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tdp",
		Short:   "Test-data parametrization engine",
		Long:    `A data-driven test-parametrization engine. Expand declarative JSON test data into concrete parameter tables, list and validate data files, and browse collection passes interactively.`,
		Version: version,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Create initial config with defaults and .env overrides
	cfg := config.Load(flags.ToConfigFlags())

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "tdp",
	})
	cobra.OnInitialize(func() {
		if flags.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
	})

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, logger)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
