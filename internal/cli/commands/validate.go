package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tdp/internal/config"
	"tdp/internal/discovery"
	"tdp/internal/domain"
	"tdp/internal/store"
)

// ValidateCommand handles the validate command
type ValidateCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	parser  *discovery.Parser
	store   store.Store
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *discovery.Parser,
	st store.Store,
) *ValidateCommand {
	return &ValidateCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		parser:  parser,
		store:   st,
	}
}

// Execute runs the command
func (vc *ValidateCommand) Execute(cmd *cobra.Command, args []string) error {
	dataPath := vc.config.GetDataPath()
	files, err := vc.scanner.Scan(dataPath)
	if err != nil {
		return err
	}

	files = vc.filter.FilterByName(files, vc.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No data files found")
		return nil
	}

	var errors, warnings int
	for _, file := range files {
		locations, err := vc.parser.Locations(file)
		if err != nil {
			color.Red("✗ %s: %v", file, err)
			errors++
			continue
		}

		for _, loc := range locations {
			warnings += vc.checkLocation(loc)
		}
	}

	fmt.Println()
	if errors == 0 && warnings == 0 {
		color.Green("✓ %d data file(s) valid", len(files))
		return nil
	}
	if errors == 0 {
		color.Yellow("⚠ %d warning(s) across %d data file(s)", warnings, len(files))
		return nil
	}
	return fmt.Errorf("%d unreadable data file(s), %d warning(s)", errors, warnings)
}

// checkLocation resolves one location and reports lenient-default behaviors
// its spec would trigger. Returns the number of warnings printed.
func (vc *ValidateCommand) checkLocation(loc domain.Location) int {
	spec, err := vc.store.Resolve(loc)
	if err != nil {
		// Files were parsed by the location pass already; anything left is
		// a shape oddity worth surfacing, not a hard failure.
		color.Yellow("⚠ %s: %v", loc, err)
		return 1
	}

	warnings := 0
	if !spec.StrategyKnown {
		color.Yellow("⚠ %s: unrecognized strategy falls back to zip", loc)
		warnings++
	}

	if spec.Strategy == domain.Zip && unequalLengths(spec.Arguments) {
		color.Yellow("⚠ %s: zip with unequal value-list lengths truncates to the shortest", loc)
		warnings++
	}

	if spec.Exclude != nil {
		if !spec.Exclude.StrategyKnown || spec.Exclude.Strategy == domain.Zip {
			color.Yellow("⚠ %s: exclusion strategy always expands as product", loc)
			warnings++
		}
		parent := make(map[string]bool)
		for _, name := range spec.Arguments.Names() {
			parent[name] = true
		}
		for _, arg := range spec.Exclude.Arguments {
			if !parent[arg.Name] {
				color.Yellow("⚠ %s: exclusion argument %q is not a spec argument", loc, arg.Name)
				warnings++
			}
		}
	}

	return warnings
}

func unequalLengths(args domain.Arguments) bool {
	if len(args) < 2 {
		return false
	}
	for _, arg := range args[1:] {
		if len(arg.Values) != len(args[0].Values) {
			return true
		}
	}
	return false
}
