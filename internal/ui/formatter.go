package ui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"tdp/internal/config"
	"tdp/internal/discovery"
	"tdp/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// FormatValue renders one tuple value the way it appears in the data file.
func FormatValue(value domain.Value) string {
	if raw, err := json.Marshal(value); err == nil {
		return string(raw)
	}
	return fmt.Sprintf("%v", value)
}

// FormatTuple renders a tuple as "(v1, v2, ...)".
func FormatTuple(tuple domain.Tuple) string {
	parts := make([]string, len(tuple))
	for i, value := range tuple {
		parts[i] = FormatValue(value)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// PrintResult displays the generated parametrization for one location
func (f *Formatter) PrintResult(loc domain.Location, result domain.Result) {
	switch result.Kind {
	case domain.Parametrized:
		f.printTable(loc, result.Table)
	case domain.Skipped:
		color.Yellow("%s  SKIP [%s]: %s", loc, result.Skip.Code, result.Skip.Message)
	default:
		fmt.Printf("%s  (no parametrization)\n", loc)
	}
}

// printTable displays a parameter table, one row per line
func (f *Formatter) printTable(loc domain.Location, table *domain.Table) {
	header := loc.String()
	if table.Label != "" {
		header += "  [" + table.Label + "]"
	}
	color.Cyan("%s", header)
	color.White("  (%s) × %d row(s)", strings.Join(table.Names, ", "), len(table.Rows))

	for i, row := range table.Rows {
		id := ""
		if i < len(table.IDs) {
			id = "  " + color.YellowString(table.IDs[i])
		}
		fmt.Printf("  %s%s\n", FormatTuple(row), id)
	}
}

// PrintDataFileList prints the discovered data files
func (f *Formatter) PrintDataFileList(files []string) {
	color.Green("Found %d data file(s):\n", len(files))

	for i, file := range files {
		relPath, err := filepath.Rel(f.config.ProjectPath, file)
		if err != nil {
			relPath = file
		}

		if i == len(files)-1 {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}
	}
}

// PrintLocationTree prints the discovered data files with the locations each
// one parametrizes
func (f *Formatter) PrintLocationTree(files []string) error {
	color.Green("Found %d data file(s) with locations:\n", len(files))

	for i, file := range files {
		locations, err := f.parser.Locations(file)
		if err != nil {
			color.Red("Error reading data file %s: %v", file, err)
			continue
		}

		relPath, relErr := filepath.Rel(f.config.ProjectPath, file)
		if relErr != nil {
			relPath = file
		}

		isLastFile := i == len(files)-1
		if isLastFile {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}

		if len(locations) == 0 {
			prefix := "│   └── "
			if isLastFile {
				prefix = "    └── "
			}
			fmt.Printf("%s%s\n", prefix, color.RedString("(no locations found)"))
		} else {
			for j, loc := range locations {
				isLastLoc := j == len(locations)-1

				var prefix string
				if isLastFile {
					if isLastLoc {
						prefix = "    └── "
					} else {
						prefix = "    ├── "
					}
				} else {
					if isLastLoc {
						prefix = "│   └── "
					} else {
						prefix = "│   ├── "
					}
				}

				fmt.Printf("%s%s\n", prefix, color.YellowString(loc.String()))
			}
		}

		if i < len(files)-1 {
			fmt.Println()
		}
	}

	return nil
}

// PrintMetaStats displays the statistics of a collection pass
func (f *Formatter) PrintMetaStats(output *domain.CollectionOutput) error {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Collection Pass Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Locations")
	color.White("%-27d │\n", meta.TotalLocations)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Parametrized")
	color.Green("%-27d │\n", meta.Parametrized)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Unparametrized")
	color.White("%-27d │\n", meta.Unparametrized)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", meta.Skipped)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Parameter Rows")
	color.Green("%-27d │\n", meta.TotalRows)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Skipped == 0 {
		color.Green("✓ All locations collected")
	} else {
		color.Yellow("⚠ %d location(s) skipped:", meta.Skipped)
		for _, detail := range output.Details {
			if detail.Skip == nil {
				continue
			}
			color.Yellow("  %s [%s]: %s", detail.Location, detail.Skip.Code, detail.Skip.Message)
		}
	}

	return nil
}
