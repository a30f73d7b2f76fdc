package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tdp/internal/config"
	"tdp/internal/domain"
)

// TableViewer displays the parameter tables of a collection pass in an
// interactive TUI
type TableViewer struct {
	config *config.Config
}

// NewTableViewer creates a new TableViewer
func NewTableViewer(cfg *config.Config) *TableViewer {
	return &TableViewer{config: cfg}
}

// View displays the collection output in an interactive TUI
func (tv *TableViewer) View(output *domain.CollectionOutput) error {
	if len(output.Details) == 0 {
		color.Yellow("No collected locations to view")
		return nil
	}

	app := tview.NewApplication()

	// List of locations (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, detail := range output.Details {
		list.AddItem(listItemText(i, detail), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header view (shows location and status)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Parameter table detail (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Collection (%d locations: %d parametrized, %d skipped) | ↑↓ navigate, → view table, ← back, Ctrl+C exit ",
		output.Meta.TotalLocations, output.Meta.Parametrized, output.Meta.Skipped))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(output.Details) {
			return
		}
		detail := output.Details[index]
		statsView.SetText(formatDetailStats(detail, index+1))
		detailsView.SetText(formatDetailTable(detail))
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	// Key handling: left/right switch focus between list and table
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyLeft:
			app.SetFocus(list)
			return nil
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	return app.SetRoot(layout, true).Run()
}

// listItemText formats one list entry, colored by status
func listItemText(index int, detail domain.CollectionDetail) string {
	switch detail.Status {
	case "parametrized":
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, detail.Location)
	case "skipped":
		return fmt.Sprintf("[yellow]%d.[red] %s[white]", index+1, detail.Location)
	}
	return fmt.Sprintf("[yellow]%d.[gray] %s[white]", index+1, detail.Location)
}

// formatDetailStats formats the stats header for one detail
func formatDetailStats(detail domain.CollectionDetail, number int) string {
	rows := 0
	if detail.Table != nil {
		rows = len(detail.Table.Rows)
	}
	return fmt.Sprintf(" [yellow]%d.[white] %s\n [cyan]status:[white] %s  [cyan]rows:[white] %d",
		number, detail.Location, detail.Status, rows)
}

// formatDetailTable renders a parameter table (or skip reason) as text
func formatDetailTable(detail domain.CollectionDetail) string {
	if detail.Skip != nil {
		return fmt.Sprintf("\n[red]SKIP[white] [%s]\n\n%s", detail.Skip.Code, detail.Skip.Message)
	}
	if detail.Table == nil {
		return "\n[gray]No parametrization for this location.[white]"
	}

	var builder strings.Builder
	writer := tabwriter.NewWriter(&builder, 0, 4, 2, ' ', 0)

	fmt.Fprintf(writer, "#\t%s\n", strings.Join(detail.Table.Names, "\t"))
	for i, row := range detail.Table.Rows {
		cells := make([]string, len(row))
		for j, value := range row {
			cells[j] = FormatValue(value)
		}
		id := ""
		if i < len(detail.Table.IDs) {
			id = "\t" + detail.Table.IDs[i]
		}
		fmt.Fprintf(writer, "%d\t%s%s\n", i+1, strings.Join(cells, "\t"), id)
	}
	writer.Flush()

	return "\n" + builder.String()
}
