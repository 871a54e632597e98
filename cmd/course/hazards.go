package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-course/internal/registry"

	// Import blocks to register them
	_ "github.com/vovakirdan/hazard-course/internal/blocks"
)

var hazardsCmd = &cobra.Command{
	Use:   "hazards",
	Short: "List all registered block kinds",
	Long:  `Shows every block kind a course can be built from.`,
	Run:   runHazards,
}

func runHazards(cmd *cobra.Command, args []string) {
	fmt.Println(renderHazards(registry.List()))
}

// renderHazards draws the registered kinds as a table. Start and end
// blocks are listed but cannot appear in a palette.
func renderHazards(kinds []registry.BuilderInfo) string {
	if len(kinds) == 0 {
		return "No blocks registered."
	}

	rows := make([][]string, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, []string{k.ID, k.Title})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 && !isTerminalBlock(rows[row][0]) {
				return hazardStyle
			}
			return cellStyle
		})

	title := titleStyle.Render("Available blocks")
	hint := "Hazard ids can be used in the course.palette config list."
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String(), hint)
}

func isTerminalBlock(id string) bool {
	return id == "start" || id == "end"
}
