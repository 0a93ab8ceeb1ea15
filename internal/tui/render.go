package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-notebook/models"
)

const (
	maxTitleColumn = 40
	timeLayout     = "2006-01-02 15:04"
)

// RenderTree draws the category forest with box-drawing branches, one
// category per line followed by its id.
func RenderTree(nodes []models.CategoryNode) string {
	if len(nodes) == 0 {
		return mutedStyle.Render("no categories") + "\n"
	}

	var b strings.Builder
	for _, node := range nodes {
		writeNode(&b, node, "", "")
	}
	return b.String()
}

func writeNode(b *strings.Builder, node models.CategoryNode, branch, indent string) {
	fmt.Fprintf(b, "%s%s  %s\n", branch, node.Category.Name, mutedStyle.Render(node.Category.ID))

	for i, child := range node.Children {
		if i == len(node.Children)-1 {
			writeNode(b, child, indent+"└── ", indent+"    ")
		} else {
			writeNode(b, child, indent+"├── ", indent+"│   ")
		}
	}
}

// RenderNotes draws notes as an aligned table: id, title, state, last update.
func RenderNotes(notes []models.Note) string {
	if len(notes) == 0 {
		return mutedStyle.Render("no notes") + "\n"
	}

	header := []string{"ID", "TITLE", "STATE", "UPDATED"}
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		state := "sealed"
		if n.IsPlaceholder() {
			state = "empty"
		}
		rows = append(rows, []string{
			n.ID,
			fitText(n.Title, maxTitleColumn),
			state,
			n.UpdatedAt.Local().Format(timeLayout),
		})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow(&b, header, widths, true)
	for _, row := range rows {
		writeRow(&b, row, widths, false)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int, header bool) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		padded := cell
		if i < len(cells)-1 {
			padded = padRight(cell, widths[i])
		}
		if header {
			padded = titleStyle.Render(padded)
		}
		b.WriteString(padded)
	}
	b.WriteString("\n")
}

// RenderError formats a user-facing error line.
func RenderError(msg string) string {
	return errorStyle.Render("error: "+msg) + "\n"
}

// RenderSuccess formats a confirmation line.
func RenderSuccess(msg string) string {
	return successStyle.Render(msg) + "\n"
}
