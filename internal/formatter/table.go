// Package formatter renders aligned plain-text tables for CLI output.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderTable renders a header row and data rows as an aligned text table.
// Column widths use display width, so wide (CJK) characters line up. Rows
// shorter than the header are padded with empty cells.
func RenderTable(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	widths := make([]int, colCount)

	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(headers)

	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder

	writeRow := func(row []string) {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			b.WriteString("| ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			b.WriteString(" ")
		}

		b.WriteString("|\n")
	}

	writeRow(headers)

	for i := 0; i < colCount; i++ {
		b.WriteString("|")
		b.WriteString(strings.Repeat("-", widths[i]+2))
	}

	b.WriteString("|\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}
