// Package logging generates the analysis report written alongside the
// combined output. This file holds the aligned-column table renderer used
// for the per-clip pitch listing.
package logging

import (
	"fmt"
	"strings"
)

// Table formats rows of strings into aligned columns. Clip names are
// left-aligned, numeric columns right-aligned, trailing notes left-aligned.
type Table struct {
	Headers []string
	Rows    [][]string

	// RightAlign marks columns to right-align (numeric columns). Columns
	// beyond the slice default to left alignment.
	RightAlign []bool
}

// String renders the table with a header row and a separator line.
func (t *Table) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i := range t.Headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				sb.WriteString("  ")
			}
			switch {
			case t.rightAligned(i):
				sb.WriteString(fmt.Sprintf("%*s", widths[i], cell))
			case i == len(t.Headers)-1:
				// Last left-aligned column needs no padding.
				sb.WriteString(cell)
			default:
				sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers)
	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	sb.WriteString(strings.Repeat("-", total))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
	return sb.String()
}

func (t *Table) rightAligned(i int) bool {
	return i < len(t.RightAlign) && t.RightAlign[i]
}
