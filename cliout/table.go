package cliout

import (
	"fmt"
	"strings"
)

// minLastColWidth keeps the final column readable on narrow terminals
// before truncation gives up entirely.
const minLastColWidth = 10

// Table prints rows as a left-aligned column layout with a bold header.
// Every column except the last is sized to its widest cell; the last
// column absorbs the remaining terminal width and is truncated with an
// ellipsis when a cell overflows it.
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths)-1 && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Width left over for the last column: total minus the fixed columns
	// and the two-space gutters between them.
	last := len(headers) - 1
	avail := TermWidth()
	for i := 0; i < last; i++ {
		avail -= widths[i] + 2
	}
	if avail < minLastColWidth {
		avail = minLastColWidth
	}

	printRow := func(cells []string, style string) {
		parts := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == last {
				parts[i] = truncate(cell, avail)
			} else {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			}
		}
		line := strings.Join(parts, "  ")
		if style != "" {
			line = colorize(style, line)
		}
		fmt.Println(line)
	}

	printRow(headers, Bold)
	for _, row := range rows {
		printRow(row, "")
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
