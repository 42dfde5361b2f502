package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders a data table with headers and rows. When Cursor is a valid
// row index that row is highlighted and marked with ">".
type Table struct {
	Headers []string
	Rows    [][]string
	Widths  []int // Column widths (0 = auto)
	Cursor  int
}

// Render renders the table.
func (t Table) Render(width int, s Styles) string {
	if len(t.Headers) == 0 || len(t.Rows) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		if i < len(t.Widths) && t.Widths[i] > 0 {
			colWidths[i] = t.Widths[i]
		} else {
			colWidths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				w := lipgloss.Width(cell)
				if w > colWidths[i] && (i >= len(t.Widths) || t.Widths[i] == 0) {
					colWidths[i] = w
				}
			}
		}
	}

	var b strings.Builder

	b.WriteString("  ")
	for i, h := range t.Headers {
		b.WriteString(s.SectionName.Render(padRight(h, colWidths[i])))
		if i < len(t.Headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	totalWidth := 2
	for i, w := range colWidths {
		totalWidth += w
		if i < len(colWidths)-1 {
			totalWidth += 2
		}
	}
	if width > 0 && totalWidth > width {
		totalWidth = width
	}
	b.WriteString(s.Muted.Render(strings.Repeat("─", totalWidth)))
	b.WriteString("\n")

	for r, row := range t.Rows {
		var line strings.Builder
		for i := 0; i < len(t.Headers); i++ {
			cell := ""
			if i < len(row) {
				cell = truncateString(row[i], colWidths[i])
			}
			line.WriteString(padRight(cell, colWidths[i]))
			if i < len(t.Headers)-1 {
				line.WriteString("  ")
			}
		}
		if r == t.Cursor {
			b.WriteString(s.Selected.Render("> " + line.String()))
		} else {
			b.WriteString("  " + line.String())
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// KeyHints renders a row of keyboard shortcuts.
//
//	[/] Search    [Enter] Open    [q] Quit
func KeyHints(hints []KeyHint, s Styles) string {
	var parts []string
	for _, h := range hints {
		key := s.KeyBinding.Render("[" + h.Key + "]")
		label := s.KeyHint.Render(h.Label)
		parts = append(parts, key+" "+label)
	}
	return strings.Join(parts, "    ")
}

// KeyHint represents a keyboard shortcut hint.
type KeyHint struct {
	Key   string
	Label string
}

// Divider renders a horizontal divider line.
func Divider(width int, s Styles) string {
	return s.Muted.Render(strings.Repeat("─", width))
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncateString truncates s to max runes, adding "..." if truncated.
func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
