package render

import (
	"strings"

	"bonus-reconciliation/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// Table renders t with a title line, a header row and a divider.
// Rows shorter than the header are padded with empty cells.
func Table(title string, t domain.Table, styles Styles) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(styles.Title.Render(title))
		sb.WriteString("\n")
	}
	if len(t.Columns) == 0 {
		return sb.String()
	}

	// lipgloss widths include padding
	widths := make([]int, len(t.Columns))
	for i, h := range t.Columns {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	sep := styles.Muted.Render("|")
	writeRow := func(cells []string, style lipgloss.Style) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(style.Width(w).Render(cell))
			if i < len(widths)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Columns, styles.Header)
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row, styles.Cell)
	}

	return sb.String()
}
