package render

import (
	"fmt"
	"strings"

	"bonus-reconciliation/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Bar is one duplicated client id in the duplicate chart.
type Bar struct {
	ClientID string          `json:"client_id"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"bonus_total"`
	// Unparsed counts bonus amounts left out of Total because they are not numbers.
	Unparsed int `json:"unparsed_amounts,omitempty"`
}

// DuplicateBars sums the report rows of each duplicated client, in report order.
func DuplicateBars(report *domain.DuplicateReport) []Bar {
	bars := make([]Bar, 0, len(report.Clients))
	rows := report.Rows

	for _, c := range report.Clients {
		n := min(c.Rows, len(rows))
		bar := Bar{ClientID: c.ClientID, Count: n}
		for _, rec := range rows[:n] {
			amount, err := decimal.NewFromString(strings.TrimSpace(rec.BonusAmount))
			if err != nil {
				bar.Unparsed++
				continue
			}
			bar.Total = bar.Total.Add(amount)
		}
		rows = rows[n:]
		bars = append(bars, bar)
	}
	return bars
}

// Chart draws one horizontal bar per entry, scaled so the longest bar is width cells.
func Chart(bars []Bar, width int, styles Styles) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 1 {
		width = 1
	}

	maxCount, labelWidth := 0, 0
	for _, b := range bars {
		maxCount = max(maxCount, b.Count)
		labelWidth = max(labelWidth, lipgloss.Width(b.ClientID))
	}

	var sb strings.Builder
	label := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right)
	for _, b := range bars {
		n := max(1, b.Count*width/maxCount)
		total := b.Total.String()
		if b.Unparsed > 0 {
			total = fmt.Sprintf("%s (+%d unparsed)", total, b.Unparsed)
		}

		sb.WriteString(label.Render(b.ClientID))
		sb.WriteString(styles.Muted.Render(" │ "))
		sb.WriteString(styles.Bar.Render(strings.Repeat("█", n)))
		fmt.Fprintf(&sb, " %d", b.Count)
		sb.WriteString(styles.Muted.Render("  bonus " + total))
		sb.WriteString("\n")
	}
	return sb.String()
}
