package render

import (
	"fmt"
	"strings"

	"bonus-reconciliation/internal/domain"
)

const (
	MsgNoDuplicates = "no duplicate client ids found"
	MsgNoCommonIDs  = "no client ids in common"
	MsgNoClientIDs  = "no client ids in either dataset"
)

// DuplicatesMessage summarises a duplicate report in one line.
func DuplicatesMessage(r *domain.DuplicateReport) string {
	if r.Empty() {
		return fmt.Sprintf("%s: %s in %d rows", r.Dataset, MsgNoDuplicates, r.TotalRows)
	}
	return fmt.Sprintf("%s: %d duplicated client ids across %d of %d rows (duplicate id ratio %s)",
		r.Dataset, r.DuplicateIDCount, len(r.Rows), r.TotalRows, r.DuplicateFraction)
}

// ComparisonMessage summarises a comparison report in one line.
func ComparisonMessage(r *domain.ComparisonReport) string {
	s := r.Summary
	prefix := fmt.Sprintf("%s vs %s (%s)", s.DatasetA, s.DatasetB, r.Mode)

	switch r.Mode {
	case domain.ModeClassification:
		if r.Empty() {
			return prefix + ": " + MsgNoClientIDs
		}
		return fmt.Sprintf("%s: %d in both, %d only in A, %d only in B (common ratio %s)",
			prefix, s.CommonIDCount, s.OnlyACount, s.OnlyBCount, s.CommonFraction)
	default:
		if r.Empty() {
			return prefix + ": " + MsgNoCommonIDs
		}
		return fmt.Sprintf("%s: %d client ids in common, %d rows", prefix, s.CommonIDCount, r.Len())
	}
}

// SchemaFailure renders a rejected dataset with its missing columns.
func SchemaFailure(err *domain.SchemaError, styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Failure.Render(fmt.Sprintf("%s is missing required columns:", err.Dataset)))
	sb.WriteString("\n")
	for _, col := range err.Missing {
		sb.WriteString("  - ")
		sb.WriteString(col)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Info renders an informational line.
func Info(msg string, styles Styles) string {
	return styles.Info.Render(msg) + "\n"
}
