package engine

import (
	"fmt"
	"slices"

	"bonus-reconciliation/internal/domain"
)

// Compare runs the comparison selected by mode over datasets a and b.
func Compare(mode domain.Mode, a, b domain.Dataset, schema domain.Schema) (*domain.ComparisonReport, error) {
	switch mode {
	case domain.ModeCommonRows:
		return CommonRows(a, b, schema)
	case domain.ModeClassification:
		return Classify(a, b, schema)
	case domain.ModeJoin:
		return Join(a, b, schema)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}
}

// projectPair checks both schemas before any work is done. Ids are keyed by
// value only when both id columns are numeric.
func projectPair(a, b domain.Dataset, schema domain.Schema) (projector, projector, error) {
	pa, err := newProjector(a, schema)
	if err != nil {
		return projector{}, projector{}, err
	}
	pb, err := newProjector(b, schema)
	if err != nil {
		return projector{}, projector{}, err
	}
	keyer := idKeyer{numeric: pa.keyer.numeric && pb.keyer.numeric}
	pa.keyer, pb.keyer = keyer, keyer
	return pa, pb, nil
}

func newComparison(mode domain.Mode, a, b domain.Dataset, schema domain.Schema) *domain.ComparisonReport {
	return &domain.ComparisonReport{
		Mode:   mode,
		Schema: schema,
		Summary: domain.ComparisonSummary{
			DatasetA: a.Name,
			DatasetB: b.Name,
		},
	}
}

// CommonRows returns every row of a and b whose client id occurs in both
// datasets, tagged with its origin and sorted by (client id, origin, accrual date).
// Membership is by id presence; how often an id repeats does not matter.
func CommonRows(a, b domain.Dataset, schema domain.Schema) (*domain.ComparisonReport, error) {
	pa, pb, err := projectPair(a, b, schema)
	if err != nil {
		return nil, err
	}

	idsA, idsB := idSet(a, pa), idSet(b, pb)
	common := make(map[clientKey]struct{})
	for k := range idsA {
		if _, ok := idsB[k]; ok {
			common[k] = struct{}{}
		}
	}

	report := newComparison(domain.ModeCommonRows, a, b, schema)
	report.CommonRows = make([]domain.OriginRecord, 0)
	collect := func(ds domain.Dataset, p projector, origin domain.Origin) {
		for _, row := range ds.Rows {
			if _, ok := common[p.key(row)]; ok {
				report.CommonRows = append(report.CommonRows, domain.OriginRecord{Record: p.record(row), Origin: origin})
			}
		}
	}
	collect(a, pa, domain.OriginA)
	collect(b, pb, domain.OriginB)

	slices.SortStableFunc(report.CommonRows, pa.keyer.compareOriginRecords)
	report.Summary.CommonIDCount = len(common)

	return report, nil
}

// Classify partitions the union of client ids into Both, PlanA (only in a) and
// PlanB (only in b), one row per id sorted by client id. An id is reported as
// first spelled in a, or in b when a lacks it.
func Classify(a, b domain.Dataset, schema domain.Schema) (*domain.ComparisonReport, error) {
	pa, pb, err := projectPair(a, b, schema)
	if err != nil {
		return nil, err
	}

	idsA, idsB := idSet(a, pa), idSet(b, pb)
	report := newComparison(domain.ModeClassification, a, b, schema)
	report.Classified = make([]domain.ClassifiedID, 0, len(idsA)+len(idsB))

	for k, id := range idsA {
		if _, ok := idsB[k]; ok {
			report.Classified = append(report.Classified, domain.ClassifiedID{ClientID: id, Origin: domain.OriginBoth})
			report.Summary.CommonIDCount++
		} else {
			report.Classified = append(report.Classified, domain.ClassifiedID{ClientID: id, Origin: domain.OriginOnlyA})
			report.Summary.OnlyACount++
		}
	}
	for k, id := range idsB {
		if _, ok := idsA[k]; !ok {
			report.Classified = append(report.Classified, domain.ClassifiedID{ClientID: id, Origin: domain.OriginOnlyB})
			report.Summary.OnlyBCount++
		}
	}

	// keys are distinct, so the order is fully determined
	slices.SortFunc(report.Classified, func(x, y domain.ClassifiedID) int {
		return pa.keyer.compareIDs(x.ClientID, y.ClientID)
	})

	s := &report.Summary
	s.UnionIDCount = s.CommonIDCount + s.OnlyACount + s.OnlyBCount
	s.CommonFraction = domain.NewFraction(s.CommonIDCount, s.UnionIDCount)

	return report, nil
}

// Join is the inner equi-join of a and b on client id. An id occurring m times
// in a and n times in b yields m*n rows. Rows are stably sorted by client id,
// so pairs for one id keep a-major, b-minor source order. Joined rows carry the
// id as spelled in a.
func Join(a, b domain.Dataset, schema domain.Schema) (*domain.ComparisonReport, error) {
	pa, pb, err := projectPair(a, b, schema)
	if err != nil {
		return nil, err
	}

	byID := make(map[clientKey][]domain.Record, b.Len())
	for _, row := range b.Rows {
		k := pb.key(row)
		byID[k] = append(byID[k], pb.record(row))
	}

	report := newComparison(domain.ModeJoin, a, b, schema)
	report.Joined = make([]domain.JoinedRow, 0)
	matched := make(map[clientKey]struct{})

	for _, row := range a.Rows {
		k := pa.key(row)
		rights, ok := byID[k]
		if !ok {
			continue
		}
		matched[k] = struct{}{}
		left := pa.record(row)
		for _, right := range rights {
			report.Joined = append(report.Joined, domain.JoinedRow{
				ClientID:     left.ClientID,
				AccrualDateA: left.AccrualDate,
				BonusAmountA: left.BonusAmount,
				AccrualDateB: right.AccrualDate,
				BonusAmountB: right.BonusAmount,
			})
		}
	}

	slices.SortStableFunc(report.Joined, func(x, y domain.JoinedRow) int {
		return pa.keyer.compareIDs(x.ClientID, y.ClientID)
	})
	report.Summary.CommonIDCount = len(matched)

	return report, nil
}
