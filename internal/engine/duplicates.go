package engine

import (
	"slices"

	"bonus-reconciliation/internal/domain"
)

// FindDuplicates returns every row whose client id appears two or more times in ds.
//
// All occurrences of a duplicated id are kept, not just the repeats. Rows are
// projected to the schema's required columns and stably sorted by client id,
// then accrual date. A dataset without repeated ids yields an empty report, not
// an error; a dataset missing a required column yields a *domain.SchemaError.
func FindDuplicates(ds domain.Dataset, schema domain.Schema) (*domain.DuplicateReport, error) {
	p, err := newProjector(ds, schema)
	if err != nil {
		return nil, err
	}

	counts := make(map[clientKey]int, ds.Len())
	for _, row := range ds.Rows {
		counts[p.key(row)]++
	}

	report := &domain.DuplicateReport{
		Dataset:   ds.Name,
		Schema:    schema,
		Rows:      make([]domain.Record, 0),
		Clients:   make([]domain.DuplicateClient, 0),
		TotalRows: ds.Len(),
	}
	for _, row := range ds.Rows {
		if counts[p.key(row)] >= 2 {
			report.Rows = append(report.Rows, p.record(row))
		}
	}

	slices.SortStableFunc(report.Rows, p.keyer.compareRecords)

	for i, rec := range report.Rows {
		if i > 0 && p.keyer.compareIDs(report.Rows[i-1].ClientID, rec.ClientID) == 0 {
			report.Clients[len(report.Clients)-1].Rows++
			continue
		}
		report.Clients = append(report.Clients, domain.DuplicateClient{ClientID: rec.ClientID, Rows: 1})
	}
	report.DuplicateIDCount = len(report.Clients)
	report.DuplicateFraction = domain.NewFraction(report.DuplicateIDCount, report.TotalRows)

	return report, nil
}
