// Package engine validates client bonus datasets and computes duplicate and
// cross-dataset comparison reports.
//
// Every function is pure: inputs are taken as parameters, a fresh report is
// returned, and nothing is logged or cached. Hosts may call the engine as often
// as they like.
package engine

import (
	"bonus-reconciliation/internal/domain"
)

// Validate reports whether every required column is present in the dataset header.
// Names are matched exactly, including case.
func Validate(ds domain.Dataset, required []string) bool {
	return len(missingColumns(ds, required)) == 0
}

// CheckSchema is Validate with a *domain.SchemaError naming the missing columns.
func CheckSchema(ds domain.Dataset, required []string) error {
	if missing := missingColumns(ds, required); len(missing) > 0 {
		return &domain.SchemaError{Dataset: ds.Name, Missing: missing}
	}
	return nil
}

func missingColumns(ds domain.Dataset, required []string) []string {
	present := make(map[string]struct{}, len(ds.Columns))
	for _, c := range ds.Columns {
		present[c] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// projector extracts the required fields from raw rows of one dataset.
type projector struct {
	id, date, amount int
	keyer            idKeyer
}

func newProjector(ds domain.Dataset, schema domain.Schema) (projector, error) {
	if err := CheckSchema(ds, schema.Required()); err != nil {
		return projector{}, err
	}
	p := projector{
		id:     ds.ColumnIndex(schema.ClientID),
		date:   ds.ColumnIndex(schema.AccrualDate),
		amount: ds.ColumnIndex(schema.BonusAmount),
	}
	p.keyer = idKeyer{numeric: numericColumn(ds, p.id)}
	return p, nil
}

func (p projector) clientID(row []string) string {
	return cell(row, p.id)
}

func (p projector) key(row []string) clientKey {
	return p.keyer.key(cell(row, p.id))
}

func (p projector) record(row []string) domain.Record {
	return domain.Record{
		ClientID:    cell(row, p.id),
		AccrualDate: cell(row, p.date),
		BonusAmount: cell(row, p.amount),
	}
}

// cell tolerates ragged rows; a missing trailing cell reads as empty.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// idSet maps the distinct client keys of a dataset to the first spelling seen.
func idSet(ds domain.Dataset, p projector) map[clientKey]string {
	ids := make(map[clientKey]string, ds.Len())
	for _, row := range ds.Rows {
		k := p.key(row)
		if _, ok := ids[k]; !ok {
			ids[k] = p.clientID(row)
		}
	}
	return ids
}
