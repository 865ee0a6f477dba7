package domain

// Schema names the header columns that carry the three required fields.
// The names come from host configuration; they are matched exactly.
type Schema struct {
	ClientID    string `json:"client_id"`
	AccrualDate string `json:"accrual_date"`
	BonusAmount string `json:"bonus_amount"`
}

// Required returns the required column names in canonical order.
func (s Schema) Required() []string {
	return []string{s.ClientID, s.AccrualDate, s.BonusAmount}
}

// Record is one input row projected to the required fields.
// Values keep the literal text of the source cell.
type Record struct {
	ClientID    string `json:"client_id"`
	AccrualDate string `json:"accrual_date"`
	BonusAmount string `json:"bonus_amount"`
}

// Dataset is an ordered sequence of rows sharing a header.
type Dataset struct {
	Name    string     `json:"name"`    // e.g., "bonus_march.csv"
	Columns []string   `json:"columns"` // header names as delivered by the source
	Rows    [][]string `json:"rows"`
}

// Len returns the number of data rows.
func (d Dataset) Len() int {
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (d Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Table is a rectangular result ready for display or export.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Dataset wraps the table as a dataset, e.g. to feed an exported report back into the engine.
func (t Table) Dataset(name string) Dataset {
	return Dataset{Name: name, Columns: t.Columns, Rows: t.Rows}
}
