package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Mode selects the two-dataset comparison algorithm.
type Mode string

const (
	ModeCommonRows     Mode = "common-rows"
	ModeClassification Mode = "classification"
	ModeJoin           Mode = "join"
)

// Modes lists every supported comparison mode.
var Modes = []Mode{ModeCommonRows, ModeClassification, ModeJoin}

// ParseMode converts a user-supplied mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Origin tags a comparison row with the dataset(s) it came from.
type Origin string

const (
	OriginA     Origin = "A"
	OriginB     Origin = "B"
	OriginBoth  Origin = "Both"
	OriginOnlyA Origin = "PlanA"
	OriginOnlyB Origin = "PlanB"
)

// OriginColumn is the header of the origin tag in exported tables.
const OriginColumn = "Origin"

// Fraction is a ratio rounded to two decimals. Valid is false when the
// denominator was zero and the ratio is not applicable.
type Fraction struct {
	Value float64
	Valid bool
}

// NewFraction returns num/den rounded half away from zero to two decimals, or
// an invalid Fraction if den is zero.
func NewFraction(num, den int) Fraction {
	if den == 0 {
		return Fraction{}
	}
	q := decimal.NewFromInt(int64(num)).DivRound(decimal.NewFromInt(int64(den)), 2)
	return Fraction{Value: q.InexactFloat64(), Valid: true}
}

// Float returns the ratio, or ErrDivisionUndefined when it is not applicable.
func (f Fraction) Float() (float64, error) {
	if !f.Valid {
		return 0, ErrDivisionUndefined
	}
	return f.Value, nil
}

func (f Fraction) String() string {
	if !f.Valid {
		return "n/a"
	}
	return strconv.FormatFloat(f.Value, 'f', 2, 64)
}

func (f Fraction) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// DuplicateClient is one duplicated client id and how many report rows it owns.
type DuplicateClient struct {
	ClientID string `json:"client_id"` // as spelled on the client's first row
	Rows     int    `json:"rows"`
}

// DuplicateReport lists every row whose client id occurs more than once in a dataset.
// Clients follows the order of Rows; each client's rows are contiguous.
type DuplicateReport struct {
	ReportID          string            `json:"report_id,omitempty"`
	Dataset           string            `json:"dataset"`
	Schema            Schema            `json:"-"`
	Rows              []Record          `json:"rows"`
	Clients           []DuplicateClient `json:"clients"`
	TotalRows         int               `json:"total_rows"`
	DuplicateIDCount  int               `json:"duplicate_id_count"`
	DuplicateFraction Fraction          `json:"duplicate_fraction"`
}

// Empty reports whether no duplicated client id was found.
func (r *DuplicateReport) Empty() bool {
	return len(r.Rows) == 0
}

// Table projects the report rows under the configured column names.
func (r *DuplicateReport) Table() Table {
	t := Table{Columns: r.Schema.Required(), Rows: make([][]string, 0, len(r.Rows))}
	for _, rec := range r.Rows {
		t.Rows = append(t.Rows, []string{rec.ClientID, rec.AccrualDate, rec.BonusAmount})
	}
	return t
}

// OriginRecord is a record tagged with the dataset it was read from.
type OriginRecord struct {
	Record
	Origin Origin `json:"origin"`
}

// ClassifiedID places one client id in the Both, PlanA or PlanB partition.
type ClassifiedID struct {
	ClientID string `json:"client_id"`
	Origin   Origin `json:"origin"`
}

// JoinedRow is one matching pair from the client id equi-join.
type JoinedRow struct {
	ClientID     string `json:"client_id"`
	AccrualDateA string `json:"accrual_date_a"`
	BonusAmountA string `json:"bonus_amount_a"`
	AccrualDateB string `json:"accrual_date_b"`
	BonusAmountB string `json:"bonus_amount_b"`
}

// ComparisonSummary carries the counts of a two-dataset comparison.
// Only the fields relevant to the report's mode are populated.
type ComparisonSummary struct {
	DatasetA       string   `json:"dataset_a"`
	DatasetB       string   `json:"dataset_b"`
	CommonIDCount  int      `json:"common_id_count"`
	OnlyACount     int      `json:"only_a_count"`
	OnlyBCount     int      `json:"only_b_count"`
	UnionIDCount   int      `json:"union_id_count"`
	CommonFraction Fraction `json:"common_fraction"`
}

// ComparisonReport is the result of comparing two datasets in one Mode.
type ComparisonReport struct {
	ReportID   string            `json:"report_id,omitempty"`
	Mode       Mode              `json:"mode"`
	Schema     Schema            `json:"-"`
	CommonRows []OriginRecord    `json:"common_rows,omitempty"`
	Classified []ClassifiedID    `json:"classified,omitempty"`
	Joined     []JoinedRow       `json:"joined,omitempty"`
	Summary    ComparisonSummary `json:"summary"`
}

// MarshalJSON always emits the result rows of the report's mode, as [] when
// there are none, and omits the other modes' rows.
func (r ComparisonReport) MarshalJSON() ([]byte, error) {
	type plain ComparisonReport
	out := struct {
		plain
		CommonRows *[]OriginRecord `json:"common_rows,omitempty"`
		Classified *[]ClassifiedID `json:"classified,omitempty"`
		Joined     *[]JoinedRow    `json:"joined,omitempty"`
	}{plain: plain(r)}

	switch r.Mode {
	case ModeCommonRows:
		rows := r.CommonRows
		if rows == nil {
			rows = []OriginRecord{}
		}
		out.CommonRows = &rows
	case ModeClassification:
		rows := r.Classified
		if rows == nil {
			rows = []ClassifiedID{}
		}
		out.Classified = &rows
	case ModeJoin:
		rows := r.Joined
		if rows == nil {
			rows = []JoinedRow{}
		}
		out.Joined = &rows
	}
	return json.Marshal(out)
}

// Len returns the number of result rows for the report's mode.
func (r *ComparisonReport) Len() int {
	switch r.Mode {
	case ModeCommonRows:
		return len(r.CommonRows)
	case ModeClassification:
		return len(r.Classified)
	case ModeJoin:
		return len(r.Joined)
	}
	return 0
}

// Empty reports whether the comparison produced no rows.
func (r *ComparisonReport) Empty() bool {
	return r.Len() == 0
}

// Table projects the report rows for the report's mode.
func (r *ComparisonReport) Table() Table {
	s := r.Schema
	switch r.Mode {
	case ModeCommonRows:
		t := Table{Columns: []string{s.ClientID, s.AccrualDate, s.BonusAmount, OriginColumn}, Rows: make([][]string, 0, len(r.CommonRows))}
		for _, row := range r.CommonRows {
			t.Rows = append(t.Rows, []string{row.ClientID, row.AccrualDate, row.BonusAmount, string(row.Origin)})
		}
		return t
	case ModeClassification:
		t := Table{Columns: []string{s.ClientID, OriginColumn}, Rows: make([][]string, 0, len(r.Classified))}
		for _, row := range r.Classified {
			t.Rows = append(t.Rows, []string{row.ClientID, string(row.Origin)})
		}
		return t
	case ModeJoin:
		t := Table{Columns: []string{s.ClientID, s.AccrualDate + "_A", s.BonusAmount + "_A", s.AccrualDate + "_B", s.BonusAmount + "_B"}, Rows: make([][]string, 0, len(r.Joined))}
		for _, row := range r.Joined {
			t.Rows = append(t.Rows, []string{row.ClientID, row.AccrualDateA, row.BonusAmountA, row.AccrualDateB, row.BonusAmountB})
		}
		return t
	}
	return Table{}
}
