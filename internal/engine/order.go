package engine

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	"bonus-reconciliation/internal/domain"
)

// clientKey is the identity of a client id. It drives grouping, set
// membership and ordering alike.
type clientKey struct {
	num  float64
	text string
}

func (k clientKey) compare(o clientKey) int {
	if c := cmp.Compare(k.num, o.num); c != 0 {
		return c
	}
	return strings.Compare(k.text, o.text)
}

// idKeyer turns client ids into keys. When every id of a column is a number the
// column is keyed by value, so "7", "007" and "7.0" are one client ordered
// numerically. Any other column is keyed and ordered by exact text.
type idKeyer struct {
	numeric bool
}

func (k idKeyer) key(id string) clientKey {
	if k.numeric {
		f, _ := parseNumber(id)
		return clientKey{num: f}
	}
	return clientKey{text: id}
}

func (k idKeyer) compareIDs(a, b string) int {
	return k.key(a).compare(k.key(b))
}

func (k idKeyer) compareRecords(a, b domain.Record) int {
	if c := k.compareIDs(a.ClientID, b.ClientID); c != 0 {
		return c
	}
	return strings.Compare(a.AccrualDate, b.AccrualDate)
}

func (k idKeyer) compareOriginRecords(a, b domain.OriginRecord) int {
	if c := k.compareIDs(a.ClientID, b.ClientID); c != 0 {
		return c
	}
	if c := strings.Compare(string(a.Origin), string(b.Origin)); c != 0 {
		return c
	}
	return strings.Compare(a.AccrualDate, b.AccrualDate)
}

// numericColumn reports whether every value in column i parses as a finite number.
func numericColumn(ds domain.Dataset, i int) bool {
	for _, row := range ds.Rows {
		if _, ok := parseNumber(cell(row, i)); !ok {
			return false
		}
	}
	return true
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
