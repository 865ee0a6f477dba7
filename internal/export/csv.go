// Package export serializes result tables to comma-separated text.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"bonus-reconciliation/internal/domain"
)

// ContentType is the MIME type hosts should attach to exported reports.
const ContentType = "text/csv"

// ToDelimitedText encodes t as UTF-8 CSV: one header row with the column
// names followed by the data rows, no index column.
func ToDelimitedText(t domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams t as CSV to w.
func Write(w io.Writer, t domain.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(t.Columns))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ParseDelimitedText decodes CSV produced by ToDelimitedText.
func ParseDelimitedText(data []byte) (domain.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Table{}, errors.New("empty report: no header row")
		}
		return domain.Table{}, fmt.Errorf("failed to read header: %w", err)
	}

	t := domain.Table{Columns: header, Rows: make([][]string, 0)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Table{}, fmt.Errorf("error reading report row: %w", err)
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}
