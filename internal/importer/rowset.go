// Package importer converts raw trade log uploads into canonical trade
// records. It understands a small set of known export shapes, detects which
// one applies from the column names present, and is a pure transform: the
// caller persists whatever comes out.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
)

// RowSet is a parsed tabular upload: a header row of column names and the
// data records below it. Field order and naming vary by source format.
type RowSet struct {
	Columns []string
	Records [][]string
}

// ReadCSV parses an uploaded CSV stream into a RowSet.
// Ragged records are tolerated here; the normalizers treat missing fields
// as empty values and apply their own row-level rules.
func ReadCSV(r io.Reader) (RowSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return RowSet{}, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return RowSet{}, apperrors.ErrEmptyImport
	}

	return RowSet{
		Columns: records[0],
		Records: records[1:],
	}, nil
}

// columnIndex returns the index of the named column, matched
// case-insensitively, or -1 when the column is absent.
func (rs RowSet) columnIndex(name string) int {
	for i, col := range rs.Columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

// field returns the trimmed value at idx, or "" when the record is too
// short or the column is absent.
func (rs RowSet) field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
