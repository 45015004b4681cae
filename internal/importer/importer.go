package importer

import (
	"fmt"
	"time"

	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// Format identifies a known trade log export shape.
type Format string

const (
	// FormatGeneric is a plain trade log with explicit Date and PnL columns,
	// both already numeric/ISO-formatted.
	FormatGeneric Format = "generic"

	// FormatBroker is a broker performance export: currency-formatted pnl
	// text (parentheses for negatives) and a combined boughtTimestamp field.
	FormatBroker Format = "broker"
)

// Result is the output of one normalization pass. Dropped counts the rows
// excluded because their date or PnL could not be parsed; callers must
// surface it so a partial import is never silent.
type Result struct {
	Trades  []model.Trade
	Dropped int
}

// Normalizer converts one known row-set shape into canonical trades.
// Implementations are pure; they never touch storage.
type Normalizer interface {
	Format() Format
	Normalize(rs RowSet) (Result, error)
}

// DetectFormat picks the normalizer for a row set from the columns present.
// The broker shape is checked first since its column names are the more
// specific of the two. An unrecognized header fails the whole import with
// apperrors.ErrInvalidImportSchema.
func DetectFormat(rs RowSet) (Normalizer, error) {
	if rs.columnIndex("boughtTimestamp") >= 0 && rs.columnIndex("pnl") >= 0 {
		return brokerNormalizer{}, nil
	}
	if rs.columnIndex("Date") >= 0 && rs.columnIndex("PnL") >= 0 {
		return genericNormalizer{}, nil
	}
	return nil, fmt.Errorf("%w: columns %v", apperrors.ErrInvalidImportSchema, rs.Columns)
}

// Normalize detects the format of rs and runs the matching normalizer.
func Normalize(rs RowSet) (Format, Result, error) {
	normalizer, err := DetectFormat(rs)
	if err != nil {
		return "", Result{}, err
	}

	result, err := normalizer.Normalize(rs)
	if err != nil {
		return normalizer.Format(), Result{}, err
	}

	return normalizer.Format(), result, nil
}

// parseAny tries each layout in order and returns the first successful parse
// in UTC.
func parseAny(value string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

// dateOnly truncates a timestamp to its calendar date at midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
