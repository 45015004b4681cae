package importer

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// genericDateLayouts are the accepted encodings of the generic log's Date
// column, most specific first.
var genericDateLayouts = []string{
	model.TimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	model.DateLayout,
}

// genericNormalizer handles the plain trade log shape: Date and PnL columns
// with already-numeric values, plus optional Symbol, Qty and Timestamp.
type genericNormalizer struct{}

func (genericNormalizer) Format() Format { return FormatGeneric }

// Normalize converts generic log records into canonical trades. Rows whose
// date or PnL fail to parse are dropped and counted; a malformed optional
// field never drops text that still carries a valid date and PnL.
func (genericNormalizer) Normalize(rs RowSet) (Result, error) {
	dateIdx := rs.columnIndex("Date")
	pnlIdx := rs.columnIndex("PnL")
	symbolIdx := rs.columnIndex("Symbol")
	qtyIdx := rs.columnIndex("Qty")
	tsIdx := rs.columnIndex("Timestamp")

	var result Result
	for _, record := range rs.Records {
		date, err := parseAny(rs.field(record, dateIdx), genericDateLayouts)
		if err != nil {
			result.Dropped++
			continue
		}

		pnl, err := decimal.NewFromString(rs.field(record, pnlIdx))
		if err != nil {
			result.Dropped++
			continue
		}

		var quantity int64
		if raw := rs.field(record, qtyIdx); raw != "" {
			quantity, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				result.Dropped++
				continue
			}
		}

		// The stored timestamp prefers the explicit Timestamp column and
		// falls back to the Date value itself.
		timestamp := date
		if raw := rs.field(record, tsIdx); raw != "" {
			if parsed, err := parseAny(raw, genericDateLayouts); err == nil {
				timestamp = parsed
			}
		}

		result.Trades = append(result.Trades, model.Trade{
			Date:      dateOnly(date),
			Symbol:    rs.field(record, symbolIdx),
			Quantity:  quantity,
			PnL:       pnl,
			Timestamp: timestamp.Format(model.TimestampLayout),
		})
	}

	return result, nil
}
