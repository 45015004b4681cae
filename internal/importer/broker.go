package importer

import (
	"strconv"
	"time"

	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// brokerTimestampLayouts are the boughtTimestamp encodings seen in broker
// performance exports, most specific first.
var brokerTimestampLayouts = []string{
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	model.TimestampLayout,
	time.RFC3339,
	"01/02/2006",
}

// brokerNormalizer handles broker performance exports: pnl as currency text
// (parenthesized when negative) and a combined boughtTimestamp column, plus
// optional symbol and qty. The export also carries buyPrice/sellPrice
// columns; those are presentation-only and never stored.
type brokerNormalizer struct{}

func (brokerNormalizer) Format() Format { return FormatBroker }

// Normalize converts broker export records into canonical trades. The trade
// date is the calendar date of the parsed boughtTimestamp; rows with an
// unparseable timestamp or pnl are dropped and counted, never stored with a
// placeholder date or a zeroed amount.
func (brokerNormalizer) Normalize(rs RowSet) (Result, error) {
	pnlIdx := rs.columnIndex("pnl")
	tsIdx := rs.columnIndex("boughtTimestamp")
	symbolIdx := rs.columnIndex("symbol")
	qtyIdx := rs.columnIndex("qty")

	var result Result
	for _, record := range rs.Records {
		timestamp, err := parseAny(rs.field(record, tsIdx), brokerTimestampLayouts)
		if err != nil {
			result.Dropped++
			continue
		}

		pnl, err := ParseCurrency(rs.field(record, pnlIdx))
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

		result.Trades = append(result.Trades, model.Trade{
			Date:      dateOnly(timestamp),
			Symbol:    rs.field(record, symbolIdx),
			Quantity:  quantity,
			PnL:       pnl,
			Timestamp: timestamp.Format(model.TimestampLayout),
		})
	}

	return result, nil
}
