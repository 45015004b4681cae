package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
)

func TestReadCSV(t *testing.T) {
	t.Run("splits header and records", func(t *testing.T) {
		input := "Date,Symbol,Qty,PnL\n2024-06-03,ES,2,150.00\n2024-06-05,NQ,1,0.00\n"

		rs, err := ReadCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadCSV returned unexpected error: %v", err)
		}

		if len(rs.Columns) != 4 {
			t.Errorf("Expected 4 columns, got %d", len(rs.Columns))
		}
		if len(rs.Records) != 2 {
			t.Errorf("Expected 2 records, got %d", len(rs.Records))
		}
	})

	t.Run("rejects an empty upload", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		if !errors.Is(err, apperrors.ErrEmptyImport) {
			t.Errorf("Expected ErrEmptyImport, got %v", err)
		}
	})
}

func TestDetectFormat(t *testing.T) {
	t.Run("detects the generic log shape", func(t *testing.T) {
		rs := RowSet{Columns: []string{"Date", "Symbol", "Qty", "PnL"}}

		n, err := DetectFormat(rs)
		if err != nil {
			t.Fatalf("DetectFormat returned unexpected error: %v", err)
		}
		if n.Format() != FormatGeneric {
			t.Errorf("Expected format %s, got %s", FormatGeneric, n.Format())
		}
	})

	t.Run("detects the broker export shape", func(t *testing.T) {
		rs := RowSet{Columns: []string{"symbol", "qty", "buyPrice", "sellPrice", "pnl", "boughtTimestamp"}}

		n, err := DetectFormat(rs)
		if err != nil {
			t.Fatalf("DetectFormat returned unexpected error: %v", err)
		}
		if n.Format() != FormatBroker {
			t.Errorf("Expected format %s, got %s", FormatBroker, n.Format())
		}
	})

	t.Run("fails the whole import for unknown columns", func(t *testing.T) {
		rs := RowSet{Columns: []string{"foo", "bar"}}

		_, err := DetectFormat(rs)
		if !errors.Is(err, apperrors.ErrInvalidImportSchema) {
			t.Errorf("Expected ErrInvalidImportSchema, got %v", err)
		}
	})
}

func TestGenericNormalizer(t *testing.T) {
	t.Run("converts rows into canonical trades", func(t *testing.T) {
		rs := RowSet{
			Columns: []string{"Date", "Symbol", "Qty", "PnL"},
			Records: [][]string{
				{"2024-06-03", "ES", "2", "150.00"},
				{"2024-06-03", "ES", "1", "-50.00"},
			},
		}

		_, result, err := Normalize(rs)
		if err != nil {
			t.Fatalf("Normalize returned unexpected error: %v", err)
		}

		if result.Dropped != 0 {
			t.Errorf("Expected 0 dropped rows, got %d", result.Dropped)
		}
		if len(result.Trades) != 2 {
			t.Fatalf("Expected 2 trades, got %d", len(result.Trades))
		}

		first := result.Trades[0]
		if first.DateKey() != "2024-06-03" {
			t.Errorf("Expected date 2024-06-03, got %s", first.DateKey())
		}
		if first.Symbol != "ES" {
			t.Errorf("Expected symbol ES, got %s", first.Symbol)
		}
		if first.Quantity != 2 {
			t.Errorf("Expected quantity 2, got %d", first.Quantity)
		}
		if !first.PnL.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("Expected pnl 150.00, got %s", first.PnL.String())
		}
		if first.Timestamp != "2024-06-03 00:00:00" {
			t.Errorf("Expected freshly formatted timestamp, got %q", first.Timestamp)
		}

		if !result.Trades[1].PnL.Equal(decimal.RequireFromString("-50.00")) {
			t.Errorf("Expected pnl -50.00, got %s", result.Trades[1].PnL.String())
		}
	})

	t.Run("prefers the Timestamp column when present", func(t *testing.T) {
		rs := RowSet{
			Columns: []string{"Date", "PnL", "Timestamp"},
			Records: [][]string{
				{"2024-06-03", "150.00", "2024-06-03 09:35:12"},
			},
		}

		_, result, err := Normalize(rs)
		if err != nil {
			t.Fatalf("Normalize returned unexpected error: %v", err)
		}

		if result.Trades[0].Timestamp != "2024-06-03 09:35:12" {
			t.Errorf("Expected timestamp from Timestamp column, got %q", result.Trades[0].Timestamp)
		}
	})

	t.Run("drops rows with unparseable dates and counts them", func(t *testing.T) {
		rs := RowSet{
			Columns: []string{"Date", "PnL"},
			Records: [][]string{
				{"2024-06-03", "150.00"},
				{"not-a-date", "10.00"},
				{"", "10.00"},
			},
		}

		_, result, err := Normalize(rs)
		if err != nil {
			t.Fatalf("Normalize returned unexpected error: %v", err)
		}

		if len(result.Trades) != 1 {
			t.Errorf("Expected 1 trade, got %d", len(result.Trades))
		}
		if result.Dropped != 2 {
			t.Errorf("Expected 2 dropped rows, got %d", result.Dropped)
		}
	})

	t.Run("drops rows with unparseable pnl instead of zeroing them", func(t *testing.T) {
		rs := RowSet{
			Columns: []string{"Date", "PnL"},
			Records: [][]string{
				{"2024-06-03", "garbage"},
				{"2024-06-04", "25.00"},
			},
		}

		_, result, err := Normalize(rs)
		if err != nil {
			t.Fatalf("Normalize returned unexpected error: %v", err)
		}

		if len(result.Trades) != 1 {
			t.Fatalf("Expected 1 trade, got %d", len(result.Trades))
		}
		if result.Trades[0].DateKey() != "2024-06-04" {
			t.Errorf("Wrong surviving row: %s", result.Trades[0].DateKey())
		}
		if result.Dropped != 1 {
			t.Errorf("Expected 1 dropped row, got %d", result.Dropped)
		}
	})
}

func TestBrokerNormalizer(t *testing.T) {
	t.Run("parses currency pnl and derives the date from boughtTimestamp", func(t *testing.T) {
		rs := RowSet{
			Columns: []string{"symbol", "qty", "buyPrice", "sellPrice", "pnl", "boughtTimestamp"},
			Records: [][]string{
				{"ES", "2", "5300.25", "5301.00", "$1,234.56", "06/03/2024 09:35:12"},
				{"NQ", "1", "18900.00", "18895.00", "($500.00)", "06/04/2024 10:05:00"},
			},
		}

		format, result, err := Normalize(rs)
		if err != nil {
			t.Fatalf("Normalize returned unexpected error: %v", err)
		}
		if format != FormatBroker {
			t.Errorf("Expected format %s, got %s", FormatBroker, format)
		}
		if len(result.Trades) != 2 {
			t.Fatalf("Expected 2 trades, got %d", len(result.Trades))
		}

		first := result.Trades[0]
		if first.DateKey() != "2024-06-03" {
			t.Errorf("Expected date 2024-06-03, got %s", first.DateKey())
		}
		if !first.PnL.Equal(decimal.RequireFromString("1234.56")) {
			t.Errorf("Expected pnl 1234.56, got %s", first.PnL.String())
		}
		if first.Timestamp != "2024-06-03 09:35:12" {
			t.Errorf("Expected reformatted timestamp, got %q", first.Timestamp)
		}

		second := result.Trades[1]
		if !second.PnL.Equal(decimal.RequireFromString("-500.00")) {
			t.Errorf("Expected pnl -500.00, got %s", second.PnL.String())
		}
	})

	t.Run("drops rows whose timestamp does not parse", func(t *testing.T) {
		rs := RowSet{
			Columns: []string{"pnl", "boughtTimestamp"},
			Records: [][]string{
				{"$10.00", "yesterday"},
				{"$20.00", "06/03/2024 09:00:00"},
			},
		}

		_, result, err := Normalize(rs)
		if err != nil {
			t.Fatalf("Normalize returned unexpected error: %v", err)
		}

		if len(result.Trades) != 1 {
			t.Errorf("Expected 1 trade, got %d", len(result.Trades))
		}
		if result.Dropped != 1 {
			t.Errorf("Expected 1 dropped row, got %d", result.Dropped)
		}
	})

	t.Run("drops rows with ambiguous pnl text", func(t *testing.T) {
		rs := RowSet{
			Columns: []string{"pnl", "boughtTimestamp"},
			Records: [][]string{
				{"N/A", "06/03/2024 09:00:00"},
			},
		}

		_, result, err := Normalize(rs)
		if err != nil {
			t.Fatalf("Normalize returned unexpected error: %v", err)
		}

		if len(result.Trades) != 0 {
			t.Errorf("Expected 0 trades, got %d", len(result.Trades))
		}
		if result.Dropped != 1 {
			t.Errorf("Expected 1 dropped row, got %d", result.Dropped)
		}
	})
}
