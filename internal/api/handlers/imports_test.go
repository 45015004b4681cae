package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tradecal/trade-calendar-backend/internal/api/handlers"
	"github.com/tradecal/trade-calendar-backend/internal/model"
	"github.com/tradecal/trade-calendar-backend/internal/testutil"
)

func setupImportHandler(t *testing.T) (*handlers.ImportHandler, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestTradeService(t, db)
	return handlers.NewImportHandler(svc), db
}

func postCSV(t *testing.T, handler *handlers.ImportHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	handler.ImportCSV(w, req)
	return w
}

func TestImportCSVHandler(t *testing.T) {
	t.Run("imports a generic trade log upload", func(t *testing.T) {
		handler, db := setupImportHandler(t)

		csv := "Date,Symbol,Qty,PnL\n" +
			"2024-06-03,ES,2,150.00\n" +
			"2024-06-03,ES,1,-50.00\n" +
			"2024-06-05,NQ,1,0.00\n"

		w := postCSV(t, handler, csv)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.ImportResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.Format != "generic" {
			t.Errorf("Expected generic format, got %s", result.Format)
		}
		if result.Imported != 3 || result.Dropped != 0 {
			t.Errorf("Expected 3 imported / 0 dropped, got %d / %d", result.Imported, result.Dropped)
		}
		if result.BatchID == "" {
			t.Error("Expected a batch id")
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM trade").Scan(&count); err != nil {
			t.Fatalf("Failed to count trades: %v", err)
		}
		if count != 3 {
			t.Errorf("Expected 3 stored trades, got %d", count)
		}
	})

	t.Run("imports a broker export and reports dropped rows", func(t *testing.T) {
		handler, _ := setupImportHandler(t)

		csv := "symbol,qty,buyPrice,sellPrice,pnl,boughtTimestamp\n" +
			"ES,2,5300.25,5310.50,\"$1,234.56\",06/03/2024 09:30:00\n" +
			"NQ,1,18000.00,17990.00,($500.00),06/03/2024 10:15:00\n" +
			"YM,1,40000.00,40010.00,oops,06/03/2024 11:00:00\n"

		w := postCSV(t, handler, csv)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.ImportResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.Format != "broker" {
			t.Errorf("Expected broker format, got %s", result.Format)
		}
		if result.Imported != 2 {
			t.Errorf("Expected 2 imported, got %d", result.Imported)
		}
		if result.Dropped != 1 {
			t.Errorf("Expected 1 dropped, got %d", result.Dropped)
		}
	})

	t.Run("rejects an upload matching no known format", func(t *testing.T) {
		handler, db := setupImportHandler(t)

		w := postCSV(t, handler, "foo,bar\n1,2\n")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM trade").Scan(&count); err != nil {
			t.Fatalf("Failed to count trades: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected nothing stored, got %d trades", count)
		}
	})

	t.Run("rejects an empty upload", func(t *testing.T) {
		handler, _ := setupImportHandler(t)

		w := postCSV(t, handler, "")

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
