package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/api/request"
)

// ValidateCreateTrade validates a manual trade entry request.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format
//   - pnl: Must be a decimal string, OR both buyPrice and sellPrice must be
//     decimal strings so the PnL can be computed
//
// Symbol is free text and may be empty; quantity carries no sign constraint.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)

	if err := ValidateDate(req.Date); err != nil {
		errors["date"] = err.Error()
	}

	hasPnL := strings.TrimSpace(req.PnL) != ""
	hasPrices := strings.TrimSpace(req.BuyPrice) != "" && strings.TrimSpace(req.SellPrice) != ""

	switch {
	case hasPnL:
		if _, err := decimal.NewFromString(req.PnL); err != nil {
			errors["pnl"] = "pnl must be a decimal number"
		}
	case hasPrices:
		if _, err := decimal.NewFromString(req.BuyPrice); err != nil {
			errors["buyPrice"] = "buyPrice must be a decimal number"
		}
		if _, err := decimal.NewFromString(req.SellPrice); err != nil {
			errors["sellPrice"] = "sellPrice must be a decimal number"
		}
	default:
		errors["pnl"] = "either pnl or both buyPrice and sellPrice are required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
