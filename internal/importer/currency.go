package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
)

// currencyStripper removes the currency symbol, thousands separators and
// whitespace from an amount, leaving sign characters in place.
var currencyStripper = strings.NewReplacer("$", "", ",", "", " ", "", " ", "")

// ParseCurrency parses broker-formatted currency text into an exact decimal.
//
// Accounting notation applies: a value containing a parenthesis is negative,
// and the parentheses determine the sign on their own. Any minus sign inside
// a parenthesized value is discarded rather than double-inverting.
//
// Anything that does not parse cleanly after stripping known symbols is an
// error; ambiguous text must never be coerced to zero.
func ParseCurrency(raw string) (decimal.Decimal, error) {
	s := currencyStripper.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty amount", apperrors.ErrInvalidAmount)
	}

	negative := strings.ContainsAny(s, "()")
	if negative {
		s = strings.NewReplacer("(", "", ")", "", "-", "").Replace(s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, raw)
	}

	if negative {
		d = d.Neg()
	}
	return d, nil
}
