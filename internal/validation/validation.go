package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// Common validation errors
var (
	ErrInvalidDate = fmt.Errorf("invalid date format, expected YYYY-MM-DD")
	ErrEmptyDate   = fmt.Errorf("date cannot be empty")
)

// Error holds field-level validation failures for one request.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateDate checks that a string is a calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return nil
}
