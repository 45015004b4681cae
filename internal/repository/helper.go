package repository

import (
	"fmt"
	"time"

	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// ParseDate parses a stored date string in "2006-01-02" or RFC3339 format.
func ParseDate(str string) (time.Time, error) {
	returnTime, err := time.Parse(model.DateLayout, str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}
