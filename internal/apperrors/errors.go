package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTradeNotFound indicates that a trade with the given ID does not exist.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrNoTrades indicates that the store holds no trades at all.
	// The calendar for the latest trade month cannot be built in this state.
	ErrNoTrades = errors.New("no trades recorded")
)

// Import errors represent failures while ingesting a trade log file.
var (
	// ErrInvalidImportSchema indicates that the uploaded row set matches none of
	// the known trade log formats (required columns missing entirely).
	// This fails the whole import; nothing is stored.
	ErrInvalidImportSchema = errors.New("unrecognized trade log format")

	// ErrEmptyImport indicates that the uploaded file contains no data rows.
	ErrEmptyImport = errors.New("import file contains no rows")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidDate indicates that a date parameter is not in YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidMonth indicates that a year/month parameter is out of range.
	ErrInvalidMonth = errors.New("invalid year/month")

	// ErrInvalidAmount indicates that a PnL or price value could not be parsed
	// as a decimal number.
	ErrInvalidAmount = errors.New("invalid decimal amount")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Storage errors represent durable-storage failures. These are fatal to the
// operation that hit them; the caller re-submits manually, there is no retry.
var (
	// ErrStorage indicates an I/O failure in the SQLite trade store.
	ErrStorage = errors.New("trade storage failure")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. Used as the outer message in HTTP error responses.
var (
	ErrFailedToRetrieveTrades  = errors.New("failed to retrieve trades")
	ErrFailedToCreateTrade     = errors.New("failed to create trade")
	ErrFailedToDeleteTrades    = errors.New("failed to delete trades")
	ErrFailedToImportTrades    = errors.New("failed to import trades")
	ErrFailedToBuildCalendar   = errors.New("failed to build calendar")
	ErrFailedToRetrieveSummary = errors.New("failed to retrieve daily summary")
	ErrFailedToGetVersionInfo  = errors.New("failed to get version information")
)
