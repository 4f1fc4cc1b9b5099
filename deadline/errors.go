/*
errors.go - Centralized error types for the deadline engine

PURPOSE:

	All error types in one place. The taxonomy is deliberately narrow: the
	engine is closed-world arithmetic, so the only failures are unrecognized
	enumeration values and invalid boundary input. A silently wrong deadline
	is the worst possible outcome for regulatory software, so nothing here
	defaults or degrades - every bad input is a hard error.

USAGE:

	if errors.Is(err, deadline.ErrUnknownFilingType) { ... }

	var inputErr *deadline.InvalidInputError
	if errors.As(err, &inputErr) { ... }
*/
package deadline

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownFilingType is returned when a filing type has no entry in
	// the rule catalog. This is a programming error, never recovered from.
	ErrUnknownFilingType = errors.New("unknown filing type")

	// ErrUnknownFilerStatus is returned for a filer status outside the
	// closed SEC classification set.
	ErrUnknownFilerStatus = errors.New("unknown filer status")

	// ErrMissingDate is returned when a required date is zero. A deadline
	// is never computed from a substituted default date.
	ErrMissingDate = errors.New("required date is missing")

	// ErrInvalidFiscalMonth is returned for a fiscal-year-end month outside
	// January through December.
	ErrInvalidFiscalMonth = errors.New("fiscal year end month out of range")

	// ErrInvalidQuarter is returned for a fiscal quarter outside 1-4.
	ErrInvalidQuarter = errors.New("fiscal quarter out of range")

	// ErrNegativeDayCount is returned when a caller-supplied day count or
	// horizon is negative.
	ErrNegativeDayCount = errors.New("day count must not be negative")

	// ErrNotExtendable is returned when notification-based extension relief
	// is requested for a filing type that has none.
	ErrNotExtendable = errors.New("filing type has no extension relief")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// CatalogError reports a filing type with no rule catalog entry.
type CatalogError struct {
	FilingType FilingType
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("no rule catalog entry for filing type %q", e.FilingType)
}

func (e *CatalogError) Unwrap() error { return ErrUnknownFilingType }

// InvalidInputError reports a boundary validation failure with the field
// and offending value.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than an engine defect.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrInvalidFiscalMonth) ||
		errors.Is(err, ErrInvalidQuarter) ||
		errors.Is(err, ErrNegativeDayCount) ||
		errors.Is(err, ErrUnknownFilerStatus) ||
		errors.Is(err, ErrNotExtendable)
}
