package spac

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTerm is returned for a non-positive charter term or a
	// negative extension grant.
	ErrInvalidTerm = errors.New("invalid SPAC term")

	// ErrNegativeTrustBalance is returned when a trust account reports a
	// negative balance.
	ErrNegativeTrustBalance = errors.New("trust balance is negative")

	// ErrInvalidShareCount is returned for a nonsensical share count.
	ErrInvalidShareCount = errors.New("invalid share count")
)

// SharesError reports the offending share count.
type SharesError struct {
	Shares int64
}

func (e *SharesError) Error() string {
	return fmt.Sprintf("invalid share count %d", e.Shares)
}

func (e *SharesError) Unwrap() error { return ErrInvalidShareCount }
