package op

import "errors"

// Failure taxonomy of the validator. Every failure is locally
// recoverable; the teller loop reports the reason and re-prompts.
var (
	// ErrAuthorization is reported when an admin-only operation is
	// attempted from a standard session.
	ErrAuthorization = errors.New("operation requires an admin session")

	// ErrIdentityMismatch is reported when a standard session names a
	// holder other than its bound one, or when an admin operation
	// names a holder that does not match the stored account.
	ErrIdentityMismatch = errors.New("account holder name does not match")

	// ErrLimitExceeded is reported when admitting the amount would
	// push the session's cumulative total past its cap.
	ErrLimitExceeded = errors.New("session spending limit exceeded")

	// ErrNotFound is reported for unknown account numbers, including
	// numbers deleted earlier in the same session.
	ErrNotFound = errors.New("account not found")

	// ErrUnavailable is reported when an account is disabled or still
	// pending clearance after creation.
	ErrUnavailable = errors.New("account not available")

	// ErrInsufficientFunds is reported when a mutation would leave a
	// balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrValidation is reported for malformed inputs: non-positive
	// amounts, over-long holder names, balances over the ceiling or
	// unknown company codes.
	ErrValidation = errors.New("invalid transaction input")
)
