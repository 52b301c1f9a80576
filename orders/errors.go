package orders

import (
	"errors"
	"fmt"
)

// Error classes. Every concrete error below wraps exactly one of them so callers
// can decide on retry policy with errors.Is.
var (
	ErrConfiguration       = errors.New("configuration error")
	ErrValidation          = errors.New("validation error")
	ErrSigning             = errors.New("signing error")
	ErrRelay               = errors.New("relay error")
	ErrSettlementReversion = errors.New("settlement reversion")
)

var (
	ErrUnsupportedChain    = fmt.Errorf("%w: unsupported chain", ErrConfiguration)
	ErrMissingAddress      = fmt.Errorf("%w: missing address mapping", ErrConfiguration)
	ErrInvalidToken        = fmt.Errorf("%w: invalid token", ErrValidation)
	ErrInvalidDeadline     = fmt.Errorf("%w: invalid deadline", ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrEmptyOrder          = fmt.Errorf("%w: order has no inputs or outputs", ErrValidation)
	ErrZeroValue           = fmt.Errorf("%w: zero value", ErrValidation)
	ErrDependencyCycle     = fmt.Errorf("%w: order dependency cycle", ErrValidation)
	ErrNoOrders            = fmt.Errorf("%w: no orders to fill", ErrValidation)
	ErrSigningUnavailable  = fmt.Errorf("%w: signer unavailable", ErrSigning)
	ErrRelayRejected       = fmt.Errorf("%w: rejected", ErrRelay)
	ErrSubmissionFailed    = fmt.Errorf("%w: submission failed", ErrRelay)
	ErrOrderExpired        = fmt.Errorf("%w: order expired", ErrSettlementReversion)
	ErrOrderConsumed       = fmt.Errorf("%w: order already consumed", ErrSettlementReversion)
	ErrPermitReused        = fmt.Errorf("%w: permit nonce already used", ErrSettlementReversion)
	ErrInvalidSignature    = fmt.Errorf("%w: invalid permit signature", ErrSettlementReversion)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrSettlementReversion)
	ErrOutputsNotFilled    = fmt.Errorf("%w: order outputs not filled", ErrSettlementReversion)
)

// IsTransient reports whether err may succeed when retried as-is.
func IsTransient(err error) bool {
	return errors.Is(err, ErrSigningUnavailable) || errors.Is(err, ErrSubmissionFailed)
}
