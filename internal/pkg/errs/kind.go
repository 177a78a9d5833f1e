package errs

import "errors"

// Kind classifies an error into one of the application's error categories.
// Transport adapters map kinds to response codes; business code matches on
// kinds structurally instead of inspecting error messages.
type Kind int

const (
	// KindInternal is the fallback for unexpected failures.
	KindInternal Kind = iota

	// KindNotFound covers missing resources and cross-tenant access.
	KindNotFound

	// KindBadRequest covers validation failures and malformed input.
	KindBadRequest

	// KindConflict covers operations that contradict current state.
	KindConflict

	// KindPaymentRequired covers subscription and quota gating.
	KindPaymentRequired
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindBadRequest:
		return "BadRequest"
	case KindConflict:
		return "Conflict"
	case KindPaymentRequired:
		return "PaymentRequired"
	default:
		return "Internal"
	}
}

// KindOf classifies err by unwrapping to the package sentinels.
// Unknown errors classify as KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrPaymentRequired):
		return KindPaymentRequired
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindBadRequest
	default:
		return KindInternal
	}
}
