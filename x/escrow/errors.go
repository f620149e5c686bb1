package escrow

import (
	"github.com/iov-one/redeem/errors"
)

// Rejections of a redemption claim. Every error returned by
// Validator.Validate for a well formed request wraps one of them.
var (
	// ErrInputShape is returned when the proposed transaction does not
	// spend exactly one input or does not have the outputs the path
	// requires.
	ErrInputShape = errors.Register(1010, "invalid transaction shape")

	// ErrReasonCode is returned for an unknown reason code or when a
	// signed message is not exactly the reason code.
	ErrReasonCode = errors.Register(1011, "invalid reason code")

	// ErrAmountMismatch is returned when an output value differs from
	// what the path pays, including when the input cannot cover the fees.
	ErrAmountMismatch = errors.Register(1012, "amount mismatch")

	// ErrDestinationMismatch is returned when an output pays to another
	// address than the path requires.
	ErrDestinationMismatch = errors.Register(1013, "destination mismatch")

	// ErrSignatureInvalid is returned when a required signature is
	// missing or does not verify against its key and message.
	ErrSignatureInvalid = errors.Register(1014, "invalid signature")
)

// Reason returns a short tag naming the check that rejected a claim. An
// empty string is returned for nil and "invalid" for errors that are not a
// rejection, such as a malformed request.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case ErrInputShape.Is(err):
		return "input_shape"
	case ErrReasonCode.Is(err):
		return "reason_code"
	case ErrAmountMismatch.Is(err):
		return "amount_mismatch"
	case ErrDestinationMismatch.Is(err):
		return "destination_mismatch"
	case ErrSignatureInvalid.Is(err):
		return "signature_invalid"
	default:
		return "invalid"
	}
}
