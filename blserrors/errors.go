// Package blserrors defines the closed error taxonomy returned by every
// scheme in this module. All failures surface as a *Error wrapping one of
// the Kind values below, inspectable with errors.Is/errors.As.
package blserrors

import "fmt"

// Kind identifies which step of the BLS pipeline failed.
type Kind int

const (
	// SecretKeyError is returned when reading random bytes for a new private
	// key fails. Keys built from caller-supplied bytes are not range-checked
	// and never produce it.
	SecretKeyError Kind = iota
	// AltBN128AddError is returned when the G1/G2 addition oracle fails.
	AltBN128AddError
	// AltBN128MulError is returned when the G1/G2 scalar-multiplication
	// oracle fails.
	AltBN128MulError
	// AltBN128PairingError is returned when the pairing oracle fails.
	AltBN128PairingError
	// HashToCurveError is returned when hash-to-curve exhausts all 255
	// nonces without finding a valid point.
	HashToCurveError
	// BLSSigningError is returned when the sign step fails, either from an
	// oracle failure or a serialization failure.
	BLSSigningError
	// BLSVerificationError is returned when a pairing check completes but
	// yields a non-identity element.
	BLSVerificationError
	// SerializationError is returned for empty or duplicate signer lists,
	// registry lookup failures, and byte-length mismatches.
	SerializationError
	// G1PointCompressionError is returned when G1 compression fails.
	G1PointCompressionError
	// G1PointDecompressionError is returned when G1 decompression fails.
	G1PointDecompressionError
	// G2PointCompressionError is returned when G2 compression fails.
	G2PointCompressionError
	// G2PointDecompressionError is returned when G2 decompression fails.
	G2PointDecompressionError
)

func (k Kind) String() string {
	switch k {
	case SecretKeyError:
		return "SecretKeyError"
	case AltBN128AddError:
		return "AltBN128AddError"
	case AltBN128MulError:
		return "AltBN128MulError"
	case AltBN128PairingError:
		return "AltBN128PairingError"
	case HashToCurveError:
		return "HashToCurveError"
	case BLSSigningError:
		return "BLSSigningError"
	case BLSVerificationError:
		return "BLSVerificationError"
	case SerializationError:
		return "SerializationError"
	case G1PointCompressionError:
		return "G1PointCompressionError"
	case G1PointDecompressionError:
		return "G1PointDecompressionError"
	case G2PointCompressionError:
		return "G2PointCompressionError"
	case G2PointDecompressionError:
		return "G2PointDecompressionError"
	default:
		return "UnknownBLSError"
	}
}

// Error is the single error type returned across the module. It carries a
// Kind from the closed taxonomy above and, where available, the underlying
// cause from the oracle or serialization layer.
type Error struct {
	Kind  Kind
	Cause error
}

func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, blserrors.New(Kind)) match any *Error of the same
// Kind, regardless of its wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
