package mpw

import (
	"errors"
	"fmt"

	"github.com/masterpassword/mpw-go/internal/crypto"
	"github.com/masterpassword/mpw-go/internal/template"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrEmptyIdentity is returned when no user identity is given.
	ErrEmptyIdentity = errors.New("identity is required")

	// ErrEmptySecret is returned when the master secret is empty.
	ErrEmptySecret = errors.New("secret is required")

	// ErrEmptySiteName is returned when no site name is given.
	ErrEmptySiteName = errors.New("site name is required")

	// ErrInvalidCounter is returned for the reserved counter value 0 or a
	// counter that is not a 32-bit unsigned integer.
	ErrInvalidCounter = errors.New("counter must be an integer between 1 and 4294967295")

	// ErrMissingType is returned when a variant has no default result type
	// and none was requested.
	ErrMissingType = errors.New("result type is required for this variant")

	// ErrUndefinedCombination is returned when a variant has no templates for
	// the requested result type.
	ErrUndefinedCombination = errors.New("result type is not defined for this variant")

	// ErrUnknownAlgorithm is returned for an algorithm token or value outside
	// the supported versions.
	ErrUnknownAlgorithm = errors.New("unknown algorithm version")

	// ErrUnknownVariant is returned for an unrecognised variant token.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnknownType is returned for an unrecognised result type token.
	ErrUnknownType = errors.New("unknown result type")

	// ErrKeyDerivation is returned when the master-key KDF fails.
	ErrKeyDerivation = errors.New("master key derivation failed")

	// ErrSecretUnavailable is returned when the secret cannot be read from
	// its input channel.
	ErrSecretUnavailable = errors.New("secret could not be read")

	// ErrKeyWiped is returned when a MasterKey is used after Wipe.
	ErrKeyWiped = errors.New("master key has been wiped")
)

// MPWError is implemented by all typed errors of this package.
type MPWError interface {
	error
	MPWError() // marker method
}

// ValidationError reports which caller input was rejected.
type ValidationError struct {
	Field string
	Value string // empty for secret inputs
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MPWError implements the MPWError interface.
func (e *ValidationError) MPWError() {}

// KeyDerivationError represents a failure of the master-key KDF. It is fatal
// to the invocation; retrying with the same host resources will not help.
type KeyDerivationError struct {
	Algorithm Algorithm
	Err       error
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("master key derivation failed (algorithm %s): %v", e.Algorithm, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyDerivationError) Is(target error) bool {
	return target == ErrKeyDerivation
}

// MPWError implements the MPWError interface.
func (e *KeyDerivationError) MPWError() {}

// wrapError converts internal errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error, algorithm Algorithm) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrKeyDerivation):
		return &KeyDerivationError{Algorithm: algorithm, Err: err}
	case errors.Is(err, crypto.ErrInvalidCounter):
		return &ValidationError{Field: "counter", Err: ErrInvalidCounter}
	case errors.Is(err, template.ErrUndefinedCombination):
		return &ValidationError{Field: "type", Err: ErrUndefinedCombination}
	}

	return err
}
