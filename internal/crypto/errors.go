package crypto

import "errors"

var (
	// ErrKeyDerivation is returned when the KDF rejects its parameters or
	// cannot allocate the memory it needs.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidCounter is returned for the reserved counter value 0.
	ErrInvalidCounter = errors.New("invalid site counter")

	// ErrEmptyField is returned when a length-prefixed field that must carry
	// content is empty.
	ErrEmptyField = errors.New("empty field")

	// ErrInvalidKeySize is returned when a master or site key has the wrong size.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrFieldTooLong is returned when a field length does not fit the
	// profile's integer width.
	ErrFieldTooLong = errors.New("field too long for profile integer width")
)
