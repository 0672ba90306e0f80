package crypto

import "github.com/awnumar/memguard"

// wipeObserver, when set, is called with every buffer right after it was
// wiped. It is only installed by tests.
var wipeObserver func([]byte)

// Wipe overwrites b with zeroes.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
	if wipeObserver != nil {
		wipeObserver(b)
	}
}

// SecretBuffer owns a slice of key material and zeroes it on Wipe.
// The zero value is an empty, already-wiped buffer.
//
// Typical use is
//
//	buf := crypto.NewSecretBuffer(secret)
//	defer buf.Wipe()
type SecretBuffer struct {
	b []byte
}

// NewSecretBuffer takes ownership of b. The caller must not retain b.
func NewSecretBuffer(b []byte) *SecretBuffer {
	return &SecretBuffer{b: b}
}

// Bytes returns the underlying slice, or nil after Wipe.
func (s *SecretBuffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the number of bytes held.
func (s *SecretBuffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Wipe zeroes the buffer and drops the reference. It is safe to call more
// than once and on a nil receiver.
func (s *SecretBuffer) Wipe() {
	if s == nil || s.b == nil {
		return
	}
	Wipe(s.b)
	s.b = nil
}
