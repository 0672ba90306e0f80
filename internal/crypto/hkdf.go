package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ExpandKey returns at least n bytes of key material for rendering.
//
// A site key that is already long enough is returned as is, so every
// built-in template renders from the raw HMAC output. Longer requests get
// HKDF-SHA-256 output keyed by the site key with info scope+".expand"; the
// first bytes of the expansion never repeat the site key, so no two template
// positions share a key byte.
func ExpandKey(siteKey []byte, scope string, n int) ([]byte, error) {
	if len(siteKey) != SiteKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(siteKey), SiteKeySize)
	}
	if n <= len(siteKey) {
		return siteKey, nil
	}

	reader := hkdf.New(sha256.New, siteKey, nil, []byte(scope+expandSuffix))
	key := make([]byte, n)

	if _, err := io.ReadFull(reader, key); err != nil {
		Wipe(key)
		return nil, fmt.Errorf("failed to expand key: %w", err)
	}

	return key, nil
}
