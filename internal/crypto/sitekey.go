package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// SiteKey computes HMAC-SHA-256(masterKey, seed).
func SiteKey(masterKey, seed []byte) ([]byte, error) {
	if len(masterKey) != MasterKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(masterKey), MasterKeySize)
	}

	mac := hmac.New(sha256.New, masterKey)
	mac.Write(seed)
	return mac.Sum(nil), nil
}

// KeyID returns the SHA-256 digest of a master key. Users compare it across
// machines to confirm they typed the same secret without revealing it.
func KeyID(masterKey []byte) [sha256.Size]byte {
	return sha256.Sum256(masterKey)
}
