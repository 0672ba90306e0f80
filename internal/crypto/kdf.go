package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// MasterKey derives the 64-byte master key from secret and identity using the
// profile's KDF. It does not modify secret; the caller owns and wipes it.
//
// The cost parameters are part of the output contract and are never tuned.
func MasterKey(p Profile, secret []byte, identity string) ([]byte, error) {
	salt, err := UserSalt(p, identity)
	if err != nil {
		return nil, err
	}
	defer Wipe(salt)

	switch p.KDF {
	case KDFScrypt:
		key, err := scrypt.Key(secret, salt, p.ScryptN, p.ScryptR, p.ScryptP, MasterKeySize)
		if err != nil {
			return nil, fmt.Errorf("%w: scrypt: %v", ErrKeyDerivation, err)
		}
		return key, nil
	case KDFArgon2id:
		if p.Argon2Time < 1 || p.Argon2Threads < 1 {
			return nil, fmt.Errorf("%w: argon2id: invalid parameters t=%d p=%d",
				ErrKeyDerivation, p.Argon2Time, p.Argon2Threads)
		}
		return argon2.IDKey(secret, salt, p.Argon2Time, p.Argon2MemoryKB, p.Argon2Threads, MasterKeySize), nil
	}

	return nil, fmt.Errorf("%w: unknown KDF %s", ErrKeyDerivation, p.KDF)
}
