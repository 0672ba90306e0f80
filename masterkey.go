package mpw

import (
	"encoding/hex"
	"strings"
	"sync"

	"github.com/masterpassword/mpw-go/internal/crypto"
	"github.com/masterpassword/mpw-go/internal/template"
)

// MasterKey is the key derived from a secret and an identity for one
// algorithm version. It is the expensive half of a derivation: callers that
// derive several credentials in a row can reuse it, and must Wipe it when
// done.
type MasterKey struct {
	algorithm Algorithm
	mu        sync.Mutex
	key       *crypto.SecretBuffer
}

// NewMasterKey runs the algorithm's KDF over secret and identity.
//
// NewMasterKey takes ownership of secret and zeroes it before returning, on
// success and on every error path.
func NewMasterKey(secret []byte, identity string, algorithm Algorithm) (*MasterKey, error) {
	buf := crypto.NewSecretBuffer(secret)
	defer buf.Wipe()

	if identity == "" {
		return nil, &ValidationError{Field: "identity", Err: ErrEmptyIdentity}
	}
	if buf.Len() == 0 {
		return nil, &ValidationError{Field: "secret", Err: ErrEmptySecret}
	}
	if !algorithm.valid() {
		return nil, &ValidationError{Field: "algorithm", Value: algorithm.String(), Err: ErrUnknownAlgorithm}
	}

	key, err := crypto.MasterKey(crypto.ProfileFor(algorithm.version()), buf.Bytes(), identity)
	if err != nil {
		return nil, wrapError(err, algorithm)
	}

	return &MasterKey{algorithm: algorithm, key: crypto.NewSecretBuffer(key)}, nil
}

// Algorithm returns the version the key was derived with.
func (k *MasterKey) Algorithm() Algorithm {
	return k.algorithm
}

// KeyID returns the upper-case hex SHA-256 of the key.
func (k *MasterKey) KeyID() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key.Len() == 0 {
		return "", ErrKeyWiped
	}
	id := crypto.KeyID(k.key.Bytes())
	return strings.ToUpper(hex.EncodeToString(id[:])), nil
}

// Result derives the credential for site.
func (k *MasterKey) Result(site *Site) (string, error) {
	if err := site.Validate(); err != nil {
		return "", err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key.Len() == 0 {
		return "", ErrKeyWiped
	}

	profile := crypto.ProfileFor(k.algorithm.version())
	scope := site.Variant.scope()

	seed, err := crypto.SiteSeed(profile, scope, site.Name, site.Counter, site.seedContext())
	if err != nil {
		return "", wrapError(err, k.algorithm)
	}
	siteKey, err := crypto.SiteKey(k.key.Bytes(), seed)
	if err != nil {
		return "", wrapError(err, k.algorithm)
	}
	siteKeyBuf := crypto.NewSecretBuffer(siteKey)
	defer siteKeyBuf.Wipe()

	out, err := render(profile, scope, siteKeyBuf.Bytes(), site)
	if err != nil {
		return "", wrapError(err, k.algorithm)
	}
	return out, nil
}

// Wipe zeroes the key. Later calls to Result and KeyID fail with ErrKeyWiped.
func (k *MasterKey) Wipe() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.key.Wipe()
}

func render(profile crypto.Profile, scope crypto.Scope, siteKey []byte, site *Site) (string, error) {
	templates, err := template.For(site.Variant.purpose(), site.Type.kind())
	if err != nil {
		return "", err
	}

	key, err := crypto.ExpandKey(siteKey, profile.ScopeName(scope), template.MaxLen(templates)+1)
	if err != nil {
		return "", err
	}
	if len(key) != len(siteKey) {
		defer crypto.Wipe(key)
	}

	index := template.ByteIndex
	if profile.LegacyIndex {
		index = template.LegacyIndex
	}

	return template.Render(key, templates, index)
}
