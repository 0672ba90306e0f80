package mpw

import (
	"context"

	"github.com/masterpassword/mpw-go/internal/crypto"
)

// Derive returns the credential for site, derived from secret and identity
// with the given algorithm version.
//
// Derive takes ownership of secret. The secret and the intermediate master
// key are zeroed before Derive returns, whether it succeeds or not.
// Input errors are reported before the KDF runs.
func Derive(secret []byte, identity string, site *Site, algorithm Algorithm) (string, error) {
	if err := site.Validate(); err != nil {
		crypto.Wipe(secret)
		return "", err
	}

	key, err := NewMasterKey(secret, identity, algorithm)
	if err != nil {
		return "", err
	}
	defer key.Wipe()

	return key.Result(site)
}

// DeriveContext is Derive with a deadline on the wait, not on the work.
//
// The KDF cannot be interrupted without leaving key material behind, so the
// derivation always runs to completion on its own goroutine, wiping its
// buffers as Derive does. If ctx ends first DeriveContext returns ctx.Err()
// and the late result is dropped.
func DeriveContext(ctx context.Context, secret []byte, identity string, site *Site, algorithm Algorithm) (string, error) {
	if err := ctx.Err(); err != nil {
		crypto.Wipe(secret)
		return "", err
	}

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)

	go func() {
		out, err := Derive(secret, identity, site, algorithm)
		done <- result{out, err}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
