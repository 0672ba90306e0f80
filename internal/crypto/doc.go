// Package crypto implements the key-derivation half of the credential
// pipeline: algorithm profiles, canonical seed encoding, the master-key KDF
// and the site-key HMAC.
//
// # Algorithm Suite
//
//   - scrypt (N=32768, r=8, p=2, 64-byte output): master key for V0 to V3.
//
//   - Argon2id (t=3, m=64 MiB, p=4, 64-byte output): master key for Next.
//
//   - HMAC-SHA-256: site key from the master key and the site seed.
//
//   - HKDF-SHA-256 (RFC 5869): expansion of a site key for templates longer
//     than the key itself.
//
// # Compatibility
//
// Every byte of [UserSalt] and [SiteSeed] is a permanent contract. A profile
// returned by [ProfileFor] must never change once released: altering a
// namespace, integer width, byte order or KDF cost changes every credential
// derived with that version, and nothing can detect the change except
// comparison with an older result.
//
//	salt = namespace || len(identity) || identity
//	seed = scope || len(site) || site || counter [|| len(context) || context]
//
// Lengths are UTF-8 byte counts.
//
// # Key Management
//
// Master keys, site keys and secrets are plain byte slices owned by the
// caller. Wrap them in a [SecretBuffer] and defer its Wipe so that every exit
// path, error paths included, zeroes them. Keys should never be logged,
// serialized or kept beyond one derivation.
package crypto
