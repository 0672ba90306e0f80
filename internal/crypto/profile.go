package crypto

import (
	"encoding/binary"
	"fmt"
)

// Version identifies an algorithm version. Values are ordinal and stable.
type Version uint8

const (
	V0 Version = iota
	V1
	V2
	V3
	VNext
)

// String returns the command-line token for the version.
func (v Version) String() string {
	switch v {
	case V0:
		return "0"
	case V1:
		return "1"
	case V2:
		return "2"
	case V3:
		return "3"
	case VNext:
		return "next"
	}
	return fmt.Sprintf("Version(%d)", uint8(v))
}

// KDF selects the key-derivation function of a profile.
type KDF uint8

const (
	KDFScrypt KDF = iota + 1
	KDFArgon2id
)

func (k KDF) String() string {
	switch k {
	case KDFScrypt:
		return "scrypt"
	case KDFArgon2id:
		return "argon2id"
	}
	return fmt.Sprintf("KDF(%d)", uint8(k))
}

// Scope is the purpose a site key is derived for.
type Scope uint8

const (
	ScopeAuthentication Scope = iota
	ScopeIdentification
	ScopeRecovery
)

// Profile pins every parameter and encoding rule of one algorithm version.
// Profiles are values; nothing mutates them after ProfileFor returns.
type Profile struct {
	Version Version
	KDF     KDF

	ScryptN int
	ScryptR int
	ScryptP int

	Argon2Time     uint32
	Argon2MemoryKB uint32
	Argon2Threads  uint8

	Namespace string

	// IntWidth is the byte width of every length prefix and of the counter.
	IntWidth int
	// Order is the byte order of every length prefix and of the counter.
	Order binary.AppendByteOrder

	// LegacyIndex makes the renderer sign-extend each key byte to 16 bits and
	// swap its bytes before reducing it modulo the alphabet size.
	LegacyIndex bool
}

// ProfileFor returns the pinned profile for v. It panics for a value outside
// the enumeration, which only a programming error can produce.
func ProfileFor(v Version) Profile {
	p := Profile{
		Version:   v,
		KDF:       KDFScrypt,
		ScryptN:   ScryptN,
		ScryptR:   ScryptR,
		ScryptP:   ScryptP,
		Namespace: Namespace,
		IntWidth:  4,
		Order:     binary.BigEndian,
	}

	switch v {
	case V0:
		p.LegacyIndex = true
	case V1:
		p.Order = binary.LittleEndian
	case V2:
		p.IntWidth = 8
	case V3:
	case VNext:
		p.KDF = KDFArgon2id
		p.ScryptN, p.ScryptR, p.ScryptP = 0, 0, 0
		p.Argon2Time = Argon2Time
		p.Argon2MemoryKB = Argon2MemoryKB
		p.Argon2Threads = Argon2Threads
	default:
		panic(fmt.Sprintf("crypto: no profile for %s", v))
	}

	return p
}

// ScopeName returns the namespace a site seed starts with for scope s.
func (p Profile) ScopeName(s Scope) string {
	switch s {
	case ScopeIdentification:
		return p.Namespace + ".login"
	case ScopeRecovery:
		return p.Namespace + ".answer"
	default:
		return p.Namespace
	}
}

// appendInt appends v in the profile's integer width and byte order.
func (p Profile) appendInt(b []byte, v uint64) ([]byte, error) {
	switch p.IntWidth {
	case 4:
		if v > 0xFFFFFFFF {
			return nil, fmt.Errorf("%w: %d", ErrFieldTooLong, v)
		}
		return p.Order.AppendUint32(b, uint32(v)), nil
	case 8:
		return p.Order.AppendUint64(b, v), nil
	}
	panic(fmt.Sprintf("crypto: unsupported integer width %d", p.IntWidth))
}
