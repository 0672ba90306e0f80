package crypto

const (
	// Namespace is the domain-separation prefix shared by every algorithm
	// version. Scopes for the login and answer variants extend it.
	Namespace = "com.lyndir.masterpassword"

	// MasterKeySize is the size of a derived master key in bytes.
	MasterKeySize = 64
	// SiteKeySize is the size of an HMAC-SHA-256 site key in bytes.
	SiteKeySize = 32

	// ScryptN is the scrypt CPU/memory cost used by V0 through V3.
	ScryptN = 32768
	// ScryptR is the scrypt block size used by V0 through V3.
	ScryptR = 8
	// ScryptP is the scrypt parallelization used by V0 through V3.
	ScryptP = 2

	// Argon2Time is the number of argon2id passes used by Next.
	Argon2Time = 3
	// Argon2MemoryKB is the argon2id memory cost in KiB used by Next.
	Argon2MemoryKB = 64 * 1024
	// Argon2Threads is the argon2id lane count used by Next. It changes the
	// output, so it is pinned like every other parameter.
	Argon2Threads = 4

	// expandSuffix is appended to a scope to form the HKDF info string used
	// when a template needs more key bytes than the site key carries.
	expandSuffix = ".expand"
)
