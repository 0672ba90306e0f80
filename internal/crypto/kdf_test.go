package crypto

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

func TestMasterKey_MatchesKDF(t *testing.T) {
	secret := []byte("banana colored duckling")
	identity := "Robert Lee Mitchell"

	t.Run("scrypt", func(t *testing.T) {
		p := ProfileFor(V3)
		salt, _ := UserSalt(p, identity)
		want, err := scrypt.Key(secret, salt, 32768, 8, 2, 64)
		if err != nil {
			t.Fatalf("scrypt.Key() error = %v", err)
		}

		got, err := MasterKey(p, secret, identity)
		if err != nil {
			t.Fatalf("MasterKey() error = %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Error("MasterKey() does not match scrypt over the user salt")
		}
	})

	t.Run("argon2id", func(t *testing.T) {
		p := ProfileFor(VNext)
		salt, _ := UserSalt(p, identity)
		want := argon2.IDKey(secret, salt, 3, 64*1024, 4, 64)

		got, err := MasterKey(p, secret, identity)
		if err != nil {
			t.Fatalf("MasterKey() error = %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Error("MasterKey() does not match argon2id over the user salt")
		}
	})
}

func TestMasterKey_Properties(t *testing.T) {
	secret := []byte("correct horse battery staple")
	p := ProfileFor(V3)

	a, err := MasterKey(p, secret, "alice")
	if err != nil {
		t.Fatalf("MasterKey() error = %v", err)
	}
	if len(a) != MasterKeySize {
		t.Errorf("len = %d, want %d", len(a), MasterKeySize)
	}

	again, _ := MasterKey(p, secret, "alice")
	if !bytes.Equal(a, again) {
		t.Error("MasterKey() is not deterministic")
	}

	other, _ := MasterKey(p, secret, "bob")
	if bytes.Equal(a, other) {
		t.Error("different identities produced the same master key")
	}

	v1, _ := MasterKey(ProfileFor(V1), secret, "alice")
	if bytes.Equal(a, v1) {
		t.Error("V1 and V3 produced the same master key")
	}

	if !bytes.Equal(secret, []byte("correct horse battery staple")) {
		t.Error("MasterKey() modified the secret")
	}
}

func TestMasterKey_InvalidInput(t *testing.T) {
	if _, err := MasterKey(ProfileFor(V3), []byte("secret"), ""); !errors.Is(err, ErrEmptyField) {
		t.Errorf("empty identity: expected ErrEmptyField, got %v", err)
	}

	p := ProfileFor(V3)
	p.ScryptN = 3
	if _, err := MasterKey(p, []byte("secret"), "alice"); !errors.Is(err, ErrKeyDerivation) {
		t.Errorf("bad scrypt N: expected ErrKeyDerivation, got %v", err)
	}

	p = ProfileFor(VNext)
	p.Argon2Threads = 0
	if _, err := MasterKey(p, []byte("secret"), "alice"); !errors.Is(err, ErrKeyDerivation) {
		t.Errorf("bad argon2 threads: expected ErrKeyDerivation, got %v", err)
	}

	p = ProfileFor(V3)
	p.KDF = KDF(42)
	if _, err := MasterKey(p, []byte("secret"), "alice"); !errors.Is(err, ErrKeyDerivation) {
		t.Errorf("unknown KDF: expected ErrKeyDerivation, got %v", err)
	}
}

func TestMasterKey_WipesSalt(t *testing.T) {
	var wiped [][]byte
	restore := SetWipeObserverForTesting(func(b []byte) { wiped = append(wiped, b) })
	defer restore()

	if _, err := MasterKey(ProfileFor(V3), []byte("secret"), "alice"); err != nil {
		t.Fatalf("MasterKey() error = %v", err)
	}

	saltLen := len(Namespace) + 4 + len("alice")
	found := false
	for _, b := range wiped {
		if len(b) == saltLen {
			found = true
			for _, c := range b {
				if c != 0 {
					t.Fatal("salt buffer not zeroed")
				}
			}
		}
	}
	if !found {
		t.Error("salt buffer was never wiped")
	}
}
