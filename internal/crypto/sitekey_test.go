package crypto

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"testing"
)

func testMasterKey() []byte {
	key := make([]byte, MasterKeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestSiteKey(t *testing.T) {
	master := testMasterKey()
	seed := []byte("com.lyndir.masterpassword\x00\x00\x00\x0bexample.com\x00\x00\x00\x01")

	mac := hmac.New(sha256.New, master)
	mac.Write(seed)
	want := mac.Sum(nil)

	got, err := SiteKey(master, seed)
	if err != nil {
		t.Fatalf("SiteKey() error = %v", err)
	}
	if len(got) != SiteKeySize {
		t.Errorf("len = %d, want %d", len(got), SiteKeySize)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("SiteKey() = %x, want %x", got, want)
	}

	seed[len(seed)-1] = 2
	other, _ := SiteKey(master, seed)
	if bytes.Equal(got, other) {
		t.Error("different seeds produced the same site key")
	}
}

func TestSiteKey_InvalidMasterKey(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
	}{
		{"nil", nil},
		{"too short", make([]byte, 32)},
		{"too long", make([]byte, 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SiteKey(tt.key, []byte("seed")); !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("expected ErrInvalidKeySize, got %v", err)
			}
		})
	}
}

func TestKeyID(t *testing.T) {
	master := testMasterKey()
	if got, want := KeyID(master), sha256.Sum256(master); got != want {
		t.Errorf("KeyID() = %x, want %x", got, want)
	}
}
