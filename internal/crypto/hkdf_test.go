package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"testing"

	"golang.org/x/crypto/hkdf"
)

func testSiteKey() []byte {
	key := make([]byte, SiteKeySize)
	for i := range key {
		key[i] = byte(0xA0 + i)
	}
	return key
}

func TestExpandKey_ShortRequestReturnsSiteKey(t *testing.T) {
	siteKey := testSiteKey()

	for _, n := range []int{0, 1, 21, SiteKeySize} {
		got, err := ExpandKey(siteKey, Namespace, n)
		if err != nil {
			t.Fatalf("ExpandKey(%d) error = %v", n, err)
		}
		if &got[0] != &siteKey[0] {
			t.Errorf("ExpandKey(%d) copied the site key", n)
		}
	}
}

func TestExpandKey_LongRequest(t *testing.T) {
	siteKey := testSiteKey()

	got, err := ExpandKey(siteKey, Namespace, 100)
	if err != nil {
		t.Fatalf("ExpandKey() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}

	want := make([]byte, 100)
	_, _ = io.ReadFull(hkdf.New(sha256.New, siteKey, nil, []byte(Namespace+".expand")), want)
	if !bytes.Equal(got, want) {
		t.Error("ExpandKey() does not match HKDF-SHA-256 with the .expand info")
	}

	if bytes.Equal(got[:SiteKeySize], siteKey) {
		t.Error("expansion repeats the site key")
	}

	login, _ := ExpandKey(siteKey, Namespace+".login", 100)
	if bytes.Equal(got, login) {
		t.Error("expansion is not bound to the scope")
	}
}

func TestExpandKey_InvalidSiteKey(t *testing.T) {
	if _, err := ExpandKey(make([]byte, 16), Namespace, 8); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("expected ErrInvalidKeySize, got %v", err)
	}
}
