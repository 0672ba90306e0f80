package template

import (
	"crypto/sha256"
	"errors"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		key       []byte
		templates []Template
		index     IndexFunc
		want      string
	}{
		{
			name:      "selects template by first byte",
			key:       []byte{1, 0, 1, 2, 3},
			templates: []Template{"nnnn", "Cvcn"},
			want:      "Bed3",
		},
		{
			name:      "wraps character index",
			key:       []byte{0, 10, 11, 29, 255},
			templates: []Template{"nnnn"},
			want:      "0195",
		},
		{
			name:      "space class",
			key:       []byte{0, 0, 200, 0},
			templates: []Template{"c v"},
			want:      "b a",
		},
		{
			name:      "legacy index",
			key:       []byte{1, 1, 2, 3, 4},
			templates: []Template{"nnnn", "Cvcn"},
			index:     LegacyIndex,
			want:      "6284",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.key, tt.templates, tt.index)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render([]byte{0, 1}, nil, nil); !errors.Is(err, ErrNoTemplates) {
		t.Errorf("no templates: expected ErrNoTemplates, got %v", err)
	}
	if _, err := Render(nil, []Template{"n"}, nil); !errors.Is(err, ErrKeyTooShort) {
		t.Errorf("empty key: expected ErrKeyTooShort, got %v", err)
	}
	if _, err := Render([]byte{0, 1, 2}, []Template{"nnnn"}, nil); !errors.Is(err, ErrKeyTooShort) {
		t.Errorf("short key: expected ErrKeyTooShort, got %v", err)
	}
	if _, err := Render([]byte{0, 1, 2}, []Template{"nz"}, nil); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("bad class: expected ErrUnknownClass, got %v", err)
	}
}

func TestRender_CharactersComeFromAlphabets(t *testing.T) {
	kinds := []Kind{KindMaximum, KindLong, KindMedium, KindBasic, KindShort, KindPIN, KindName, KindPhrase}

	for i := 0; i < 64; i++ {
		key := sha256.Sum256([]byte{byte(i)})
		for _, kind := range kinds {
			list, _ := For(PurposePassword, kind)
			for _, index := range []IndexFunc{ByteIndex, LegacyIndex} {
				out, err := Render(key[:], list, index)
				if err != nil {
					t.Fatalf("Render() error = %v", err)
				}

				var tmpl Template
				for _, candidate := range list {
					if len(candidate) == len(out) && matches(candidate, out) {
						tmpl = candidate
						break
					}
				}
				if tmpl == "" {
					t.Errorf("output %q matches no template of kind %d", out, kind)
				}
			}
		}
	}
}

func matches(tmpl Template, out string) bool {
	for i, c := range tmpl.Classes() {
		a, _ := Alphabet(c)
		if strings.IndexByte(a, out[i]) < 0 {
			return false
		}
	}
	return true
}

func TestLegacyIndex(t *testing.T) {
	tests := []struct {
		in   byte
		want uint
	}{
		{0x00, 0x0000},
		{0x01, 0x0100},
		{0x7F, 0x7F00},
		{0x80, 0x80FF},
		{0xFF, 0xFFFF},
	}
	for _, tt := range tests {
		if got := LegacyIndex(tt.in); got != tt.want {
			t.Errorf("LegacyIndex(%#x) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}
