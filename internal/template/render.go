package template

import (
	"fmt"
	"strings"
)

// IndexFunc maps a key byte to the value that is reduced modulo a list size.
type IndexFunc func(b byte) uint

// ByteIndex uses the key byte as is.
func ByteIndex(b byte) uint {
	return uint(b)
}

// LegacyIndex sign-extends b to 16 bits and swaps the two bytes. The oldest
// algorithm version selected templates and characters this way and its
// output depends on it.
func LegacyIndex(b byte) uint {
	v := uint16(int16(int8(b)))
	return uint(v<<8 | v>>8)
}

// Render selects templates[index(key[0]) % len(templates)] and renders
// position i as alphabet[index(key[i+1]) % len(alphabet)].
//
// The modulo reduction is biased for alphabets whose size does not divide
// the index range. The bias is part of the output contract.
func Render(key []byte, templates []Template, index IndexFunc) (string, error) {
	if len(templates) == 0 {
		return "", ErrNoTemplates
	}
	if len(key) == 0 {
		return "", fmt.Errorf("%w: empty key", ErrKeyTooShort)
	}
	if index == nil {
		index = ByteIndex
	}

	t := templates[index(key[0])%uint(len(templates))]
	if len(key) < len(t)+1 {
		return "", fmt.Errorf("%w: have %d bytes, need %d", ErrKeyTooShort, len(key), len(t)+1)
	}

	var b strings.Builder
	b.Grow(len(t))
	for i := 0; i < len(t); i++ {
		alphabet, err := Alphabet(Class(t[i]))
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[index(key[i+1])%uint(len(alphabet))])
	}

	return b.String(), nil
}
