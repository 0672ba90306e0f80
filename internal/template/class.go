package template

import "fmt"

// Class is a character-class code. The byte values are the ones used in the
// template strings below.
type Class byte

const (
	ClassUpperVowel     Class = 'V'
	ClassUpperConsonant Class = 'C'
	ClassLowerVowel     Class = 'v'
	ClassLowerConsonant Class = 'c'
	ClassUpperAlpha     Class = 'A'
	ClassAlpha          Class = 'a'
	ClassNumeric        Class = 'n'
	ClassOther          Class = 'o'
	ClassAny            Class = 'x'
	ClassSpace          Class = ' '
)

var alphabets = map[Class]string{
	ClassUpperVowel:     "AEIOU",
	ClassUpperConsonant: "BCDFGHJKLMNPQRSTVWXYZ",
	ClassLowerVowel:     "aeiou",
	ClassLowerConsonant: "bcdfghjklmnpqrstvwxyz",
	ClassUpperAlpha:     "AEIOUBCDFGHJKLMNPQRSTVWXYZ",
	ClassAlpha:          "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz",
	ClassNumeric:        "0123456789",
	ClassOther:          "@&%?,=[]_:-+*$#!'^~;()/.",
	ClassAny:            "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()",
	ClassSpace:          " ",
}

// Alphabet returns the ordered candidate characters for c.
func Alphabet(c Class) (string, error) {
	a, ok := alphabets[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, byte(c))
	}
	return a, nil
}

// Classes returns every defined class code.
func Classes() []Class {
	return []Class{
		ClassUpperVowel, ClassUpperConsonant, ClassLowerVowel, ClassLowerConsonant,
		ClassUpperAlpha, ClassAlpha, ClassNumeric, ClassOther, ClassAny, ClassSpace,
	}
}
