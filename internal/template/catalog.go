package template

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedCombination is returned for a purpose/kind pair that has no
	// template list.
	ErrUndefinedCombination = errors.New("undefined purpose and type combination")

	// ErrUnknownClass is returned for a class code without an alphabet.
	ErrUnknownClass = errors.New("unknown character class")

	// ErrKeyTooShort is returned when the key has fewer than len(template)+1 bytes.
	ErrKeyTooShort = errors.New("key too short for template")

	// ErrNoTemplates is returned when Render is given an empty template list.
	ErrNoTemplates = errors.New("no templates")
)

// Template is an ordered sequence of class codes.
type Template string

// Classes returns the class code at every position.
func (t Template) Classes() []Class {
	out := make([]Class, len(t))
	for i := 0; i < len(t); i++ {
		out[i] = Class(t[i])
	}
	return out
}

// Purpose is what a rendered credential is used for.
type Purpose uint8

const (
	PurposePassword Purpose = iota
	PurposeLogin
	PurposeAnswer
)

// Kind is the requested strength or shape of a credential.
type Kind uint8

const (
	KindMaximum Kind = iota
	KindLong
	KindMedium
	KindBasic
	KindShort
	KindPIN
	KindName
	KindPhrase
)

var (
	maximum = []Template{"anoxxxxxxxxxxxxxxxxx", "axxxxxxxxxxxxxxxxxno"}
	long    = []Template{
		"CvcvnoCvcvCvcv", "CvcvCvcvnoCvcv", "CvcvCvcvCvcvno",
		"CvccnoCvcvCvcv", "CvccCvcvnoCvcv", "CvccCvcvCvcvno",
		"CvcvnoCvccCvcv", "CvcvCvccnoCvcv", "CvcvCvccCvcvno",
		"CvcvnoCvcvCvcc", "CvcvCvcvnoCvcc", "CvcvCvcvCvccno",
		"CvccnoCvccCvcv", "CvccCvccnoCvcv", "CvccCvccCvcvno",
		"CvcvnoCvccCvcc", "CvcvCvccnoCvcc", "CvcvCvccCvccno",
		"CvccnoCvcvCvcc", "CvccCvcvnoCvcc", "CvccCvcvCvccno",
	}
	medium = []Template{"CvcnoCvc", "CvcCvcno"}
	basic  = []Template{"aaanaaan", "aannaaan", "aaannaaa"}
	short  = []Template{"Cvcn"}
	pin    = []Template{"nnnn"}
	name   = []Template{"cvccvcvcv"}
	phrase = []Template{"cvcc cvc cvccvcv cvc", "cvc cvccvcvcv cvcv", "cv cvccv cvc cvcvccv"}
)

type catalogKey struct {
	purpose Purpose
	kind    Kind
}

var catalog = map[catalogKey][]Template{
	{PurposePassword, KindMaximum}: maximum,
	{PurposePassword, KindLong}:    long,
	{PurposePassword, KindMedium}:  medium,
	{PurposePassword, KindBasic}:   basic,
	{PurposePassword, KindShort}:   short,
	{PurposePassword, KindPIN}:     pin,
	{PurposePassword, KindName}:    name,
	{PurposePassword, KindPhrase}:  phrase,
	{PurposeLogin, KindName}:       name,
	{PurposeAnswer, KindPhrase}:    phrase,
}

// Defined reports whether purpose and kind form a legal combination.
func Defined(purpose Purpose, kind Kind) bool {
	_, ok := catalog[catalogKey{purpose, kind}]
	return ok
}

// For returns the ordered template list for purpose and kind. The returned
// slice is a copy.
func For(purpose Purpose, kind Kind) ([]Template, error) {
	list, ok := catalog[catalogKey{purpose, kind}]
	if !ok {
		return nil, fmt.Errorf("%w: purpose %d, type %d", ErrUndefinedCombination, purpose, kind)
	}
	return append([]Template(nil), list...), nil
}

// MaxLen returns the length of the longest template in list.
func MaxLen(list []Template) int {
	n := 0
	for _, t := range list {
		if len(t) > n {
			n = len(t)
		}
	}
	return n
}
