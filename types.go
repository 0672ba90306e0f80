package mpw

import (
	"fmt"
	"strings"

	"github.com/masterpassword/mpw-go/internal/crypto"
	"github.com/masterpassword/mpw-go/internal/template"
)

// Algorithm is an algorithm version. Existing versions never change
// behaviour; new versions are appended.
type Algorithm uint8

const (
	AlgorithmV0 Algorithm = iota
	AlgorithmV1
	AlgorithmV2
	AlgorithmV3
	AlgorithmNext
)

const (
	// AlgorithmDefault is the version used when none is requested.
	AlgorithmDefault = AlgorithmV3
	// AlgorithmFirst is the oldest supported version.
	AlgorithmFirst = AlgorithmV0
	// AlgorithmLast is the newest supported version.
	AlgorithmLast = AlgorithmNext
)

// Algorithms returns every supported version, oldest first.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, AlgorithmLast-AlgorithmFirst+1)
	for a := AlgorithmFirst; a <= AlgorithmLast; a++ {
		out = append(out, a)
	}
	return out
}

// String returns the command-line token of the version.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return a.version().String()
}

func (a Algorithm) valid() bool {
	return a <= AlgorithmLast
}

func (a Algorithm) version() crypto.Version {
	switch a {
	case AlgorithmV0:
		return crypto.V0
	case AlgorithmV1:
		return crypto.V1
	case AlgorithmV2:
		return crypto.V2
	case AlgorithmV3:
		return crypto.V3
	default:
		return crypto.VNext
	}
}

// ParseAlgorithm parses one of 0, 1, 2, 3 or next.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0":
		return AlgorithmV0, nil
	case "1":
		return AlgorithmV1, nil
	case "2":
		return AlgorithmV2, nil
	case "3":
		return AlgorithmV3, nil
	case "next":
		return AlgorithmNext, nil
	}
	return 0, &ValidationError{Field: "algorithm", Value: s, Err: ErrUnknownAlgorithm}
}

// Variant is the purpose of a derived credential.
type Variant uint8

const (
	// VariantPassword derives the password to log in with.
	VariantPassword Variant = iota
	// VariantLogin derives the user name to log in as.
	VariantLogin
	// VariantAnswer derives the answer to a security question.
	VariantAnswer
)

func (v Variant) String() string {
	switch v {
	case VariantPassword:
		return "password"
	case VariantLogin:
		return "login"
	case VariantAnswer:
		return "answer"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

func (v Variant) valid() bool {
	return v <= VariantAnswer
}

func (v Variant) scope() crypto.Scope {
	switch v {
	case VariantLogin:
		return crypto.ScopeIdentification
	case VariantAnswer:
		return crypto.ScopeRecovery
	default:
		return crypto.ScopeAuthentication
	}
}

func (v Variant) purpose() template.Purpose {
	switch v {
	case VariantLogin:
		return template.PurposeLogin
	case VariantAnswer:
		return template.PurposeAnswer
	default:
		return template.PurposePassword
	}
}

// ParseVariant parses one of p, password, l, login, a or answer.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "password":
		return VariantPassword, nil
	case "l", "login":
		return VariantLogin, nil
	case "a", "answer":
		return VariantAnswer, nil
	}
	return 0, &ValidationError{Field: "variant", Value: s, Err: ErrUnknownVariant}
}

// ResultType is the requested shape of a credential.
type ResultType uint8

const (
	// TypeMaximum is 20 characters, contains symbols.
	TypeMaximum ResultType = iota
	// TypeLong is copy-friendly, 14 characters, contains symbols.
	TypeLong
	// TypeMedium is copy-friendly, 8 characters, contains symbols.
	TypeMedium
	// TypeBasic is 8 characters, no symbols.
	TypeBasic
	// TypeShort is copy-friendly, 4 characters, no symbols.
	TypeShort
	// TypePIN is 4 digits.
	TypePIN
	// TypeName is a 9 letter name.
	TypeName
	// TypePhrase is a 20 character sentence.
	TypePhrase
)

var resultTypeNames = [...]string{
	TypeMaximum: "maximum",
	TypeLong:    "long",
	TypeMedium:  "medium",
	TypeBasic:   "basic",
	TypeShort:   "short",
	TypePIN:     "pin",
	TypeName:    "name",
	TypePhrase:  "phrase",
}

func (t ResultType) String() string {
	if !t.valid() {
		return fmt.Sprintf("ResultType(%d)", uint8(t))
	}
	return resultTypeNames[t]
}

func (t ResultType) valid() bool {
	return t <= TypePhrase
}

func (t ResultType) kind() template.Kind {
	switch t {
	case TypeMaximum:
		return template.KindMaximum
	case TypeLong:
		return template.KindLong
	case TypeMedium:
		return template.KindMedium
	case TypeBasic:
		return template.KindBasic
	case TypeShort:
		return template.KindShort
	case TypePIN:
		return template.KindPIN
	case TypeName:
		return template.KindName
	default:
		return template.KindPhrase
	}
}

// ParseResultType parses one of the type tokens:
//
//	x, max, maximum | l, long | m, med, medium | b, basic
//	s, short        | i, pin  | n, name        | p, phrase
func ParseResultType(s string) (ResultType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "max", "maximum":
		return TypeMaximum, nil
	case "l", "long":
		return TypeLong, nil
	case "m", "med", "medium":
		return TypeMedium, nil
	case "b", "basic":
		return TypeBasic, nil
	case "s", "short":
		return TypeShort, nil
	case "i", "pin":
		return TypePIN, nil
	case "n", "name":
		return TypeName, nil
	case "p", "phrase":
		return TypePhrase, nil
	}
	return 0, &ValidationError{Field: "type", Value: s, Err: ErrUnknownType}
}

// DefaultResultType returns the type used for v when none is requested:
// long for passwords and name for logins. Answers have no default.
func DefaultResultType(v Variant) (ResultType, error) {
	switch v {
	case VariantPassword:
		return TypeLong, nil
	case VariantLogin:
		return TypeName, nil
	}
	return 0, &ValidationError{Field: "type", Err: ErrMissingType}
}

// Defined reports whether v has templates for t.
func Defined(v Variant, t ResultType) bool {
	return v.valid() && t.valid() && template.Defined(v.purpose(), t.kind())
}
