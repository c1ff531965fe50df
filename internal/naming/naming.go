// Package naming derives the Go identifiers of generated declarations.
//
// For a source enum Canis with a subset Dog and a variant Boxer:
//
//	DogBoxer      subset constant (const enums)
//	CanisToDog    fallible forward conversion
//	DogToCanis    infallible backward conversion
//	DogValues     member list
//	CanisInDog    membership predicate
//	isDog         union marker method
//
// Exportedness follows the leading name: an unexported source enum canis
// yields canisToDog.
package naming

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of s and leaves the rest untouched.
func Title(s string) string {
	// Casers are stateful; never share one between goroutines.
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// Fold returns the case-folded form of s, so that names differing only in
// letter case fold to the same string.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Join appends name to prefix, title-casing name when prefix is non-empty.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + Title(name)
}

// IsIdent reports whether s can name a generated declaration.
func IsIdent(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}

// VariantName strips the enum name from a constant identifier when the
// remainder still reads as a name: CanisBoxer -> Boxer, but Canister stays.
func VariantName(enum, ident string) string {
	rest, ok := strings.CutPrefix(ident, enum)
	if !ok || rest == "" {
		return ident
	}

	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) && !unicode.IsDigit(r) && r != '_' {
		return ident
	}

	if rest = strings.TrimPrefix(rest, "_"); rest == "" {
		return ident
	}

	return rest
}

// Const names the subset constant of a const enum variant.
func Const(subset, variant string) string {
	return Join(subset, variant)
}

// Forward names the fallible source -> subset conversion.
func Forward(source, subset string) string {
	return source + "To" + Title(subset)
}

// Backward names the infallible subset -> source conversion.
func Backward(subset, source string) string {
	return subset + "To" + Title(source)
}

// Values names the function listing a subset's members.
func Values(subset string) string {
	return subset + "Values"
}

// Contains names the membership predicate on source values.
func Contains(source, subset string) string {
	return source + "In" + Title(subset)
}

// EqualFunc names the cross-type equality function of a union subset.
func EqualFunc(subset, source string) string {
	return subset + "Equal" + Title(source)
}

// EqualMethod names the cross-type equality method of a const subset.
func EqualMethod(source string) string {
	return "Equal" + Title(source)
}

// Marker names the unexported method sealing a union subset.
func Marker(subset string) string {
	return "is" + Title(subset)
}
