// Package subenumerrors defines the errors returned by generated subset
// conversions. It is the only package generated code imports.
package subenumerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAMember is matched by every NotAMemberError.
	ErrNotAMember = errors.New("subenum: not a member")
	// ErrUnknownVariant is matched by every UnknownVariantError.
	ErrUnknownVariant = errors.New("subenum: unknown variant")
	// ErrParse is matched by every ParseError.
	ErrParse = errors.New("subenum: parse error")
)

// NotAMemberError is returned when a source value is a declared variant that
// does not belong to the target subset.
type NotAMemberError struct {
	Enum    string // Source enumeration, e.g. "Canis"
	Subset  string // Target subset, e.g. "Dog"
	Variant string // Offending variant, e.g. "Wolf"
}

func (e *NotAMemberError) Error() string {
	return fmt.Sprintf("subenum: %s.%s is not a member of %s", e.Enum, e.Variant, e.Subset)
}

func (e *NotAMemberError) Is(target error) bool {
	return target == ErrNotAMember
}

// UnknownVariantError is returned when a source value matches none of the
// declared variants: a const enum value outside its constants, or a nil
// union value.
type UnknownVariantError struct {
	Enum  string
	Value any
}

func (e *UnknownVariantError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("subenum: nil %s value", e.Enum)
	}

	return fmt.Sprintf("subenum: %v is not a known %s variant", e.Value, e.Enum)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// ParseError is returned by generated UnmarshalText methods.
type ParseError struct {
	Type string // Subset type being parsed
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("subenum: %q is not a %s variant", e.Text, e.Type)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
