package model

import (
	"go/token"
	"slices"

	"subenum-generator/internal/analyze"
)

// SourceEnum is the model of an annotated source enumeration.
type SourceEnum struct {
	ID analyze.TypeID
	// Name is the Go type name of the enumeration.
	Name string
	Kind analyze.EnumKind
	// Underlying is the basic type of a const enum ("int", "string", ...).
	Underlying string
	// Variants in source declaration order.
	Variants []Variant
	// Subsets are the declared subset names, in declaration order.
	Subsets []string
	// Capabilities are the requested capabilities, in request order, before
	// any filtering. Unknown names are kept here; the projector drops them.
	Capabilities []string
	Pos          token.Position
}

// Variant is one case of a source enumeration.
type Variant struct {
	// Name identifies the variant across the source and its subsets.
	Name string
	// Ident is the Go identifier of the variant: a constant or a type name.
	Ident      string
	Payload    analyze.PayloadShape
	Fields     []string
	Underlying string
	// Pointer is set when the union variant is implemented by *Ident.
	Pointer bool
	// Value is the constant value of a const enum variant.
	Value string
	// Methods declared on a union variant type by the user.
	Methods []string
	// Memberships are the subsets this variant belongs to, in tag order.
	Memberships []string
	Pos         token.Position
}

// MemberOf reports whether the variant belongs to subset.
func (v *Variant) MemberOf(subset string) bool {
	return slices.Contains(v.Memberships, subset)
}

// TypeExpr is the type expression used in a type switch on a union variant.
func (v *Variant) TypeExpr() string {
	if v.Pointer {
		return "*" + v.Ident
	}

	return v.Ident
}

// Requests reports whether capability was requested with //subenum:derive.
func (e *SourceEnum) Requests(capability string) bool {
	return slices.Contains(e.Capabilities, capability)
}

// Variant looks a variant up by name.
func (e *SourceEnum) Variant(name string) (*Variant, bool) {
	for i := range e.Variants {
		if e.Variants[i].Name == name {
			return &e.Variants[i], true
		}
	}

	return nil, false
}
