package analyze

import (
	"go/token"

	"subenum-generator/internal/common"
)

// DirectivePrefix starts every comment directive understood by the generator.
const DirectivePrefix = "//subenum:"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "subenum-generator/examples/canis"
	Name    string // e.g., "Canis"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// EnumKind is the Go encoding of an enumeration.
type EnumKind int

const (
	EnumKindUnknown EnumKind = iota
	EnumKindConst            // named basic type + typed constants
	EnumKindUnion            // sealed interface + implementing types
)

// String returns a human-readable representation of the EnumKind.
func (k EnumKind) String() string {
	switch k {
	case EnumKindConst:
		return "const"
	case EnumKindUnion:
		return "union"
	default:
		return common.UnknownStr
	}
}

//go:generate go tool stringer -type=PayloadShape -trimprefix=Payload -output=payloadshape_string.go

// PayloadShape is the shape of the data a variant carries.
type PayloadShape int

const (
	PayloadUnit       PayloadShape = iota // no data: a constant or struct{}
	PayloadPositional                     // a non-struct named type, e.g. type Label string
	PayloadNamed                          // a struct with named fields
)

// Directive is the raw text of one //subenum: comment line.
type Directive struct {
	// Text is the comment with DirectivePrefix removed.
	Text string
	Pos  token.Pos
}

// VariantDecl describes one variant as declared in source.
type VariantDecl struct {
	// Ident is the Go identifier: the constant name or the variant type name.
	Ident string
	// Payload is the shape of the data carried by the variant.
	Payload PayloadShape
	// Fields lists struct field names for PayloadNamed variants.
	Fields []string
	// Underlying is the underlying type of a PayloadPositional variant.
	Underlying string
	// Pointer is set when only *Ident implements a union enum.
	Pointer bool
	// Value is the exact constant value of a const enum variant.
	Value string
	// Methods are the methods declared on a union variant type outside the
	// output file, in declaration order.
	Methods []string
	// Directives are the //subenum: lines in the variant's doc comment.
	Directives []Directive
	Pos        token.Pos
}

// EnumDecl is the structural declaration of one annotated enumeration.
type EnumDecl struct {
	ID   TypeID
	Kind EnumKind
	// Underlying is the basic underlying type of a const enum, e.g. "int".
	Underlying string
	// Unsupported explains why a type carrying directives cannot be an enum.
	// Kind is EnumKindUnknown when it is set.
	Unsupported string
	// Directives are the //subenum: lines in the type's doc comment.
	Directives []Directive
	// Variants in source declaration order.
	Variants []VariantDecl
	Pos      token.Pos
}

// OrphanTag is a constant or type carrying a //subenum: directive that does
// not belong to any annotated enumeration.
type OrphanTag struct {
	Ident     string
	Directive Directive
	// Pos is the position of the identifier.
	Pos token.Pos
}

// PackageInfo holds the annotated enumerations of one loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory holding the package sources
	Fset *token.FileSet
	// Enums in source declaration order.
	Enums []*EnumDecl
	// Orphans are membership tags outside any annotated enumeration.
	Orphans []OrphanTag
	// Scope holds package-level names declared outside the generated output file.
	Scope map[string]token.Pos
}

// Position resolves pos against the package file set.
func (p *PackageInfo) Position(pos token.Pos) token.Position {
	if p.Fset == nil || !pos.IsValid() {
		return token.Position{}
	}

	return p.Fset.Position(pos)
}

// Declared reports whether name is a package-level object outside the output file.
func (p *PackageInfo) Declared(name string) bool {
	_, ok := p.Scope[name]
	return ok
}
