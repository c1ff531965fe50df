// Package analyze provides package loading and enumeration extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find the
// two Go encodings of an enumeration that carry a //subenum: directive:
//
//   - const enums: a named basic type whose variants are the package-level
//     constants of that type, in declaration order
//   - union enums: a sealed interface (one with an unexported method) whose
//     variants are the named types of the package implementing it
//
// Key types:
//   - TypeID: package import path + type name
//   - EnumDecl: the structural declaration of one annotated enumeration
//   - VariantDecl: one variant with its payload shape and raw directives
//   - PackageInfo: every annotated enumeration of a package plus its scope
package analyze
