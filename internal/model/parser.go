package model

import (
	"fmt"
	"go/token"
	"slices"

	"github.com/emirpasic/gods/maps/hashbidimap"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"subenum-generator/internal/analyze"
	"subenum-generator/internal/common"
	"subenum-generator/internal/diagnostic"
	"subenum-generator/internal/match"
	"subenum-generator/internal/naming"
)

// Parser builds SourceEnum models for the enumerations of one package.
type Parser struct {
	pkg *analyze.PackageInfo
	// claimed maps generated identifiers to the enum generating them, so that
	// two enums of a package cannot generate the same declaration.
	claimed map[string]string
}

// NewParser creates a Parser for pkg.
func NewParser(pkg *analyze.PackageInfo) *Parser {
	return &Parser{pkg: pkg, claimed: make(map[string]string)}
}

// ParsePackage parses every annotated enumeration of pkg and reports tags
// that belong to no enumeration. Enumerations with errors are left out of the
// returned slice.
func ParsePackage(pkg *analyze.PackageInfo) ([]*SourceEnum, *diagnostic.Diagnostics) {
	p := NewParser(pkg)
	diags := &diagnostic.Diagnostics{}

	var enums []*SourceEnum

	for _, decl := range pkg.Enums {
		enum, d := p.Parse(decl)
		diags.Merge(d)

		if enum != nil {
			enums = append(enums, enum)
		}
	}

	for _, orphan := range pkg.Orphans {
		diags.AddError(diagnostic.CodeOrphanVariantTag,
			fmt.Sprintf("%s is tagged //subenum:%s but its type declares no subsets", orphan.Ident, orphan.Directive.Text),
			p.location("", orphan.Ident, orphan.Pos))
	}

	return enums, diags
}

// Parse builds the model of one enumeration. On any error it returns nil and
// the diagnostics; no partial model is ever returned.
func (p *Parser) Parse(decl *analyze.EnumDecl) (*SourceEnum, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	name := decl.ID.Name
	at := p.location(name, "", decl.Pos)

	if decl.Unsupported != "" {
		diags.AddError(diagnostic.CodeUnsupportedEnum, fmt.Sprintf("%s cannot declare subsets: %s", name, decl.Unsupported), at)
		return nil, diags
	}

	enum := &SourceEnum{
		ID:         decl.ID,
		Name:       name,
		Kind:       decl.Kind,
		Underlying: decl.Underlying,
		Pos:        at.Position,
	}

	declared := p.parseDeclaration(decl, enum, diags)

	if common.IsEmpty(decl.Variants) {
		diags.AddError(diagnostic.CodeEmptyEnum, fmt.Sprintf("%s has no variants", name), at)
	}

	p.parseVariants(decl, enum, declared, diags)

	if diags.IsValid() {
		p.checkCollisions(enum, at, diags)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return enum, diags
}

// parseDeclaration reads the enum-level directives into subset names and
// capability requests.
func (p *Parser) parseDeclaration(decl *analyze.EnumDecl, enum *SourceEnum, diags *diagnostic.Diagnostics) *linkedhashset.Set {
	at := p.location(enum.Name, "", decl.Pos)
	declared := linkedhashset.New()

	var (
		sawDeclaration bool
		names          []string
	)

	for _, raw := range decl.Directives {
		d, err := ParseDirective(raw.Text)
		if err != nil {
			diags.AddError(diagnostic.CodeInvalidDirective, fmt.Sprintf("invalid directive //subenum:%s: %v", raw.Text, err), at)
			continue
		}

		if d.Derive {
			enum.Capabilities = append(enum.Capabilities, d.Names...)
			continue
		}

		sawDeclaration = true
		names = append(names, d.Names...)
	}

	enum.Capabilities = common.Dedup(enum.Capabilities)

	if len(names) == 0 {
		if sawDeclaration || diags.IsValid() {
			diags.AddError(diagnostic.CodeEmptySubsetDeclaration,
				fmt.Sprintf("%s declares no subsets; list them as //subenum:Name[,Name...]", enum.Name), at)
		}

		return declared
	}

	for _, n := range names {
		switch {
		case !naming.IsIdent(n):
			diags.AddError(diagnostic.CodeInvalidSubsetName, fmt.Sprintf("subset name %q is not a Go identifier", n), at)
		case n == enum.Name:
			diags.AddError(diagnostic.CodeSubsetNameConflict, fmt.Sprintf("subset %q has the same name as its source enum", n), at)
		case declared.Contains(n):
			diags.AddError(diagnostic.CodeDuplicateSubsetName, fmt.Sprintf("duplicate subset name %q", n), at)
		default:
			declared.Add(n)
		}
	}

	for _, v := range declared.Values() {
		enum.Subsets = append(enum.Subsets, v.(string))
	}

	return declared
}

// parseVariants resolves variant names and memberships.
func (p *Parser) parseVariants(decl *analyze.EnumDecl, enum *SourceEnum, declared *linkedhashset.Set, diags *diagnostic.Diagnostics) {
	names := hashbidimap.New() // ident <-> variant name
	values := make(map[string]string)

	for _, vd := range decl.Variants {
		v := Variant{
			Name:       vd.Ident,
			Ident:      vd.Ident,
			Payload:    vd.Payload,
			Fields:     vd.Fields,
			Underlying: vd.Underlying,
			Pointer:    vd.Pointer,
			Value:      vd.Value,
			Methods:    vd.Methods,
			Pos:        p.pkg.Position(vd.Pos),
		}

		if enum.Kind == analyze.EnumKindConst {
			v.Name = naming.VariantName(enum.Name, vd.Ident)
		}

		at := p.location(enum.Name, v.Name, vd.Pos)

		if other, found := names.GetKey(v.Name); found {
			diags.AddError(diagnostic.CodeDuplicateVariantName,
				fmt.Sprintf("%s and %s both name variant %s", other, vd.Ident, v.Name), at)
		}

		names.Put(vd.Ident, v.Name)

		if enum.Kind == analyze.EnumKindConst {
			if other, ok := values[vd.Value]; ok {
				diags.AddError(diagnostic.CodeDuplicateVariantValue,
					fmt.Sprintf("%s has the same value (%s) as %s; aliases cannot be told apart at run time", vd.Ident, vd.Value, other), at)
			} else {
				values[vd.Value] = vd.Ident
			}
		}

		for _, raw := range vd.Directives {
			d, err := ParseDirective(raw.Text)
			if err != nil {
				diags.AddError(diagnostic.CodeInvalidDirective, fmt.Sprintf("invalid directive //subenum:%s: %v", raw.Text, err), at)
				continue
			}

			if d.Derive {
				diags.AddError(diagnostic.CodeInvalidDirective, "//subenum:derive is only valid on the enum type", at)
				continue
			}

			if len(d.Names) == 0 {
				diags.AddWarning(diagnostic.CodeEmptyVariantTag, fmt.Sprintf("%s has an empty //subenum: tag", vd.Ident), at)
			}

			for _, n := range d.Names {
				if !declared.Contains(n) {
					diags.AddError(diagnostic.CodeUnknownSubsetName,
						fmt.Sprintf("variant %s is tagged with unknown subset name %q", v.Name, n),
						at, match.Suggest(n, enum.Subsets)...)

					continue
				}

				v.Memberships = append(v.Memberships, n)
			}
		}

		v.Memberships = common.Dedup(v.Memberships)
		enum.Variants = append(enum.Variants, v)
	}
}

// checkCollisions rejects generated identifiers that clash with one another,
// with declarations already in the package, or with what another enumeration
// of the package generates.
func (p *Parser) checkCollisions(enum *SourceEnum, at diagnostic.Location, diags *diagnostic.Diagnostics) {
	folded := make(map[string]string) // case-folded subset name -> subset
	own := make(map[string]string)    // generated identifier -> subset

	for _, subset := range enum.Subsets {
		key := naming.Fold(subset)
		if other, ok := folded[key]; ok {
			diags.AddError(diagnostic.CodeSubsetNameTaken,
				fmt.Sprintf("subset %s differs from subset %s only in letter case", subset, other), at)

			continue
		}

		folded[key] = subset

		for _, ident := range generatedNames(enum, subset) {
			if other, ok := own[ident]; ok {
				diags.AddError(diagnostic.CodeSubsetNameTaken,
					fmt.Sprintf("subset %s would generate %s, which subset %s also generates", subset, ident, other), at)

				continue
			}

			own[ident] = subset

			if p.pkg.Declared(ident) {
				diags.AddError(diagnostic.CodeSubsetNameTaken,
					fmt.Sprintf("subset %s would generate %s, which is already declared in package %s", subset, ident, p.pkg.Name), at)

				continue
			}

			if owner, ok := p.claimed[ident]; ok && owner != enum.Name {
				diags.AddError(diagnostic.CodeSubsetNameTaken,
					fmt.Sprintf("subset %s would generate %s, which enum %s also generates", subset, ident, owner), at)

				continue
			}

			p.claimed[ident] = enum.Name
		}

		if enum.Kind == analyze.EnumKindUnion {
			checkMarker(enum, subset, at, diags)
		}
	}
}

// generatedNames lists the package-level identifiers generated for subset,
// including those of the requested capabilities.
func generatedNames(enum *SourceEnum, subset string) []string {
	idents := []string{
		subset,
		naming.Forward(enum.Name, subset),
		naming.Backward(subset, enum.Name),
	}

	switch enum.Kind {
	case analyze.EnumKindConst:
		for i := range enum.Variants {
			if enum.Variants[i].MemberOf(subset) {
				idents = append(idents, naming.Const(subset, enum.Variants[i].Name))
			}
		}

		if enum.Requests("Values") {
			idents = append(idents, naming.Values(subset))
		}
	case analyze.EnumKindUnion:
		// Equal on const subsets is a method and cannot clash at package level.
		if enum.Requests("Equal") {
			idents = append(idents, naming.EqualFunc(subset, enum.Name))
		}
	}

	if enum.Requests("Contains") {
		idents = append(idents, naming.Contains(enum.Name, subset))
	}

	return idents
}

// checkMarker rejects a union marker method that a member type already
// declares as a method or field.
func checkMarker(enum *SourceEnum, subset string, at diagnostic.Location, diags *diagnostic.Diagnostics) {
	marker := naming.Marker(subset)

	for i := range enum.Variants {
		v := &enum.Variants[i]
		if !v.MemberOf(subset) {
			continue
		}

		if slices.Contains(v.Methods, marker) || slices.Contains(v.Fields, marker) {
			diags.AddError(diagnostic.CodeSubsetNameTaken,
				fmt.Sprintf("subset %s would declare method %s on %s, which already has a field or method of that name", subset, marker, v.Ident), at)
		}
	}
}

func (p *Parser) location(enum, variant string, pos token.Pos) diagnostic.Location {
	return diagnostic.Location{
		Enum:     enum,
		Variant:  variant,
		Pos:      pos,
		Position: p.pkg.Position(pos),
	}
}
