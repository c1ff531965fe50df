package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"subenum-generator/internal/common"
)

type typeEntry struct {
	obj        *types.TypeName
	directives []Directive
	pos        token.Pos
}

type constEntry struct {
	obj        *types.Const
	directives []Directive
	pos        token.Pos
}

// extractor walks the syntax of one type-checked package.
type extractor struct {
	fset   *token.FileSet
	pkg    *types.Package
	info   *types.Info
	output string

	typeSpecs []typeEntry
	consts    []constEntry
}

// ExtractPackage finds every annotated enumeration in a type-checked package.
// Declarations in the file named output (the previous generator output) are
// ignored. It is shared by the package loader and the vet analyzer.
func ExtractPackage(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info, output string) *PackageInfo {
	e := &extractor{fset: fset, pkg: pkg, info: info, output: output}

	pkgInfo := &PackageInfo{
		Path:  pkg.Path(),
		Name:  pkg.Name(),
		Fset:  fset,
		Scope: make(map[string]token.Pos),
	}

	if len(files) > 0 {
		pkgInfo.Dir = filepath.Dir(fset.Position(files[0].Pos()).Filename)
	}

	for _, file := range e.sortedFiles(files) {
		e.collect(file)
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if common.IsOutputFile(fset.Position(obj.Pos()).Filename, output) {
			continue
		}

		pkgInfo.Scope[name] = obj.Pos()
	}

	e.build(pkgInfo)

	return pkgInfo
}

// sortedFiles orders files by name so that declaration order is stable and
// skips the generator's own output.
func (e *extractor) sortedFiles(files []*ast.File) []*ast.File {
	out := make([]*ast.File, 0, len(files))

	for _, f := range files {
		if common.IsOutputFile(e.fset.Position(f.Pos()).Filename, e.output) {
			continue
		}

		out = append(out, f)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return e.fset.Position(out[i].Pos()).Filename < e.fset.Position(out[j].Pos()).Filename
	})

	return out
}

// collect records type and constant declarations in file order.
func (e *extractor) collect(file *ast.File) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range gen.Specs {
			switch spec := spec.(type) {
			case *ast.TypeSpec:
				obj, ok := e.info.Defs[spec.Name].(*types.TypeName)
				if !ok {
					continue
				}

				e.typeSpecs = append(e.typeSpecs, typeEntry{
					obj:        obj,
					directives: directives(specDoc(gen, spec.Doc), spec.Comment),
					pos:        spec.Name.Pos(),
				})

			case *ast.ValueSpec:
				if gen.Tok != token.CONST {
					continue
				}

				dirs := directives(specDoc(gen, spec.Doc), spec.Comment)
				for _, name := range spec.Names {
					if name.Name == "_" {
						continue
					}

					obj, ok := e.info.Defs[name].(*types.Const)
					if !ok {
						continue
					}

					e.consts = append(e.consts, constEntry{obj: obj, directives: dirs, pos: name.Pos()})
				}
			}
		}
	}
}

// build classifies annotated types into enumerations, union variants and orphans.
func (e *extractor) build(pkgInfo *PackageInfo) {
	qualifier := types.RelativeTo(e.pkg)
	claimed := make(map[*types.TypeName]bool)

	var decls []*EnumDecl

	// Unions first: a basic-typed variant of a union may carry its own
	// membership tag and must not be mistaken for a const enum.
	for _, te := range e.typeSpecs {
		if len(te.directives) == 0 || te.obj.IsAlias() {
			continue
		}

		named, ok := te.obj.Type().(*types.Named)
		if !ok {
			continue
		}

		iface, ok := named.Underlying().(*types.Interface)
		if !ok {
			continue
		}

		decl := e.newDecl(te)
		claimed[te.obj] = true

		switch {
		case named.TypeParams().Len() > 0:
			decl.Unsupported = "generic enumerations are not supported"
		case !iface.IsMethodSet():
			decl.Unsupported = "constraint interfaces cannot be enumerations"
		case !sealed(iface):
			decl.Unsupported = "a union enumeration must be a sealed interface with at least one unexported method"
		default:
			decl.Kind = EnumKindUnion
			decl.Variants = e.unionVariants(named, iface, qualifier, claimed)
		}

		decls = append(decls, decl)
	}

	constEnums := make(map[*types.Named]*EnumDecl)

	for _, te := range e.typeSpecs {
		if len(te.directives) == 0 || claimed[te.obj] || te.obj.IsAlias() {
			continue
		}

		named, ok := te.obj.Type().(*types.Named)
		if !ok {
			continue
		}

		basic, ok := named.Underlying().(*types.Basic)
		if !ok {
			// A tagged struct that no union claims: its tag has no enum.
			for _, d := range te.directives {
				pkgInfo.Orphans = append(pkgInfo.Orphans, OrphanTag{Ident: te.obj.Name(), Directive: d, Pos: te.pos})
			}

			continue
		}

		decl := e.newDecl(te)
		if named.TypeParams().Len() > 0 {
			decl.Unsupported = "generic enumerations are not supported"
		} else {
			decl.Kind = EnumKindConst
			decl.Underlying = basic.Name()
			constEnums[named] = decl
		}

		decls = append(decls, decl)
	}

	for _, ce := range e.consts {
		named, _ := ce.obj.Type().(*types.Named)

		decl, ok := constEnums[named]
		if !ok {
			for _, d := range ce.directives {
				pkgInfo.Orphans = append(pkgInfo.Orphans, OrphanTag{Ident: ce.obj.Name(), Directive: d, Pos: ce.pos})
			}

			continue
		}

		decl.Variants = append(decl.Variants, VariantDecl{
			Ident:      ce.obj.Name(),
			Payload:    PayloadUnit,
			Value:      ce.obj.Val().ExactString(),
			Directives: ce.directives,
			Pos:        ce.pos,
		})
	}

	// Type specs and constants were visited in file order; restore global
	// declaration order across both passes.
	slices.SortStableFunc(decls, func(a, b *EnumDecl) int {
		return e.compare(a.Pos, b.Pos)
	})

	pkgInfo.Enums = decls
}

func (e *extractor) newDecl(te typeEntry) *EnumDecl {
	return &EnumDecl{
		ID:         TypeID{PkgPath: e.pkg.Path(), Name: te.obj.Name()},
		Directives: te.directives,
		Pos:        te.pos,
	}
}

// unionVariants returns the package's named types implementing iface, in
// declaration order.
func (e *extractor) unionVariants(
	union *types.Named,
	iface *types.Interface,
	qualifier types.Qualifier,
	claimed map[*types.TypeName]bool,
) []VariantDecl {
	var variants []VariantDecl

	for _, te := range e.typeSpecs {
		if te.obj.IsAlias() {
			continue
		}

		named, ok := te.obj.Type().(*types.Named)
		if !ok || named == union || types.IsInterface(named) || named.TypeParams().Len() > 0 {
			continue
		}

		var pointer bool

		switch {
		case types.Implements(named, iface):
		case types.Implements(types.NewPointer(named), iface):
			pointer = true
		default:
			continue
		}

		claimed[te.obj] = true

		v := VariantDecl{
			Ident:      te.obj.Name(),
			Pointer:    pointer,
			Directives: te.directives,
			Pos:        te.pos,
		}

		for i := range named.NumMethods() {
			m := named.Method(i)
			if common.IsOutputFile(e.fset.Position(m.Pos()).Filename, e.output) {
				continue
			}

			v.Methods = append(v.Methods, m.Name())
		}

		switch u := named.Underlying().(type) {
		case *types.Struct:
			if u.NumFields() == 0 {
				v.Payload = PayloadUnit
				break
			}

			v.Payload = PayloadNamed
			for i := range u.NumFields() {
				v.Fields = append(v.Fields, u.Field(i).Name())
			}

		default:
			v.Payload = PayloadPositional
			v.Underlying = types.TypeString(u, qualifier)
		}

		variants = append(variants, v)
	}

	return variants
}

func (e *extractor) compare(a, b token.Pos) int {
	pa, pb := e.fset.Position(a), e.fset.Position(b)
	if c := strings.Compare(pa.Filename, pb.Filename); c != 0 {
		return c
	}

	return pa.Offset - pb.Offset
}

// sealed reports whether iface has an unexported method, so that only types
// of its own package can implement it.
func sealed(iface *types.Interface) bool {
	for i := range iface.NumMethods() {
		if !iface.Method(i).Exported() {
			return true
		}
	}

	return false
}

// specDoc returns the doc comment of a spec, falling back to the declaration
// doc for ungrouped declarations such as `type Canis int`.
func specDoc(gen *ast.GenDecl, doc *ast.CommentGroup) *ast.CommentGroup {
	if doc == nil && !gen.Lparen.IsValid() {
		return gen.Doc
	}

	return doc
}

// directives extracts //subenum: lines. CommentGroup.Text drops directive
// comments, so the raw list is scanned instead.
func directives(groups ...*ast.CommentGroup) []Directive {
	var out []Directive

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			text, ok := strings.CutPrefix(c.Text, DirectivePrefix)
			if !ok {
				continue
			}

			out = append(out, Directive{Text: strings.TrimSpace(text), Pos: c.Pos()})
		}
	}

	return out
}
