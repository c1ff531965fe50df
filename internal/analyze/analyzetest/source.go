// Package analyzetest builds analyze.PackageInfo values from in-memory
// sources, so that the parser, projector and emitter can be tested without
// invoking the go command.
package analyzetest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"subenum-generator/internal/analyze"
	"subenum-generator/internal/common"
)

// PkgPath is the import path given to fixture packages.
const PkgPath = "example.com/fixture"

// Dir is the directory fixture files pretend to live in.
const Dir = "/fixture"

// FromSource type-checks a single-file package and extracts its enumerations.
func FromSource(t testing.TB, src string) *analyze.PackageInfo {
	t.Helper()

	return FromFiles(t, map[string]string{"fixture.go": src})
}

// FromFiles type-checks a package made of the given files (name -> source).
func FromFiles(t testing.TB, files map[string]string) *analyze.PackageInfo {
	t.Helper()

	fset := token.NewFileSet()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	sort.Strings(names)

	var syntax []*ast.File

	for _, name := range names {
		f, err := parser.ParseFile(fset, filepath.Join(Dir, name), files[name], parser.ParseComments)
		require.NoError(t, err, "parsing %s", name)

		syntax = append(syntax, f)
	}

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}

	pkg, err := conf.Check(PkgPath, fset, syntax, info)
	require.NoError(t, err, "type-checking fixture")

	return analyze.ExtractPackage(fset, syntax, pkg, info, common.DefaultOutput)
}
