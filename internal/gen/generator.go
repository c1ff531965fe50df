package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"subenum-generator/internal/analyze"
	"subenum-generator/internal/common"
	"subenum-generator/internal/plan"
)

// ErrorsImportPath is the import path of the runtime errors package used by
// generated code.
const ErrorsImportPath = "subenum-generator/pkg/subenumerrors"

// ErrNothingToGenerate is returned for a package without enumerations.
var ErrNothingToGenerate = errors.New("no enumerations to generate")

// Config holds configuration for code generation.
type Config struct {
	// Output is the file name generated in each package directory.
	Output string
	// Header is emitted as a comment above the package clause, one comment
	// line per text line.
	Header string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// DebugUnformatted writes the raw template output next to the intended
	// output file when it cannot be formatted.
	DebugUnformatted bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Output:           common.DefaultOutput,
		GenerateComments: true,
		DebugUnformatted: true,
	}
}

// Generator generates Go code from package plans.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Output == "" {
		config.Output = common.DefaultOutput
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the base name of the file (e.g., "subenum_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders the generated file of one package.
func (g *Generator) Generate(p *plan.PackagePlan) (*GeneratedFile, error) {
	if len(p.Enums) == 0 {
		return nil, fmt.Errorf("package %s: %w", p.Path, ErrNothingToGenerate)
	}

	data := g.buildFileData(p)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", p.Path, err)
	}

	file := &GeneratedFile{Dir: p.Dir, Filename: g.config.Output}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(p.Dir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code for %s: %w", p.Path, err)
	}

	file.Content = formatted

	return file, nil
}

func (g *Generator) buildFileData(p *plan.PackagePlan) *fileData {
	data := &fileData{
		Header:       headerLines(g.config.Header),
		PackageName:  p.Name,
		ErrorsImport: ErrorsImportPath,
	}

	var usesReflect bool

	for _, e := range p.Enums {
		for i := range e.Subsets {
			s := g.buildSubsetData(e, &e.Subsets[i])
			usesReflect = usesReflect || (s.Union && s.Equal)

			data.Subsets = append(data.Subsets, s)
		}
	}

	// String is only projected onto const subsets, whose fallback formats with fmt.
	if p.HasCapability(plan.CapabilityString) {
		data.StdImports = append(data.StdImports, "fmt")
	}

	if usesReflect {
		data.StdImports = append(data.StdImports, "reflect")
	}

	return data
}

func (g *Generator) buildSubsetData(e *plan.EnumPlan, s *plan.ResolvedSubset) subsetData {
	src := e.Source
	names := newSubsetNames(src.Name, s.Name)

	d := subsetData{
		subsetNames: names,
		Comments:    g.config.GenerateComments,
		Union:       src.Kind == analyze.EnumKindUnion,
		Underlying:  src.Underlying,
		Zero:        zeroValue(src.Kind, src.Underlying),
		String:      s.Has(plan.CapabilityString),
		Text:        s.Has(plan.CapabilityText),
		Valid:       s.Has(plan.CapabilityValid),
		ListValues:  s.Has(plan.CapabilityValues),
		Equal:       s.Has(plan.CapabilityEqual),
		Contains:    s.Has(plan.CapabilityContains),
	}

	var memberNames []string

	for _, m := range s.Members {
		d.Members = append(d.Members, variantData{
			Name:     m.Name,
			Ident:    m.Ident,
			Const:    names.constName(m.Name),
			TypeExpr: m.TypeExpr(),
			Member:   true,
		})

		memberNames = append(memberNames, m.Name)
	}

	for i := range src.Variants {
		v := &src.Variants[i]
		d.Arms = append(d.Arms, variantData{
			Name:     v.Name,
			Ident:    v.Ident,
			Const:    names.constName(v.Name),
			TypeExpr: v.TypeExpr(),
			Member:   s.Contains(v.Name),
		})
	}

	d.Doc = subsetDoc(s.Name, src.Name, memberNames)

	return d
}

func subsetDoc(subset, source string, members []string) string {
	switch len(members) {
	case 0:
		return fmt.Sprintf("%s is an empty subset of %s.", subset, source)
	case 1:
		return fmt.Sprintf("%s is the subset of %s holding %s.", subset, source, members[0])
	default:
		last := len(members) - 1
		return fmt.Sprintf("%s is the subset of %s holding %s and %s.",
			subset, source, strings.Join(members[:last], ", "), members[last])
	}
}

// zeroValue is the literal returned alongside an error.
func zeroValue(kind analyze.EnumKind, underlying string) string {
	if kind == analyze.EnumKindUnion {
		return "nil"
	}

	switch underlying {
	case "string":
		return `""`
	case "bool":
		return "false"
	default:
		return "0"
	}
}

func headerLines(header string) []string {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	lines := strings.Split(header, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(strings.TrimPrefix(strings.TrimPrefix(l, "//"), " "), " \t\r")
	}

	return lines
}
