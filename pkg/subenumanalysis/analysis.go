// Package subenumanalysis provides a go/analysis Analyzer reporting
// malformed //subenum: annotations, so mistakes surface in vet-style tooling
// before the generator runs.
package subenumanalysis

import (
	"fmt"
	"strings"

	"golang.org/x/tools/go/analysis"

	"subenum-generator/internal/analyze"
	"subenum-generator/internal/common"
	"subenum-generator/internal/diagnostic"
	"subenum-generator/internal/model"
)

// Analyzer validates the //subenum: annotations of a package.
var Analyzer = &analysis.Analyzer{
	Name: "subenum",
	Doc:  "check //subenum: subset annotations on enumerations",
	Run:  run,
}

// output is the generated file name ignored by the analyzer.
var output = common.DefaultOutput

func init() {
	Analyzer.Flags.StringVar(&output, "output", common.DefaultOutput, "generated file name to ignore")
}

func run(pass *analysis.Pass) (any, error) {
	pkg := analyze.ExtractPackage(pass.Fset, pass.Files, pass.Pkg, pass.TypesInfo, output)

	_, diags := model.ParsePackage(pkg)
	for _, d := range diags.All() {
		if !d.Pos.IsValid() {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      d.Pos,
			Category: d.Code,
			Message:  message(d),
		})
	}

	return nil, nil
}

func message(d diagnostic.Diagnostic) string {
	var sb strings.Builder

	if d.Severity != diagnostic.SeverityError {
		sb.WriteString(d.Severity.String())
		sb.WriteString(": ")
	}

	fmt.Fprintf(&sb, "%s: %s", d.Code, d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&sb, " (did you mean %s?)", strings.Join(d.Suggestions, " or "))
	}

	return sb.String()
}
