package analyze

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"subenum-generator/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// LoadConfig controls how packages are loaded.
type LoadConfig struct {
	// Dir is the working directory patterns are resolved against.
	Dir string
	// Env is the environment of the underlying go command; nil inherits.
	Env []string
	// Tags is a comma-separated list of build tags.
	Tags string
	// Tests includes test files.
	Tests bool
	// Output is the generated file name whose declarations are ignored.
	Output string
}

// Analyzer loads Go packages and extracts annotated enumerations.
type Analyzer struct {
	config LoadConfig
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(config LoadConfig) *Analyzer {
	if config.Output == "" {
		config.Output = common.DefaultOutput
	}

	return &Analyzer{config: config}
}

// LoadPackages loads the packages matching patterns and extracts their
// annotated enumerations. Patterns are standard Go package patterns
// (e.g., "./...", "subenum-generator/examples/canis").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     a.config.Dir,
		Env:     a.config.Env,
		Tests:   a.config.Tests,
	}
	if a.config.Tags != "" {
		cfg.BuildFlags = []string{"-tags=" + a.config.Tags}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	if err := a.packageErrors(pkgs); err != nil {
		return nil, err
	}

	var infos []*PackageInfo

	seen := make(map[string]int)

	for _, pkg := range pkgs {
		// Skip test mains and external test packages: generated code is
		// never placed in a _test package.
		if pkg.Types == nil || len(pkg.Syntax) == 0 ||
			strings.HasSuffix(pkg.ID, ".test") || strings.HasSuffix(pkg.PkgPath, "_test") {
			continue
		}

		info := ExtractPackage(pkg.Fset, pkg.Syntax, pkg.Types, pkg.TypesInfo, a.config.Output)

		// With Tests set, a package is loaded once more with its test files;
		// the test variant sees strictly more declarations, so it wins.
		if i, ok := seen[info.Path]; ok {
			if len(info.Enums) >= len(infos[i].Enums) {
				infos[i] = info
			}

			continue
		}

		seen[info.Path] = len(infos)
		infos = append(infos, info)
	}

	return infos, nil
}

// packageErrors joins package errors. Errors located in a previously
// generated output file are tolerated: that file is about to be replaced and
// may refer to variants that no longer exist.
func (a *Analyzer) packageErrors(pkgs []*packages.Package) error {
	var errs error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Pos != "" {
				file, _, _ := strings.Cut(e.Pos, ":")
				if common.IsOutputFile(file, a.config.Output) {
					continue
				}

				if a.config.Dir != "" {
					if rel, relErr := filepath.Rel(a.config.Dir, file); relErr == nil {
						_, rowcol, _ := strings.Cut(e.Pos, ":")
						e.Pos = rel + ":" + rowcol
					}
				}
			}

			errs = errors.Join(errs, e)
		}
	}

	if errs != nil {
		return fmt.Errorf("package errors: %w", errs)
	}

	return nil
}
