// Package driver runs the generator pipeline over a set of packages:
// load, parse, project and emit.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"subenum-generator/internal/analyze"
	"subenum-generator/internal/common"
	"subenum-generator/internal/diagnostic"
	"subenum-generator/internal/gen"
	"subenum-generator/internal/logger"
	"subenum-generator/internal/model"
	"subenum-generator/internal/plan"
)

// Options configures a run.
type Options struct {
	// Dir is the working directory patterns are resolved against.
	Dir string
	// Env is the environment of the go command; nil inherits.
	Env []string
	// Patterns are go package patterns, e.g. "./...".
	Patterns []string
	// Tags is a comma-separated list of build tags.
	Tags string
	// Tests also loads test files.
	Tests bool
	// Output is the generated file name.
	Output string
	// Header is a comment emitted above the generated code.
	Header string
	// Comments enables doc comments on generated declarations.
	Comments bool
	// Concurrency bounds the packages processed at once; 0 means GOMAXPROCS.
	Concurrency int
	// Logger receives debug and progress records; nil discards them.
	Logger *slog.Logger
}

// PackageResult is the outcome for one loaded package.
type PackageResult struct {
	Info *analyze.PackageInfo
	// Plan is nil when the package has errors or no enumerations.
	Plan *plan.PackagePlan
	// File is set by Run for packages with enumerations.
	File *gen.GeneratedFile
}

// Result is the outcome of a run.
type Result struct {
	// Packages in load order.
	Packages []*PackageResult
	// Diagnostics of every package.
	Diagnostics *diagnostic.Diagnostics
	// Stale lists package directories holding an output file although the
	// package no longer declares any subsets.
	Stale []string
}

// Files returns the generated files, in package order.
func (r *Result) Files() []gen.GeneratedFile {
	var files []gen.GeneratedFile

	for _, p := range r.Packages {
		if p.File != nil {
			files = append(files, *p.File)
		}
	}

	return files
}

// Outputs maps generated file paths to their content.
func (r *Result) Outputs() map[string][]byte {
	out := make(map[string][]byte)
	for _, f := range r.Files() {
		out[f.Path()] = f.Content
	}

	return out
}

// Check loads the packages, then parses and projects their enumerations.
// Nothing is generated. The returned error joins every error diagnostic,
// sorted by position; the result is returned either way.
func Check(ctx context.Context, opts Options) (*Result, error) {
	return run(ctx, opts, false)
}

// Run does what Check does and also emits one file per package with
// enumerations. On any error no file is returned.
func Run(ctx context.Context, opts Options) (*Result, error) {
	res, err := run(ctx, opts, true)
	if err != nil {
		for _, p := range res.Packages {
			p.File = nil
		}
	}

	return res, err
}

func run(ctx context.Context, opts Options, emit bool) (*Result, error) {
	log := logger.OrDiscard(opts.Logger)

	if opts.Output == "" {
		opts.Output = common.DefaultOutput
	}

	res := &Result{Diagnostics: &diagnostic.Diagnostics{}}

	start := time.Now()

	analyzer := analyze.NewAnalyzer(analyze.LoadConfig{
		Dir:    opts.Dir,
		Env:    opts.Env,
		Tags:   opts.Tags,
		Tests:  opts.Tests,
		Output: opts.Output,
	})

	infos, err := analyzer.LoadPackages(ctx, opts.Patterns...)
	if err != nil {
		return res, err
	}

	log.Debug("packages loaded", slog.Int("count", len(infos)), slog.Duration("duration", time.Since(start)))

	projector := plan.NewProjector(log)
	generator := gen.NewGenerator(gen.Config{
		Output:           opts.Output,
		Header:           opts.Header,
		GenerateComments: opts.Comments,
		DebugUnformatted: emit,
	})

	res.Packages = make([]*PackageResult, len(infos))
	diags := make([]*diagnostic.Diagnostics, len(infos))

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, info := range infos {
		res.Packages[i] = &PackageResult{Info: info}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pkgStart := time.Now()

			enums, d := model.ParsePackage(info)
			diags[i] = d

			if d.HasErrors() || len(enums) == 0 {
				return nil
			}

			pp := projector.ProjectPackage(info, enums)
			res.Packages[i].Plan = pp

			if emit {
				file, err := generator.Generate(pp)
				if err != nil {
					return err
				}

				res.Packages[i].File = file
			}

			log.Debug("package processed",
				slog.String("pkg", info.Path),
				slog.Int("enums", len(enums)),
				slog.Duration("duration", time.Since(pkgStart)))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, fmt.Errorf("generating: %w", err)
	}

	for i, d := range diags {
		res.Diagnostics.Merge(d)

		if info := infos[i]; len(info.Enums) == 0 && len(info.Orphans) == 0 && hasOutput(info, opts.Output) {
			res.Stale = append(res.Stale, info.Dir)
		}
	}

	for _, w := range res.Diagnostics.Warnings {
		log.Warn(w.String())
	}

	return res, res.Diagnostics.Error()
}
