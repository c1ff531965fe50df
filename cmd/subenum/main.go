// Package main provides the CLI entrypoint for subenum-generator.
//
// subenum-generator derives subset enumerations from Go enumerations whose
// variants are tagged with //subenum: directives:
//
//	subenum gen [flags] [packages]       write subenum_gen.go into each package
//	subenum check [flags] [packages]     report annotation errors, write nothing
//	subenum describe [flags] [packages]  print the projected subsets
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sys/unix"

	"subenum-generator/internal/config"
	"subenum-generator/internal/driver"
	"subenum-generator/internal/gen"
	"subenum-generator/internal/logger"
)

var Version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// command is the parsed command line of a subcommand.
type command struct {
	name   string
	fs     *flag.FlagSet
	stdout io.Writer
	stderr io.Writer

	configPath string
	output     string
	tags       string
	tests      bool
	colorMode  string
	verbose    bool
	format     string

	// resolvedOutput is the output file name after config and flags merge.
	resolvedOutput string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	case "version", "-version", "--version":
		fmt.Fprintln(stdout, "subenum", Version)
		return exitOK
	}

	cmd := newCommand(args[0], stdout, stderr)
	if cmd == nil {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)

		return exitUsage
	}

	if err := cmd.fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	return cmd.execute(ctx)
}

func usage(w io.Writer) {
	fmt.Fprint(w, `subenum derives subset enumerations from tagged Go enumerations.

Usage:
	subenum <command> [flags] [packages]

Commands:
	gen        generate subset types and conversions
	check      report annotation errors without writing files
	describe   print the projected subsets of every enumeration
	version    print the version

Run "subenum <command> -h" for the flags of a command.
`)
}

func newCommand(name string, stdout, stderr io.Writer) *command {
	switch name {
	case "gen", "check", "describe":
	default:
		return nil
	}

	cmd := &command{name: name, stdout: stdout, stderr: stderr}

	fs := flag.NewFlagSet("subenum "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cmd.configPath, "config", "", "configuration file (default: "+config.FileName+" in the working directory, if present)")
	fs.StringVar(&cmd.output, "o", "", "output file name (default "+config.Default().Output+")")
	fs.StringVar(&cmd.tags, "tags", "", "comma-separated build tags")
	fs.BoolVar(&cmd.tests, "tests", false, "include test files")
	fs.StringVar(&cmd.colorMode, "color", "auto", "colorize diagnostics (auto|always|never)")
	fs.BoolVar(&cmd.verbose, "v", false, "verbose (debug) logging")

	if name == "describe" {
		fs.StringVar(&cmd.format, "format", "yaml", "output format (yaml|spew)")
	}

	cmd.fs = fs

	return cmd
}

func (c *command) execute(ctx context.Context) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitError
	}

	color, err := c.color()
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitUsage
	}

	cfg, err := c.loadConfig(wd)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitError
	}

	log, closeLog, err := c.logger(cfg)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitError
	}

	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(c.stderr, "closing log file: %v\n", err)
		}
	}()

	patterns := c.fs.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	opts := driver.Options{
		Dir:         wd,
		Env:         os.Environ(),
		Patterns:    patterns,
		Tags:        cfg.BuildTags(),
		Tests:       cfg.Tests,
		Output:      cfg.Output,
		Header:      cfg.Header,
		Comments:    cfg.GenerateComments(),
		Concurrency: cfg.Concurrency,
		Logger:      log,
	}

	var res *driver.Result
	if c.name == "gen" {
		res, err = driver.Run(ctx, opts)
	} else {
		res, err = driver.Check(ctx, opts)
	}

	if err != nil {
		c.printError(err, color)
		return exitError
	}

	switch c.name {
	case "gen":
		return c.writeFiles(wd, res, log)
	case "describe":
		if err := describe(c.stdout, c.format, res); err != nil {
			fmt.Fprintln(c.stderr, err)
			return exitError
		}
	case "check":
		n := 0
		for _, p := range res.Packages {
			if p.Plan != nil {
				n += len(p.Plan.Enums)
			}
		}

		fmt.Fprintf(c.stdout, "ok: %d enumeration(s) in %d package(s)\n", n, len(res.Packages))
	}

	return exitOK
}

func (c *command) writeFiles(wd string, res *driver.Result, log *slog.Logger) int {
	files := res.Files()
	if err := gen.WriteFiles(files); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitError
	}

	for i := range files {
		log.Debug("file written", slog.String("path", files[i].Path()), slog.Int("bytes", len(files[i].Content)))
		fmt.Fprintln(c.stdout, "Generated:", relative(wd, files[i].Path()))
	}

	for _, dir := range res.Stale {
		removed, err := gen.RemoveStale(dir, c.resolvedOutput)
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			return exitError
		}

		if removed {
			log.Info("stale file removed", slog.String("dir", dir))
			fmt.Fprintln(c.stdout, "Removed:", relative(wd, filepath.Join(dir, c.resolvedOutput)))
		}
	}

	return exitOK
}

// loadConfig merges defaults, the configuration file and explicit flags,
// in increasing order of precedence.
func (c *command) loadConfig(wd string) (*config.Config, error) {
	cfg := config.Default()

	path := c.configPath
	if path == "" {
		path, _ = config.Find(wd)
	}

	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = c.output
		case "tags":
			cfg.Tags = strings.Split(c.tags, ",")
		case "tests":
			cfg.Tests = c.tests
		case "v":
			if c.verbose {
				cfg.Log.Level = "debug"
			}
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c.resolvedOutput = cfg.Output

	return cfg, nil
}

func (c *command) logger(cfg *config.Config) (*slog.Logger, func() error, error) {
	lc, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}

	lc.Output = c.stderr

	return logger.Init(lc)
}

func (c *command) color() (bool, error) {
	switch c.colorMode {
	case "auto":
		return isatty(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid -color value: %s", c.colorMode)
	}
}

func (c *command) printError(err error, color bool) {
	message := err.Error()
	if color {
		message = colorize(message)
	}

	fmt.Fprintln(c.stderr, message)
}

func relative(wd, path string) string {
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}

	return path
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reCode    = regexp.MustCompile(`\[[a-z_]+\]`)
	reSuggest = regexp.MustCompile(`\(did you mean [^)]+\?\)`)
	rePos     = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
)

// colorize adds ANSI color codes to diagnostics.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)

	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	m = reCode.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(red + string(b) + reset)
	})
	m = reSuggest.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(green + string(b) + reset)
	})

	return string(m)
}
