// Package config loads the optional subenum.yaml configuration file.
//
//	output: subenum_gen.go
//	header: |
//	  Copyright 2026 The Kennel Authors.
//	tags: [integration]
//	tests: false
//	concurrency: 4
//	comments: true
//	log:
//	  level: info
//	  format: text
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"subenum-generator/internal/common"
	"subenum-generator/internal/logger"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "subenum.yaml"

// Config is the generator configuration.
type Config struct {
	// Output is the generated file name in each package directory.
	Output string `yaml:"output"`
	// Header is a comment emitted above the generated code.
	Header string `yaml:"header,omitempty"`
	// Tags are build tags used when loading packages.
	Tags []string `yaml:"tags,omitempty"`
	// Tests also loads test files.
	Tests bool `yaml:"tests,omitempty"`
	// Concurrency bounds the number of packages processed at once; 0 means
	// one per CPU.
	Concurrency int `yaml:"concurrency,omitempty"`
	// Comments enables doc comments on generated declarations.
	Comments *bool `yaml:"comments,omitempty"`
	Log      Log   `yaml:"log"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Find returns the configuration file of dir, if there is one.
func Find(dir string) (string, bool) {
	path := filepath.Join(dir, FileName)
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return path, true
	}

	return "", false
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Output == "" {
		c.Output = common.DefaultOutput
	}

	if c.Comments == nil {
		comments := true
		c.Comments = &comments
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}

	if c.Log.Format == "" {
		c.Log.Format = logger.FormatText
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	var errs []error

	if c.Output != filepath.Base(c.Output) || !strings.HasSuffix(c.Output, ".go") || strings.HasSuffix(c.Output, "_test.go") {
		errs = append(errs, fmt.Errorf("output %q must be a non-test .go file name without directories", c.Output))
	}

	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if c.Log.Format != logger.FormatText && c.Log.Format != logger.FormatJSON {
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", logger.FormatText, logger.FormatJSON, c.Log.Format))
	}

	return errors.Join(errs...)
}

// GenerateComments reports whether doc comments are generated.
func (c *Config) GenerateComments() bool {
	return c.Comments == nil || *c.Comments
}

// BuildTags returns Tags in the form expected by -tags.
func (c *Config) BuildTags() string {
	return strings.Join(c.Tags, ",")
}

// Logger returns the logger configuration.
func (c *Config) Logger() (logger.Config, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return logger.Config{}, err
	}

	cfg := logger.DefaultConfig()
	cfg.Level = level
	cfg.Format = c.Log.Format
	cfg.LogFile = c.Log.File

	return cfg, nil
}
