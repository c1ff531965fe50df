package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"subenum-generator/internal/config"
)

const (
	validPkg   = "../../internal/driver/testdata/valid"
	invalidPkg = "../../internal/driver/testdata/invalid"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(t.Context(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Usage:")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, stdout, _ := runCLI(t, "version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "subenum dev\n", stdout)
}

func TestRun_InvalidColor(t *testing.T) {
	code, _, stderr := runCLI(t, "check", "-color", "sometimes", validPkg)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid -color value")
}

func TestRun_Check(t *testing.T) {
	code, stdout, stderr := runCLI(t, "check", "-color", "never", validPkg)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "ok: 2 enumeration(s) in 1 package(s)\n", stdout)
}

func TestRun_CheckReportsDiagnostics(t *testing.T) {
	code, stdout, stderr := runCLI(t, "check", "-color", "never", invalidPkg)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[duplicate_subset_name]")
	assert.Contains(t, stderr, "[unknown_subset_name]")
	assert.Contains(t, stderr, "did you mean Dog?")
	assert.NotContains(t, stderr, "\033[")
}

func TestRun_CheckColorized(t *testing.T) {
	code, _, stderr := runCLI(t, "check", "-color", "always", invalidPkg)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "\033[31m[duplicate_subset_name]\033[0m")
}

func TestRun_DescribeYAML(t *testing.T) {
	code, stdout, stderr := runCLI(t, "describe", validPkg)
	require.Equal(t, exitOK, code, stderr)

	var got []describedPackage
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Enums, 2)

	canis := got[0].Enums[0]
	assert.Equal(t, "Canis", canis.Name)
	assert.Equal(t, "const", canis.Kind)
	assert.Equal(t, []describedSubset{
		{Name: "Dog", Members: []string{"Boxer", "GoldenRetriever", "Westie"}, Capabilities: []string{"String", "Values"}},
		{Name: "Small", Members: []string{"Westie"}, Capabilities: []string{"String", "Values"}},
	}, canis.Subsets)
	assert.Equal(t, describedVariant{Name: "Westie", Payload: "Unit", Subsets: []string{"Dog", "Small"}}, canis.Variants[3])

	shape := got[0].Enums[1]
	assert.Equal(t, "union", shape.Kind)
	assert.Equal(t, []string{"Circle"}, shape.Subsets[0].Members)
	assert.Equal(t, "Named", shape.Variants[0].Payload)
}

func TestRun_DescribeSpew(t *testing.T) {
	code, stdout, stderr := runCLI(t, "describe", "-format", "spew", validPkg)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, `Name: (string) (len=3) "Dog"`)
}

func TestRun_DescribeUnknownFormat(t *testing.T) {
	code, _, stderr := runCLI(t, "describe", "-format", "toml", validPkg)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, `unknown format "toml"`)
}

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files["go.mod"] = "module example.com/kennel\n\ngo 1.24\n"

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

const petsSrc = `package pets

//subenum:Dog
type Canis int

const (
	CanisWolf Canis = iota
	//subenum:Dog
	CanisBoxer
)
`

func TestRun_Gen(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"pets/pets.go": petsSrc,
		config.FileName: "output: zz_subsets.go\nheader: Copyright 2026 The Kennel Authors.\n",
	})
	t.Chdir(dir)

	code, stdout, stderr := runCLI(t, "gen", "./...")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Generated: "+filepath.Join("pets", "zz_subsets.go")+"\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "pets", "zz_subsets.go"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// Copyright 2026 The Kennel Authors."))
}

func TestRun_GenLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := writeModule(t, map[string]string{
		"pets/pets.go":  petsSrc,
		config.FileName: "log:\n  level: debug\n  file: gen.log\n",
	})
	t.Chdir(dir)

	code, _, stderr := runCLI(t, "gen", "./pets")
	require.Equal(t, exitOK, code, stderr)
	assert.NotContains(t, stderr, "closing log file")

	data, err := os.ReadFile(filepath.Join(dir, "gen.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "file written")
}

func TestRun_GenFlagsOverrideConfig(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"pets/pets.go": petsSrc,
		"custom.yaml":  "output: from_config.go\n",
	})
	t.Chdir(dir)

	code, stdout, stderr := runCLI(t, "gen", "-config", "custom.yaml", "-o", "from_flag.go", "./pets")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "from_flag.go")

	_, err := os.Stat(filepath.Join(dir, "pets", "from_config.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_GenRemovesStaleOutput(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"plain/plain.go":       "package plain\n\nconst Answer = 42\n",
		"plain/subenum_gen.go": "package plain\n",
	})
	t.Chdir(dir)

	code, stdout, stderr := runCLI(t, "gen", "./...")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Removed: "+filepath.Join("plain", "subenum_gen.go")+"\n", stdout)

	_, err := os.Stat(filepath.Join(dir, "plain", "subenum_gen.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_GenWritesNothingOnError(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"pets/pets.go": petsSrc,
		"bad/bad.go":   "package bad\n\n//subenum:\ntype Canis int\n\nconst CanisWolf Canis = 0\n",
	})
	t.Chdir(dir)

	code, stdout, stderr := runCLI(t, "gen", "-color", "never", "./...")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[empty_subset_declaration]")

	_, err := os.Stat(filepath.Join(dir, "pets", "subenum_gen.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestColorize(t *testing.T) {
	in := "/src/pets.go:8:2: [Canis.Boxer] [unknown_subset_name] variant Boxer is tagged with unknown subset name \"Dogg\" (did you mean Dog?)"
	out := colorize(in)

	assert.Contains(t, out, "\033[2m/src/pets.go:8:2:\033[0m")
	assert.Contains(t, out, "\033[31m[unknown_subset_name]\033[0m")
	assert.Contains(t, out, "\033[32m(did you mean Dog?)\033[0m")
}
