package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runExampleIntegrationTest regenerates an example package with the CLI and
// runs its tests against the fresh output.
func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	if testing.Short() {
		t.Skip("runs the go command")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	pkg := "./examples/" + exampleName
	out := filepath.Join(repoRoot, "examples", exampleName, "subenum_gen.go")

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/subenum", "gen", "-color", "never", pkg)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: dump what was generated for easier debugging.
		if fb, rerr := os.ReadFile(out); rerr == nil {
			t.Logf("generated file %s:\n%s", out, string(fb))
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	test := exec.CommandContext(t.Context(), "go", "test", pkg, "-count=1")
	test.Dir = repoRoot

	b, err = test.CombinedOutput()
	if err != nil {
		t.Fatalf("example tests failed: %v\n%s", err, string(b))
	}
}
