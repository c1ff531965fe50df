package driver

import (
	"os"
	"path/filepath"

	"subenum-generator/internal/analyze"
)

// hasOutput reports whether the package directory holds a generated file.
func hasOutput(info *analyze.PackageInfo, output string) bool {
	if info.Dir == "" {
		return false
	}

	st, err := os.Stat(filepath.Join(info.Dir, output))

	return err == nil && !st.IsDir()
}
