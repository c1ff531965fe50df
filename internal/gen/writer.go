package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory.
// Each file is written to a temporary sibling first and renamed into place,
// so a failed run never leaves a truncated file behind.
func WriteFiles(files []GeneratedFile) error {
	for i := range files {
		if err := writeFile(&files[i]); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(file *GeneratedFile) error {
	if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(file.Dir, "."+strings.TrimSuffix(file.Filename, ".go")+"-*.tmp")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path(), err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing file %s: %w", file.Path(), err)
	}

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing file %s: %w", file.Path(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path(), err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(file.Dir, file.Filename)); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path(), err)
	}

	return nil
}

// RemoveStale deletes a previously generated file from dir, for packages
// that no longer declare any subsets. It reports whether a file was removed.
func RemoveStale(dir, filename string) (bool, error) {
	err := os.Remove(filepath.Join(dir, filename))

	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("removing stale file: %w", err)
	}
}
