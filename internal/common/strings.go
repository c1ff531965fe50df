// Package common holds small helpers shared by the generator packages.
package common

import (
	"path/filepath"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// DefaultOutput is the name of the file written into every package that
// declares at least one subset enumeration.
const DefaultOutput = "subenum_gen.go"

// IsOutputFile reports whether filename is a previously generated output file.
// Objects declared there are ignored when checking for name collisions, since
// they are about to be regenerated.
func IsOutputFile(filename, output string) bool {
	if filename == "" {
		return false
	}

	if output == "" {
		output = DefaultOutput
	}

	return strings.EqualFold(filepath.Base(filename), output)
}
