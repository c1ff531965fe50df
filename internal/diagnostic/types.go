package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strings"
)

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Diagnostic codes.
const (
	CodeUnknownSubsetName      = "unknown_subset_name"
	CodeDuplicateSubsetName    = "duplicate_subset_name"
	CodeEmptySubsetDeclaration = "empty_subset_declaration"
	CodeInvalidDirective       = "invalid_directive"
	CodeInvalidSubsetName      = "invalid_subset_name"
	CodeSubsetNameConflict     = "subset_name_conflict"
	CodeSubsetNameTaken        = "subset_name_taken"
	CodeEmptyEnum              = "empty_enum"
	CodeDuplicateVariantName   = "duplicate_variant_name"
	CodeDuplicateVariantValue  = "duplicate_variant_value"
	CodeOrphanVariantTag       = "orphan_variant_tag"
	CodeUnsupportedEnum        = "unsupported_enum"
	CodeEmptyVariantTag        = "empty_variant_tag"
)

// Sentinel errors matched by errors.Is against a Diagnostic of the same code.
var (
	ErrUnknownSubsetName      = errors.New("unknown subset name")
	ErrDuplicateSubsetName    = errors.New("duplicate subset name")
	ErrEmptySubsetDeclaration = errors.New("empty subset declaration")
	ErrInvalidDeclaration     = errors.New("invalid subset declaration")
)

var codeErrors = map[string]error{
	CodeUnknownSubsetName:      ErrUnknownSubsetName,
	CodeDuplicateSubsetName:    ErrDuplicateSubsetName,
	CodeEmptySubsetDeclaration: ErrEmptySubsetDeclaration,
}

// Location identifies what a diagnostic is about.
type Location struct {
	// Enum is the source enumeration name.
	Enum string
	// Variant is the variant name, if any.
	Variant string
	// Pos is the position in the file set the declaration was parsed with.
	Pos token.Pos
	// Position is the resolved file/line/column of Pos.
	Position token.Position
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Location

	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Diagnostics holds all diagnostics for one or more source enumerations.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

func (d *Diagnostics) add(sev Severity, code, message string, loc Location, suggestions []string) {
	diag := Diagnostic{
		Location:    loc,
		Severity:    sev,
		Code:        code,
		Message:     message,
		Suggestions: suggestions,
	}

	if sev == SeverityError {
		d.Errors = append(d.Errors, diag)
	} else {
		d.Warnings = append(d.Warnings, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, loc Location, suggestions ...string) {
	d.add(SeverityError, code, message, loc, suggestions)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, loc Location) {
	d.add(SeverityWarning, code, message, loc, nil)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// All returns every diagnostic, errors first, each group ordered by position.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings} {
		sorted := append([]Diagnostic(nil), group...)
		sortByPosition(sorted)
		all = append(all, sorted...)
	}

	return all
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// The result matches the sentinel of every contained code under errors.Is.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	sorted := append([]Diagnostic(nil), d.Errors...)
	sortByPosition(sorted)

	errs := make([]error, len(sorted))
	for i := range sorted {
		errs[i] = sorted[i]
	}

	return errors.Join(errs...)
}

func sortByPosition(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Position, diags[j].Position
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}

		return a.Offset < b.Offset
	})
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return d.String()
}

// Unwrap returns the sentinel error for the diagnostic code.
func (d Diagnostic) Unwrap() error {
	if err, ok := codeErrors[d.Code]; ok {
		return err
	}

	return ErrInvalidDeclaration
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Position.IsValid() {
		sb.WriteString(d.Position.String())
		sb.WriteString(": ")
	}

	switch {
	case d.Enum != "" && d.Variant != "":
		fmt.Fprintf(&sb, "[%s.%s] ", d.Enum, d.Variant)
	case d.Enum != "":
		fmt.Fprintf(&sb, "[%s] ", d.Enum)
	}

	if d.Code != "" {
		fmt.Fprintf(&sb, "[%s] ", d.Code)
	}

	sb.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&sb, " (did you mean %s?)", strings.Join(d.Suggestions, " or "))
	}

	return sb.String()
}
