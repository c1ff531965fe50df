package model

import (
	"errors"
	"strings"
)

// deriveKeyword introduces a capability request directive.
const deriveKeyword = "derive"

var errEmptyListItem = errors.New("empty name in list")

// Directive is a parsed //subenum: comment.
type Directive struct {
	// Derive is set for //subenum:derive directives.
	Derive bool
	// Names are subset names, or capability names when Derive is set.
	Names []string
}

// ParseDirective parses the text following the //subenum: prefix.
//
//	"Dog,Small"       -> {Names: [Dog Small]}
//	"Dog Small"       -> {Names: [Dog Small]}
//	"derive String"   -> {Derive: true, Names: [String]}
//	""                -> {}
func ParseDirective(text string) (Directive, error) {
	var d Directive

	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, deriveKeyword); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
		d.Derive = true
		text = strings.TrimSpace(rest)
	}

	if text == "" {
		return d, nil
	}

	for _, item := range strings.Split(text, ",") {
		fields := strings.Fields(item)
		if len(fields) == 0 {
			return Directive{}, errEmptyListItem
		}

		d.Names = append(d.Names, fields...)
	}

	return d, nil
}
