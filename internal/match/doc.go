// Package match provides identifier normalization and edit-distance ranking
// used to suggest the intended subset name when a membership tag refers to
// an undeclared one.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks declared names close to a misspelled one
package match
