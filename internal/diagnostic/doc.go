// Package diagnostic provides structured construction-time errors and
// warnings for subset enumerations.
//
// Every problem found while building the model of a source enumeration is
// recorded as a Diagnostic carrying a stable code, the enum and variant it
// concerns, and its source position. Diagnostics convert to ordinary errors
// that match the sentinel for their code under errors.Is:
//
//	err := diags.Error()
//	if errors.Is(err, diagnostic.ErrUnknownSubsetName) { ... }
package diagnostic
