// Package plan projects a source enumeration onto its declared subsets.
//
// Projection never fails: the model it consumes has already been validated.
// For every declared subset, in declaration order, it computes
//
//   - the members, as the source-order subsequence of variants tagged with
//     the subset;
//   - the capabilities to regenerate on the subset, filtered through an
//     allow-list of capabilities whose meaning does not depend on the full
//     source variant set.
//
// Requests outside the allow-list are dropped silently and only logged at
// debug level.
package plan
