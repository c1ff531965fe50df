// Package gen renders the subset declarations and conversions of a package
// into a single Go source file.
//
// Generation uses text/template + go/format. For every subset it emits:
//   - the subset type: a named basic type with constants for const enums, a
//     sealed interface with marker methods for union enums;
//   - a fallible forward conversion from the source enumeration;
//   - an infallible backward conversion to the source enumeration;
//   - the forwarded capabilities (String, Text, Valid, Values, Equal, Contains).
//
// Output is deterministic: enumerations in source order, subsets in declared
// order, members in source order.
package gen
