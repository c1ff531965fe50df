package plan

import (
	"slices"

	"subenum-generator/internal/analyze"
)

// Capability is a derived behaviour that can be regenerated on a subset.
type Capability string

const (
	// CapabilityString generates a String method returning the variant name.
	CapabilityString Capability = "String"
	// CapabilityText generates MarshalText and UnmarshalText.
	CapabilityText Capability = "Text"
	// CapabilityValid generates an IsValid method.
	CapabilityValid Capability = "Valid"
	// CapabilityValues generates a function listing the members.
	CapabilityValues Capability = "Values"
	// CapabilityEqual generates a cross-type equality check with the source.
	CapabilityEqual Capability = "Equal"
	// CapabilityContains generates a membership predicate on source values.
	CapabilityContains Capability = "Contains"
)

// allowed lists the propagatable capabilities in generation order.
var allowed = []Capability{
	CapabilityString,
	CapabilityText,
	CapabilityValid,
	CapabilityValues,
	CapabilityEqual,
	CapabilityContains,
}

// sourceOnly are capabilities users commonly request whose meaning is tied
// to the complete variant set of the source.
var sourceOnly = []string{"Ordinal", "Count", "Exhaustive", "Index"}

// ParseCapability looks a requested capability up in the allow-list.
func ParseCapability(name string) (Capability, bool) {
	c := Capability(name)
	return c, slices.Contains(allowed, c)
}

// AppliesTo reports whether the capability can be generated for kind.
func (c Capability) AppliesTo(kind analyze.EnumKind) bool {
	switch c {
	case CapabilityEqual, CapabilityContains:
		return kind == analyze.EnumKindConst || kind == analyze.EnumKindUnion
	case CapabilityString, CapabilityText, CapabilityValid, CapabilityValues:
		return kind == analyze.EnumKindConst
	default:
		return false
	}
}

// dropReason explains why a requested capability is not propagated, or
// returns "" when it is.
func dropReason(name string, kind analyze.EnumKind) string {
	c, ok := ParseCapability(name)

	switch {
	case slices.Contains(sourceOnly, name):
		return "depends on the full source variant set"
	case !ok:
		return "unknown capability"
	case !c.AppliesTo(kind):
		return "not supported for " + kind.String() + " enumerations"
	default:
		return ""
	}
}
