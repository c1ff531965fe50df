package plan

import (
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"subenum-generator/internal/model"
)

// PackagePlan is everything the emitter needs for one package.
type PackagePlan struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory the generated file is written to
	// Enums in source declaration order.
	Enums []*EnumPlan
}

// EnumPlan is the projection of one source enumeration.
type EnumPlan struct {
	Source *model.SourceEnum
	// Subsets in declaration order.
	Subsets []ResolvedSubset
	// Dropped are the capability requests that were not propagated.
	Dropped []DroppedCapability

	// index maps variant names, in source order, to the subsets containing
	// them, in declaration order.
	index *linkedhashmap.Map
}

// ResolvedSubset is one subset with its members and capabilities.
type ResolvedSubset struct {
	Name string
	// Members are pointers into Source.Variants, in source order.
	Members []*model.Variant
	// Capabilities in request order.
	Capabilities []Capability
}

// DroppedCapability records a capability request that was not propagated.
type DroppedCapability struct {
	Name   string
	Reason string
}

// Membership lists the subsets a variant belongs to.
type Membership struct {
	Variant string
	Subsets []string
}

// Index returns the membership of every source variant, in source order.
func (p *EnumPlan) Index() []Membership {
	if p.index == nil {
		return nil
	}

	out := make([]Membership, 0, p.index.Size())

	it := p.index.Iterator()
	for it.Next() {
		out = append(out, Membership{
			Variant: it.Key().(string),
			Subsets: slices.Clone(it.Value().([]string)),
		})
	}

	return out
}

// Has reports whether the subset regenerates capability c.
func (s *ResolvedSubset) Has(c Capability) bool {
	return slices.Contains(s.Capabilities, c)
}

// Contains reports whether variant is a member of the subset.
func (s *ResolvedSubset) Contains(variant string) bool {
	return slices.ContainsFunc(s.Members, func(v *model.Variant) bool {
		return v.Name == variant
	})
}

// HasCapability reports whether any subset of the package regenerates c.
func (p *PackagePlan) HasCapability(c Capability) bool {
	for _, e := range p.Enums {
		for i := range e.Subsets {
			if e.Subsets[i].Has(c) {
				return true
			}
		}
	}

	return false
}
