package plan

import (
	"log/slog"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"subenum-generator/internal/analyze"
	"subenum-generator/internal/logger"
	"subenum-generator/internal/model"
)

// Projector turns validated source models into subset plans.
type Projector struct {
	logger *slog.Logger
}

// NewProjector creates a Projector. A nil logger discards all output.
func NewProjector(log *slog.Logger) *Projector {
	return &Projector{logger: logger.OrDiscard(log)}
}

// Project projects src with a Projector that does not log.
func Project(src *model.SourceEnum) *EnumPlan {
	return NewProjector(nil).Project(src)
}

// ProjectPackage projects every enumeration of a package.
func (p *Projector) ProjectPackage(pkg *analyze.PackageInfo, enums []*model.SourceEnum) *PackagePlan {
	out := &PackagePlan{
		Path:  pkg.Path,
		Name:  pkg.Name,
		Dir:   pkg.Dir,
		Enums: make([]*EnumPlan, 0, len(enums)),
	}

	for _, src := range enums {
		out.Enums = append(out.Enums, p.Project(src))
	}

	return out
}

// Project computes the subsets of src.
func (p *Projector) Project(src *model.SourceEnum) *EnumPlan {
	capabilities, dropped := p.capabilities(src)

	plan := &EnumPlan{
		Source:  src,
		Subsets: make([]ResolvedSubset, 0, len(src.Subsets)),
		Dropped: dropped,
		index:   linkedhashmap.New(),
	}

	for i := range src.Variants {
		plan.index.Put(src.Variants[i].Name, []string{})
	}

	for _, name := range src.Subsets {
		subset := ResolvedSubset{
			Name:         name,
			Members:      []*model.Variant{},
			Capabilities: slices.Clone(capabilities),
		}

		for i := range src.Variants {
			v := &src.Variants[i]
			if !v.MemberOf(name) {
				continue
			}

			subset.Members = append(subset.Members, v)

			in, _ := plan.index.Get(v.Name)
			plan.index.Put(v.Name, append(in.([]string), name))
		}

		plan.Subsets = append(plan.Subsets, subset)
	}

	return plan
}

// capabilities filters the requests of src through the allow-list, keeping
// request order.
func (p *Projector) capabilities(src *model.SourceEnum) ([]Capability, []DroppedCapability) {
	var (
		out     []Capability
		dropped []DroppedCapability
	)

	for _, name := range src.Capabilities {
		if reason := dropReason(name, src.Kind); reason != "" {
			p.logger.Debug("capability not propagated",
				slog.String("enum", src.Name),
				slog.String("capability", name),
				slog.String("reason", reason))

			dropped = append(dropped, DroppedCapability{Name: name, Reason: reason})

			continue
		}

		if c := Capability(name); !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	return out, dropped
}
