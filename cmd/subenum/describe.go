package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"subenum-generator/internal/driver"
	"subenum-generator/internal/plan"
)

type describedPackage struct {
	Path  string          `yaml:"path"`
	Enums []describedEnum `yaml:"enums"`
}

type describedEnum struct {
	Name     string             `yaml:"name"`
	Kind     string             `yaml:"kind"`
	Variants []describedVariant `yaml:"variants"`
	Subsets  []describedSubset  `yaml:"subsets"`
	Dropped  []string           `yaml:"dropped,omitempty,flow"`
}

type describedVariant struct {
	Name    string   `yaml:"name"`
	Payload string   `yaml:"payload"`
	Subsets []string `yaml:"subsets,flow"`
}

type describedSubset struct {
	Name         string   `yaml:"name"`
	Members      []string `yaml:"members,flow"`
	Capabilities []string `yaml:"capabilities,omitempty,flow"`
}

// describe prints the projected model of every package with enumerations.
func describe(w io.Writer, format string, res *driver.Result) error {
	var plans []*plan.PackagePlan

	for _, p := range res.Packages {
		if p.Plan != nil {
			plans = append(plans, p.Plan)
		}
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(describePlans(plans)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return enc.Close()
	case "spew":
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, plans)

		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml or spew)", format)
	}
}

func describePlans(plans []*plan.PackagePlan) []describedPackage {
	out := make([]describedPackage, 0, len(plans))

	for _, pp := range plans {
		dp := describedPackage{Path: pp.Path}

		for _, ep := range pp.Enums {
			de := describedEnum{Name: ep.Source.Name, Kind: ep.Source.Kind.String()}

			for _, m := range ep.Index() {
				v, _ := ep.Source.Variant(m.Variant)
				de.Variants = append(de.Variants, describedVariant{
					Name:    m.Variant,
					Payload: v.Payload.String(),
					Subsets: m.Subsets,
				})
			}

			for _, s := range ep.Subsets {
				ds := describedSubset{Name: s.Name, Members: []string{}}
				for _, m := range s.Members {
					ds.Members = append(ds.Members, m.Name)
				}

				for _, c := range s.Capabilities {
					ds.Capabilities = append(ds.Capabilities, string(c))
				}

				de.Subsets = append(de.Subsets, ds)
			}

			for _, d := range ep.Dropped {
				de.Dropped = append(de.Dropped, d.Name)
			}

			dp.Enums = append(dp.Enums, de)
		}

		out = append(out, dp)
	}

	return out
}
