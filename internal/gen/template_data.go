package gen

import "subenum-generator/internal/naming"

// fileData holds all data needed for the file template.
type fileData struct {
	Header       []string
	PackageName  string
	StdImports   []string
	ErrorsImport string
	Subsets      []subsetData
}

// subsetNames are the identifiers generated for one subset.
type subsetNames struct {
	Name        string // subset type
	Source      string // source enum type
	Forward     string
	Backward    string
	Values      string
	InSubset    string
	EqualFunc   string
	EqualMethod string
	Marker      string
}

func newSubsetNames(source, subset string) subsetNames {
	return subsetNames{
		Name:        subset,
		Source:      source,
		Forward:     naming.Forward(source, subset),
		Backward:    naming.Backward(subset, source),
		Values:      naming.Values(subset),
		InSubset:    naming.Contains(source, subset),
		EqualFunc:   naming.EqualFunc(subset, source),
		EqualMethod: naming.EqualMethod(source),
		Marker:      naming.Marker(subset),
	}
}

func (n subsetNames) constName(variant string) string {
	return naming.Const(n.Name, variant)
}

// subsetData holds everything rendered for one subset.
type subsetData struct {
	subsetNames

	Doc        string
	Comments   bool
	Union      bool
	Underlying string
	Zero       string
	// Members in source order.
	Members []variantData
	// Arms holds every source variant, in source order.
	Arms []variantData

	String     bool
	Text       bool
	Valid      bool
	ListValues bool
	Equal      bool
	Contains   bool
}

// variantData is one variant as seen from a subset.
type variantData struct {
	Name     string // variant name shared by source and subset
	Ident    string // source constant or variant type name
	Const    string // subset constant name (const enums)
	TypeExpr string // type switch case (union enums)
	Member   bool
}
