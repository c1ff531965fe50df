package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subenum-generator/internal/analyze"
	"subenum-generator/internal/analyze/analyzetest"
	"subenum-generator/internal/diagnostic"
	"subenum-generator/internal/model"
)

const canisSrc = `package fixture

//subenum:Dog,Small
//subenum:derive String,Text,Ordinal
type Canis int

const (
	CanisWolf Canis = iota
	//subenum:Dog
	CanisBoxer
	//subenum:Dog
	CanisGoldenRetriever
	CanisCoyote
	//subenum:Dog,Small
	CanisWestie
)
`

func parse(t *testing.T, src string) ([]*model.SourceEnum, *diagnostic.Diagnostics) {
	t.Helper()

	return model.ParsePackage(analyzetest.FromSource(t, src))
}

func codes(diags *diagnostic.Diagnostics) []string {
	var out []string
	for _, d := range diags.All() {
		out = append(out, d.Code)
	}

	return out
}

func TestParse_ConstEnum(t *testing.T) {
	enums, diags := parse(t, canisSrc)
	require.True(t, diags.IsValid(), diags.Error())
	require.Len(t, enums, 1)

	canis := enums[0]
	assert.Equal(t, "Canis", canis.Name)
	assert.Equal(t, analyze.EnumKindConst, canis.Kind)
	assert.Equal(t, "int", canis.Underlying)
	assert.Equal(t, []string{"Dog", "Small"}, canis.Subsets)
	assert.Equal(t, []string{"String", "Text", "Ordinal"}, canis.Capabilities)

	var names []string
	for _, v := range canis.Variants {
		names = append(names, v.Name)
	}

	assert.Equal(t, []string{"Wolf", "Boxer", "GoldenRetriever", "Coyote", "Westie"}, names)

	westie, ok := canis.Variant("Westie")
	require.True(t, ok)
	assert.Equal(t, "CanisWestie", westie.Ident)
	assert.Equal(t, []string{"Dog", "Small"}, westie.Memberships)
	assert.True(t, westie.MemberOf("Small"))
	assert.Equal(t, "4", westie.Value)
	assert.Equal(t, 15, westie.Pos.Line)

	wolf, ok := canis.Variant("Wolf")
	require.True(t, ok)
	assert.Empty(t, wolf.Memberships)

	_, ok = canis.Variant("Dingo")
	assert.False(t, ok)
}

func TestParse_UnionEnum(t *testing.T) {
	enums, diags := parse(t, `package fixture

//subenum:Closed,Open
type Shape interface{ isShape() }

//subenum:Closed
type Circle struct{ Radius float64 }

//subenum:Open
type Line struct{}

//subenum:Closed,Open
type Poly struct{ Points []int }

func (Circle) isShape() {}
func (Line) isShape()   {}
func (*Poly) isShape()  {}
`)
	require.True(t, diags.IsValid(), diags.Error())
	require.Len(t, enums, 1)

	shape := enums[0]
	assert.Equal(t, analyze.EnumKindUnion, shape.Kind)
	require.Len(t, shape.Variants, 3)

	assert.Equal(t, "Circle", shape.Variants[0].Name)
	assert.Equal(t, analyze.PayloadNamed, shape.Variants[0].Payload)
	assert.Equal(t, "Line", shape.Variants[1].Name)
	assert.Equal(t, analyze.PayloadUnit, shape.Variants[1].Payload)
	assert.Equal(t, "*Poly", shape.Variants[2].TypeExpr())
	assert.Equal(t, []string{"Closed", "Open"}, shape.Variants[2].Memberships)
}

func TestParse_UnknownSubsetName(t *testing.T) {
	enums, diags := parse(t, `package fixture

//subenum:Dog
type Canis int

const (
	//subenum:Dogg
	CanisBoxer Canis = iota
)
`)
	assert.Empty(t, enums)
	require.Len(t, diags.Errors, 1)

	d := diags.Errors[0]
	assert.Equal(t, diagnostic.CodeUnknownSubsetName, d.Code)
	assert.Equal(t, "Canis", d.Enum)
	assert.Equal(t, "Boxer", d.Variant)
	assert.Equal(t, []string{"Dog"}, d.Suggestions)
	assert.Contains(t, d.Message, `"Dogg"`)
	assert.Equal(t, 8, d.Position.Line)
	assert.ErrorIs(t, diags.Error(), diagnostic.ErrUnknownSubsetName)
}

func TestParse_DuplicateSubsetName(t *testing.T) {
	enums, diags := parse(t, `package fixture

//subenum:Dog,Small,Dog
type Canis int

const CanisBoxer Canis = 0
`)
	assert.Empty(t, enums)
	assert.Equal(t, []string{diagnostic.CodeDuplicateSubsetName}, codes(diags))
	assert.True(t, errors.Is(diags.Error(), diagnostic.ErrDuplicateSubsetName))
}

func TestParse_EmptySubsetDeclaration(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty list", doc: "//subenum:"},
		{name: "only derive", doc: "//subenum:derive String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enums, diags := parse(t, "package fixture\n\n"+tt.doc+"\ntype Canis int\n\nconst CanisBoxer Canis = 0\n")
			assert.Empty(t, enums)
			assert.Equal(t, []string{diagnostic.CodeEmptySubsetDeclaration}, codes(diags))
			assert.ErrorIs(t, diags.Error(), diagnostic.ErrEmptySubsetDeclaration)
		})
	}
}

func TestParse_DeclarationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "invalid directive",
			src:  "package fixture\n\n//subenum:Dog,,Small\ntype Canis int\n\nconst CanisBoxer Canis = 0\n",
			want: []string{diagnostic.CodeInvalidDirective},
		},
		{
			name: "invalid subset name",
			src:  "package fixture\n\n//subenum:Dog,2Small\ntype Canis int\n\nconst CanisBoxer Canis = 0\n",
			want: []string{diagnostic.CodeInvalidSubsetName},
		},
		{
			name: "subset named like source",
			src:  "package fixture\n\n//subenum:Canis\ntype Canis int\n\nconst CanisBoxer Canis = 0\n",
			want: []string{diagnostic.CodeSubsetNameConflict},
		},
		{
			name: "no variants",
			src:  "package fixture\n\n//subenum:Dog\ntype Canis int\n",
			want: []string{diagnostic.CodeEmptyEnum},
		},
		{
			name: "duplicate variant name",
			src:  "package fixture\n\n//subenum:Dog\ntype Canis int\n\nconst (\n\tCanisBoxer Canis = 0\n\tBoxer Canis = 1\n)\n",
			want: []string{diagnostic.CodeDuplicateVariantName},
		},
		{
			name: "duplicate variant value",
			src:  "package fixture\n\n//subenum:Dog\ntype Canis int\n\nconst (\n\tCanisBoxer Canis = 1\n\tCanisPug Canis = 1\n)\n",
			want: []string{diagnostic.CodeDuplicateVariantValue},
		},
		{
			name: "derive on variant",
			src:  "package fixture\n\n//subenum:Dog\ntype Canis int\n\nconst (\n\t//subenum:derive String\n\tCanisBoxer Canis = 0\n)\n",
			want: []string{diagnostic.CodeInvalidDirective},
		},
		{
			name: "generic union",
			src:  "package fixture\n\n//subenum:Closed\ntype Shape[T any] interface{ isShape(T) }\n",
			want: []string{diagnostic.CodeUnsupportedEnum},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enums, diags := parse(t, tt.src)
			assert.Empty(t, enums)
			assert.Equal(t, tt.want, codes(diags))
		})
	}
}

func TestParse_EmptyVariantTagWarns(t *testing.T) {
	enums, diags := parse(t, `package fixture

//subenum:Dog
type Canis int

const (
	//subenum:
	CanisBoxer Canis = iota
	//subenum:Dog
	CanisPug
)
`)
	require.True(t, diags.IsValid(), diags.Error())
	require.Len(t, enums, 1)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeEmptyVariantTag, diags.Warnings[0].Code)
	assert.Empty(t, enums[0].Variants[0].Memberships)
}

func TestParse_SubsetMayBeEmpty(t *testing.T) {
	enums, diags := parse(t, `package fixture

//subenum:Dog,Nothing
type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
	CanisWolf
)
`)
	require.True(t, diags.IsValid(), diags.Error())
	require.Len(t, enums, 1)
	assert.Equal(t, []string{"Dog", "Nothing"}, enums[0].Subsets)
}

func TestParse_RepeatedTagIsDeduplicated(t *testing.T) {
	enums, diags := parse(t, `package fixture

//subenum:Dog
type Canis int

const (
	//subenum:Dog,Dog
	CanisBoxer Canis = iota
)
`)
	require.True(t, diags.IsValid(), diags.Error())
	assert.Equal(t, []string{"Dog"}, enums[0].Variants[0].Memberships)
}

func TestParse_NameCollisions(t *testing.T) {
	t.Run("declared in package", func(t *testing.T) {
		_, diags := parse(t, `package fixture

//subenum:Dog
type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
)

func CanisToDog() {}
`)
		assert.Equal(t, []string{diagnostic.CodeSubsetNameTaken}, codes(diags))
		assert.Contains(t, diags.Errors[0].Message, "CanisToDog")
	})

	t.Run("generated by two enums", func(t *testing.T) {
		enums, diags := parse(t, `package fixture

//subenum:Small
type Canis int

const (
	//subenum:Small
	CanisWestie Canis = iota
)

//subenum:Small
type Felis int

const (
	//subenum:Small
	FelisKitten Felis = iota
)
`)
		require.Len(t, enums, 1)
		assert.Equal(t, "Canis", enums[0].Name)
		assert.Contains(t, codes(diags), diagnostic.CodeSubsetNameTaken)
		assert.Contains(t, diags.Errors[0].Message, "enum Canis also generates")
	})

	const shapeHead = `package fixture

//subenum:Round
//subenum:derive Equal,Contains,Values
type Shape interface{ isShape() }

//subenum:Round
type Circle struct{ Radius float64 }

func (Circle) isShape() {}
`

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "constant of one subset is another subset",
			src: `package fixture

//subenum:Dog,DogBoxer
type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
)
`,
			want: "subset DogBoxer would generate DogBoxer, which subset Dog also generates",
		},
		{
			name: "values function declared in package",
			src: `package fixture

//subenum:Dog
//subenum:derive Values
type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
)

func DogValues() []Canis { return nil }
`,
			want: "subset Dog would generate DogValues, which is already declared",
		},
		{
			name: "contains predicate declared in package",
			src: `package fixture

//subenum:Dog
//subenum:derive Contains
type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
)

var CanisInDog = true
`,
			want: "subset Dog would generate CanisInDog, which is already declared",
		},
		{
			name: "union equal function declared in package",
			src:  shapeHead + "\nfunc RoundEqualShape() {}\n",
			want: "subset Round would generate RoundEqualShape, which is already declared",
		},
		{
			name: "union contains predicate declared in package",
			src:  shapeHead + "\nfunc ShapeInRound() {}\n",
			want: "subset Round would generate ShapeInRound, which is already declared",
		},
		{
			name: "union subsets differing in case",
			src: `package fixture

//subenum:Round,round
type Shape interface{ isShape() }

//subenum:Round,round
type Circle struct{}

func (Circle) isShape() {}
`,
			want: "subset round differs from subset Round only in letter case",
		},
		{
			name: "const subsets differing in case",
			src: `package fixture

//subenum:Small,SMALL
type Canis int

const (
	//subenum:Small
	CanisWestie Canis = iota
)
`,
			want: "subset SMALL differs from subset Small only in letter case",
		},
		{
			name: "marker method declared on member",
			src:  shapeHead + "\nfunc (Circle) isRound() bool { return true }\n",
			want: "subset Round would declare method isRound on Circle",
		},
		{
			name: "marker clashes with member field",
			src: `package fixture

//subenum:Round
type Shape interface{ isShape() }

//subenum:Round
type Circle struct{ isRound bool }

func (Circle) isShape() {}
`,
			want: "subset Round would declare method isRound on Circle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enums, diags := parse(t, tt.src)
			assert.Empty(t, enums)
			require.Equal(t, []string{diagnostic.CodeSubsetNameTaken}, codes(diags))
			assert.Contains(t, diags.Errors[0].Message, tt.want)
		})
	}
}

func TestParse_CapabilityNamesNotGenerated(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "values not requested",
			src: `package fixture

//subenum:Dog
type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
)

func DogValues() []Canis { return nil }
func CanisInDog() bool   { return false }
`,
		},
		{
			name: "values dropped for unions",
			src: `package fixture

//subenum:Round
//subenum:derive Values
type Shape interface{ isShape() }

//subenum:Round
type Circle struct{}

func (Circle) isShape() {}

func RoundValues() {}
`,
		},
		{
			name: "const equal is a method",
			src: `package fixture

//subenum:Dog
//subenum:derive Equal
type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
)

func DogEqualCanis() {}
func EqualCanis()    {}
`,
		},
		{
			name: "marker on non-member",
			src: `package fixture

//subenum:Round
type Shape interface{ isShape() }

type Square struct{}

func (Square) isShape() {}
func (Square) isRound() {}

//subenum:Round
type Circle struct{}

func (Circle) isShape() {}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enums, diags := parse(t, tt.src)
			require.True(t, diags.IsValid(), diags.Error())
			assert.Len(t, enums, 1)
		})
	}
}

func TestParse_OrphanVariantTag(t *testing.T) {
	_, diags := parse(t, `package fixture

type Canis int

const (
	//subenum:Dog
	CanisBoxer Canis = iota
)
`)
	assert.Equal(t, []string{diagnostic.CodeOrphanVariantTag}, codes(diags))
}

func TestParse_CollectsEveryError(t *testing.T) {
	_, diags := parse(t, `package fixture

//subenum:Dog,Dog
type Canis int

const (
	//subenum:Cat
	CanisBoxer Canis = iota
	//subenum:Bird
	CanisPug
)
`)
	assert.Equal(t, []string{
		diagnostic.CodeDuplicateSubsetName,
		diagnostic.CodeUnknownSubsetName,
		diagnostic.CodeUnknownSubsetName,
	}, codes(diags))
}
