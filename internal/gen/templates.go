package gen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`{{range .Header}}// {{.}}
{{end}}{{if .Header}}
{{end}}// Code generated by subenum-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .StdImports}}	"{{.}}"
{{end}}{{if .StdImports}}
{{end}}	"{{.ErrorsImport}}"
)
{{range .Subsets}}
{{if .Union}}{{template "union" .}}{{else}}{{template "const" .}}{{end}}
{{- end}}
`))

func init() {
	template.Must(fileTemplate.New("const").Parse(constTemplate))
	template.Must(fileTemplate.New("union").Parse(unionTemplate))
}

const constTemplate = `
{{if .Comments}}// {{.Doc}}
{{end}}type {{.Name}} {{.Underlying}}
{{if .Members}}
const (
{{range .Members}}	{{.Const}} {{$.Name}} = {{$.Name}}({{.Ident}})
{{end}})
{{end}}
{{if .Comments}}// {{.Forward}} converts v to a {{.Name}}. It returns a
// *subenumerrors.NotAMemberError when v is not a member of {{.Name}}.
{{end}}func {{.Forward}}(v {{.Source}}) ({{.Name}}, error) {
	switch v {
{{range .Arms}}	case {{.Ident}}:
{{if .Member}}		return {{.Const}}, nil
{{else}}		return {{$.Zero}}, &subenumerrors.NotAMemberError{Enum: {{printf "%q" $.Source}}, Subset: {{printf "%q" $.Name}}, Variant: {{printf "%q" .Name}}}
{{end}}{{end}}	default:
		return {{.Zero}}, &subenumerrors.UnknownVariantError{Enum: {{printf "%q" .Source}}, Value: v}
	}
}

{{if .Comments}}// {{.Backward}} converts v back to a {{.Source}}.
{{end}}func {{.Backward}}(v {{.Name}}) {{.Source}} {
{{if .Members}}	switch v {
{{range .Members}}	case {{.Const}}:
		return {{.Ident}}
{{end}}	}

{{end}}	return {{.Source}}(v)
}
{{if .String}}
{{if .Comments}}// String returns the variant name of v.
{{end}}func (v {{.Name}}) String() string {
{{if .Members}}	switch v {
{{range .Members}}	case {{.Const}}:
		return {{printf "%q" .Name}}
{{end}}	}

{{end}}	return fmt.Sprintf("{{.Name}}(%v)", {{.Underlying}}(v))
}
{{end}}{{if .Text}}
{{if .Comments}}// MarshalText implements encoding.TextMarshaler.
{{end}}func (v {{.Name}}) MarshalText() ([]byte, error) {
{{if .Members}}	switch v {
{{range .Members}}	case {{.Const}}:
		return []byte({{printf "%q" .Name}}), nil
{{end}}	}

{{end}}	return nil, &subenumerrors.UnknownVariantError{Enum: {{printf "%q" .Name}}, Value: {{.Underlying}}(v)}
}

{{if .Comments}}// UnmarshalText implements encoding.TextUnmarshaler.
{{end}}func (v *{{.Name}}) UnmarshalText(text []byte) error {
	switch string(text) {
{{range .Members}}	case {{printf "%q" .Name}}:
		*v = {{.Const}}
{{end}}	default:
		return &subenumerrors.ParseError{Type: {{printf "%q" .Name}}, Text: string(text)}
	}

	return nil
}
{{end}}{{if .Valid}}
{{if .Comments}}// IsValid reports whether v is one of the {{.Name}} constants.
{{end}}func (v {{.Name}}) IsValid() bool {
{{if .Members}}	switch v {
	case {{range $i, $m := .Members}}{{if $i}}, {{end}}{{$m.Const}}{{end}}:
		return true
	}

{{end}}	return false
}
{{end}}{{if .ListValues}}
{{if .Comments}}// {{.Values}} returns the members of {{.Name}} in declaration order.
{{end}}func {{.Values}}() []{{.Name}} {
	return []{{.Name}}{ {{- range $i, $m := .Members}}{{if $i}}, {{end}}{{$m.Const}}{{end -}} }
}
{{end}}{{if .Equal}}
{{if .Comments}}// {{.EqualMethod}} reports whether v and other are the same variant.
{{end}}func (v {{.Name}}) {{.EqualMethod}}(other {{.Source}}) bool {
	return {{.Backward}}(v) == other
}
{{end}}{{if .Contains}}
{{if .Comments}}// {{.InSubset}} reports whether v is a member of {{.Name}}.
{{end}}func {{.InSubset}}(v {{.Source}}) bool {
	_, err := {{.Forward}}(v)
	return err == nil
}
{{end}}`

const unionTemplate = `
{{if .Comments}}// {{.Doc}}
{{end}}type {{.Name}} interface {
	{{.Source}}
	{{.Marker}}()
}
{{range .Members}}
func ({{.TypeExpr}}) {{$.Marker}}() {}
{{end}}
{{if .Comments}}// {{.Forward}} converts v to a {{.Name}}. It returns a
// *subenumerrors.NotAMemberError when v is not a member of {{.Name}}.
{{end}}func {{.Forward}}(v {{.Source}}) ({{.Name}}, error) {
	switch v := v.(type) {
{{range .Arms}}	case {{.TypeExpr}}:
{{if .Member}}		return v, nil
{{else}}		return nil, &subenumerrors.NotAMemberError{Enum: {{printf "%q" $.Source}}, Subset: {{printf "%q" $.Name}}, Variant: {{printf "%q" .Name}}}
{{end}}{{end}}	case nil:
		return nil, &subenumerrors.UnknownVariantError{Enum: {{printf "%q" .Source}}}
	default:
		return nil, &subenumerrors.UnknownVariantError{Enum: {{printf "%q" .Source}}, Value: v}
	}
}

{{if .Comments}}// {{.Backward}} converts v back to a {{.Source}}. A nil {{.Name}} yields a
// nil {{.Source}}.
{{end}}func {{.Backward}}(v {{.Name}}) {{.Source}} {
	switch v := v.(type) {
{{range .Members}}	case {{.TypeExpr}}:
		return v
{{end}}	case nil:
		return nil
	default:
		return v
	}
}
{{if .Equal}}
{{if .Comments}}// {{.EqualFunc}} reports whether v and other hold equal values.
{{end}}func {{.EqualFunc}}(v {{.Name}}, other {{.Source}}) bool {
	return reflect.DeepEqual({{.Backward}}(v), other)
}
{{end}}{{if .Contains}}
{{if .Comments}}// {{.InSubset}} reports whether v is a member of {{.Name}}.
{{end}}func {{.InSubset}}(v {{.Source}}) bool {
	_, err := {{.Forward}}(v)
	return err == nil
}
{{end}}`
