package pathgen

import (
	"bytes"
	"text/template"
)

// accessor describes a memoised accessor to render: a package level
// draw.Lazy cell and a method on the group type reading it.
type accessor struct {
	Group string
	Name  string
	Doc   string
	Cell  string
	Type  string
	// Builder is the type returned by Body in the constructor flavour;
	// empty when Body computes the value itself.
	Builder string
	Body    string
}

var accessorTemplate = template.Must(template.New("accessor").Parse(`
{{- if .Builder -}}
var {{.Cell}} = draw.LazyBuild[{{.Type}}](func() {{.Builder}} {
{{- else -}}
var {{.Cell}} = draw.NewLazy(func() {{.Type}} {
{{- end}}
	return {{.Body}}
})

// {{.Name}} {{.Doc}}
func ({{.Group}}) {{.Name}}() {{.Type}} {
	return {{.Cell}}.Get()
}
`))

// lazyAccessor renders an accessor that computes its value on first
// call and returns the cached value afterwards.
func lazyAccessor(group, name, doc, cell, typ, body string) ([]byte, error) {
	return renderAccessor(accessor{Group: group, Name: name, Doc: doc, Cell: cell, Type: typ, Body: body})
}

// lazyBuiltAccessor renders an accessor whose value comes out of a
// builder: body constructs the builder, its Build result is cached.
func lazyBuiltAccessor(group, name, doc, cell, typ, builder, body string) ([]byte, error) {
	return renderAccessor(accessor{Group: group, Name: name, Doc: doc, Cell: cell, Type: typ, Builder: builder, Body: body})
}

func renderAccessor(a accessor) ([]byte, error) {
	var buf bytes.Buffer
	if err := accessorTemplate.Execute(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
