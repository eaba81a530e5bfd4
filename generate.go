package pathgen

import (
	"bytes"
	"fmt"
	"go/token"
	"path"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"
)

// RuntimeImport is the import path of the package generated code uses.
const RuntimeImport = "github.com/vasalvit/pathgen/draw"

const generatedHeader = "// Code generated by pathgen. DO NOT EDIT."

// Scope is where generated accessors live: Group is the type the
// accessors are methods of, Package the import path of the destination
// package.
type Scope struct {
	Group   string
	Package string
}

// PackageName returns the name used in the package clause of generated
// files, the last element of the import path.
func (s Scope) PackageName() string {
	return path.Base(s.Package)
}

// Validate reports whether generated code can be placed in the scope.
func (s Scope) Validate() error {
	if s.Package == "" {
		return fmt.Errorf("%w: package is required", ErrInvalidScope)
	}
	if name := s.PackageName(); !token.IsIdentifier(name) {
		return fmt.Errorf("%w: %q is not a valid package name", ErrInvalidScope, name)
	}
	if !token.IsIdentifier(s.Group) || !token.IsExported(s.Group) {
		return fmt.Errorf("%w: group %q is not an exported identifier", ErrInvalidScope, s.Group)
	}
	return nil
}

// Identifier is the fully qualified name of a generated accessor.
type Identifier struct {
	Package string
	Group   string
	Name    string
}

func (id Identifier) String() string {
	return id.Package + "." + id.Group + "." + id.Name
}

// Artifact is one generated Go source file, ready to be written.
type Artifact struct {
	Identifier Identifier
	Package    string
	FileName   string
	Source     []byte
}

// FileName returns the name of the file generated for an icon.
func FileName(iconName string) string {
	return strcase.ToSnake(iconName) + ".gen.go"
}

// cellStem is the start of the package level variable holding an
// icon's cached value. Distinct icon names can share a stem.
func cellStem(iconName string) string {
	return strcase.ToLowerCamel(iconName)
}

// GroupFileName returns the name of the file declaring the group type.
func GroupFileName(scope Scope) string {
	return strcase.ToSnake(scope.Group) + "_group.gen.go"
}

// Generate renders the accessor returning the icon's paths, one
// *draw.Path per block, built once on first call.
func Generate(name string, blocks []Block, scope Scope) (*Artifact, error) {
	if err := validateName(name, scope); err != nil {
		return nil, err
	}

	var body strings.Builder
	body.WriteString("[]*draw.Path{")
	for i, b := range blocks {
		if i == 0 {
			body.WriteString("\n")
		}
		writeBlock(&body, b, "")
		body.WriteString(",\n")
	}
	body.WriteString("}")

	acc, err := lazyAccessor(
		scope.Group, name,
		fmt.Sprintf("returns the paths of the %s icon in paint order.", name),
		cellStem(name)+"Paths",
		"[]*draw.Path",
		body.String(),
	)
	if err != nil {
		return nil, err
	}
	return newArtifact(name, scope, acc)
}

// GenerateIcon renders the accessor returning the icon as a *draw.Icon
// carrying the vector's size and viewport and the paint of every path,
// assembled by a builder on first call. blocks must be Flatten(v).
func GenerateIcon(name string, v *Vector, blocks []Block, scope Scope) (*Artifact, error) {
	if err := validateName(name, scope); err != nil {
		return nil, err
	}
	paths := emittedPaths(v.Nodes)
	if len(paths) != len(blocks) {
		return nil, fmt.Errorf("icon %s: %d blocks for %d paths", name, len(blocks), len(paths))
	}
	for _, f := range []float64{v.Width, v.Height, v.ViewportWidth, v.ViewportHeight} {
		if err := checkFloat32(f); err != nil {
			return nil, fmt.Errorf("icon %s size: %w", name, err)
		}
	}
	for _, p := range paths {
		if err := checkFloat32(p.FillAlpha); err != nil {
			return nil, fmt.Errorf("icon %s fill alpha: %w", name, err)
		}
	}

	var body strings.Builder
	fmt.Fprintf(&body, "draw.NewIconBuilder(%q, %s, %s, %s, %s)",
		name,
		floatLiteral(v.Width), floatLiteral(v.Height),
		floatLiteral(v.ViewportWidth), floatLiteral(v.ViewportHeight))
	for i, b := range blocks {
		body.WriteString(".\nAddPath(")
		writeBlock(&body, b, fillCall(paths[i]))
		body.WriteString(")")
	}

	acc, err := lazyBuiltAccessor(
		scope.Group, name,
		fmt.Sprintf("returns the %s icon.", name),
		cellStem(name)+"Icon",
		"*draw.Icon",
		"*draw.IconBuilder",
		body.String(),
	)
	if err != nil {
		return nil, err
	}
	return newArtifact(name, scope, acc)
}

// writeBlock writes a chained draw.Path expression. fill, when set, is
// written first.
func writeBlock(w *strings.Builder, b Block, fill string) {
	w.WriteString("draw.NewPath()")
	if fill != "" {
		w.WriteString(".\n")
		w.WriteString(fill)
	}
	for _, op := range b {
		w.WriteString(".\n")
		w.WriteString(op.String())
	}
}

func fillCall(p *Path) string {
	rule := "draw.NonZero"
	if p.FillType == EvenOdd {
		rule = "draw.EvenOdd"
	}
	return fmt.Sprintf("Fill(%q, %s, %s)", p.Fill, floatLiteral(p.FillAlpha), rule)
}

func validateName(name string, scope Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return fmt.Errorf("icon name %q is not an exported identifier", name)
	}
	return nil
}

func newArtifact(name string, scope Scope, decl []byte) (*Artifact, error) {
	var src bytes.Buffer
	fmt.Fprintf(&src, "%s\n\npackage %s\n\nimport %q\n\n", generatedHeader, scope.PackageName(), RuntimeImport)
	src.Write(decl)

	fileName := FileName(name)
	formatted, err := format(fileName, src.Bytes())
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Identifier: Identifier{Package: scope.Package, Group: scope.Group, Name: name},
		Package:    scope.Package,
		FileName:   fileName,
		Source:     formatted,
	}, nil
}

var groupTemplate = template.Must(template.New("group").Parse(`{{.Header}}

package {{.Package}}

// {{.Group}} groups the generated icons. Each icon is a method.
type {{.Group}} struct{}

// Names lists the generated icons in generation order.
func ({{.Group}}) Names() []string {
{{- if .Names}}
	return []string{
{{- range .Names}}
		{{printf "%q" .}},
{{- end}}
	}
{{- else}}
	return []string{}
{{- end}}
}
`))

// GenerateGroup renders the file declaring the group type of scope and
// an index of the icons in ids.
func GenerateGroup(scope Scope, ids []Identifier) (*Artifact, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}

	var src bytes.Buffer
	err := groupTemplate.Execute(&src, struct {
		Header  string
		Package string
		Group   string
		Names   []string
	}{generatedHeader, scope.PackageName(), scope.Group, names})
	if err != nil {
		return nil, err
	}

	fileName := GroupFileName(scope)
	formatted, err := format(fileName, src.Bytes())
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Identifier: Identifier{Package: scope.Package, Group: scope.Group},
		Package:    scope.Package,
		FileName:   fileName,
		Source:     formatted,
	}, nil
}

func format(fileName string, src []byte) ([]byte, error) {
	out, err := imports.Process(fileName, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", fileName, err)
	}
	return out, nil
}
