package pathgen

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/spf13/afero"
)

// Icon is one source asset: the Go name of its accessor and the file the
// parser reads it from.
type Icon struct {
	Name   string
	Source string
}

// Parser turns an icon source into a vector tree.
type Parser interface {
	Parse(icon Icon) (*Vector, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(icon Icon) (*Vector, error)

func (f ParserFunc) Parse(icon Icon) (*Vector, error) { return f(icon) }

// SVGParser reads icon sources from Fs with ParseVector.
type SVGParser struct {
	Fs afero.Fs
}

func (p SVGParser) Parse(icon Icon) (*Vector, error) {
	f, err := p.Fs.Open(icon.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	return ParseVector(f, icon.Name)
}

// IconName derives the Go identifier of an icon from its file name:
// the extension and trimPrefix are removed and the rest is camel cased.
// Names that would not start with a letter get an "Icon" prefix.
func IconName(file, trimPrefix string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimPrefix(base, trimPrefix)

	name := strcase.ToCamel(base)
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "Icon" + name
	}
	return name
}

// DiscoverIcons lists the .svg and .xml files directly inside dir, in
// file name order.
func DiscoverIcons(fs afero.Fs, dir, trimPrefix string) ([]Icon, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading icon directory: %w", err)
	}

	var icons []Icon
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(info.Name())) {
		case ".svg", ".xml":
			icons = append(icons, Icon{
				Name:   IconName(info.Name(), trimPrefix),
				Source: filepath.Join(dir, info.Name()),
			})
		}
	}
	return icons, nil
}
