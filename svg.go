package pathgen

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseVector decodes an icon source into a Vector. Both SVG documents
// and Android vector drawables are understood. Group and path transforms
// are baked into the path coordinates. Elements that carry no path
// geometry (titles, metadata, definitions) are skipped; basic shapes
// are rejected because dropping them would lose geometry.
func ParseVector(r io.Reader, name string) (*Vector, error) {
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: no root element", ErrParse, name)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		vp := &vectorParser{decoder: decoder}
		var v *Vector
		switch start.Name.Local {
		case "svg":
			v, err = vp.parseSvg(start)
		case "vector":
			v, err = vp.parseDrawable(start)
		default:
			err = fmt.Errorf("unsupported root element <%s>", start.Name.Local)
		}
		if err != nil {
			if errors.Is(err, ErrParse) {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
		}
		v.Name = name
		return v, nil
	}
}

type vectorParser struct {
	decoder *xml.Decoder
}

func (vp *vectorParser) parseSvg(start xml.StartElement) (*Vector, error) {
	v := &Vector{}
	var err error
	if v.Width, err = dimension(attr(start, "width")); err != nil {
		return nil, err
	}
	if v.Height, err = dimension(attr(start, "height")); err != nil {
		return nil, err
	}
	if vb := attr(start, "viewBox"); vb != "" {
		box, err := parseNumberList(vb)
		if err != nil || len(box) != 4 {
			return nil, fmt.Errorf("malformed viewBox %q", vb)
		}
		v.ViewportWidth, v.ViewportHeight = box[2], box[3]
	}
	normalizeSize(v)

	if v.Nodes, err = vp.children(identityTransform()); err != nil {
		return nil, err
	}
	return v, nil
}

func (vp *vectorParser) parseDrawable(start xml.StartElement) (*Vector, error) {
	v := &Vector{}
	var err error
	for _, a := range []struct {
		name string
		dst  *float64
	}{
		{"width", &v.Width},
		{"height", &v.Height},
		{"viewportWidth", &v.ViewportWidth},
		{"viewportHeight", &v.ViewportHeight},
	} {
		if *a.dst, err = dimension(attr(start, a.name)); err != nil {
			return nil, err
		}
	}
	normalizeSize(v)

	if v.Nodes, err = vp.children(identityTransform()); err != nil {
		return nil, err
	}
	return v, nil
}

// children decodes elements up to the end of the current element.
func (vp *vectorParser) children(parent transform) ([]VectorNode, error) {
	var nodes []VectorNode
	for {
		token, err := vp.decoder.Token()
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			n, err := vp.element(tok, parent)
			if err != nil {
				return nil, err
			}
			if n != nil {
				nodes = append(nodes, n)
			}
		case xml.EndElement:
			return nodes, nil
		}
	}
}

func (vp *vectorParser) element(start xml.StartElement, parent transform) (VectorNode, error) {
	switch start.Name.Local {
	case "g", "group":
		t, err := groupTransform(start)
		if err != nil {
			return nil, err
		}
		children, err := vp.children(parent.then(t))
		if err != nil {
			return nil, err
		}
		return &Group{Name: elementName(start), Children: children}, nil

	case "path":
		p, err := parsePath(start, parent)
		if err != nil {
			return nil, err
		}
		return p, vp.decoder.Skip()

	case "clipPath", "clip-path":
		cp := &ClipPath{}
		if d := attr(start, "pathData"); d != "" {
			cmds, err := ParsePathData(d)
			if err != nil {
				return nil, err
			}
			cp.Commands = parent.apply(cmds)
		}
		return cp, vp.decoder.Skip()

	case "rect", "circle", "ellipse", "line", "polyline", "polygon", "text", "use":
		return nil, fmt.Errorf("%w: unsupported element <%s>", ErrParse, start.Name.Local)
	}

	return nil, vp.decoder.Skip()
}

func parsePath(start xml.StartElement, parent transform) (*Path, error) {
	d := attr(start, "d")
	if d == "" {
		d = attr(start, "pathData")
	}
	cmds, err := ParsePathData(d)
	if err != nil {
		return nil, err
	}

	t := parent
	if ts := attr(start, "transform"); ts != "" {
		own, err := parseTransform(ts)
		if err != nil {
			return nil, err
		}
		t = parent.then(own)
	}

	p := &Path{
		Name:      elementName(start),
		Commands:  t.apply(cmds),
		Fill:      attr(start, "fill"),
		FillAlpha: 1,
	}
	if p.Fill == "" {
		p.Fill = attr(start, "fillColor")
	}

	alpha := attr(start, "fill-opacity")
	if alpha == "" {
		alpha = attr(start, "fillAlpha")
	}
	if alpha != "" {
		if p.FillAlpha, err = strconv.ParseFloat(alpha, 64); err != nil {
			return nil, fmt.Errorf("%w: fill alpha %q", ErrParse, alpha)
		}
	}

	switch strings.ToLower(attr(start, "fill-rule") + attr(start, "fillType")) {
	case "evenodd":
		p.FillType = EvenOdd
	}
	return p, nil
}

// groupTransform reads an SVG transform attribute or the Android group
// attributes (translate, scale about a pivot, rotation).
func groupTransform(start xml.StartElement) (transform, error) {
	if ts := attr(start, "transform"); ts != "" {
		return parseTransform(ts)
	}

	values := map[string]float64{"scaleX": 1, "scaleY": 1}
	for _, name := range []string{"translateX", "translateY", "scaleX", "scaleY", "pivotX", "pivotY", "rotation"} {
		s := attr(start, name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return identityTransform(), fmt.Errorf("%w: group %s %q", ErrParse, name, s)
		}
		values[name] = v
	}
	if values["rotation"] != 0 {
		return identityTransform(), fmt.Errorf("%w: unsupported group rotation %v", ErrParse, values["rotation"])
	}

	px, py := values["pivotX"], values["pivotY"]
	return translation(values["translateX"]+px, values["translateY"]+py).
		then(scaling(values["scaleX"], values["scaleY"])).
		then(translation(-px, -py)), nil
}

func attr(start xml.StartElement, local string) string {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

func elementName(start xml.StartElement) string {
	if id := attr(start, "id"); id != "" {
		return id
	}
	return attr(start, "name")
}

// dimension parses a size such as "24", "24px" or "24dp".
func dimension(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	for _, unit := range []string{"px", "dp", "pt"} {
		s = strings.TrimSuffix(s, unit)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed dimension %q", s)
	}
	return v, nil
}

// normalizeSize fills a missing size from the viewport and the other
// way around.
func normalizeSize(v *Vector) {
	if v.ViewportWidth == 0 {
		v.ViewportWidth = v.Width
	}
	if v.ViewportHeight == 0 {
		v.ViewportHeight = v.Height
	}
	if v.Width == 0 {
		v.Width = v.ViewportWidth
	}
	if v.Height == 0 {
		v.Height = v.ViewportHeight
	}
}
