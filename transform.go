package pathgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// transform is an affine transform built from translations and scales.
// Groups disappear from the flattened output, so their transforms are
// baked into the coordinates of the paths below them.
type transform struct {
	m        mt.Transform
	identity bool
}

func identityTransform() transform {
	return transform{m: mt.Identity(), identity: true}
}

func translation(tx, ty float64) transform {
	if tx == 0 && ty == 0 {
		return identityTransform()
	}
	m := mt.Identity()
	m.Translate(tx, ty)
	return transform{m: m}
}

func scaling(sx, sy float64) transform {
	if sx == 1 && sy == 1 {
		return identityTransform()
	}
	m := mt.Identity()
	m.Scale(sx, sy)
	return transform{m: m}
}

// then returns the transform applying inner first and t second.
func (t transform) then(inner transform) transform {
	switch {
	case inner.identity:
		return t
	case t.identity:
		return inner
	}
	return transform{m: mt.MultiplyTransforms(t.m, inner.m)}
}

func (t transform) point(x, y float64) (float64, float64) {
	return t.m.Apply(x, y)
}

// delta maps a relative offset, which only takes the linear part.
func (t transform) delta(dx, dy float64) (float64, float64) {
	x, y := t.m.Apply(dx, dy)
	ox, oy := t.m.Apply(0, 0)
	return x - ox, y - oy
}

// apply returns cmds mapped through t. The input is not modified.
func (t transform) apply(cmds []PathCommand) []PathCommand {
	if t.identity {
		return cmds
	}
	out := make([]PathCommand, len(cmds))
	for i, c := range cmds {
		tc := commandTransformer{t: t}
		c.Accept(&tc)
		out[i] = tc.out
	}
	return out
}

type commandTransformer struct {
	t   transform
	out PathCommand
}

func (ct *commandTransformer) VisitMoveTo(c MoveTo) {
	c.X, c.Y = ct.t.point(c.X, c.Y)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeMoveTo(c RelativeMoveTo) {
	c.DX, c.DY = ct.t.delta(c.DX, c.DY)
	ct.out = c
}

func (ct *commandTransformer) VisitLineTo(c LineTo) {
	c.X, c.Y = ct.t.point(c.X, c.Y)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeLineTo(c RelativeLineTo) {
	c.DX, c.DY = ct.t.delta(c.DX, c.DY)
	ct.out = c
}

func (ct *commandTransformer) VisitHorizontalTo(c HorizontalTo) {
	c.X, _ = ct.t.point(c.X, 0)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeHorizontalTo(c RelativeHorizontalTo) {
	c.DX, _ = ct.t.delta(c.DX, 0)
	ct.out = c
}

func (ct *commandTransformer) VisitVerticalTo(c VerticalTo) {
	_, c.Y = ct.t.point(0, c.Y)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeVerticalTo(c RelativeVerticalTo) {
	_, c.DY = ct.t.delta(0, c.DY)
	ct.out = c
}

func (ct *commandTransformer) VisitCurveTo(c CurveTo) {
	c.X1, c.Y1 = ct.t.point(c.X1, c.Y1)
	c.X2, c.Y2 = ct.t.point(c.X2, c.Y2)
	c.X3, c.Y3 = ct.t.point(c.X3, c.Y3)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeCurveTo(c RelativeCurveTo) {
	c.DX1, c.DY1 = ct.t.delta(c.DX1, c.DY1)
	c.DX2, c.DY2 = ct.t.delta(c.DX2, c.DY2)
	c.DX3, c.DY3 = ct.t.delta(c.DX3, c.DY3)
	ct.out = c
}

func (ct *commandTransformer) VisitReflectiveCurveTo(c ReflectiveCurveTo) {
	c.X1, c.Y1 = ct.t.point(c.X1, c.Y1)
	c.X2, c.Y2 = ct.t.point(c.X2, c.Y2)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeReflectiveCurveTo(c RelativeReflectiveCurveTo) {
	c.DX1, c.DY1 = ct.t.delta(c.DX1, c.DY1)
	c.DX2, c.DY2 = ct.t.delta(c.DX2, c.DY2)
	ct.out = c
}

func (ct *commandTransformer) VisitQuadTo(c QuadTo) {
	c.X1, c.Y1 = ct.t.point(c.X1, c.Y1)
	c.X2, c.Y2 = ct.t.point(c.X2, c.Y2)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeQuadTo(c RelativeQuadTo) {
	c.DX1, c.DY1 = ct.t.delta(c.DX1, c.DY1)
	c.DX2, c.DY2 = ct.t.delta(c.DX2, c.DY2)
	ct.out = c
}

func (ct *commandTransformer) VisitReflectiveQuadTo(c ReflectiveQuadTo) {
	c.X, c.Y = ct.t.point(c.X, c.Y)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeReflectiveQuadTo(c RelativeReflectiveQuadTo) {
	c.DX, c.DY = ct.t.delta(c.DX, c.DY)
	ct.out = c
}

func (ct *commandTransformer) VisitArcTo(c ArcTo) {
	c.RX, c.RY = ct.radii(c.RX, c.RY)
	c.X, c.Y = ct.t.point(c.X, c.Y)
	ct.out = c
}

func (ct *commandTransformer) VisitRelativeArcTo(c RelativeArcTo) {
	c.RX, c.RY = ct.radii(c.RX, c.RY)
	c.DX, c.DY = ct.t.delta(c.DX, c.DY)
	ct.out = c
}

func (ct *commandTransformer) VisitClose(c Close) { ct.out = c }

func (ct *commandTransformer) radii(rx, ry float64) (float64, float64) {
	sx, _ := ct.t.delta(1, 0)
	_, sy := ct.t.delta(0, 1)
	return rx * math.Abs(sx), ry * math.Abs(sy)
}

// parseTransform reads an SVG transform list. Only translate and scale
// are accepted (and rotations by zero); anything else would need the
// transform kept as a boundary, which flattened output cannot express.
func parseTransform(s string) (transform, error) {
	l, _ := gl.Lex("transform", s)
	tp := &transformParser{lex: l}

	t := identityTransform()
	for {
		name, err := tp.name()
		if err != nil {
			return t, fmt.Errorf("%w: transform %q: %v", ErrParse, s, err)
		}
		if name == "" {
			return t, nil
		}
		args, err := tp.args()
		if err != nil {
			return t, fmt.Errorf("%w: transform %q: %v", ErrParse, s, err)
		}

		var op transform
		switch {
		case name == "translate" && (len(args) == 1 || len(args) == 2):
			args = append(args, 0)
			op = translation(args[0], args[1])
		case name == "scale" && (len(args) == 1 || len(args) == 2):
			args = append(args, args[0])
			op = scaling(args[0], args[1])
		case name == "rotate" && len(args) >= 1 && args[0] == 0:
			op = identityTransform()
		default:
			return t, fmt.Errorf("%w: unsupported transform %s(%s)", ErrParse, name, formatArgs(args))
		}
		t = t.then(op)
	}
}

type transformParser struct {
	lex *gl.Lexer
}

func (tp *transformParser) skipSeparators() {
	tp.lex.ConsumeWhiteSpace()
	tp.lex.ConsumeComma()
	tp.lex.ConsumeWhiteSpace()
}

// name reads a transform function name up to its opening parenthesis.
// It returns "" at the end of the list.
func (tp *transformParser) name() (string, error) {
	var name strings.Builder
	for {
		tp.skipSeparators()
		i := tp.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return "", fmt.Errorf("%s", i.Value)
		case i.Type == gl.ItemEOS:
			if name.Len() > 0 {
				return "", fmt.Errorf("%s has no arguments", name.String())
			}
			return "", nil
		case i.Value == "(":
			if name.Len() == 0 {
				return "", fmt.Errorf("arguments without a function name")
			}
			return name.String(), nil
		case i.Type == gl.ItemLetter || isWord(i.Value):
			name.WriteString(i.Value)
		default:
			return "", fmt.Errorf("unexpected %q", i.Value)
		}
	}
}

// args reads numbers up to the closing parenthesis.
func (tp *transformParser) args() ([]float64, error) {
	var args []float64
	for {
		tp.skipSeparators()
		i := tp.lex.NextItem()
		switch {
		case i.Type == gl.ItemNumber:
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		case i.Value == ")":
			return args, nil
		case i.Type == gl.ItemError:
			return nil, fmt.Errorf("%s", i.Value)
		case i.Type == gl.ItemEOS:
			return nil, fmt.Errorf("missing closing parenthesis")
		default:
			return nil, fmt.Errorf("unexpected %q", i.Value)
		}
	}
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// parseNumberList lexes a whitespace or comma separated list of numbers,
// as in viewBox.
func parseNumberList(s string) ([]float64, error) {
	l, _ := gl.Lex("numbers", s)
	tp := &transformParser{lex: l}

	var nums []float64
	for {
		tp.skipSeparators()
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return nums, nil
		case gl.ItemNumber:
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return nil, err
			}
			nums = append(nums, v)
		default:
			return nil, fmt.Errorf("unexpected %q in number list", i.Value)
		}
	}
}

func formatArgs(args []float64) string {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return strings.Join(s, " ")
}
