package draw

import "fmt"

// Kind identifies a drawing operation.
type Kind int

const (
	KindMoveTo Kind = iota
	KindRelativeMoveTo
	KindLineTo
	KindRelativeLineTo
	KindCubicTo
	KindRelativeCubicTo
	KindQuadraticBezierTo
	KindRelativeQuadraticBezierTo
	KindClose
)

var kindNames = [...]string{
	KindMoveTo:                    "MoveTo",
	KindRelativeMoveTo:            "RelativeMoveTo",
	KindLineTo:                    "LineTo",
	KindRelativeLineTo:            "RelativeLineTo",
	KindCubicTo:                   "CubicTo",
	KindRelativeCubicTo:           "RelativeCubicTo",
	KindQuadraticBezierTo:         "QuadraticBezierTo",
	KindRelativeQuadraticBezierTo: "RelativeQuadraticBezierTo",
	KindClose:                     "Close",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Op is one recorded operation.
type Op struct {
	Kind Kind
	Args []float32
}

// FillRule is the winding rule used to fill a path.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Paint describes how a path is filled. Color is kept as written in the
// icon source, for example "#FF000000"; empty means the renderer's
// default.
type Paint struct {
	Color string
	Alpha float32
	Rule  FillRule
}

// Path records drawing operations. The methods return the receiver so
// calls can be chained.
type Path struct {
	ops   []Op
	paint Paint
}

// NewPath returns an empty, opaque, non-zero filled path.
func NewPath() *Path {
	return &Path{paint: Paint{Alpha: 1}}
}

// Fill sets the paint of the path.
func (p *Path) Fill(color string, alpha float32, rule FillRule) *Path {
	p.paint = Paint{Color: color, Alpha: alpha, Rule: rule}
	return p
}

// Paint returns the paint set with Fill.
func (p *Path) Paint() Paint { return p.paint }

func (p *Path) add(k Kind, args ...float32) *Path {
	p.ops = append(p.ops, Op{Kind: k, Args: args})
	return p
}

func (p *Path) MoveTo(x, y float32) *Path { return p.add(KindMoveTo, x, y) }

func (p *Path) RelativeMoveTo(dx, dy float32) *Path { return p.add(KindRelativeMoveTo, dx, dy) }

func (p *Path) LineTo(x, y float32) *Path { return p.add(KindLineTo, x, y) }

func (p *Path) RelativeLineTo(dx, dy float32) *Path { return p.add(KindRelativeLineTo, dx, dy) }

func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float32) *Path {
	return p.add(KindCubicTo, x1, y1, x2, y2, x3, y3)
}

func (p *Path) RelativeCubicTo(dx1, dy1, dx2, dy2, dx3, dy3 float32) *Path {
	return p.add(KindRelativeCubicTo, dx1, dy1, dx2, dy2, dx3, dy3)
}

func (p *Path) QuadraticBezierTo(x1, y1, x2, y2 float32) *Path {
	return p.add(KindQuadraticBezierTo, x1, y1, x2, y2)
}

func (p *Path) RelativeQuadraticBezierTo(dx1, dy1, dx2, dy2 float32) *Path {
	return p.add(KindRelativeQuadraticBezierTo, dx1, dy1, dx2, dy2)
}

// Close ends the current contour.
func (p *Path) Close() *Path { return p.add(KindClose) }

// Ops returns a copy of the recorded operations.
func (p *Path) Ops() []Op {
	ops := make([]Op, len(p.ops))
	copy(ops, p.ops)
	return ops
}

// Len returns the number of recorded operations.
func (p *Path) Len() int { return len(p.ops) }
