package pathgen

// PathCommand is one primitive drawing instruction of a path. The set of
// implementations is closed: every command is one of the structs below
// and is dispatched through CommandVisitor.
type PathCommand interface {
	// Args returns the command parameters in declaration order. Arc
	// flags are reported as 0 or 1.
	Args() []float64
	// Accept calls the visitor method matching the command.
	Accept(v CommandVisitor)
}

// CommandVisitor has one method per PathCommand variant. Adding a
// variant adds a method here, which breaks every visitor until it
// handles the new command.
type CommandVisitor interface {
	VisitMoveTo(MoveTo)
	VisitRelativeMoveTo(RelativeMoveTo)
	VisitLineTo(LineTo)
	VisitRelativeLineTo(RelativeLineTo)
	VisitHorizontalTo(HorizontalTo)
	VisitRelativeHorizontalTo(RelativeHorizontalTo)
	VisitVerticalTo(VerticalTo)
	VisitRelativeVerticalTo(RelativeVerticalTo)
	VisitCurveTo(CurveTo)
	VisitRelativeCurveTo(RelativeCurveTo)
	VisitReflectiveCurveTo(ReflectiveCurveTo)
	VisitRelativeReflectiveCurveTo(RelativeReflectiveCurveTo)
	VisitQuadTo(QuadTo)
	VisitRelativeQuadTo(RelativeQuadTo)
	VisitReflectiveQuadTo(ReflectiveQuadTo)
	VisitRelativeReflectiveQuadTo(RelativeReflectiveQuadTo)
	VisitArcTo(ArcTo)
	VisitRelativeArcTo(RelativeArcTo)
	VisitClose(Close)
}

// MoveTo starts a new sub-path at an absolute position (M).
type MoveTo struct{ X, Y float64 }

// RelativeMoveTo starts a new sub-path relative to the current point (m).
type RelativeMoveTo struct{ DX, DY float64 }

// LineTo draws a straight line to an absolute position (L).
type LineTo struct{ X, Y float64 }

// RelativeLineTo draws a straight line relative to the current point (l).
type RelativeLineTo struct{ DX, DY float64 }

// HorizontalTo draws a horizontal line to an absolute x (H).
type HorizontalTo struct{ X float64 }

// RelativeHorizontalTo draws a horizontal line by dx (h).
type RelativeHorizontalTo struct{ DX float64 }

// VerticalTo draws a vertical line to an absolute y (V).
type VerticalTo struct{ Y float64 }

// RelativeVerticalTo draws a vertical line by dy (v).
type RelativeVerticalTo struct{ DY float64 }

// CurveTo draws a cubic Bézier curve with absolute points (C).
type CurveTo struct{ X1, Y1, X2, Y2, X3, Y3 float64 }

// RelativeCurveTo draws a cubic Bézier curve with relative points (c).
type RelativeCurveTo struct{ DX1, DY1, DX2, DY2, DX3, DY3 float64 }

// ReflectiveCurveTo draws a smooth cubic curve (S).
type ReflectiveCurveTo struct{ X1, Y1, X2, Y2 float64 }

// RelativeReflectiveCurveTo draws a smooth cubic curve with relative points (s).
type RelativeReflectiveCurveTo struct{ DX1, DY1, DX2, DY2 float64 }

// QuadTo draws a quadratic Bézier curve with absolute points (Q).
type QuadTo struct{ X1, Y1, X2, Y2 float64 }

// RelativeQuadTo draws a quadratic Bézier curve with relative points (q).
type RelativeQuadTo struct{ DX1, DY1, DX2, DY2 float64 }

// ReflectiveQuadTo draws a smooth quadratic curve (T).
type ReflectiveQuadTo struct{ X, Y float64 }

// RelativeReflectiveQuadTo draws a smooth quadratic curve by a delta (t).
type RelativeReflectiveQuadTo struct{ DX, DY float64 }

// ArcTo draws an elliptical arc to an absolute position (A).
type ArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	X, Y     float64
}

// RelativeArcTo draws an elliptical arc to a relative position (a).
type RelativeArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	DX, DY   float64
}

// Close closes the current sub-path (Z).
type Close struct{}

func (c MoveTo) Args() []float64         { return []float64{c.X, c.Y} }
func (c RelativeMoveTo) Args() []float64 { return []float64{c.DX, c.DY} }
func (c LineTo) Args() []float64         { return []float64{c.X, c.Y} }
func (c RelativeLineTo) Args() []float64 { return []float64{c.DX, c.DY} }
func (c HorizontalTo) Args() []float64   { return []float64{c.X} }
func (c RelativeHorizontalTo) Args() []float64 {
	return []float64{c.DX}
}
func (c VerticalTo) Args() []float64         { return []float64{c.Y} }
func (c RelativeVerticalTo) Args() []float64 { return []float64{c.DY} }
func (c CurveTo) Args() []float64 {
	return []float64{c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3}
}
func (c RelativeCurveTo) Args() []float64 {
	return []float64{c.DX1, c.DY1, c.DX2, c.DY2, c.DX3, c.DY3}
}
func (c ReflectiveCurveTo) Args() []float64 {
	return []float64{c.X1, c.Y1, c.X2, c.Y2}
}
func (c RelativeReflectiveCurveTo) Args() []float64 {
	return []float64{c.DX1, c.DY1, c.DX2, c.DY2}
}
func (c QuadTo) Args() []float64 { return []float64{c.X1, c.Y1, c.X2, c.Y2} }
func (c RelativeQuadTo) Args() []float64 {
	return []float64{c.DX1, c.DY1, c.DX2, c.DY2}
}
func (c ReflectiveQuadTo) Args() []float64 { return []float64{c.X, c.Y} }
func (c RelativeReflectiveQuadTo) Args() []float64 {
	return []float64{c.DX, c.DY}
}
func (c ArcTo) Args() []float64 {
	return []float64{c.RX, c.RY, c.Rotation, flag(c.LargeArc), flag(c.Sweep), c.X, c.Y}
}
func (c RelativeArcTo) Args() []float64 {
	return []float64{c.RX, c.RY, c.Rotation, flag(c.LargeArc), flag(c.Sweep), c.DX, c.DY}
}
func (Close) Args() []float64 { return nil }

func (c MoveTo) Accept(v CommandVisitor)               { v.VisitMoveTo(c) }
func (c RelativeMoveTo) Accept(v CommandVisitor)       { v.VisitRelativeMoveTo(c) }
func (c LineTo) Accept(v CommandVisitor)               { v.VisitLineTo(c) }
func (c RelativeLineTo) Accept(v CommandVisitor)       { v.VisitRelativeLineTo(c) }
func (c HorizontalTo) Accept(v CommandVisitor)         { v.VisitHorizontalTo(c) }
func (c RelativeHorizontalTo) Accept(v CommandVisitor) { v.VisitRelativeHorizontalTo(c) }
func (c VerticalTo) Accept(v CommandVisitor)           { v.VisitVerticalTo(c) }
func (c RelativeVerticalTo) Accept(v CommandVisitor)   { v.VisitRelativeVerticalTo(c) }
func (c CurveTo) Accept(v CommandVisitor)              { v.VisitCurveTo(c) }
func (c RelativeCurveTo) Accept(v CommandVisitor)      { v.VisitRelativeCurveTo(c) }
func (c ReflectiveCurveTo) Accept(v CommandVisitor)    { v.VisitReflectiveCurveTo(c) }
func (c RelativeReflectiveCurveTo) Accept(v CommandVisitor) {
	v.VisitRelativeReflectiveCurveTo(c)
}
func (c QuadTo) Accept(v CommandVisitor)           { v.VisitQuadTo(c) }
func (c RelativeQuadTo) Accept(v CommandVisitor)   { v.VisitRelativeQuadTo(c) }
func (c ReflectiveQuadTo) Accept(v CommandVisitor) { v.VisitReflectiveQuadTo(c) }
func (c RelativeReflectiveQuadTo) Accept(v CommandVisitor) {
	v.VisitRelativeReflectiveQuadTo(c)
}
func (c ArcTo) Accept(v CommandVisitor)         { v.VisitArcTo(c) }
func (c RelativeArcTo) Accept(v CommandVisitor) { v.VisitRelativeArcTo(c) }
func (c Close) Accept(v CommandVisitor)         { v.VisitClose(c) }

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
