package pathgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operation is one drawing call on the runtime draw.Path: the method
// name and its arguments in call order.
type Operation struct {
	Name string
	Args []float64
}

// String renders the operation as a Go method call with float literals,
// e.g. "CubicTo(1.0, 2.5, 3.0, 4.0, 5.0, 6.0)".
func (o Operation) String() string {
	args := make([]string, len(o.Args))
	for i, a := range o.Args {
		args[i] = floatLiteral(a)
	}
	return o.Name + "(" + strings.Join(args, ", ") + ")"
}

// Translate maps a path command to the equivalent drawing operation.
// Commands without a faithful equivalent fail with a *CommandError
// wrapping ErrNotImplemented. Arguments the runtime cannot represent
// as float32 fail with ErrOutOfRange.
func Translate(cmd PathCommand) (Operation, error) {
	var t translator
	cmd.Accept(&t)
	if t.err != nil {
		return Operation{}, t.err
	}
	for i, a := range t.op.Args {
		if err := checkFloat32(a); err != nil {
			return Operation{}, fmt.Errorf("%s argument %d: %w", commandName(cmd), i, err)
		}
	}
	return t.op, nil
}

type translator struct {
	op  Operation
	err error
}

// passthrough emits the command under its own name with its arguments
// unchanged. MoveTo, LineTo and Close already match the runtime
// signatures.
func (t *translator) passthrough(c PathCommand) {
	t.op = Operation{Name: commandName(c), Args: c.Args()}
}

func (t *translator) call(name string, c PathCommand) {
	t.op = Operation{Name: name, Args: c.Args()}
}

func (t *translator) unsupported(c PathCommand) {
	t.err = &CommandError{Command: c}
}

func (t *translator) VisitMoveTo(c MoveTo)                 { t.passthrough(c) }
func (t *translator) VisitLineTo(c LineTo)                 { t.passthrough(c) }
func (t *translator) VisitClose(c Close)                   { t.passthrough(c) }
func (t *translator) VisitRelativeMoveTo(c RelativeMoveTo) { t.call("RelativeMoveTo", c) }
func (t *translator) VisitRelativeLineTo(c RelativeLineTo) { t.call("RelativeLineTo", c) }
func (t *translator) VisitCurveTo(c CurveTo)               { t.call("CubicTo", c) }
func (t *translator) VisitRelativeCurveTo(c RelativeCurveTo) {
	t.call("RelativeCubicTo", c)
}
func (t *translator) VisitQuadTo(c QuadTo) { t.call("QuadraticBezierTo", c) }
func (t *translator) VisitRelativeQuadTo(c RelativeQuadTo) {
	t.call("RelativeQuadraticBezierTo", c)
}

func (t *translator) VisitHorizontalTo(c HorizontalTo)                 { t.unsupported(c) }
func (t *translator) VisitRelativeHorizontalTo(c RelativeHorizontalTo) { t.unsupported(c) }
func (t *translator) VisitVerticalTo(c VerticalTo)                     { t.unsupported(c) }
func (t *translator) VisitRelativeVerticalTo(c RelativeVerticalTo)     { t.unsupported(c) }
func (t *translator) VisitReflectiveCurveTo(c ReflectiveCurveTo)       { t.unsupported(c) }
func (t *translator) VisitRelativeReflectiveCurveTo(c RelativeReflectiveCurveTo) {
	t.unsupported(c)
}
func (t *translator) VisitReflectiveQuadTo(c ReflectiveQuadTo) { t.unsupported(c) }
func (t *translator) VisitRelativeReflectiveQuadTo(c RelativeReflectiveQuadTo) {
	t.unsupported(c)
}
func (t *translator) VisitArcTo(c ArcTo)                 { t.unsupported(c) }
func (t *translator) VisitRelativeArcTo(c RelativeArcTo) { t.unsupported(c) }

func commandName(c PathCommand) string {
	name := fmt.Sprintf("%T", c)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func checkFloat32(v float64) error {
	if math.IsNaN(v) || math.Abs(v) > math.MaxFloat32 {
		return fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	return nil
}

// floatLiteral formats v at float32 precision, always with a decimal
// point so the literal reads as a float.
func floatLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
