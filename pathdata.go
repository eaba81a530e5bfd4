package pathgen

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

type pathDataParser struct {
	lex      *gl.Lexer
	pending  []string
	commands []PathCommand
}

// ParsePathData interprets an SVG path description (the d attribute of
// a path, or android:pathData) into commands. Repeated argument groups
// repeat their command, and extra pairs after a move become lines, as
// SVG requires.
func ParsePathData(d string) ([]PathCommand, error) {
	l, _ := gl.Lex("pathdata", d)
	pdp := &pathDataParser{lex: l}

	for {
		pdp.skipSeparators()
		i := pdp.lex.NextItem()
		switch {
		case i.Type == gl.ItemEOS:
			return pdp.commands, nil
		case i.Type == gl.ItemError:
			return nil, fmt.Errorf("%w: path data: %s", ErrParse, i.Value)
		case i.Type == gl.ItemLetter:
			for _, r := range i.Value {
				if err := pdp.parseCommand(string(r)); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("%w: path data: unexpected %q", ErrParse, i.Value)
		}
	}
}

func (pdp *pathDataParser) parseCommand(letter string) error {
	switch letter {
	case "M":
		first := true
		return pdp.repeat(letter, 2, func(a []float64) PathCommand {
			if first {
				first = false
				return MoveTo{X: a[0], Y: a[1]}
			}
			return LineTo{X: a[0], Y: a[1]}
		})
	case "m":
		first := true
		return pdp.repeat(letter, 2, func(a []float64) PathCommand {
			if first {
				first = false
				return RelativeMoveTo{DX: a[0], DY: a[1]}
			}
			return RelativeLineTo{DX: a[0], DY: a[1]}
		})
	case "L":
		return pdp.repeat(letter, 2, func(a []float64) PathCommand {
			return LineTo{X: a[0], Y: a[1]}
		})
	case "l":
		return pdp.repeat(letter, 2, func(a []float64) PathCommand {
			return RelativeLineTo{DX: a[0], DY: a[1]}
		})
	case "H":
		return pdp.repeat(letter, 1, func(a []float64) PathCommand {
			return HorizontalTo{X: a[0]}
		})
	case "h":
		return pdp.repeat(letter, 1, func(a []float64) PathCommand {
			return RelativeHorizontalTo{DX: a[0]}
		})
	case "V":
		return pdp.repeat(letter, 1, func(a []float64) PathCommand {
			return VerticalTo{Y: a[0]}
		})
	case "v":
		return pdp.repeat(letter, 1, func(a []float64) PathCommand {
			return RelativeVerticalTo{DY: a[0]}
		})
	case "C":
		return pdp.repeat(letter, 6, func(a []float64) PathCommand {
			return CurveTo{X1: a[0], Y1: a[1], X2: a[2], Y2: a[3], X3: a[4], Y3: a[5]}
		})
	case "c":
		return pdp.repeat(letter, 6, func(a []float64) PathCommand {
			return RelativeCurveTo{DX1: a[0], DY1: a[1], DX2: a[2], DY2: a[3], DX3: a[4], DY3: a[5]}
		})
	case "S":
		return pdp.repeat(letter, 4, func(a []float64) PathCommand {
			return ReflectiveCurveTo{X1: a[0], Y1: a[1], X2: a[2], Y2: a[3]}
		})
	case "s":
		return pdp.repeat(letter, 4, func(a []float64) PathCommand {
			return RelativeReflectiveCurveTo{DX1: a[0], DY1: a[1], DX2: a[2], DY2: a[3]}
		})
	case "Q":
		return pdp.repeat(letter, 4, func(a []float64) PathCommand {
			return QuadTo{X1: a[0], Y1: a[1], X2: a[2], Y2: a[3]}
		})
	case "q":
		return pdp.repeat(letter, 4, func(a []float64) PathCommand {
			return RelativeQuadTo{DX1: a[0], DY1: a[1], DX2: a[2], DY2: a[3]}
		})
	case "T":
		return pdp.repeat(letter, 2, func(a []float64) PathCommand {
			return ReflectiveQuadTo{X: a[0], Y: a[1]}
		})
	case "t":
		return pdp.repeat(letter, 2, func(a []float64) PathCommand {
			return RelativeReflectiveQuadTo{DX: a[0], DY: a[1]}
		})
	case "A", "a":
		return pdp.parseArc(letter == "a")
	case "Z", "z":
		pdp.commands = append(pdp.commands, Close{})
		return nil
	}

	return fmt.Errorf("%w: path data: unknown command %q", ErrParse, letter)
}

// repeat reads argument groups of n numbers until the next token is not
// a number. At least one group is required.
func (pdp *pathDataParser) repeat(letter string, n int, build func([]float64) PathCommand) error {
	for first := true; first || pdp.hasNumber(); first = false {
		args := make([]float64, n)
		for k := range args {
			v, err := pdp.number()
			if err != nil {
				return fmt.Errorf("parsing %s: %w", letter, err)
			}
			args[k] = v
		}
		pdp.commands = append(pdp.commands, build(args))
	}
	return nil
}

func (pdp *pathDataParser) parseArc(relative bool) error {
	for first := true; first || pdp.hasNumber(); first = false {
		var (
			nums  [5]float64
			flags [2]bool
			err   error
		)
		for k := 0; k < 3; k++ {
			if nums[k], err = pdp.number(); err != nil {
				return fmt.Errorf("parsing arc: %w", err)
			}
		}
		for k := range flags {
			if flags[k], err = pdp.flag(); err != nil {
				return fmt.Errorf("parsing arc: %w", err)
			}
		}
		for k := 3; k < 5; k++ {
			if nums[k], err = pdp.number(); err != nil {
				return fmt.Errorf("parsing arc: %w", err)
			}
		}

		if relative {
			pdp.commands = append(pdp.commands, RelativeArcTo{
				RX: nums[0], RY: nums[1], Rotation: nums[2],
				LargeArc: flags[0], Sweep: flags[1],
				DX: nums[3], DY: nums[4],
			})
		} else {
			pdp.commands = append(pdp.commands, ArcTo{
				RX: nums[0], RY: nums[1], Rotation: nums[2],
				LargeArc: flags[0], Sweep: flags[1],
				X: nums[3], Y: nums[4],
			})
		}
	}
	return nil
}

func (pdp *pathDataParser) skipSeparators() {
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
}

func (pdp *pathDataParser) hasNumber() bool {
	if len(pdp.pending) > 0 {
		return true
	}
	pdp.skipSeparators()
	return pdp.lex.PeekItem().Type == gl.ItemNumber
}

func (pdp *pathDataParser) token() (string, error) {
	if len(pdp.pending) > 0 {
		s := pdp.pending[0]
		pdp.pending = pdp.pending[1:]
		return s, nil
	}
	pdp.skipSeparators()
	i := pdp.lex.NextItem()
	if i.Type != gl.ItemNumber {
		return "", fmt.Errorf("%w: expected number, got %q", ErrParse, i.Value)
	}
	return i.Value, nil
}

func (pdp *pathDataParser) number() (float64, error) {
	s, err := pdp.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return v, nil
}

// flag reads an arc flag. Flags may be written without separators
// ("a1 1 0 01 5 5"), so the lexer can hand over several of them, or a
// flag and the following number, as one token.
func (pdp *pathDataParser) flag() (bool, error) {
	s, err := pdp.token()
	if err != nil {
		return false, err
	}
	if rest := s[1:]; rest != "" {
		pdp.pending = append([]string{rest}, pdp.pending...)
	}
	switch s[0] {
	case '0':
		return false, nil
	case '1':
		return true, nil
	}
	return false, fmt.Errorf("%w: invalid arc flag %q", ErrParse, s)
}
