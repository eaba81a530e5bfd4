package pathgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTransform(t *testing.T) {
	tests := []struct {
		in           string
		x, y         float64
		wantX, wantY float64
	}{
		{"translate(10 20)", 1, 2, 11, 22},
		{"translate(10)", 1, 2, 11, 2},
		{"scale(2)", 1, 2, 2, 4},
		{"scale(2, 3)", 1, 2, 2, 6},
		{"translate(10 0) scale(2)", 1, 2, 12, 4},
		{"scale(2) translate(10 0)", 1, 2, 22, 4},
		{"translate(1,1),scale(-1 1)", 3, 0, -2, 1},
		{"rotate(0) translate(5 5)", 0, 0, 5, 5},
		{"  ", 4, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tr, err := parseTransform(tt.in)
			require.NoError(t, err)
			x, y := tr.point(tt.x, tt.y)
			require.InDelta(t, tt.wantX, x, 1e-9)
			require.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, in := range []string{
		"rotate(45)",
		"skewX(10)",
		"matrix(1 0 0 1 0 0)",
		"translate(1 2 3)",
		"translate(1 2",
		"translate",
		"(1 2)",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parseTransform(in)
			require.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseNumberList(t *testing.T) {
	nums, err := parseNumberList("0 0,24.5 -3")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 24.5, -3}, nums)

	_, err = parseNumberList("0 0 a 1")
	require.Error(t, err)
}

func TestTransformDeltaIgnoresTranslation(t *testing.T) {
	tr := translation(10, 10).then(scaling(2, 3))
	dx, dy := tr.delta(1, 1)
	require.InDelta(t, 2.0, dx, 1e-9)
	require.InDelta(t, 3.0, dy, 1e-9)
}
