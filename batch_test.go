package pathgen

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// memWriter records artifacts by file name.
type memWriter struct {
	mu    sync.Mutex
	files map[string][]byte
	order []string
	fail  map[string]error
}

func newMemWriter() *memWriter {
	return &memWriter{files: map[string][]byte{}, fail: map[string]error{}}
}

func (w *memWriter) Write(a *Artifact) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.fail[a.FileName]; err != nil {
		return err
	}
	w.files[a.FileName] = a.Source
	w.order = append(w.order, a.FileName)
	return nil
}

func vectors(m map[string]*Vector) Parser {
	return ParserFunc(func(icon Icon) (*Vector, error) {
		v, ok := m[icon.Name]
		if !ok {
			return nil, fmt.Errorf("%w: no source for %s", ErrParse, icon.Name)
		}
		return v, nil
	})
}

func menuVector() *Vector {
	return &Vector{Nodes: []VectorNode{
		&Path{Commands: []PathCommand{MoveTo{2, 4}, LineTo{20, 4}, Close{}}},
	}}
}

func arcVector() *Vector {
	return &Vector{Nodes: []VectorNode{
		&Group{Children: []VectorNode{
			&Path{Commands: []PathCommand{MoveTo{0, 0}}},
			&Group{Children: []VectorNode{
				&Path{Commands: []PathCommand{MoveTo{0, 0}, ArcTo{RX: 4, RY: 4, X: 8, Y: 8}}},
			}},
		}},
	}}
}

func TestBatchMenu(t *testing.T) {
	w := newMemWriter()
	b := &Batch{Parser: vectors(map[string]*Vector{"Menu": menuVector()}), Writer: w}

	ids, err := b.Generate([]Icon{{Name: "Menu"}}, filled, func(string) bool { return true })
	require.NoError(t, err)
	require.Len(t, ids, 1)
	require.Equal(t, "Menu", ids[0].Name)
	require.Equal(t, "example.com/icons/filled.Filled.Menu", ids[0].String())

	require.Equal(t, []string{"menu.gen.go", "filled_group.gen.go"}, w.order)
	require.Contains(t, string(w.files["menu.gen.go"]), "MoveTo(2.0, 4.0).")
	require.Contains(t, string(w.files["filled_group.gen.go"]), `"Menu",`)
}

func TestBatchReportsUnsupportedCommand(t *testing.T) {
	w := newMemWriter()
	b := &Batch{
		Parser: vectors(map[string]*Vector{"Menu": menuVector(), "Arc": arcVector()}),
		Writer: w,
	}

	ids, err := b.Generate([]Icon{{Name: "Arc"}, {Name: "Menu"}}, filled, MatchAll)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotImplemented)

	var berr *BatchError
	require.True(t, errors.As(err, &berr))
	require.True(t, berr.Failed("Arc"))
	require.False(t, berr.Failed("Menu"))
	require.Len(t, berr.Failures, 1)
	require.Equal(t, StageFlatten, berr.Failures[0].Stage)

	require.Equal(t, []string{"Menu"}, names(ids))
	require.NotContains(t, w.files, "arc.gen.go", "nothing is written for a failed icon")
	require.NotContains(t, string(w.files["filled_group.gen.go"]), `"Arc"`)
}

func TestBatchFiltersByName(t *testing.T) {
	parsed := map[string]int{}
	var mu sync.Mutex
	parser := ParserFunc(func(icon Icon) (*Vector, error) {
		mu.Lock()
		parsed[icon.Name]++
		mu.Unlock()
		return menuVector(), nil
	})

	pred, err := NameFilter([]string{"A*", "Menu"}, []string{"AccountOff"})
	require.NoError(t, err)

	b := &Batch{Parser: parser, Writer: newMemWriter()}
	icons := []Icon{{Name: "Menu"}, {Name: "Close"}, {Name: "AccountOff"}, {Name: "Add"}, {Name: "Account"}}
	ids, err := b.Generate(icons, filled, pred)
	require.NoError(t, err)
	require.Equal(t, []string{"Menu", "Add", "Account"}, names(ids))
	require.Equal(t, map[string]int{"Menu": 1, "Add": 1, "Account": 1}, parsed, "filtered icons are never parsed")
}

func TestBatchConcurrentKeepsInputOrder(t *testing.T) {
	sources := map[string]*Vector{}
	var icons []Icon
	var want []string
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("Icon%02d", i)
		icons = append(icons, Icon{Name: name})
		if i%7 == 3 {
			sources[name] = arcVector()
			continue
		}
		sources[name] = menuVector()
		want = append(want, name)
	}

	b := &Batch{Parser: vectors(sources), Writer: newMemWriter(), Workers: 8}
	ids, err := b.Generate(icons, filled, MatchAll)

	var berr *BatchError
	require.True(t, errors.As(err, &berr))
	require.Len(t, berr.Failures, 40-len(want))
	for i := 1; i < len(berr.Failures); i++ {
		require.Less(t, berr.Failures[i-1].Icon, berr.Failures[i].Icon, "failures are reported in input order")
	}
	require.Equal(t, want, names(ids))
}

func TestBatchParseAndWriteFailures(t *testing.T) {
	w := newMemWriter()
	w.fail["close.gen.go"] = errors.New("disk full")
	b := &Batch{
		Parser: vectors(map[string]*Vector{"Menu": menuVector(), "Close": menuVector()}),
		Writer: w,
	}

	ids, err := b.Generate([]Icon{{Name: "Missing"}, {Name: "Close"}, {Name: "Menu"}}, filled, MatchAll)
	require.Equal(t, []string{"Menu"}, names(ids))

	var berr *BatchError
	require.True(t, errors.As(err, &berr))
	require.Len(t, berr.Failures, 2)
	require.Equal(t, "Missing", berr.Failures[0].Icon)
	require.Equal(t, StageParse, berr.Failures[0].Stage)
	require.ErrorIs(t, berr.Failures[0], ErrParse)
	require.Equal(t, "Close", berr.Failures[1].Icon)
	require.Equal(t, StageWrite, berr.Failures[1].Stage)
	require.Contains(t, err.Error(), "disk full")
}

func TestBatchNameConflicts(t *testing.T) {
	w := newMemWriter()
	b := &Batch{
		Parser: vectors(map[string]*Vector{"Menu": menuVector(), "Names": menuVector(), "FilledGroup": menuVector()}),
		Writer: w,
	}

	icons := []Icon{{Name: "Menu"}, {Name: "Menu", Source: "other.svg"}, {Name: "Names"}, {Name: "FilledGroup"}}
	ids, err := b.Generate(icons, filled, MatchAll)
	require.Equal(t, []string{"Menu"}, names(ids))
	require.ErrorIs(t, err, ErrNameConflict)

	var berr *BatchError
	require.True(t, errors.As(err, &berr))
	require.Len(t, berr.Failures, 3)
	for _, f := range berr.Failures {
		require.Equal(t, StageName, f.Stage)
	}
}

func TestBatchCacheVariableConflict(t *testing.T) {
	w := newMemWriter()
	b := &Batch{
		Parser: vectors(map[string]*Vector{"HTTPServer": menuVector(), "Httpserver": menuVector()}),
		Writer: w,
	}

	ids, err := b.Generate([]Icon{{Name: "HTTPServer"}, {Name: "Httpserver"}}, filled, MatchAll)
	require.ErrorIs(t, err, ErrNameConflict)
	require.Equal(t, []string{"HTTPServer"}, names(ids))

	var berr *BatchError
	require.True(t, errors.As(err, &berr))
	require.True(t, berr.Failed("Httpserver"))
	require.Equal(t, StageName, berr.Failures[0].Stage)
	require.Contains(t, w.files, "http_server.gen.go")
	require.NotContains(t, w.files, "httpserver.gen.go")
}

func TestBatchIconMode(t *testing.T) {
	w := newMemWriter()
	v := menuVector()
	v.Width, v.Height, v.ViewportWidth, v.ViewportHeight = 24, 24, 24, 24
	b := &Batch{Parser: vectors(map[string]*Vector{"Menu": v}), Writer: w, Mode: ModeIcon}

	_, err := b.Generate([]Icon{{Name: "Menu"}}, filled, nil)
	require.NoError(t, err)
	require.Contains(t, string(w.files["menu.gen.go"]), "func (Filled) Menu() *draw.Icon {")
}

func TestBatchInvalidScope(t *testing.T) {
	b := &Batch{Parser: vectors(nil), Writer: newMemWriter()}
	_, err := b.Generate([]Icon{{Name: "Menu"}}, Scope{}, MatchAll)
	require.ErrorIs(t, err, ErrInvalidScope)
}

func TestBatchLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	b := &Batch{
		Parser: vectors(map[string]*Vector{"Arc": arcVector()}),
		Writer: newMemWriter(),
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	_, err := b.Generate([]Icon{{Name: "Arc"}}, filled, MatchAll)
	require.Error(t, err)
	require.Contains(t, buf.String(), "icon failed")
	require.Contains(t, buf.String(), "icon=Arc")
	require.Contains(t, buf.String(), "stage=flatten")
}

func TestGenerateBatchEndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/svg/menu.svg", []byte(`<svg viewBox="0 0 24 24"><path d="M2 4 L20 4 Z"/></svg>`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/svg/circle.svg", []byte(`<svg viewBox="0 0 24 24"><path d="M2 12 A10 10 0 0 0 22 12 Z"/></svg>`), 0o644))

	icons, err := DiscoverIcons(fs, "/svg", "")
	require.NoError(t, err)

	ids, err := GenerateBatch(icons, filled, MatchAll, SVGParser{Fs: fs}, DirWriter{Fs: fs, Root: "/mod", Module: "example.com/icons"})
	require.ErrorIs(t, err, ErrNotImplemented)
	require.Equal(t, []string{"Menu"}, names(ids))

	src, err := afero.ReadFile(fs, "/mod/filled/menu.gen.go")
	require.NoError(t, err)
	require.True(t, strings.Contains(string(src), "LineTo(20.0, 4.0)."))

	exists, err := afero.Exists(fs, "/mod/filled/circle.gen.go")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestNameFilterRejectsBadPattern(t *testing.T) {
	_, err := NameFilter([]string{"["}, nil)
	require.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("icon")
	require.NoError(t, err)
	require.Equal(t, ModeIcon, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModePaths, m)

	_, err = ParseMode("kotlin")
	require.Error(t, err)
}

func names(ids []Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Name
	}
	return out
}
