package pathgen

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestDirWriterPlacesFilesByPackage(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := DirWriter{Fs: fs, Root: "/out", Module: "example.com/icons"}

	a := &Artifact{Package: "example.com/icons/filled", FileName: "menu.gen.go", Source: []byte("package filled\n")}
	require.NoError(t, w.Write(a))

	got, err := afero.ReadFile(fs, "/out/filled/menu.gen.go")
	require.NoError(t, err)
	require.Equal(t, a.Source, got)

	infos, err := afero.ReadDir(fs, "/out/filled")
	require.NoError(t, err)
	require.Len(t, infos, 1, "no temp files are left behind")
}

func TestDirWriterWithoutModule(t *testing.T) {
	w := DirWriter{Fs: afero.NewMemMapFs(), Root: "/out"}
	require.Equal(t, filepath.Join("/out", "example.com", "icons", "filled"), w.Dir("example.com/icons/filled"))
}

func TestDirWriterOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := DirWriter{Fs: fs, Root: "/out", Module: "example.com/icons"}
	a := &Artifact{Package: "example.com/icons/filled", FileName: "menu.gen.go", Source: []byte("old\n")}
	require.NoError(t, w.Write(a))

	a.Source = []byte("new\n")
	require.NoError(t, w.Write(a))

	got, err := afero.ReadFile(fs, "/out/filled/menu.gen.go")
	require.NoError(t, err)
	require.Equal(t, "new\n", string(got))
}

func TestDirWriterReadOnly(t *testing.T) {
	w := DirWriter{Fs: afero.NewReadOnlyFs(afero.NewMemMapFs()), Root: "/out"}
	err := w.Write(&Artifact{Package: "filled", FileName: "menu.gen.go", Source: []byte("x")})
	require.Error(t, err)
}

func TestCheckWriter(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/filled/menu.gen.go", []byte("package filled\n\nvar a = 1\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/out/filled/close.gen.go", []byte("package filled\n"), 0o644))

	w := &CheckWriter{Fs: fs, Root: "/out", Module: "example.com/icons"}

	err := w.Write(&Artifact{Package: "example.com/icons/filled", FileName: "close.gen.go", Source: []byte("package filled\n")})
	require.NoError(t, err)

	require.NoError(t, w.Err())

	err = w.Write(&Artifact{Package: "example.com/icons/filled", FileName: "menu.gen.go", Source: []byte("package filled\n\nvar a = 2\n")})
	require.NoError(t, err, "a stale file is recorded, not failed")

	err = w.Write(&Artifact{Package: "example.com/icons/filled", FileName: "new.gen.go", Source: []byte("package filled\n")})
	require.NoError(t, err)
	require.ErrorIs(t, w.Err(), ErrStale)

	menu := filepath.Join("/out", "filled", "menu.gen.go")
	require.Equal(t, []string{menu, filepath.Join("/out", "filled", "new.gen.go")}, w.Stale())
	require.Equal(t, "-var a = 1\n+var a = 2\n", w.Diff(menu))

	ok, err := afero.Exists(fs, "/out/filled/new.gen.go")
	require.NoError(t, err)
	require.False(t, ok, "check mode writes nothing")
}

func TestCheckWriterReportsOnlyEditedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := DirWriter{Fs: fs, Root: "/mod", Module: "example.com/icons"}
	parser := ParserFunc(func(Icon) (*Vector, error) {
		return &Vector{Nodes: []VectorNode{&Path{Commands: []PathCommand{MoveTo{2, 4}, LineTo{20, 4}, Close{}}}}}, nil
	})
	icons := []Icon{{Name: "Menu"}, {Name: "Close"}}

	_, err := GenerateBatch(icons, filled, MatchAll, parser, out)
	require.NoError(t, err)

	menu := filepath.Join("/mod", "filled", "menu.gen.go")
	require.NoError(t, afero.WriteFile(fs, menu, []byte("package filled\n"), 0o644))

	check := &CheckWriter{Fs: fs, Root: "/mod", Module: "example.com/icons"}
	ids, err := GenerateBatch(icons, filled, MatchAll, parser, check)
	require.NoError(t, err)
	require.Len(t, ids, 2, "stale icons still count as generated")

	require.Equal(t, []string{menu}, check.Stale(), "the group file is unchanged")
	require.ErrorIs(t, check.Err(), ErrStale)
	require.Contains(t, check.Diff(menu), "+var menuPaths")
}
