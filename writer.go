package pathgen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
)

// Writer persists generated artifacts.
type Writer interface {
	Write(a *Artifact) error
}

// DirWriter writes artifacts below Root. The directory of an artifact is
// its package import path with the Module prefix removed, so a module
// root as Root places files where the Go tool expects them.
type DirWriter struct {
	Fs     afero.Fs
	Root   string
	Module string
}

// Dir returns the directory files of pkg are written to.
func (w DirWriter) Dir(pkg string) string {
	return packageDir(w.Root, w.Module, pkg)
}

// Write writes the artifact to a temporary file and renames it into
// place, so an interrupted write never leaves a truncated source file.
func (w DirWriter) Write(a *Artifact) error {
	dir := w.Dir(a.Package)
	if err := w.Fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(w.Fs, dir, "."+a.FileName+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(a.Source); err != nil {
		_ = tmp.Close()
		_ = w.Fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", a.FileName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = w.Fs.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", a.FileName, err)
	}
	if err := w.Fs.Rename(tmpName, filepath.Join(dir, a.FileName)); err != nil {
		_ = w.Fs.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", a.FileName, err)
	}
	return nil
}

func packageDir(root, module, pkg string) string {
	rel := pkg
	if module != "" {
		rel = strings.TrimPrefix(strings.TrimPrefix(pkg, module), "/")
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

// ErrStale reports generated files that differ from the files on disk.
var ErrStale = errors.New("generated file is out of date")

// CheckWriter writes nothing. It compares every artifact with the file a
// DirWriter with the same settings would write and records a diff for
// each one that is missing or different. A stale artifact is not a
// write failure; callers inspect Stale and Err after the batch. It is
// safe for concurrent use.
type CheckWriter struct {
	Fs     afero.Fs
	Root   string
	Module string

	mu    sync.Mutex
	diffs map[string]string
}

func (w *CheckWriter) Write(a *Artifact) error {
	file := filepath.Join(packageDir(w.Root, w.Module, a.Package), a.FileName)

	current, err := afero.ReadFile(w.Fs, file)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	if bytes.Equal(current, a.Source) {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.diffs == nil {
		w.diffs = make(map[string]string)
	}
	w.diffs[file] = lineDiff(string(current), string(a.Source))
	return nil
}

// Err returns an error wrapping ErrStale when any compared file is out
// of date.
func (w *CheckWriter) Err() error {
	if stale := w.Stale(); len(stale) > 0 {
		return fmt.Errorf("%d file(s): %w", len(stale), ErrStale)
	}
	return nil
}

// Stale returns the out of date files, sorted.
func (w *CheckWriter) Stale() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	files := make([]string, 0, len(w.diffs))
	for f := range w.diffs {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Diff returns the recorded difference for file, lines prefixed with
// "-" for the file on disk and "+" for the generated source.
func (w *CheckWriter) Diff(file string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.diffs[file]
}

func lineDiff(current, generated string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(current, generated)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}
