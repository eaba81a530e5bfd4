package pathgen

import (
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Mode selects the accessor generated for each icon.
type Mode int

const (
	// ModePaths generates an accessor returning []*draw.Path.
	ModePaths Mode = iota
	// ModeIcon generates an accessor returning a *draw.Icon.
	ModeIcon
)

func (m Mode) String() string {
	switch m {
	case ModePaths:
		return "paths"
	case ModeIcon:
		return "icon"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "paths" or "icon".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "paths":
		return ModePaths, nil
	case "icon":
		return ModeIcon, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// NamePredicate selects the icons a batch generates, by icon name.
type NamePredicate func(name string) bool

// MatchAll selects every icon.
func MatchAll(string) bool { return true }

// NameFilter returns a predicate accepting names that match one of the
// include patterns (any name when there are none) and none of the
// exclude patterns. Patterns use path.Match syntax.
func NameFilter(include, exclude []string) (NamePredicate, error) {
	for _, p := range append(append([]string{}, include...), exclude...) {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("bad name pattern %q: %w", p, err)
		}
	}

	matchAny := func(patterns []string, name string) bool {
		for _, p := range patterns {
			if ok, _ := path.Match(p, name); ok {
				return true
			}
		}
		return false
	}

	return func(name string) bool {
		if len(include) > 0 && !matchAny(include, name) {
			return false
		}
		return !matchAny(exclude, name)
	}, nil
}

// reservedNames are methods of the generated group type.
var reservedNames = map[string]bool{"Names": true}

// Batch runs the generation pipeline over a collection of icons.
//
// A failing icon does not stop the batch: it is left out of the
// returned identifiers and reported in a *BatchError, and nothing is
// written for it. Every artifact is generated in memory before it is
// handed to the Writer.
type Batch struct {
	Parser Parser
	Writer Writer
	Mode   Mode
	// Workers is the number of icons processed concurrently. Values
	// below 2 process icons one at a time.
	Workers int
	Logger  *slog.Logger
}

// Generate generates and writes an accessor for every icon whose name
// satisfies pred, then writes the group file listing them. It returns
// the identifiers of the generated accessors in input order. The error
// is a *BatchError when some icons failed, or a scope error when
// nothing could be generated at all.
func (b *Batch) Generate(icons []Icon, scope Scope, pred NamePredicate) ([]Identifier, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if pred == nil {
		pred = MatchAll
	}
	logger := b.logger()

	var selected []Icon
	for _, icon := range icons {
		if pred(icon.Name) {
			selected = append(selected, icon)
		}
	}
	logger.Info("generating icons", "selected", len(selected), "total", len(icons), "scope", scope.Package+"."+scope.Group, "mode", b.Mode.String())

	failures := reserveFiles(selected, scope)
	ids := make([]Identifier, len(selected))
	run := func(i int) {
		if failures[i] != nil {
			return
		}
		ids[i], failures[i] = b.generateOne(selected[i], scope)
	}

	if b.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(b.Workers)
		for i := range selected {
			i := i
			g.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range selected {
			run(i)
		}
	}

	var (
		out    []Identifier
		report []*IconError
	)
	for i, icon := range selected {
		if f := failures[i]; f != nil {
			logger.Warn("icon failed", "icon", icon.Name, "stage", string(f.Stage), "err", f.Err)
			report = append(report, f)
			continue
		}
		logger.Debug("icon generated", "icon", icon.Name, "id", ids[i].String())
		out = append(out, ids[i])
	}

	if f := b.writeGroup(scope, out); f != nil {
		logger.Warn("group file failed", "file", f.Icon, "stage", string(f.Stage), "err", f.Err)
		report = append(report, f)
	}

	logger.Info("generation finished", "generated", len(out), "failed", len(report))
	if len(report) > 0 {
		return out, &BatchError{Failures: report}
	}
	return out, nil
}

// reserveFiles fails icons whose generated file, cache variable or
// method would clash with an earlier icon or with the group file.
func reserveFiles(icons []Icon, scope Scope) []*IconError {
	failures := make([]*IconError, len(icons))
	owners := map[string]string{GroupFileName(scope): "the group file"}
	cells := map[string]string{}
	conflict := func(icon Icon, format string, args ...any) *IconError {
		return &IconError{Icon: icon.Name, Stage: StageName,
			Err: fmt.Errorf("%w: "+format, append([]any{ErrNameConflict}, args...)...)}
	}

	for i, icon := range icons {
		if reservedNames[icon.Name] {
			failures[i] = conflict(icon, "%s is a method of the group type", icon.Name)
			continue
		}
		file := FileName(icon.Name)
		if owner, ok := owners[file]; ok {
			failures[i] = conflict(icon, "%s is already generated for %s", file, owner)
			continue
		}
		cell := cellStem(icon.Name)
		if owner, ok := cells[cell]; ok {
			failures[i] = conflict(icon, "cache variable %s is already declared for %s", cell, owner)
			continue
		}
		owners[file] = icon.Name
		cells[cell] = icon.Name
	}
	return failures
}

func (b *Batch) generateOne(icon Icon, scope Scope) (Identifier, *IconError) {
	fail := func(stage Stage, err error) (Identifier, *IconError) {
		return Identifier{}, &IconError{Icon: icon.Name, Stage: stage, Err: err}
	}

	v, err := b.Parser.Parse(icon)
	if err != nil {
		return fail(StageParse, err)
	}

	blocks, err := Flatten(v)
	if err != nil {
		return fail(StageFlatten, err)
	}

	var a *Artifact
	switch b.Mode {
	case ModeIcon:
		a, err = GenerateIcon(icon.Name, v, blocks, scope)
	default:
		a, err = Generate(icon.Name, blocks, scope)
	}
	if err != nil {
		return fail(StageGenerate, err)
	}

	if err := b.Writer.Write(a); err != nil {
		return fail(StageWrite, err)
	}
	return a.Identifier, nil
}

func (b *Batch) writeGroup(scope Scope, ids []Identifier) *IconError {
	file := GroupFileName(scope)
	a, err := GenerateGroup(scope, ids)
	if err != nil {
		return &IconError{Icon: file, Stage: StageGenerate, Err: err}
	}
	if err := b.Writer.Write(a); err != nil {
		return &IconError{Icon: file, Stage: StageWrite, Err: err}
	}
	return nil
}

func (b *Batch) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// GenerateBatch runs a sequential Batch with the given collaborators.
func GenerateBatch(icons []Icon, scope Scope, pred NamePredicate, parser Parser, writer Writer) ([]Identifier, error) {
	b := &Batch{Parser: parser, Writer: writer}
	return b.Generate(icons, scope, pred)
}
