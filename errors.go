package pathgen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotImplemented reports a path command the translator cannot
	// reproduce faithfully.
	ErrNotImplemented = errors.New("not implemented")
	// ErrParse reports malformed icon source.
	ErrParse = errors.New("parse error")
	// ErrNameConflict reports two icons that would generate the same file.
	ErrNameConflict = errors.New("name conflict")
	// ErrInvalidScope reports a destination scope that cannot hold
	// generated code.
	ErrInvalidScope = errors.New("invalid scope")
	// ErrOutOfRange reports a number the float32 runtime cannot hold.
	ErrOutOfRange = errors.New("out of float32 range")
)

// CommandError is returned by Translate for unsupported commands.
type CommandError struct {
	Command PathCommand
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", commandName(e.Command), ErrNotImplemented)
}

func (e *CommandError) Unwrap() error { return ErrNotImplemented }

// Stage names the pipeline step an icon failed in.
type Stage string

const (
	StageName     Stage = "name"
	StageParse    Stage = "parse"
	StageFlatten  Stage = "flatten"
	StageGenerate Stage = "generate"
	StageWrite    Stage = "write"
)

// IconError is the failure of a single icon.
type IconError struct {
	Icon  string
	Stage Stage
	Err   error
}

func (e *IconError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Icon, e.Stage, e.Err)
}

func (e *IconError) Unwrap() error { return e.Err }

// BatchError collects the icons that failed during a batch, in input
// order.
type BatchError struct {
	Failures []*IconError
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%d icon(s) failed:\n%s", len(e.Failures), strings.Join(msgs, "\n"))
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// Failed reports whether the named icon is among the failures.
func (e *BatchError) Failed(icon string) bool {
	for _, f := range e.Failures {
		if f.Icon == icon {
			return true
		}
	}
	return false
}
