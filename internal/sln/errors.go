package sln

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrNotFound       = errors.New("solution not found")
	ErrParse          = errors.New("malformed solution")
	ErrUnknownProject = errors.New("unknown project")
	ErrWriteFailure   = errors.New("solution write failed")
)

// NotFoundError indicates the solution path does not exist or cannot be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solution %s not found: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("solution %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ParseError indicates the descriptor is not a well-formed solution file.
type ParseError struct {
	Path    string // empty when parsing bytes directly
	Line    int    // 1-based, 0 when not tied to a line
	Message string
}

func (e *ParseError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "solution"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", loc, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", loc, e.Message)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnknownProjectError indicates the identifier matches no project entry,
// or matches more than one.
type UnknownProjectError struct {
	Project   string
	Solution  string
	Ambiguous []string // names that matched case-insensitively
}

func (e *UnknownProjectError) Error() string {
	if len(e.Ambiguous) > 0 {
		return fmt.Sprintf("project %q is ambiguous in %s (matches %q)", e.Project, e.Solution, e.Ambiguous)
	}
	return fmt.Sprintf("project %q not found in %s", e.Project, e.Solution)
}

func (e *UnknownProjectError) Is(target error) bool { return target == ErrUnknownProject }

// WriteError indicates the updated descriptor could not be committed.
// The file on disk is unchanged when this error is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
func (e *WriteError) Is(target error) bool { return target == ErrWriteFailure }
