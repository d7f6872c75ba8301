// Package ops composes the workspace guard and the solution writer into the
// operation a host runs when the user asks to set the startup project.
package ops

import (
	"errors"

	"github.com/jacksmith/slnstart/internal/sln"
	"github.com/jacksmith/slnstart/internal/workspace"
)

// ErrNoActiveProject is returned when the host has no active project.
var ErrNoActiveProject = errors.New("no active project")

// DirtyWorkspaceError indicates the workspace has unsaved changes.
type DirtyWorkspaceError struct {
	Solution string
}

func (e *DirtyWorkspaceError) Error() string {
	return "Solution or projects are not saved. Please save all before running the command"
}

// Request carries everything the host knows at the moment of the call.
type Request struct {
	Snapshot workspace.Snapshot
	Active   *workspace.ActiveProject // nil when nothing is selected
	Writer   StartupWriter
	Observer workspace.Observer // optional, receives each guard check
}

// Result describes a successful SetStartup.
type Result struct {
	Solution string
	Project  string
	Previous string // empty when the solution had no startup project
	Changed  bool
}

// SetStartup refuses to proceed while anything in the snapshot is unsaved,
// then designates the active project as the startup project of the
// snapshot's solution.
//
// No lock is held between the guard and the write: the workspace or the
// file may change in between, and the writer only catches the latter when
// it happens during its own read-modify-write.
func SetStartup(req Request) (*Result, error) {
	var opts []workspace.GuardOption
	if req.Observer != nil {
		opts = append(opts, workspace.WithObserver(req.Observer))
	}
	if workspace.CheckDirty(req.Snapshot, opts...) {
		return nil, &DirtyWorkspaceError{Solution: req.Snapshot.Solution.Path}
	}

	if req.Active == nil {
		return nil, ErrNoActiveProject
	}

	update, err := req.Writer.SetStartup(req.Snapshot.Solution.Path, req.Active.Name)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Solution: update.Solution,
		Project:  update.Project.Name,
		Changed:  update.Changed,
	}
	if update.Previous != nil {
		result.Previous = update.Previous.Name
	}
	return result, nil
}

// Ensure sln.Writer satisfies StartupWriter.
var _ StartupWriter = (*sln.Writer)(nil)
