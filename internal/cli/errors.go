package cli

import (
	"errors"

	"github.com/jacksmith/slnstart/internal/ops"
	"github.com/jacksmith/slnstart/internal/sln"
)

// hints explain what the user can do about each class of failure.
var hints = []struct {
	target error
	hint   string
}{
	{sln.ErrNotFound, "check the solution path"},
	{sln.ErrParse, "the file is not a valid Visual Studio solution; it was not modified"},
	{sln.ErrUnknownProject, "use a project name or GUID listed by 'slnstart show'"},
	{sln.ErrWriteFailure, "the solution was left unchanged; check permissions and whether another program is editing it"},
	{ops.ErrNoActiveProject, "select a project in the snapshot's 'active' entry"},
}

// Explain returns a hint for err, or "" when there is none.
func Explain(err error) string {
	var dirty *ops.DirtyWorkspaceError
	if errors.As(err, &dirty) {
		return "save all files, then run the command again"
	}
	for _, h := range hints {
		if errors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output and adds
// a hint line when one is known.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()
	if hint := Explain(err); hint != "" {
		msg += "\nhint: " + hint
	}
	return msg
}
