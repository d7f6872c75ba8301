package ops

import "github.com/jacksmith/slnstart/internal/sln"

// StartupWriter defines the persistence interface required by the dispatcher.
// The concrete implementation is sln.Writer, but this interface allows
// hosts and tests to substitute their own.
type StartupWriter interface {
	SetStartup(solutionPath, projectIdentifier string) (*sln.Update, error)
}
