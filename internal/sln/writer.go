package sln

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jacksmith/slnstart/internal/storage"
	"go.uber.org/zap"
)

// Writer updates the startup project designation of solution files.
// A Writer holds no per-solution state; each call reads, rewrites and
// replaces the file on its own.
type Writer struct {
	fs       storage.FS
	strategy Strategy
	logger   *zap.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithStrategy selects the designation encoding.
func WithStrategy(s Strategy) WriterOption {
	return func(w *Writer) {
		w.strategy = s
	}
}

// WithFS replaces the file system, mainly for tests.
func WithFS(fs storage.FS) WriterOption {
	return func(w *Writer) {
		w.fs = fs
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) WriterOption {
	return func(w *Writer) {
		w.logger = l
	}
}

// NewWriter returns a Writer using the real file system and
// StrategyFirstProject unless overridden.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		fs:       storage.NewOSFS(),
		strategy: StrategyFirstProject,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Strategy returns the strategy the writer applies.
func (w *Writer) Strategy() Strategy {
	return w.strategy
}

// Update describes the outcome of a successful SetStartup call.
type Update struct {
	Solution string   // resolved solution path
	Project  *Project // the project now designated
	Previous *Project // the project designated before, may be nil
	Changed  bool     // false when the file already designated Project
}

// SetStartupProject designates projectIdentifier as the startup project of
// the solution at solutionPath. See SetStartup.
func (w *Writer) SetStartupProject(solutionPath, projectIdentifier string) error {
	_, err := w.SetStartup(solutionPath, projectIdentifier)
	return err
}

// SetStartup designates projectIdentifier as the startup project of the
// solution at solutionPath and reports what happened.
//
// Errors match ErrNotFound, ErrParse, ErrUnknownProject or ErrWriteFailure.
// The file on disk is only touched on success, and only when the
// designation actually changes.
func (w *Writer) SetStartup(solutionPath, projectIdentifier string) (*Update, error) {
	path, sol, original, err := w.load(solutionPath)
	if err != nil {
		return nil, err
	}

	target, err := sol.FindProject(projectIdentifier)
	if err != nil {
		var upe *UnknownProjectError
		if errors.As(err, &upe) {
			upe.Solution = path
		}
		return nil, err
	}

	update := &Update{
		Solution: path,
		Project:  target,
		Previous: sol.StartupProject(w.strategy),
	}

	changed, err := sol.SetStartup(target, w.strategy)
	if err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	if !changed {
		w.logger.Debug("startup project already set",
			zap.String("solution", path),
			zap.String("project", target.Name),
			zap.String("strategy", string(w.strategy)))
		return update, nil
	}

	if err := w.commit(path, original, sol.Bytes()); err != nil {
		return nil, err
	}
	update.Changed = true

	w.logger.Debug("startup project updated",
		zap.String("solution", path),
		zap.String("project", target.Name),
		zap.String("guid", target.GUIDString()),
		zap.String("strategy", string(w.strategy)))

	return update, nil
}

// Inspect parses the solution at path without modifying it.
func (w *Writer) Inspect(solutionPath string) (*Solution, error) {
	_, sol, _, err := w.load(solutionPath)
	return sol, err
}

// load resolves, reads and parses a solution file.
func (w *Writer) load(solutionPath string) (string, *Solution, []byte, error) {
	path, err := w.fs.Resolve(solutionPath)
	if err != nil {
		return "", nil, nil, &NotFoundError{Path: solutionPath, Err: err}
	}

	info, err := w.fs.Stat(path)
	if err != nil {
		return "", nil, nil, &NotFoundError{Path: solutionPath, Err: err}
	}
	if info.IsDir() {
		return "", nil, nil, &NotFoundError{Path: solutionPath, Err: fmt.Errorf("is a directory")}
	}

	data, err := w.fs.ReadFile(path)
	if err != nil {
		return "", nil, nil, &NotFoundError{Path: solutionPath, Err: err}
	}

	sol, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = solutionPath
		}
		return "", nil, nil, err
	}

	return path, sol, data, nil
}

// commit replaces the file at path with data, provided its content is
// still what was read at the start of the update.
func (w *Writer) commit(path string, original, data []byte) error {
	info, err := w.fs.Stat(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	// Rename only needs write access to the directory, so a read-only
	// file would otherwise be replaced.
	if info.Mode().Perm()&0o222 == 0 {
		return &WriteError{Path: path, Err: errors.New("solution is read-only")}
	}

	current, err := w.fs.ReadFile(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if !bytes.Equal(current, original) {
		return &WriteError{Path: path, Err: errors.New("solution changed on disk during update")}
	}

	if err := w.fs.AtomicWrite(path, data, info.Mode().Perm()); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// SetStartupProject updates the solution at solutionPath with a default
// Writer.
func SetStartupProject(solutionPath, projectIdentifier string) error {
	return NewWriter().SetStartupProject(solutionPath, projectIdentifier)
}
