package workspace

// Kind names the type of entity a Check refers to.
type Kind string

const (
	KindSolution Kind = "solution"
	KindProject  Kind = "project"
	KindDocument Kind = "document"
)

// Check is the outcome of examining a single workspace entity.
type Check struct {
	Kind  Kind
	Path  string
	Clean bool
}

// Status returns the human-readable save state.
func (c Check) Status() string {
	if c.Clean {
		return "Saved"
	}
	return "Not Saved"
}

// String formats the check as "<path> : <status>".
func (c Check) String() string {
	return c.Path + " : " + c.Status()
}

// Observer receives every check in evaluation order.
type Observer func(Check)

type guardOptions struct {
	observer Observer
}

// GuardOption configures CheckDirty.
type GuardOption func(*guardOptions)

// WithObserver reports each examined entity to fn.
func WithObserver(fn Observer) GuardOption {
	return func(o *guardOptions) {
		o.observer = fn
	}
}

// CheckDirty reports whether anything in the snapshot has unsaved changes.
// The solution is examined first, then projects and documents in snapshot
// order; evaluation stops at the first dirty entity.
func CheckDirty(s Snapshot, opts ...GuardOption) bool {
	var o guardOptions
	for _, opt := range opts {
		opt(&o)
	}

	dirty := false
	walk(s, func(c Check) bool {
		if o.observer != nil {
			o.observer(c)
		}
		if !c.Clean {
			dirty = true
			return false
		}
		return true
	})
	return dirty
}

// Report examines every entity without stopping at the first dirty one.
func Report(s Snapshot) []Check {
	checks := make([]Check, 0, 1+len(s.Projects)+len(s.Documents))
	walk(s, func(c Check) bool {
		checks = append(checks, c)
		return true
	})
	return checks
}

// IsDirty reports whether any check in the list is not clean.
func IsDirty(checks []Check) bool {
	for _, c := range checks {
		if !c.Clean {
			return true
		}
	}
	return false
}

// walk visits entities in guard order until visit returns false.
func walk(s Snapshot, visit func(Check) bool) {
	if !visit(Check{Kind: KindSolution, Path: s.Solution.Path, Clean: !s.Solution.Dirty}) {
		return
	}
	for _, p := range s.Projects {
		if !visit(Check{Kind: KindProject, Path: p.Path, Clean: !p.Dirty}) {
			return
		}
	}
	for _, d := range s.Documents {
		if !visit(Check{Kind: KindDocument, Path: d.Path, Clean: d.Saved}) {
			return
		}
	}
}
