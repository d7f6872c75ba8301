// Package workspace defines the point-in-time view of an editor workspace
// and the guard that decides whether it is safe to touch files on disk.
package workspace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Solution is the solution entry of a snapshot.
type Solution struct {
	Path  string `yaml:"path"`
	Dirty bool   `yaml:"dirty,omitempty"`
}

// Project is one project loaded in the workspace.
type Project struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	Dirty bool   `yaml:"dirty,omitempty"`
}

// Document is one open document. Saved is false when the editor buffer
// differs from the file.
type Document struct {
	Path  string `yaml:"path"`
	Saved bool   `yaml:"saved"`
}

// ActiveProject identifies the project that should become the startup project.
type ActiveProject struct {
	Name     string `yaml:"name"`
	FullPath string `yaml:"full_path,omitempty"`
}

// Snapshot is an immutable view of the workspace taken by the host.
// Nothing in this module modifies a Snapshot after it is built.
type Snapshot struct {
	Solution  Solution   `yaml:"solution"`
	Projects  []Project  `yaml:"projects,omitempty"`
	Documents []Document `yaml:"documents,omitempty"`
}

// SnapshotFile is the on-disk form a host uses to hand over a snapshot,
// optionally together with the active project.
type SnapshotFile struct {
	Snapshot `yaml:",inline"`
	Active   *ActiveProject `yaml:"active,omitempty"`
}

// LoadSnapshot reads a snapshot file from the given path.
func LoadSnapshot(path string) (*SnapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	var sf SnapshotFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}
	if sf.Solution.Path == "" {
		return nil, fmt.Errorf("snapshot file %s: solution.path is required", path)
	}
	if sf.Active != nil && sf.Active.Name == "" {
		return nil, fmt.Errorf("snapshot file %s: active.name is required when active is set", path)
	}

	return &sf, nil
}
