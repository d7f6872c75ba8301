package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSnapshot(t *testing.T) {
	t.Run("full snapshot with active project", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "snapshot.yaml")
		content := `solution:
  path: /src/App.sln
projects:
  - name: App
    path: /src/App/App.csproj
  - name: Lib
    path: /src/Lib/Lib.csproj
    dirty: true
documents:
  - path: /src/App/Program.cs
    saved: true
  - path: /src/Lib/Util.cs
    saved: false
active:
  name: Lib
  full_path: /src/Lib/Lib.csproj
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		sf, err := LoadSnapshot(path)
		require.NoError(t, err)

		assert.Equal(t, "/src/App.sln", sf.Solution.Path)
		assert.False(t, sf.Solution.Dirty)
		require.Len(t, sf.Projects, 2)
		assert.True(t, sf.Projects[1].Dirty)
		require.Len(t, sf.Documents, 2)
		assert.True(t, sf.Documents[0].Saved)
		assert.False(t, sf.Documents[1].Saved)
		require.NotNil(t, sf.Active)
		assert.Equal(t, "Lib", sf.Active.Name)
		assert.Equal(t, "/src/Lib/Lib.csproj", sf.Active.FullPath)
		assert.True(t, CheckDirty(sf.Snapshot))
	})

	t.Run("minimal snapshot", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "snapshot.yaml")
		require.NoError(t, os.WriteFile(path, []byte("solution:\n  path: App.sln\n"), 0644))

		sf, err := LoadSnapshot(path)
		require.NoError(t, err)
		assert.Nil(t, sf.Active)
		assert.Empty(t, sf.Projects)
		assert.False(t, CheckDirty(sf.Snapshot))
	})

	t.Run("missing solution path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "snapshot.yaml")
		require.NoError(t, os.WriteFile(path, []byte("projects: []\n"), 0644))

		_, err := LoadSnapshot(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "solution.path is required")
	})

	t.Run("active without name", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "snapshot.yaml")
		content := "solution:\n  path: App.sln\nactive:\n  full_path: /x.csproj\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := LoadSnapshot(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "active.name is required")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "snapshot.yaml")
		require.NoError(t, os.WriteFile(path, []byte("solution: [unclosed\n"), 0644))

		_, err := LoadSnapshot(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse snapshot file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read snapshot file")
	})
}
