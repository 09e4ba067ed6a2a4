package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDetectRequirements(t *testing.T) {
	dir := t.TempDir()
	if _, ok := DetectRequirements(dir); ok {
		t.Fatalf("expected no manifest in empty dir")
	}

	want := write(t, dir, Requirements, "requests\n")
	got, ok := DetectRequirements(dir)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestDetectRequirementsIgnoresDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, Requirements), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, ok := DetectRequirements(dir); ok {
		t.Fatalf("a directory named requirements.txt must not count as a manifest")
	}
}

func TestParseRequirements(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, Requirements, `# web stack
requests==2.31.0
flask>=2.0
pandas

-r dev-requirements.txt
numpy~=1.26  # pinned loosely
`)

	reqs, err := ParseRequirements(path)
	require.NoError(t, err)
	require.Equal(t, []Requirement{
		{Name: "requests", Constraint: "==", Version: "2.31.0"},
		{Name: "flask", Constraint: ">=", Version: "2.0"},
		{Name: "pandas"},
		{Name: "numpy", Constraint: "~=", Version: "1.26"},
	}, reqs)
}

func TestSyncTargetPrefersLockfile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, PyProject, "[project]\nname = \"demo\"\n")
	lock := write(t, dir, UVLock, "version = 1\n")

	got, ok := SyncTarget(dir)
	require.True(t, ok)
	require.Equal(t, lock, got)
}

func TestSyncTargetPyprojectNeedsProjectTable(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, PyProject, "[tool.black]\nline-length = 100\n")
	if _, ok := SyncTarget(dir); ok {
		t.Fatalf("pyproject without [project] must not be sync material")
	}

	write(t, dir, PyProject, "[project]\nname = \"demo\"\ndependencies = [\"requests\"]\n")
	got, ok := SyncTarget(dir)
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, PyProject), got)
}

func TestHasProjectTableInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, PyProject, "not toml [[[")
	_, err := HasProjectTable(path)
	require.Error(t, err)
}
