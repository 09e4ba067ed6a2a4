package manifest

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Well-known manifest file names checked in a project root.
const (
	Requirements = "requirements.txt"
	PyProject    = "pyproject.toml"
	UVLock       = "uv.lock"
)

// Requirement is one entry of a requirements-style manifest.
type Requirement struct {
	Name       string
	Constraint string // e.g. "==", ">=", empty when unpinned
	Version    string
}

// DetectRequirements reports whether projectDir contains requirements.txt as a
// regular file, returning its full path when it does.
func DetectRequirements(projectDir string) (string, bool) {
	path := filepath.Join(projectDir, Requirements)
	if isRegular(path) {
		return path, true
	}
	return "", false
}

// SyncTarget returns the file that makes projectDir eligible for a
// lockfile-aware sync: uv.lock if present, otherwise a pyproject.toml carrying
// a [project] table.
func SyncTarget(projectDir string) (string, bool) {
	lock := filepath.Join(projectDir, UVLock)
	if isRegular(lock) {
		return lock, true
	}
	py := filepath.Join(projectDir, PyProject)
	if isRegular(py) {
		if ok, err := HasProjectTable(py); err == nil && ok {
			return py, true
		}
	}
	return "", false
}

// HasProjectTable parses a pyproject.toml and reports whether it declares a
// PEP 621 [project] table.
func HasProjectTable(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	tree := map[string]any{}
	if err := toml.Unmarshal(data, &tree); err != nil {
		return false, err
	}
	_, ok := tree["project"].(map[string]any)
	return ok, nil
}

// ParseRequirements reads a requirements.txt and returns its entries.
// Comments, blank lines and pip option lines (-r, --index-url, ...) are skipped.
func ParseRequirements(path string) ([]Requirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reqs []Requirement
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		// strip trailing inline comment
		if i := strings.Index(line, " #"); i != -1 {
			line = strings.TrimSpace(line[:i])
		}
		name, op, ver := splitReqLine(line)
		reqs = append(reqs, Requirement{Name: name, Constraint: op, Version: ver})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return reqs, nil
}

// splitReqLine handles "pkg==1.2.3", "pkg>=1.2", "pkg"
func splitReqLine(line string) (string, string, string) {
	ops := []string{"==", ">=", "<=", "!=", "~=", ">", "<"}
	for _, op := range ops {
		if strings.Contains(line, op) {
			parts := strings.SplitN(line, op, 2)
			return strings.TrimSpace(parts[0]), op, strings.TrimSpace(parts[1])
		}
	}
	return line, "", ""
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
