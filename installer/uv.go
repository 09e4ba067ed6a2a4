package installer

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ---------------------------
// uv add (requirements.txt)
// ---------------------------

// UVAdd installs the packages listed in a requirements manifest via
// `uv add -r <manifest>`, run in the project directory.
type UVAdd struct {
	UVPath string // path to the uv binary, usually just "uv"
	Dir    string // project directory the command runs in
}

func (u *UVAdd) Name() string { return "uv add" }

func (u *UVAdd) Command(manifestPath string) []string {
	return []string{u.uv(), "add", "-r", manifestPath}
}

func (u *UVAdd) Install(manifestPath string) (int, error) {
	return run(u.Dir, u.Command(manifestPath))
}

func (u *UVAdd) uv() string {
	if u.UVPath == "" {
		return "uv"
	}
	return u.UVPath
}

// ---------------------------
// uv sync (lockfile-aware)
// ---------------------------

// UVSync installs from the project's lockfile via `uv sync`. The manifest
// path argument is accepted for interface symmetry but uv resolves the
// lockfile itself from the working directory.
type UVSync struct {
	UVPath string
	Dir    string
}

func (u *UVSync) Name() string { return "uv sync" }

func (u *UVSync) Command(string) []string {
	uvPath := u.UVPath
	if uvPath == "" {
		uvPath = "uv"
	}
	return []string{uvPath, "sync"}
}

func (u *UVSync) Install(manifestPath string) (int, error) {
	return run(u.Dir, u.Command(manifestPath))
}

// run executes argv in dir, passing the child's output straight through so
// installer diagnostics reach the user unmodified. Returns the child's exit
// code alongside the error.
func run(dir string, argv []string) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), fmt.Errorf("%s exited with code %d", argv[0], exitErr.ExitCode())
		}
		// binary missing or not startable
		return 1, fmt.Errorf("failed to run %s: %v", argv[0], err)
	}
	return 0, nil
}
