package installer

import "fmt"

// Install modes selectable via flag or config.
const (
	ModeAdd  = "add"  // install from requirements.txt
	ModeSync = "sync" // lockfile-aware sync
)

// Installer runs an external package-installation command against a manifest.
// Command exposes the exact argv that Install would run so callers can report
// it without invoking anything.
type Installer interface {
	Name() string
	Command(manifestPath string) []string
	Install(manifestPath string) (int, error)
}

// ForMode returns the uv-backed installer for the given mode.
func ForMode(mode, uvPath, projectDir string) (Installer, error) {
	switch mode {
	case ModeAdd:
		return &UVAdd{UVPath: uvPath, Dir: projectDir}, nil
	case ModeSync:
		return &UVSync{UVPath: uvPath, Dir: projectDir}, nil
	default:
		return nil, fmt.Errorf("unknown install mode %q (want %q or %q)", mode, ModeAdd, ModeSync)
	}
}
