package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"uv-bootstrap/installer"
	"uv-bootstrap/manifest"
	"uv-bootstrap/utils"
)

// Tag prefixes every status line written to the output writer.
const Tag = "[uv-bootstrap]"

// Options configures a single bootstrap run.
type Options struct {
	ProjectRoot string // directory checked for a manifest
	Mode        string // installer.ModeAdd (default) or installer.ModeSync
	StopOnError bool   // propagate a failing installer's exit code
	DryRun      bool   // report only, never invoke the installer
	BackupDir   string // when set, pyproject.toml is backed up here before installing
	Verbose     bool
	Out         io.Writer // status line destination, defaults to os.Stdout
}

// Result describes what a run did.
type Result struct {
	Found    bool   // a manifest was detected
	Manifest string // full path of the detected manifest, empty otherwise
	ExitCode int    // the code the process should exit with
}

// Run performs the dependency bootstrap check: detect the manifest in the
// project root, report what was found, and invoke the installer when there is
// something to install. A failing installer only surfaces in the exit code
// when StopOnError is set.
func Run(logger *utils.Logger, inst installer.Installer, opts Options) Result {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s Checking Python dependencies in %s\n", Tag, opts.ProjectRoot)

	path, found := detect(opts.Mode, opts.ProjectRoot)
	if !found {
		if opts.Mode == installer.ModeSync {
			fmt.Fprintf(out, "%s No uv.lock or pyproject.toml project found. No dependencies installed.\n", Tag)
		} else {
			fmt.Fprintf(out, "%s No requirements.txt or pyproject.toml found. No dependencies installed.\n", Tag)
		}
		return Result{}
	}

	cmdline := strings.Join(inst.Command(path), " ")
	fmt.Fprintf(out, "%s Found %s, running '%s'\n", Tag, filepath.Base(path), cmdline)

	if opts.Verbose && filepath.Base(path) == manifest.Requirements {
		if reqs, err := manifest.ParseRequirements(path); err == nil {
			logger.Infof("%s lists %d requirements", manifest.Requirements, len(reqs))
		}
	}

	if opts.DryRun {
		fmt.Fprintf(out, "%s Dry run: skipping installation.\n", Tag)
		return Result{Found: true, Manifest: path}
	}

	// uv add rewrites pyproject.toml, so back it up first when asked to
	if opts.BackupDir != "" {
		pyproject := filepath.Join(opts.ProjectRoot, manifest.PyProject)
		if _, err := os.Stat(pyproject); err == nil {
			backup, err := utils.BackupFile(pyproject, opts.BackupDir)
			if err != nil {
				logger.Errorf("failed to back up %s: %v", manifest.PyProject, err)
			} else if opts.Verbose {
				logger.Infof("Backed up %s -> %s", pyproject, backup)
			}
		}
	}

	code, err := inst.Install(path)
	if err != nil {
		logger.Errorf("%s failed: %v", inst.Name(), err)
		if opts.StopOnError {
			if code == 0 {
				code = 1
			}
			return Result{Found: true, Manifest: path, ExitCode: code}
		}
		return Result{Found: true, Manifest: path}
	}

	fmt.Fprintf(out, "%s Dependencies installed.\n", Tag)
	return Result{Found: true, Manifest: path}
}

// detect picks the manifest that triggers an installation for the given mode.
// Only requirements.txt triggers the default add mode, even though the
// not-found message also names pyproject.toml.
func detect(mode, projectRoot string) (string, bool) {
	if mode == installer.ModeSync {
		return manifest.SyncTarget(projectRoot)
	}
	return manifest.DetectRequirements(projectRoot)
}
