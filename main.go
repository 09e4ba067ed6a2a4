package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"uv-bootstrap/bootstrap"
	"uv-bootstrap/installer"
	"uv-bootstrap/utils"
)

// ---------------------------
// Main
// ---------------------------
func main() {
	project := flag.String("project", ".", "Path to the project root to bootstrap")
	configFile := flag.String("config", "uv-bootstrap.yml", "Path to optional YAML config file")
	mode := flag.String("mode", "", "Install mode: add (requirements.txt) or sync (lockfile-aware); overrides config")
	uvPath := flag.String("uvPath", "", "Path to uv binary (default assumes uv is on PATH); overrides config")
	stopOnError := flag.Bool("stop-on-error", false, "Exit with the installer's code when installation fails")
	dryRun := flag.Bool("dry-run", false, "Report what would run without invoking the installer")
	backupDir := flag.String("backup", "", "Directory to back up pyproject.toml into before installing")
	logDir := flag.String("log-dir", "", "Directory for log files (console only when empty); overrides config")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config file values
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *uvPath != "" {
		cfg.UVPath = *uvPath
	}
	if *stopOnError {
		cfg.StopOnError = true
	}
	if *logDir != "" {
		cfg.LogDir = *logDir
	}

	logger, err := utils.NewLogger(cfg.LogDir)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	absProject, err := filepath.Abs(*project)
	if err != nil {
		logger.Errorf("failed to resolve project path: %v", err)
		os.Exit(1)
	}

	// Check uv availability up front. A missing binary is reported here but
	// handled like any other installer failure, so the stop-on-error policy
	// still decides the exit code.
	if !*dryRun {
		if _, err := exec.LookPath(cfg.UVPath); err != nil {
			logger.Errorf("uv not found at %s (install it or adjust -uvPath)", cfg.UVPath)
		}
	}

	inst, err := installer.ForMode(cfg.Mode, cfg.UVPath, absProject)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	start := time.Now()

	res := bootstrap.Run(logger, inst, bootstrap.Options{
		ProjectRoot: absProject,
		Mode:        cfg.Mode,
		StopOnError: cfg.StopOnError,
		DryRun:      *dryRun,
		BackupDir:   *backupDir,
		Verbose:     *verbose,
		Out:         os.Stdout,
	})

	if *verbose {
		logger.Infof("Total elapsed time: %s", time.Since(start))
	}

	// Explicit close & exit so the file sink is flushed before the code is set
	logger.Close()
	os.Exit(res.ExitCode)
}
