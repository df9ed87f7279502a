package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/projct/internal/config"
	"github.com/bethropolis/projct/internal/filter"
	"github.com/bethropolis/projct/internal/logger"
	"github.com/bethropolis/projct/internal/printer"
	"github.com/bethropolis/projct/internal/setup"
	"github.com/bethropolis/projct/internal/summary"
	"github.com/bethropolis/projct/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stderr io.Writer
}

// New creates a new App instance. Diagnostics and the skipped-items report go to stderr.
func New(cfg *config.Config, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	if stderr == nil {
		stderr = os.Stderr
	}
	log := logger.New(stderr, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		stderr: stderr,
	}
}

// Logger returns the application logger
func (a *App) Logger() *logger.Logger { return a.log }

// Run walks the configured root and writes the dump. The returned error is
// fatal: an unusable root or an output file that cannot be written.
func (a *App) Run() error {
	startTime := time.Now()

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	if a.log.VerboseMode {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Config file: %s", a.cfg.ConfigPath)
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Directory: %s", a.cfg.General.Path)
		a.log.Debug("Output: %s (max file size %d bytes, line numbers %v)",
			a.cfg.Output.Filename, a.cfg.Output.MaxFileSize, a.cfg.Output.ShowLineNumbers)
		a.log.Debug("Ignore settings: gitignore=%v, show ignored=%v, show binary=%v",
			a.cfg.General.UseGitignore, a.cfg.General.ShowIgnored, a.cfg.General.ShowBinary)
		if len(a.cfg.Filters.IncludePatterns) > 0 || len(a.cfg.Filters.ExcludePatterns) > 0 {
			a.log.Debug("Filters: include=%v exclude=%v", a.cfg.Filters.IncludePatterns, a.cfg.Filters.ExcludePatterns)
		}
	}

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.General.Path)
	if err != nil {
		return fmt.Errorf("invalid root directory path '%s': %w", a.cfg.General.Path, err)
	}
	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("root directory '%s' not found", absRootDir)
		}
		return fmt.Errorf("could not access root directory '%s': %w", absRootDir, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("specified path '%s' is not a directory", absRootDir)
	}

	// --- Output file ---
	outputPath := a.cfg.Output.Filename
	if outputPath == "" {
		outputPath = config.DefaultOutputFile
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	out := bufio.NewWriter(file)

	// --- Resolver and walk options ---
	resolver, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:        absRootDir,
		MaxDepth:       a.cfg.MaxDepth(),
		UseGitignore:   a.cfg.General.UseGitignore,
		ShowIgnored:    a.cfg.General.ShowIgnored,
		ShowBinary:     a.cfg.General.ShowBinary,
		OutputFileName: filepath.Base(outputPath),
		IgnorePatterns: a.cfg.Filters.IgnorePatterns,
		Logger:         a.log,
	}, infoLog)
	if err != nil {
		return err
	}

	// --- Walk ---
	infoLog("Scanning directory: %s", absRootDir)
	result, err := walker.Walk(absRootDir, resolver, walkOptions...)
	if err != nil {
		return fmt.Errorf("critical error during directory walk: %w", err)
	}

	// --- Dump ---
	p := printer.New().
		WithOutput(out).
		WithRoot(absRootDir).
		WithMaxFileSize(a.cfg.Output.MaxFileSize).
		WithLineNumbers(a.cfg.Output.ShowLineNumbers).
		WithLogger(a.log)

	if err := p.PrintTree(result.Tree); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	files := filter.New(a.cfg.Filters.IncludePatterns, a.cfg.Filters.ExcludePatterns, a.log).Apply(result.Files)
	if err := p.PrintFiles(files); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outputPath, err)
	}

	// --- Show results summary ---
	summary.DisplayResults(a.log, summary.Stats{
		OutputFile: outputPath,
		FileCount:  p.GetCount(),
		Filtered:   len(result.Files) - len(files),
		Duration:   time.Since(startTime),
	}, a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, result.Skipped, a.stderr, a.cfg.Quiet)
	}
	return nil
}
