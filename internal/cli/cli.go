// Package cli implements the qscope command-line interface.
//
// This package provides commands for analyzing quantum circuits, exporting
// them to interchange and diagram formats, browsing the gate and algorithm
// catalogs, and managing the local cache and report archive. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - analyze: Load a circuit, simulate it, and print analysis output
//   - export: Write QASM, JSON, DOT, SVG, PNG, LaTeX, or JavaScript files
//   - gates, algorithms: Browse the built-in catalogs
//   - pick: Interactively select an algorithm template to analyze
//   - history: Browse archived analysis reports
//   - serve: Start the HTTP analysis API
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and --quiet
// (-q) to suppress everything below warnings. Loggers are passed through
// context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qscope/pkg/algorithm"
	"github.com/matzehuels/qscope/pkg/buildinfo"
	"github.com/matzehuels/qscope/pkg/cache"
	"github.com/matzehuels/qscope/pkg/httputil"
	"github.com/matzehuels/qscope/pkg/pipeline"
	"github.com/matzehuels/qscope/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "qscope"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. Running qscope without arguments on a terminal opens the
// interactive algorithm picker.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "qscope",
		Short:        "Qscope analyzes and reports on quantum circuits",
		Long:         `Qscope loads quantum circuits from QASM, TOML, or JSON sources, simulates them, and produces analysis reports covering state vectors, probabilities, entanglement, and exportable circuit diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(os.Stdout) {
				return c.runPick(cmd.Context())
			}
			return cmd.Help()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.gatesCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore opens the report archive. QSCOPE_MONGO_URI selects the MongoDB
// backend for shared deployments; the default is JSON files under the XDG
// data directory.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if uri := os.Getenv("QSCOPE_MONGO_URI"); uri != "" {
		c.Logger.Debug("using mongodb report store")
		return store.NewMongoStore(ctx, uri, appName)
	}
	return store.NewFileStore("")
}

// cacheDir returns the cache directory using XDG standard (~/.cache/qscope/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// sourceOptions fills the pipeline source fields from a command argument.
// Existing file paths win over algorithm template names, so a local file
// named "qft" still loads as a file; everything else is tried as a
// template name, then a URL, and finally handed to the loader as a path.
func sourceOptions(opts *pipeline.Options, arg string) {
	switch {
	case looksLikeCircuitFile(arg):
		opts.Source = arg
	case isAlgorithm(arg):
		opts.Algorithm = arg
	case httputil.IsRemote(arg):
		opts.Source = arg
	default:
		opts.Source = arg
	}
}

func isAlgorithm(arg string) bool {
	_, err := algorithm.Get(arg)
	return err == nil
}

// looksLikeCircuitFile returns true if arg appears to be a circuit file
// path rather than an algorithm name or URL. It checks if the file exists
// or has a known circuit extension.
func looksLikeCircuitFile(arg string) bool {
	if httputil.IsRemote(arg) {
		return false
	}
	if _, err := os.Stat(arg); err == nil {
		return true
	}
	lower := strings.ToLower(arg)
	return strings.HasSuffix(lower, ".qasm") ||
		strings.HasSuffix(lower, ".toml") ||
		strings.HasSuffix(lower, ".json")
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
