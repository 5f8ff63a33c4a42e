package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qscope/pkg/observability"
	"github.com/matzehuels/qscope/pkg/pipeline"
	"github.com/matzehuels/qscope/pkg/render/report"
	"github.com/matzehuels/qscope/pkg/render/text"
	"github.com/matzehuels/qscope/pkg/store"
)

// Analysis output formats for the --format flag.
const (
	analysisFormatText   = "text"   // compact metric summary
	analysisFormatJSON   = "json"   // serialized analysis document
	analysisFormatReport = "report" // comprehensive report with visualizations
)

// analysisOutput controls where and how analysis results are emitted.
type analysisOutput struct {
	format string // text, json, or report
	dir    string // directory for the saved analysis file, empty to skip
	save   bool   // archive the document in the report store
	name   string // report name override for --save
	label  string // optional heading for the text format
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		formatStr string
		outputDir string
		sortStr   string
		bins      int
		width     int
		maxQubits int
		noCache   bool
		save      bool
		name      string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file|algorithm|url>",
		Short: "Analyze a quantum circuit and print metrics",
		Long: `Analyze a quantum circuit and print metrics.

The argument may be a circuit file (QASM, TOML, or JSON), the name of a
built-in algorithm template, an http(s) URL, or "-" to read a circuit
from standard input.

Examples:
  qscope analyze bell.qasm                   # Local circuit file
  qscope analyze teleport                    # Built-in algorithm template
  qscope analyze https://example.com/c.qasm  # Remote circuit
  cat bell.qasm | qscope analyze -           # Circuit from stdin
  qscope analyze grover --format report      # Full report with histograms
  qscope analyze bell.qasm --save            # Archive the analysis`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateAnalysisFormat(formatStr); err != nil {
				return err
			}
			if sortStr != "" {
				if err := pipeline.ValidateSort(text.SortKey(sortStr)); err != nil {
					return err
				}
			}

			opts := pipeline.Options{
				Sort:      text.SortKey(sortStr),
				Bins:      bins,
				Width:     width,
				MaxQubits: maxQubits,
				NoCache:   noCache,
			}
			if args[0] == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				opts.Circuit = string(data)
			} else {
				sourceOptions(&opts, args[0])
			}

			return c.runAnalyze(cmd.Context(), opts, analysisOutput{
				format: formatStr,
				dir:    outputDir,
				save:   save,
				name:   name,
			})
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", analysisFormatText, "output format: text, json, report")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "optional: save the analysis to a file in this directory")
	cmd.Flags().StringVar(&sortStr, "sort", "", "state table ordering: amplitude (default), basis_state, real, imaginary, phase")
	cmd.Flags().IntVar(&bins, "bins", 0, "phase histogram bin count")
	cmd.Flags().IntVar(&width, "width", 0, "histogram bar width in characters")
	cmd.Flags().IntVar(&maxQubits, "max-qubits", 0, "simulation qubit cap (statevector grows as 2^n)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&save, "save", false, "archive the analysis in the report store")
	cmd.Flags().StringVar(&name, "name", "", "report name for --save (defaults to the circuit name)")

	return cmd
}

// runAnalyze executes the pipeline and emits the analysis per out.
func (c *CLI) runAnalyze(ctx context.Context, opts pipeline.Options, out analysisOutput) error {
	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)

	hooks := newProgressHooks(ctx)
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		hooks.fail("Analysis failed")
		return err
	}
	hooks.stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	content, err := analysisContent(result, out.format, out.label)
	if err != nil {
		return err
	}
	fmt.Println(content)
	if len(result.Record.State()) == 0 {
		printWarning("State simulation unavailable; showing structural metrics only")
	}
	printStats(result.Stats.Qubits, result.Stats.Operations, result.CacheInfo.AnalysisHit)

	if out.dir != "" {
		path := filepath.Join(out.dir, analysisFileName(out.format))
		if err := writeTextFile(path, content); err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}
		printNewline()
		printSuccess("Analysis report saved")
		printFile(path)
	}

	if out.save {
		id, err := c.archiveReport(ctx, result, out.name)
		if err != nil {
			return fmt.Errorf("archive report: %w", err)
		}
		printNewline()
		printSuccess("Report archived")
		printDetail("ID: %s", id)
		printNextStep("View later", "qscope history show "+id)
	}

	return nil
}

// analysisContent renders the result in the requested format.
func analysisContent(result *pipeline.Result, format, label string) (string, error) {
	switch format {
	case analysisFormatJSON:
		data, err := json.MarshalIndent(result.Document, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal analysis: %w", err)
		}
		return string(data), nil
	case analysisFormatReport:
		return result.Report, nil
	default:
		return report.Compact(result.Record, label), nil
	}
}

// analysisFileName returns the saved analysis file name for a format.
func analysisFileName(format string) string {
	if format == analysisFormatJSON {
		return "circuit_analysis.json"
	}
	return "circuit_analysis.txt"
}

func validateAnalysisFormat(format string) error {
	switch format {
	case analysisFormatText, analysisFormatJSON, analysisFormatReport:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'report')", format)
}

// archiveReport stores the analysis document and returns the report ID.
func (c *CLI) archiveReport(ctx context.Context, result *pipeline.Result, name string) (string, error) {
	st, err := c.newStore(ctx)
	if err != nil {
		return "", err
	}
	defer st.Close()

	if name == "" {
		name = result.Circuit.Name
	}
	if name == "" {
		name = "circuit"
	}

	rep := store.NewReport(name, result.CircuitHash, result.Document)
	if err := st.Set(ctx, rep); err != nil {
		return "", err
	}
	return rep.ID, nil
}

// writeTextFile writes content to path, creating parent directories and
// ensuring a trailing newline.
func writeTextFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return os.WriteFile(path, []byte(content), 0644)
}
