package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qscope/pkg/observability"
	"github.com/matzehuels/qscope/pkg/pipeline"
)

// defaultExportDir is where export writes files when -o is not given.
const defaultExportDir = "exports"

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		formatsStr     string
		outputDir      string
		detailed       bool
		noCache        bool
		analysisFormat string
	)

	cmd := &cobra.Command{
		Use:   "export <file|algorithm|url>",
		Short: "Export a circuit to interchange and diagram formats",
		Long: `Export a circuit to interchange and diagram formats.

Writes one file per requested format into the destination directory,
followed by an analysis summary. Supported formats: qasm, toml, json
(interchange), dot, svg, png (diagrams), latex, js (embeddings).

Examples:
  qscope export bell.qasm                       # SVG diagram (default)
  qscope export teleport --to qasm,svg,latex    # Multiple formats
  qscope export bell.qasm --to png -o figures   # Custom destination`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateAnalysisFormat(analysisFormat); err != nil {
				return err
			}

			opts := pipeline.Options{
				Formats:  parseFormats(formatsStr),
				Detailed: detailed,
				NoCache:  noCache,
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
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

			return c.runExport(cmd.Context(), opts, exportBaseName(args[0]), outputDir, analysisFormat)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "to", "t", "", "export format(s): svg (default), qasm, toml, json, dot, png, latex, js (comma-separated)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", defaultExportDir, "destination directory")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include gate arguments in diagram exports")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&analysisFormat, "analysis-format", analysisFormatText, "analysis output: text, json, report")

	return cmd
}

// runExport executes the pipeline and writes artifacts plus the analysis
// summary into dir.
func (c *CLI) runExport(ctx context.Context, opts pipeline.Options, base, dir, analysisFormat string) error {
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
		hooks.fail("Export failed")
		return err
	}
	hooks.stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(dir, base, opts.Formats, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Exported %d file(s)", len(paths))
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats.Qubits, result.Stats.Operations, result.CacheInfo.ArtifactHit)
	printNewline()

	content, err := analysisContent(result, analysisFormat, "Analysis")
	if err != nil {
		return err
	}
	fmt.Println(content)

	analysisPath := filepath.Join(dir, exportAnalysisFileName(base, analysisFormat))
	if err := writeTextFile(analysisPath, content); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	printNewline()
	printFile(analysisPath)

	return nil
}

// writeArtifacts writes each rendered artifact into dir, named after base.
// Returns the written paths in format order.
func writeArtifacts(dir, base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, artifactFileName(base, format))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// artifactFileName returns the output file name for an artifact format.
func artifactFileName(base, format string) string {
	ext := format
	if format == pipeline.FormatLatex {
		ext = "tex"
	}
	return base + "." + ext
}

// exportAnalysisFileName returns the analysis file name written next to
// the exported artifacts.
func exportAnalysisFileName(base, format string) string {
	ext := "txt"
	if format == analysisFormatJSON {
		ext = "json"
	}
	return base + "_analysis." + ext
}

// exportBaseName derives the artifact base name from the source argument:
// the file stem for paths and URLs, the template name for algorithms, and
// "circuit" for stdin.
func exportBaseName(arg string) string {
	if arg == "-" {
		return "circuit"
	}
	if isAlgorithm(arg) && !looksLikeCircuitFile(arg) {
		return arg
	}
	base := filepath.Base(arg)
	if i := strings.LastIndex(base, "?"); i >= 0 {
		base = base[:i]
	}
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return "circuit"
}
