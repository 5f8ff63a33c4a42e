// Package pipeline provides the core analysis pipeline for qscope.
//
// This package implements the complete load → simulate → analyze → render
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Resolve a circuit from a file, URL, inline content, or an
//     algorithm template
//  2. Simulate: Compute the final state vector (failures degrade the
//     analysis instead of aborting it)
//  3. Analyze: Profile the circuit into an immutable analysis record
//  4. Render: Generate the text report and any requested export artifacts
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "circuits/bell.qasm",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	c, err := runner.Load(ctx, opts)
//
//	// Analyze an existing circuit
//	rec, err := runner.Analyze(ctx, c, opts)
//
//	// Render artifacts for an existing circuit
//	artifacts, err := runner.RenderArtifacts(ctx, c, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qscope/pkg/analyze"
	"github.com/matzehuels/qscope/pkg/cache"
	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/document"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/render/report"
	"github.com/matzehuels/qscope/pkg/render/text"
	"github.com/matzehuels/qscope/pkg/simulate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxQubits is the widest register the pipeline will simulate.
	// This matches simulate.MaxQubits; API deployments can lower it to keep
	// request latency bounded. Wider circuits are still analyzed, but only
	// structurally (no state vector).
	DefaultMaxQubits = simulate.MaxQubits

	// DefaultHistogramWidth is the default bar width of the probability
	// histogram in rendered reports.
	DefaultHistogramWidth = text.DefaultWidth

	// DefaultBins is the default bin count of the amplitude distribution
	// section in rendered reports.
	DefaultBins = text.DefaultBins
)

// DefaultSort is the default state-table ordering.
const DefaultSort = text.SortAmplitude

// Format constants for export artifacts.
const (
	FormatQASM  = "qasm"
	FormatTOML  = "toml"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatLatex = "latex"
	FormatJS    = "js"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatQASM:  true,
	FormatTOML:  true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatSVG:   true,
	FormatPNG:   true,
	FormatLatex: true,
	FormatJS:    true,
}

// ValidSorts is the set of supported state-table orderings.
var ValidSorts = map[text.SortKey]bool{
	text.SortAmplitude:  true,
	text.SortReal:       true,
	text.SortImaginary:  true,
	text.SortPhase:      true,
	text.SortBasisState: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one source is used, in priority order:
	// Algorithm, Circuit, Source.
	Source    string `json:"source,omitempty"`    // File path or http(s) URL
	Circuit   string `json:"circuit,omitempty"`   // Inline circuit content
	Filename  string `json:"filename,omitempty"`  // Filename hint for inline content
	Algorithm string `json:"algorithm,omitempty"` // Algorithm template name

	// Analysis options
	MaxQubits int  `json:"max_qubits,omitempty"`
	NoCache   bool `json:"no_cache,omitempty"` // Bypass the analysis and artifact caches

	// Render options
	Formats  []string     `json:"formats,omitempty"` // Artifact formats; empty means report only
	Detailed bool         `json:"detailed,omitempty"`
	Sort     text.SortKey `json:"sort,omitempty"`
	Bins     int          `json:"bins,omitempty"`
	Width    int          `json:"width,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Circuit is the loaded circuit.
	Circuit *circuit.Circuit

	// CircuitHash is the content hash of the circuit.
	CircuitHash string

	// Record is the analysis record.
	Record *analyze.Record

	// Document is the serializable form of the record.
	Document document.Document

	// Report is the rendered comprehensive text report.
	Report string

	// Artifacts contains rendered exports keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Qubits       int
	Operations   int
	LoadTime     time.Duration
	SimulateTime time.Duration
	AnalyzeTime  time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	AnalysisHit bool // Whether the analysis document came from cache
	ArtifactHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that an artifact format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all artifact formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSort checks that a state-table ordering is valid.
func ValidateSort(sort text.SortKey) error {
	if !ValidSorts[sort] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid sort %q (must be one of: amplitude, real, imaginary, phase, basis_state)", sort)
	}
	return nil
}

// FormatNames returns the supported artifact formats in stable order.
func FormatNames() []string {
	return []string{FormatQASM, FormatTOML, FormatJSON, FormatDOT, FormatSVG, FormatPNG, FormatLatex, FormatJS}
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetAnalyzeDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for circuit loading.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" && o.Circuit == "" && o.Algorithm == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source, circuit, or algorithm is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetAnalyzeDefaults sets default values for the simulate and analyze stages.
func (o *Options) SetAnalyzeDefaults() {
	if o.MaxQubits == 0 {
		o.MaxQubits = DefaultMaxQubits
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering. Formats stays empty
// when unset: the report is always rendered, artifacts are opt-in.
func (o *Options) SetRenderDefaults() {
	if o.Sort == "" {
		o.Sort = DefaultSort
	}
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
	if o.Width == 0 {
		o.Width = DefaultHistogramWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateSort(o.Sort)
}

// AnalysisKeyOpts returns cache key options for the analysis document.
// The backend label comes from the circuit because the content hash
// deliberately excludes it.
func (o *Options) AnalysisKeyOpts(backend string) cache.AnalysisKeyOpts {
	return cache.AnalysisKeyOpts{
		Backend:   backend,
		MaxQubits: o.MaxQubits,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Detailed: o.Detailed,
	}
}

// ReportOptions returns the report rendering options.
func (o *Options) ReportOptions() report.Options {
	return report.Options{
		HistogramWidth: o.Width,
		Bins:           o.Bins,
		Sort:           o.Sort,
	}
}

// sourceLabel names the circuit source for logs and progress hooks.
func (o *Options) sourceLabel() string {
	switch {
	case o.Algorithm != "":
		return o.Algorithm
	case o.Source != "":
		return o.Source
	case o.Filename != "":
		return o.Filename
	default:
		return "inline"
	}
}
