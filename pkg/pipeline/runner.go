package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qscope/pkg/analyze"
	"github.com/matzehuels/qscope/pkg/cache"
	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/document"
	"github.com/matzehuels/qscope/pkg/httputil"
	"github.com/matzehuels/qscope/pkg/observability"
)

// cacheSchema versions every pipeline cache key. Bump it when the document
// wire shape changes so stale entries miss instead of decoding wrong.
const cacheSchema = "v1:"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, fetcher, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Fetcher *httputil.Client
	Logger  *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a schema-scoped DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(nil, cacheSchema)
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Fetcher: httputil.NewClient(httputil.WithCache(c), httputil.WithKeyer(keyer)),
		Logger:  logger,
	}
}

// Execute runs the complete load → simulate → analyze → render pipeline
// with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	source := opts.sourceLabel()
	hooks.OnLoadStart(ctx, source)
	loadStart := time.Now()
	c, err := Load(ctx, r.Fetcher, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	hooks.OnLoadComplete(ctx, source, opCount(c), result.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Circuit = c
	result.CircuitHash = c.Hash()
	result.Stats.Qubits = c.Qubits
	result.Stats.Operations = c.Size()

	r.Logger.Info("loaded circuit",
		"source", source,
		"qubits", c.Qubits,
		"operations", c.Size(),
		"duration", result.Stats.LoadTime)

	// Stages 2+3: Simulate and analyze, cached as one document
	rec, analysisHit, err := r.analyzeWithStats(ctx, c, opts, &result.Stats)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	result.Record = rec
	result.Document = document.FromRecord(rec)
	result.CacheInfo.AnalysisHit = analysisHit

	r.Logger.Info("analyzed circuit",
		"backend", rec.Backend(),
		"depth", rec.Depth(),
		"simulated", rec.HasState(),
		"cached", analysisHit,
		"duration", result.Stats.SimulateTime+result.Stats.AnalyzeTime)

	// Stage 4: Render
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	result.Report = RenderReport(rec, opts)
	artifacts, artifactHit, err := r.RenderArtifactsWithCacheInfo(ctx, c, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.ArtifactHit = artifactHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves a circuit using the runner's fetcher.
func (r *Runner) Load(ctx context.Context, opts Options) (*circuit.Circuit, error) {
	r.applyLogger(&opts)
	return Load(ctx, r.Fetcher, opts)
}

// AnalyzeWithCacheInfo analyzes a circuit with caching and returns cache hit info.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, c *circuit.Circuit, opts Options) (*analyze.Record, bool, error) {
	var stats Stats
	return r.analyzeWithStats(ctx, c, opts, &stats)
}

// Analyze is a convenience wrapper that calls AnalyzeWithCacheInfo and discards the cache hit info.
func (r *Runner) Analyze(ctx context.Context, c *circuit.Circuit, opts Options) (*analyze.Record, error) {
	rec, _, err := r.AnalyzeWithCacheInfo(ctx, c, opts)
	return rec, err
}

// analyzeWithStats runs the simulate and profile stages with caching,
// recording per-stage timings into stats.
//
// Cached analyses round-trip through the document form, so a hit skips
// both stages entirely. Simulation failures (resets, mid-circuit
// measurements, circuits over the width cap) degrade the record instead
// of failing the pipeline.
func (r *Runner) analyzeWithStats(ctx context.Context, c *circuit.Circuit, opts Options, stats *Stats) (*analyze.Record, bool, error) {
	r.applyLogger(&opts)
	opts.SetAnalyzeDefaults()
	hooks := observability.Pipeline()

	key := r.Keyer.AnalysisKey(c.Hash(), opts.AnalysisKeyOpts(c.Backend))

	// Try cache first (unless bypassed)
	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var doc document.Document
			if json.Unmarshal(data, &doc) == nil {
				if rec, err := doc.ToRecord(); err == nil {
					observability.Cache().OnCacheHit(ctx, "analysis")
					return rec, true, nil
				}
			}
			// Corrupt entries fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "analysis")
	}

	name := displayName(c, opts)

	hooks.OnSimulateStart(ctx, name, c.Qubits)
	simStart := time.Now()
	state, simErr := Simulate(c, opts)
	stats.SimulateTime = time.Since(simStart)
	hooks.OnSimulateComplete(ctx, name, stats.SimulateTime, simErr)
	if simErr != nil {
		opts.Logger.Debug("simulation skipped", "circuit", name, "reason", simErr)
		state = nil
	}

	hooks.OnAnalyzeStart(ctx, name)
	analyzeStart := time.Now()
	rec, err := Profile(c, state)
	stats.AnalyzeTime = time.Since(analyzeStart)
	hooks.OnAnalyzeComplete(ctx, name, stats.AnalyzeTime, err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if !opts.NoCache {
		if data, err := json.Marshal(document.FromRecord(rec)); err == nil {
			if r.Cache.Set(ctx, key, data, cache.AnalysisTTL) == nil {
				observability.Cache().OnCacheSet(ctx, "analysis", len(data))
			}
		}
	}

	return rec, false, nil
}

// RenderArtifactsWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderArtifactsWithCacheInfo(ctx context.Context, c *circuit.Circuit, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	if len(opts.Formats) == 0 {
		return map[string][]byte{}, false, nil
	}

	circuitHash := c.Hash()

	// Try to get all formats from cache
	if !opts.NoCache {
		allCached := true
		artifacts := make(map[string][]byte)

		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(circuitHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}

		if allCached {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	rendered, err := RenderArtifacts(c, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	if !opts.NoCache {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(circuitHash, opts.ArtifactKeyOpts(format))
			if r.Cache.Set(ctx, key, data, cache.DefaultTTL) == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}

	return rendered, false, nil
}

// RenderArtifacts is a convenience wrapper that calls RenderArtifactsWithCacheInfo and discards the cache hit info.
func (r *Runner) RenderArtifacts(ctx context.Context, c *circuit.Circuit, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderArtifactsWithCacheInfo(ctx, c, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// displayName names a circuit for logs and progress hooks, falling back to
// the source label for unnamed circuits.
func displayName(c *circuit.Circuit, opts Options) string {
	if c.Name != "" {
		return c.Name
	}
	return opts.sourceLabel()
}

// opCount reports the instruction count of a possibly nil circuit.
func opCount(c *circuit.Circuit) int {
	if c == nil {
		return 0
	}
	return c.Size()
}
