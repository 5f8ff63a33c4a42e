// Package cache provides caching for analysis documents, exported
// artifacts, and remote circuit fetches.
//
// The [Cache] interface abstracts the storage backend: [FileCache] for the
// CLI (entries under the user cache directory), [RedisCache] for the HTTP
// API where replicas share one cache, and [NullCache] when caching is
// disabled. Keys are produced by a [Keyer] so every caller derives them the
// same way; [ScopedKeyer] prefixes keys for namespace isolation, which the
// pipeline uses to version its cache schema.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache lifetimes. Analyses are deterministic for a given circuit, so
// their entries can outlive fetched HTTP responses by a wide margin.
const (
	DefaultTTL  = 24 * time.Hour
	AnalysisTTL = 7 * 24 * time.Hour
	HTTPTTL     = time.Hour
)

// Cache stores opaque byte values under string keys with per-entry TTLs.
// A ttl of zero means the entry does not expire.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with the given time to live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for everything qscope caches.
type Keyer interface {
	// HTTPKey generates a key for HTTP response caching.
	HTTPKey(namespace, key string) string
	// AnalysisKey generates a key for cached analysis documents.
	AnalysisKey(circuitHash string, opts AnalysisKeyOpts) string
	// ArtifactKey generates a key for exported artifacts.
	ArtifactKey(circuitHash string, opts ArtifactKeyOpts) string
}

// AnalysisKeyOpts captures everything besides the circuit structure that
// can change an analysis document. The circuit hash covers registers and
// instructions but deliberately not the backend label, so the label must
// take part in the key.
type AnalysisKeyOpts struct {
	Backend   string `json:"backend"`
	MaxQubits int    `json:"max_qubits"`
}

// ArtifactKeyOpts captures the export parameters an artifact depends on.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// DefaultKeyer derives keys by hashing the structured inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return fmt.Sprintf("http:%s:%s", namespace, key)
}

// AnalysisKey generates a key for cached analysis documents.
func (k *DefaultKeyer) AnalysisKey(circuitHash string, opts AnalysisKeyOpts) string {
	return hashKey("analysis", circuitHash, opts)
}

// ArtifactKey generates a key for exported artifacts.
func (k *DefaultKeyer) ArtifactKey(circuitHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", circuitHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
