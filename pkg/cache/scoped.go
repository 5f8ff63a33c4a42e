package cache

// ScopedKeyer wraps a Keyer with a prefix so callers can carve out
// separate cache namespaces. The pipeline scopes its keys with a schema
// version, which retires every stale entry at once when the document
// format changes instead of requiring a cache wipe.
//
// Example usage:
//
//	// Keys tied to the current document schema
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// AnalysisKey generates a prefixed key for analysis document caching.
func (k *ScopedKeyer) AnalysisKey(circuitHash string, opts AnalysisKeyOpts) string {
	return k.prefix + k.inner.AnalysisKey(circuitHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(circuitHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(circuitHash, opts)
}
