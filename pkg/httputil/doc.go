// Package httputil fetches remote circuit files over HTTP.
//
// # Overview
//
// The CLI and pipeline accept http/https URLs wherever they accept a
// circuit path. [Client] handles those downloads:
//
//   - Conditional GET: responses are cached together with their ETag and
//     Last-Modified validators. Later fetches revalidate with
//     If-None-Match/If-Modified-Since, and a 304 answer serves the cached
//     body without transferring it again.
//   - Retry: network failures, 5xx responses, and 429 rate limits are
//     wrapped retryable and go through the cache package's backoff loop.
//
// # Usage
//
//	client := httputil.NewClient(httputil.WithCache(fileCache))
//	data, err := client.Fetch(ctx, "https://example.com/bell.qasm")
//
// The fetched bytes feed the format registry like any local file. Use
// [IsRemote] to decide whether a circuit argument is a URL or a path.
//
// # Caching
//
// Cache storage and keys come from
// [github.com/matzehuels/qscope/pkg/cache]: entries are stored under
// Keyer.HTTPKey("remote:", url) with the HTTP TTL. Without an explicit
// cache every fetch hits the network.
package httputil
