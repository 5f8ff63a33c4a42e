package pipeline

import (
	"context"
	"os"

	"github.com/matzehuels/qscope/pkg/algorithm"
	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/format"
	"github.com/matzehuels/qscope/pkg/httputil"
)

// Load resolves a circuit from the source configured in opts.
//
// Algorithm names take priority, then inline content, then Source, which
// may be a local file path or an http(s) URL. Remote sources are fetched
// through the given client; a nil fetcher falls back to an uncached one.
// File formats are detected by filename first and content sniffing second,
// so inline content works without a Filename hint.
func Load(ctx context.Context, fetcher *httputil.Client, opts Options) (*circuit.Circuit, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	switch {
	case opts.Algorithm != "":
		return algorithm.Build(opts.Algorithm)

	case opts.Circuit != "":
		return format.Parse(opts.Filename, []byte(opts.Circuit))

	case httputil.IsRemote(opts.Source):
		if fetcher == nil {
			fetcher = httputil.NewClient()
		}
		data, err := fetcher.Fetch(ctx, opts.Source)
		if err != nil {
			return nil, err
		}
		return format.Parse(opts.Source, data)

	default:
		data, err := os.ReadFile(opts.Source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.New(errors.ErrCodeFileNotFound, "circuit file %q not found", opts.Source)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read circuit %s", opts.Source)
		}
		return format.Parse(opts.Source, data)
	}
}
