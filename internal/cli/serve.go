package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qscope/internal/server"
	"github.com/matzehuels/qscope/pkg/cache"
	"github.com/matzehuels/qscope/pkg/pipeline"
)

// shutdownTimeout bounds graceful HTTP shutdown on interrupt.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command exposing the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis API",
		Long: `Start the HTTP analysis API.

The API accepts inline circuits on POST /api/v1/analyze, serves the gate
and algorithm catalogs, and exposes the report archive. Results cache to
Redis when QSCOPE_REDIS_URL is set, otherwise to local files; reports go
to MongoDB when QSCOPE_MONGO_URI is set. Stop the server with Ctrl+C;
in-flight requests get a grace period to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe runs the server until it fails or ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.serveRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Logger: c.Logger,
		Runner: runner,
		Store:  st,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// serveRunner builds the pipeline runner for server use. QSCOPE_REDIS_URL
// selects the Redis result cache so multiple instances share entries; the
// default is the same file cache the CLI commands use.
func (c *CLI) serveRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	url := os.Getenv("QSCOPE_REDIS_URL")
	if url == "" || noCache {
		return c.newRunner(noCache)
	}

	redisCache, err := cache.NewRedisCache(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect redis cache: %w", err)
	}
	c.Logger.Debug("using redis result cache")
	return pipeline.NewRunner(redisCache, nil, c.Logger), nil
}
