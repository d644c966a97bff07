package hashutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devtoolhub/devtools/internal/model"
)

// FileResult is the outcome of hashing one file. Err is set when the file
// could not be read or hashed; the digests slice is nil in that case.
type FileResult struct {
	// Path is the input file path as given.
	Path string

	// Size is the number of bytes hashed.
	Size int64

	// Digests holds one entry per requested algorithm, in request order.
	Digests []model.Digest

	// Elapsed is the wall time spent on this file.
	Elapsed time.Duration

	// Err records a per-file failure. Other files are unaffected.
	Err error
}

// BatchHasher hashes multiple files concurrently with a bounded number of
// workers.
//
// Design decision: errgroup.SetLimit rather than a hand-rolled worker pool;
// each file gets its own goroutine but only 'concurrency' run at once, and
// results are written to index-addressed slots so concurrent completions
// can never reorder the output.
type BatchHasher struct {
	algorithms  []string
	concurrency int
	logger      *slog.Logger
	validated   onceValidated
}

// BatchOption configures a BatchHasher.
type BatchOption func(*BatchHasher)

// WithConcurrency sets the maximum number of files hashed at once.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchHasher) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch-level logging.
func WithLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchHasher) {
		b.logger = logger
	}
}

// NewBatchHasher creates a BatchHasher computing the given algorithms for
// every file.
func NewBatchHasher(algorithms []string, opts ...BatchOption) *BatchHasher {
	b := &BatchHasher{
		algorithms:  algorithms,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// HashFiles hashes all paths concurrently and returns one FileResult per
// path, in input order. Per-file read errors are recorded in the result
// rather than aborting the batch; the error return covers cancellation and
// invalid algorithm selections only.
func (b *BatchHasher) HashFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	if err := b.validated.validate(b.algorithms); err != nil {
		return nil, err
	}

	b.logger.Debug("starting batch hash",
		"files", len(paths),
		"concurrency", b.concurrency,
		"algorithms", b.algorithms,
	)

	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = b.hashFile(path)
			if results[i].Err != nil {
				// Record and continue; one unreadable file should not
				// sink the rest of the batch.
				b.logger.Warn("file hash failed", "path", path, "error", results[i].Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// hashFile streams one file through all hash states in a single pass.
func (b *BatchHasher) hashFile(path string) FileResult {
	start := time.Now()
	result := FileResult{Path: path}

	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		result.Err = fmt.Errorf("failed to open file: %w", err)
		return result
	}
	defer f.Close() //nolint:errcheck // Read-only file

	if info, err := f.Stat(); err == nil {
		result.Size = info.Size()
	}

	digests, err := SumReader(f, b.algorithms)
	if err != nil {
		result.Err = err
		return result
	}

	result.Digests = digests
	result.Elapsed = time.Since(start)
	return result
}
