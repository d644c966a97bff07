package hashutil

import (
	"context"
	"crypto/sha1" //nolint:gosec // SHA-1 is offered as a digest tool, not for signatures
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"

	"github.com/devtoolhub/devtools/internal/model"
)

// Digest errors.
var (
	// ErrUnknownAlgorithm is returned when an algorithm name is not in the
	// registry.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrNoAlgorithms is returned when the selection is empty.
	ErrNoAlgorithms = errors.New("no hash algorithms selected")
)

// newHash returns a constructor for the named algorithm.
//
// Design decision: a switch over names rather than an init-time registry
// map of constructors; the set is small and fixed, and the switch keeps
// the error path obvious.
func newHash(name string) (func() hash.Hash, error) {
	switch name {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "sha384":
		return sha512.New384, nil
	case "sha512":
		return sha512.New, nil
	case "sha3-256":
		return sha3.New256, nil
	case "sha3-512":
		return sha3.New512, nil
	case "blake2b-256":
		return func() hash.Hash {
			// blake2b.New256 fails only for oversized keys; unkeyed use
			// cannot fail.
			h, _ := blake2b.New256(nil) //nolint:errcheck
			return h
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
}

// SupportedAlgorithm reports whether name is in the registry.
func SupportedAlgorithm(name string) bool {
	_, err := newHash(name)
	return err == nil
}

// Sum computes the digests of in-memory data for every named algorithm,
// one goroutine per algorithm. Results preserve the order of algorithms.
//
// A digest that fails produces an error for the whole call: the original
// tool collapsed failures into an empty string, which made errors
// indistinguishable from hashing the empty input.
func Sum(ctx context.Context, data []byte, algorithms []string) ([]model.Digest, error) {
	if len(algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}

	// Resolve all names first so an unknown algorithm fails before any
	// work is scheduled.
	constructors := make([]func() hash.Hash, len(algorithms))
	for i, name := range algorithms {
		ctor, err := newHash(name)
		if err != nil {
			return nil, err
		}
		constructors[i] = ctor
	}

	results := make([]model.Digest, len(algorithms))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range algorithms {
		i, name := i, name
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			h := constructors[i]()
			h.Write(data) //nolint:errcheck // hash.Hash.Write never returns an error

			d, err := model.NewDigest(name, hex.EncodeToString(h.Sum(nil)))
			if err != nil {
				return fmt.Errorf("digest %s: %w", name, err)
			}
			results[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SumReader computes the digests of a stream in a single pass: the reader
// is copied once through all hash states via io.MultiWriter.
//
// Design decision: streams are hashed sequentially per chunk rather than
// concurrently per algorithm because a reader can only be consumed once.
// Buffering the whole stream to regain per-algorithm concurrency would
// trade flat memory for a marginal speedup; the browser original did
// exactly that and it is the one behavior not worth keeping.
func SumReader(r io.Reader, algorithms []string) ([]model.Digest, error) {
	if len(algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}

	hashes := make([]hash.Hash, len(algorithms))
	writers := make([]io.Writer, len(algorithms))
	for i, name := range algorithms {
		ctor, err := newHash(name)
		if err != nil {
			return nil, err
		}
		hashes[i] = ctor()
		writers[i] = hashes[i]
	}

	if _, err := io.Copy(io.MultiWriter(writers...), r); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	results := make([]model.Digest, len(algorithms))
	for i, name := range algorithms {
		d, err := model.NewDigest(name, hex.EncodeToString(hashes[i].Sum(nil)))
		if err != nil {
			return nil, fmt.Errorf("digest %s: %w", name, err)
		}
		results[i] = d
	}
	return results, nil
}

// SumString is a convenience wrapper over Sum for text input.
func SumString(ctx context.Context, s string, algorithms []string) ([]model.Digest, error) {
	return Sum(ctx, []byte(s), algorithms)
}

// onceValidated caches validation of an algorithm list so the batch hasher
// does not re-resolve names per file.
type onceValidated struct {
	once sync.Once
	err  error
}

func (v *onceValidated) validate(algorithms []string) error {
	v.once.Do(func() {
		if len(algorithms) == 0 {
			v.err = ErrNoAlgorithms
			return
		}
		for _, name := range algorithms {
			if _, err := newHash(name); err != nil {
				v.err = err
				return
			}
		}
	})
	return v.err
}
