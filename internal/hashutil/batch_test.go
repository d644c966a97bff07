package hashutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestBatchHasher_HashFiles(t *testing.T) {
	t.Parallel()

	t.Run("hashes files in input order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		paths := []string{
			writeTempFile(t, dir, "a.txt", "Hello World"),
			writeTempFile(t, dir, "b.txt", "second file"),
			writeTempFile(t, dir, "c.txt", ""),
		}

		bh := NewBatchHasher([]string{"sha256"}, WithConcurrency(2))
		results, err := bh.HashFiles(context.Background(), paths)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}

		for i, path := range paths {
			if results[i].Path != path {
				t.Errorf("position %d: expected %s, got %s", i, path, results[i].Path)
			}
			if results[i].Err != nil {
				t.Errorf("position %d: unexpected error: %v", i, results[i].Err)
			}
		}

		if results[0].Digests[0].Hex() != helloWorldSHA256 {
			t.Errorf("expected Hello World digest, got %s", results[0].Digests[0].Hex())
		}
		if results[2].Digests[0].Hex() != emptySHA256 {
			t.Errorf("expected empty digest, got %s", results[2].Digests[0].Hex())
		}
		if results[0].Size != int64(len("Hello World")) {
			t.Errorf("expected size %d, got %d", len("Hello World"), results[0].Size)
		}
	})

	t.Run("missing file is a per-file error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeTempFile(t, dir, "good.txt", "data")
		missing := filepath.Join(dir, "missing.txt")

		bh := NewBatchHasher([]string{"sha256"})
		results, err := bh.HashFiles(context.Background(), []string{good, missing})
		if err != nil {
			t.Fatalf("unexpected batch error: %v", err)
		}
		if results[0].Err != nil {
			t.Errorf("expected good file to succeed, got %v", results[0].Err)
		}
		if results[1].Err == nil {
			t.Error("expected missing file to carry an error")
		}
	})

	t.Run("invalid algorithm fails the batch", func(t *testing.T) {
		t.Parallel()

		bh := NewBatchHasher([]string{"md4"})
		_, err := bh.HashFiles(context.Background(), []string{"whatever"})
		if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dir := t.TempDir()
		path := writeTempFile(t, dir, "a.txt", "x")

		bh := NewBatchHasher([]string{"sha256"})
		_, err := bh.HashFiles(ctx, []string{path})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestNewBatchHasher_Options(t *testing.T) {
	t.Parallel()

	t.Run("default concurrency", func(t *testing.T) {
		t.Parallel()
		bh := NewBatchHasher([]string{"sha256"})
		if bh.concurrency != 4 {
			t.Errorf("expected default concurrency 4, got %d", bh.concurrency)
		}
	})

	t.Run("non-positive concurrency ignored", func(t *testing.T) {
		t.Parallel()
		bh := NewBatchHasher([]string{"sha256"}, WithConcurrency(0))
		if bh.concurrency != 4 {
			t.Errorf("expected concurrency to stay 4, got %d", bh.concurrency)
		}
	})
}
