package async

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/assemble"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/extract"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/pipeline/document"
)

func newTestPool(opts ...Option) *DocumentPool {
	pipe := document.NewPipeline(extract.NewMatcher(nil), assemble.NewAssembler(nil), nil)
	return NewDocumentPool(pipe, nil, opts...)
}

func TestRunAllPreservesSubmissionOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 8; i++ {
		path := filepath.Join(dir, fmt.Sprintf("doc%d.txt", i))
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("document %d", i)), 0o644))
		paths = append(paths, path)
	}

	out := newTestPool(WithWorkers(3)).RunAll(context.Background(), paths)
	require.Len(t, out, len(paths))
	for i, oc := range out {
		assert.Equal(t, paths[i], oc.Path)
		assert.NoError(t, oc.Err)
		assert.Equal(t, paths[i], oc.Result.Path)
	}
}

func TestRunAllReportsPerDocumentErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("text"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	out := newTestPool(WithWorkers(1)).RunAll(context.Background(), []string{good, missing})
	require.Len(t, out, 2)
	assert.NoError(t, out[0].Err)
	assert.Error(t, out[1].Err)
}

func TestRunAllCanceledContext(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("doc%d.txt", i))
		require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))
		paths = append(paths, path)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := newTestPool(WithWorkers(2)).RunAll(ctx, paths)
	require.Len(t, out, len(paths))
	for _, oc := range out {
		assert.Error(t, oc.Err)
	}
}

func TestRunAllEmpty(t *testing.T) {
	out := newTestPool().RunAll(context.Background(), nil)
	assert.Empty(t, out)
}
