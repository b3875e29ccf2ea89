// Package async fans the per-document pipeline over a fixed worker pool.
// Results come back in submission order so batch output stays stable
// regardless of which document finishes first.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/pipeline/document"
)

type DocumentPool struct {
	pipe    *document.Pipeline
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*DocumentPool)

func WithWorkers(n int) Option {
	return func(p *DocumentPool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(p *DocumentPool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewDocumentPool(pipe *document.Pipeline, logger *slog.Logger, opts ...Option) *DocumentPool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &DocumentPool{
		pipe:    pipe,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Outcome pairs one source path with its pipeline result or error.
type Outcome struct {
	Path   string
	Result document.Result
	Err    error
}

// RunAll processes every path and returns one outcome per path, ordered as
// submitted.
func (p *DocumentPool) RunAll(ctx context.Context, paths []string) []Outcome {
	out := make([]Outcome, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 1; w <= p.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			p.logger.Debug("worker started", "worker_id", workerID)
			for i := range jobs {
				path := paths[i]
				docCtx, cancel := context.WithTimeout(ctx, p.timeout)
				res, err := p.pipe.Run(docCtx, path)
				cancel()

				out[i] = Outcome{Path: path, Result: res, Err: err}
				if err != nil {
					p.logger.Error("processing failed", "worker_id", workerID, "path", path, "error", err)
				} else {
					p.logger.Debug("processed document", "worker_id", workerID, "path", path)
				}
			}
			p.logger.Debug("worker stopped", "worker_id", workerID)
		}(w)
	}

	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				out[j] = Outcome{Path: paths[j], Err: ctx.Err()}
			}
			close(jobs)
			wg.Wait()
			return out
		}
	}
	close(jobs)
	wg.Wait()
	return out
}
