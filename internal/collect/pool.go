// Package collect runs a collection pass: expanding the parametrization of
// many locations across a pool of workers. Each worker performs its own
// independent resolution, so no cross-worker caching or coordination exists.
package collect

import (
	"sync"
	"time"

	"tdp/internal/config"
	"tdp/internal/domain"
	"tdp/internal/engine"
	"tdp/internal/ui"
)

// WorkerPool manages a pool of workers for parallel spec expansion
type WorkerPool struct {
	config   *config.Config
	engine   *engine.Engine
	progress *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, eng *engine.Engine) *WorkerPool {
	return &WorkerPool{
		config: cfg,
		engine: eng,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Collect expands every location in parallel and returns the outcomes with
// the elapsed duration.
func (wp *WorkerPool) Collect(locations []domain.Location) ([]domain.Collection, time.Duration, error) {
	if len(locations) == 0 {
		return nil, 0, nil
	}

	queue := make(chan domain.Location, len(locations))
	results := make(chan domain.Collection, len(locations))
	for _, loc := range locations {
		queue <- loc
	}
	close(queue)

	var mu sync.Mutex
	var completed, rows, skipped int
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for loc := range queue {
				result := wp.engine.Generate(loc)
				results <- domain.Collection{Location: loc, Result: result}

				mu.Lock()
				completed++
				switch result.Kind {
				case domain.Parametrized:
					rows += len(result.Table.Rows)
				case domain.Skipped:
					skipped++
				}
				if wp.progress != nil {
					wp.progress.Update(completed, rows, skipped)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var collections []domain.Collection
	for collection := range results {
		collections = append(collections, collection)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}

	return collections, time.Since(startTime), nil
}
