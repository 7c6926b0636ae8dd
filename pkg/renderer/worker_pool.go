package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/df07/sphere-pathtracer/pkg/integrator"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	Camera *Camera
	Scene  *scene.Scene
	Buffer *AccumulationBuffer // Shared buffer; tiles never overlap
	TaskID int                 // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Samples  int
	Duration time.Duration
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID           int
	tileRenderer *TileRenderer
	taskQueue    chan TileTask
	resultQueue  chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(integratorInst integrator.Integrator, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, numWorkers*4),
		resultQueue: make(chan TileResult, numWorkers*4),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:           i,
			tileRenderer: NewTileRenderer(integratorInst),
			taskQueue:    wp.taskQueue,
			resultQueue:  wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// RenderTiles submits one task per tile and blocks until every tile is done.
// Results are returned indexed by task ID.
func (wp *WorkerPool) RenderTiles(tiles []*Tile, camera *Camera, s *scene.Scene, buffer *AccumulationBuffer) []TileResult {
	results := make([]TileResult, len(tiles))

	// Feed tasks from a separate goroutine so the bounded queues cannot deadlock
	go func() {
		for i, tile := range tiles {
			wp.taskQueue <- TileTask{
				Tile:   tile,
				Camera: camera,
				Scene:  s,
				Buffer: buffer,
				TaskID: i,
			}
		}
	}()

	for range tiles {
		result := <-wp.resultQueue
		results[result.TaskID] = result
	}

	return results
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()

		// Each tile has non-overlapping bounds, so writing the shared buffer is safe
		samples := w.tileRenderer.RenderTileBounds(task.Tile.Bounds, task.Camera, task.Scene, task.Buffer, task.Tile.Sampler)

		w.resultQueue <- TileResult{
			TaskID:   task.TaskID,
			WorkerID: w.ID,
			Samples:  samples,
			Duration: time.Since(start),
		}
	}
}
