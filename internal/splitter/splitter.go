package splitter

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/linesplit-mcp/internal/boundary"
	"github.com/dshills/linesplit-mcp/internal/chunkio"
	"github.com/dshills/linesplit-mcp/internal/manifest"
	"github.com/dshills/linesplit-mcp/pkg/types"
)

// Splitter coordinates the splitting pipeline: plan -> resolve -> copy
type Splitter struct {
	store manifest.Store // optional, nil disables recording

	workers int
}

// Config contains configuration for a split run
type Config struct {
	Workers int // Number of concurrent chunk workers (default: runtime.NumCPU())
}

// Statistics contains statistics about one split run
type Statistics struct {
	PartsWritten int
	PartsFailed  int
	BytesWritten int64
	Duration     time.Duration
}

// New creates a new Splitter. A nil store disables job recording.
func New(store manifest.Store) *Splitter {
	return &Splitter{
		store:   store,
		workers: runtime.NumCPU(),
	}
}

// Split divides the request's input file into the requested number of parts.
//
// The full plan is resolved sequentially before any worker starts, then one
// chunk worker runs per part under a bounded pool. Each worker owns a
// disjoint range and a distinct output path; a failing worker never stops
// its siblings. Split blocks until every dispatched worker has finished.
//
// On partial failure the returned error is a *types.SplitError enumerating
// every failed part; the result still lists all output paths so the caller
// can retry just the missing ones.
func (s *Splitter) Split(ctx context.Context, req *types.SplitRequest, config *Config) (*types.SplitResult, *Statistics, error) {
	if config == nil {
		config = &Config{}
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	s.workers = config.Workers

	startTime := time.Now()

	size, err := s.validateRequest(req)
	if err != nil {
		return nil, nil, err
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create output directory: %w", err)
	}

	plan, err := s.buildPlan(req.InputPath, size, req.Parts)
	if err != nil {
		return nil, nil, err
	}

	result := &types.SplitResult{
		Plan:        plan,
		OutputPaths: make([]string, len(plan)),
	}
	for i := range plan {
		result.OutputPaths[i] = req.OutputPath(i)
	}

	stats := &Statistics{}
	if err := s.writeParts(ctx, req, result, stats); err != nil {
		return nil, nil, err
	}
	stats.Duration = time.Since(startTime)

	if len(result.PartErrors) > 0 {
		stats.PartsFailed = len(result.PartErrors)
		return result, stats, &types.SplitError{
			Parts:     result.PartErrors,
			Succeeded: result.Succeeded(),
		}
	}

	if s.store != nil {
		if err := s.recordJob(ctx, req, result, size, stats); err != nil {
			return nil, nil, fmt.Errorf("record job: %w", err)
		}
	}

	return result, stats, nil
}

// validateRequest fails fast before any chunk I/O. An empty input file is
// valid: it yields the requested number of zero-byte parts.
func (s *Splitter) validateRequest(req *types.SplitRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	info, err := os.Stat(req.InputPath)
	if err != nil {
		return 0, fmt.Errorf("%w: stat input: %w", types.ErrInvalidRequest, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s", types.ErrInputNotRegular, req.InputPath)
	}
	return info.Size(), nil
}

// buildPlan resolves all boundaries sequentially. The plan must be complete
// and non-overlapping before any worker is dispatched; a resolution failure
// aborts the whole split.
func (s *Splitter) buildPlan(inputPath string, size int64, parts int) (types.SplitPlan, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	plan, err := boundary.BuildPlan(in, size, parts)
	if err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}
	return plan, nil
}

// writeParts dispatches one chunk worker per range and waits for all of
// them. Worker failures are isolated per part and collected; only context
// cancellation is returned as an error.
func (s *Splitter) writeParts(ctx context.Context, req *types.SplitRequest, result *types.SplitResult, stats *Statistics) error {
	semaphore := make(chan struct{}, s.workers)

	var (
		written int32
		bytes   int64
		mu      sync.Mutex // Protect result.PartErrors
	)

	g, gctx := errgroup.WithContext(ctx)

	for i, rng := range result.Plan {
		outputPath := result.OutputPaths[i]

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
				// Acquire semaphore
			}
			defer func() { <-semaphore }()

			if err := chunkio.WriteChunk(gctx, req.InputPath, rng, outputPath); err != nil {
				mu.Lock()
				result.PartErrors = append(result.PartErrors, types.PartError{
					Index: i,
					Range: rng,
					Path:  outputPath,
					Err:   err,
				})
				mu.Unlock()
				// Continue with other parts
				return nil
			}

			atomic.AddInt32(&written, 1)
			atomic.AddInt64(&bytes, rng.Len())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Workers finish in arbitrary order; report failures in plan order.
	sort.Slice(result.PartErrors, func(a, b int) bool {
		return result.PartErrors[a].Index < result.PartErrors[b].Index
	})

	stats.PartsWritten = int(written)
	stats.BytesWritten = bytes
	return nil
}

// recordJob persists a fully successful split to the manifest catalog.
func (s *Splitter) recordJob(ctx context.Context, req *types.SplitRequest, result *types.SplitResult, size int64, stats *Statistics) error {
	job := &manifest.Job{
		InputPath:  req.InputPath,
		InputSize:  size,
		Parts:      len(result.Plan),
		OutputDir:  req.OutputDir,
		DurationMS: stats.Duration.Milliseconds(),
	}

	parts := make([]*manifest.Part, len(result.Plan))
	for i, rng := range result.Plan {
		parts[i] = &manifest.Part{
			PartIndex:   i,
			StartOffset: rng.Start,
			EndOffset:   rng.End,
			OutputPath:  result.OutputPaths[i],
			SizeBytes:   rng.Len(),
		}
	}

	return s.store.RecordJob(ctx, job, parts)
}
