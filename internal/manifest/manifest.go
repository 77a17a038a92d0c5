package manifest

import (
	"context"
	"time"
)

// Store defines the interface for the split job catalog. Recording is
// optional everywhere: the splitter works without a store, and the MCP
// server wires one in so past splits can be queried.
type Store interface {
	// RecordJob persists a completed split and its parts atomically.
	RecordJob(ctx context.Context, job *Job, parts []*Part) error

	// GetJob returns the most recent job for an input path.
	GetJob(ctx context.Context, inputPath string) (*Job, error)

	// ListParts returns a job's parts ordered by part index.
	ListParts(ctx context.Context, jobID int64) ([]*Part, error)

	// Status returns catalog-wide statistics.
	Status(ctx context.Context) (*CatalogStatus, error)

	Close() error
}

// Job represents one completed split invocation.
type Job struct {
	ID         int64
	InputPath  string
	InputSize  int64
	Parts      int
	OutputDir  string
	DurationMS int64
	CreatedAt  time.Time
}

// Part represents one output chunk of a recorded job.
type Part struct {
	ID          int64
	JobID       int64
	PartIndex   int
	StartOffset int64
	EndOffset   int64
	OutputPath  string
	SizeBytes   int64
}

// CatalogStatus contains statistics about the whole catalog.
type CatalogStatus struct {
	JobsCount    int
	PartsCount   int
	BytesWritten int64
	LastJobAt    time.Time
}
