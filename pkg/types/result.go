package types

import (
	"fmt"
	"strings"
)

// SplitResult is the outcome of one split invocation. OutputPaths is
// index-aligned with the plan; on a fully successful split PartErrors is
// empty and every path names a completed part file.
type SplitResult struct {
	// Plan is the resolved byte ranges, one per part.
	Plan SplitPlan

	// OutputPaths holds one path per part in plan order. An entry is
	// present even for parts that failed; consult PartErrors before
	// trusting a file's content.
	OutputPaths []string

	// PartErrors lists the parts whose workers failed, if any.
	PartErrors []PartError
}

// Succeeded returns the paths of the parts that completed without error,
// in plan order.
func (sr *SplitResult) Succeeded() []string {
	if len(sr.PartErrors) == 0 {
		return sr.OutputPaths
	}
	failed := make(map[int]bool, len(sr.PartErrors))
	for _, pe := range sr.PartErrors {
		failed[pe.Index] = true
	}
	paths := make([]string, 0, len(sr.OutputPaths))
	for i, p := range sr.OutputPaths {
		if !failed[i] {
			paths = append(paths, p)
		}
	}
	return paths
}

// PartError records one failed part: which range it covered, where it was
// being written, and the underlying I/O error.
type PartError struct {
	Index int
	Range ByteRange
	Path  string
	Err   error
}

func (pe PartError) Error() string {
	return fmt.Sprintf("part %d %s -> %s: %v", pe.Index, pe.Range, pe.Path, pe.Err)
}

func (pe PartError) Unwrap() error {
	return pe.Err
}

// SplitError aggregates every failed part of a split. The parts that did
// succeed are preserved so a caller can retry only the missing ones.
type SplitError struct {
	Parts     []PartError
	Succeeded []string
}

func (e *SplitError) Error() string {
	msgs := make([]string, len(e.Parts))
	for i, pe := range e.Parts {
		msgs[i] = pe.Error()
	}
	return fmt.Sprintf("%d of %d parts failed: %s",
		len(e.Parts), len(e.Parts)+len(e.Succeeded), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual part errors to errors.Is / errors.As.
func (e *SplitError) Unwrap() []error {
	errs := make([]error, len(e.Parts))
	for i := range e.Parts {
		errs[i] = e.Parts[i]
	}
	return errs
}
