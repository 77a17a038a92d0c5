// Package types provides shared type definitions for the linesplit MCP server.
//
// This package defines the domain types used across the splitting pipeline:
// requests, byte ranges, plans, results, and the error taxonomy.
//
// # Core Types
//
// SplitRequest describes one invocation and is immutable once handed to the
// splitter:
//
//	req := &types.SplitRequest{
//	    InputPath: "/data/events.log",
//	    Parts:     8,
//	    OutputDir: "/data/parts",
//	}
//
// ByteRange is a half-open [Start, End) interval in the input file. A
// SplitPlan is the ordered list of ranges covering the whole file; it must
// satisfy the partition invariant (contiguous, non-overlapping, first range
// starting at 0, last range ending at file size), which Validate checks:
//
//	if err := plan.Validate(fileSize); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Taxonomy
//
// Errors fall into two families. Validation failures wrap ErrInvalidRequest
// and are raised before any I/O:
//
//	if errors.Is(err, types.ErrInvalidRequest) {
//	    // bad part count, missing input, ...
//	}
//
// I/O failures during chunk writing are collected per part as PartError and
// surfaced together as *SplitError, which also retains the paths that did
// succeed so callers can retry just the missing parts:
//
//	var se *types.SplitError
//	if errors.As(err, &se) {
//	    retry(se.Parts)
//	}
package types
