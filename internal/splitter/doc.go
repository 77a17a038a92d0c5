// Package splitter coordinates the end-to-end split pipeline for
// newline-delimited files.
//
// The splitter orchestrates offset planning, boundary resolution, and
// concurrent chunk writing, managing worker fan-out and error aggregation.
//
// # Basic Usage
//
//	sp := splitter.New(nil) // nil store: no job recording
//
//	result, stats, err := sp.Split(ctx, &types.SplitRequest{
//	    InputPath: "/data/events.log",
//	    Parts:     8,
//	    OutputDir: "/data/parts",
//	}, nil)
//
//	fmt.Printf("wrote %d parts (%d bytes) in %v\n",
//	    stats.PartsWritten, stats.BytesWritten, stats.Duration)
//
// # Pipeline
//
// The split executes in three stages:
//
//  1. Validate: part count, input file existence and kind. Fails fast with
//     an ErrInvalidRequest-class error before any I/O.
//  2. Plan: compute approximate offsets from the file size, then resolve
//     each internal offset to a line start, strictly sequentially. The
//     complete immutable plan exists before any worker starts.
//  3. Copy: one worker per part under a bounded pool (default NumCPU).
//     Workers are fully independent: disjoint ranges, distinct outputs,
//     positioned reads on private handles. No locking between workers.
//
// # Error Handling
//
// A worker failure never stops siblings already in flight; the run always
// waits for every worker. Partial failure returns *types.SplitError listing
// each failed part alongside the paths that succeeded:
//
//	var se *types.SplitError
//	if errors.As(err, &se) {
//	    for _, pe := range se.Parts {
//	        log.Printf("part %d failed: %v", pe.Index, pe.Err)
//	    }
//	}
//
// No retries are performed; retry policy belongs to the caller.
//
// # Job Recording
//
// When constructed with a manifest.Store, each fully successful split is
// recorded as a job with one row per part, queryable through the MCP
// get_job and get_status tools.
package splitter
