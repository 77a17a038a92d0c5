// Package boundary resolves approximate byte offsets to exact line starts
// and assembles the full split plan.
//
// A boundary is a byte offset that lies exactly at the start of a line:
// offset 0, the offset immediately after a '\n', or end of data. Resolution
// only ever moves an offset forward, so no part can begin mid-line.
package boundary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/linesplit-mcp/internal/planner"
	"github.com/dshills/linesplit-mcp/pkg/types"
)

// scanBufSize is the read size used when scanning forward for a newline.
const scanBufSize = 8 * 1024

// Resolve returns the offset of the next line start at or after approx in a
// file of size bytes. Offset 0 and end of data are exact boundaries and are
// returned without touching the file. If no newline exists at or after
// approx, the boundary is the file size: the final part absorbs an
// unterminated tail.
func Resolve(r io.ReaderAt, approx, size int64) (int64, error) {
	if approx <= 0 {
		return 0, nil
	}
	if approx >= size {
		return size, nil
	}

	// approx already sits immediately after a newline: exact boundary,
	// no forward scan.
	var prev [1]byte
	if _, err := r.ReadAt(prev[:], approx-1); err != nil {
		return 0, fmt.Errorf("read byte before offset %d: %w", approx, err)
	}
	if prev[0] == '\n' {
		return approx, nil
	}

	buf := make([]byte, scanBufSize)
	for pos := approx; pos < size; {
		n, err := r.ReadAt(buf, pos)
		if n > 0 {
			if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
				next := pos + int64(i) + 1
				if next > size {
					next = size
				}
				return next, nil
			}
			pos += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("scan for newline at offset %d: %w", pos, err)
		}
	}

	// No further newline: the remainder belongs to the last part.
	return size, nil
}

// BuildPlan computes the approximate offsets for parts and resolves each
// internal one sequentially against file content. The first and last
// boundaries are fixed at 0 and size without scanning. Resolution is
// monotone in the approximate offset, so the returned ranges are sorted,
// contiguous, and non-overlapping; adjacent offsets that collapse to the
// same boundary produce empty ranges, which are kept so that requesting N
// parts always yields N ranges.
func BuildPlan(r io.ReaderAt, size int64, parts int) (types.SplitPlan, error) {
	offsets, err := planner.PlanOffsets(size, parts)
	if err != nil {
		return nil, err
	}

	resolved := make([]int64, len(offsets))
	resolved[0] = 0
	resolved[parts] = size
	for i := 1; i < parts; i++ {
		b, err := Resolve(r, offsets[i], size)
		if err != nil {
			return nil, fmt.Errorf("resolve boundary %d near offset %d: %w", i, offsets[i], err)
		}
		resolved[i] = b
	}

	plan := make(types.SplitPlan, parts)
	for i := 0; i < parts; i++ {
		plan[i] = types.ByteRange{Start: resolved[i], End: resolved[i+1]}
	}
	return plan, nil
}
