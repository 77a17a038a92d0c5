// Package planner computes approximate cut points for a split.
//
// Offsets are derived purely from the file size; they ignore file content
// entirely. The boundary package is responsible for moving each internal
// offset forward to the nearest line start.
package planner

import (
	"fmt"

	"github.com/dshills/linesplit-mcp/pkg/types"
)

// PlanOffsets returns parts+1 monotonically non-decreasing byte offsets that
// evenly divide a file of fileSize bytes: offset i is i*fileSize/parts, so
// the first offset is always 0 and the last is always fileSize.
func PlanOffsets(fileSize int64, parts int) ([]int64, error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w (got %d)", types.ErrInvalidPartCount, parts)
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("%w (got %d)", types.ErrNegativeFileSize, fileSize)
	}

	offsets := make([]int64, parts+1)
	for i := 0; i <= parts; i++ {
		offsets[i] = int64(i) * fileSize / int64(parts)
	}
	return offsets, nil
}
