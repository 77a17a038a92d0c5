package types

import (
	"errors"
	"fmt"
)

// ByteRange describes one part's extent in the input file as a half-open
// interval [Start, End) of byte offsets.
type ByteRange struct {
	Start int64
	End   int64
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int64 {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no bytes. Empty ranges are legal:
// they occur when the input has fewer lines than requested parts.
func (r ByteRange) IsEmpty() bool {
	return r.Start == r.End
}

func (r ByteRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// SplitPlan is the complete, ordered set of byte ranges covering the input
// file. It is built in full before any part is written and is read-only
// thereafter; workers only ever read their own entry.
type SplitPlan []ByteRange

// Validate checks the partition invariant: ranges are contiguous,
// non-overlapping, sorted ascending, start at 0, and end at fileSize.
func (p SplitPlan) Validate(fileSize int64) error {
	if len(p) == 0 {
		return errors.New("plan has no ranges")
	}
	if p[0].Start != 0 {
		return fmt.Errorf("plan starts at %d, want 0", p[0].Start)
	}
	if p[len(p)-1].End != fileSize {
		return fmt.Errorf("plan ends at %d, want file size %d", p[len(p)-1].End, fileSize)
	}
	for i, r := range p {
		if r.Start > r.End {
			return fmt.Errorf("range %d is inverted: %s", i, r)
		}
		if i > 0 && p[i-1].End != r.Start {
			return fmt.Errorf("gap between range %d and %d: %s then %s", i-1, i, p[i-1], r)
		}
	}
	return nil
}

// TotalBytes returns the number of bytes covered by the whole plan.
func (p SplitPlan) TotalBytes() int64 {
	var n int64
	for _, r := range p {
		n += r.Len()
	}
	return n
}
