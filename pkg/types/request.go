package types

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// SplitRequest describes one split invocation. It is constructed by the
// caller and never modified by the splitter.
type SplitRequest struct {
	// InputPath is the newline-delimited file to split. Required.
	InputPath string

	// Parts is the number of output parts to produce. Must be >= 1.
	// Parts == 1 copies the whole file as a single part.
	Parts int

	// OutputDir receives the part files. Empty means the current
	// directory. Created if absent.
	OutputDir string

	// NamePattern overrides the default output naming. It must contain
	// exactly one %d verb which receives the part index; the caller is
	// responsible for any zero padding. Empty selects the default
	// "<stem>.part_NN<ext>" scheme.
	NamePattern string
}

// Validate performs the field-level checks that need no filesystem access.
func (r *SplitRequest) Validate() error {
	if r.InputPath == "" {
		return ErrMissingInputPath
	}
	if r.Parts < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidPartCount, r.Parts)
	}
	return nil
}

// OutputName returns the file name for the part at index. Indexes are
// zero-padded to the width of the largest index so lexicographic and
// numeric ordering agree.
func (r *SplitRequest) OutputName(index int) string {
	if r.NamePattern != "" {
		return fmt.Sprintf(r.NamePattern, index)
	}
	base := filepath.Base(r.InputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	width := len(strconv.Itoa(r.Parts - 1))
	return fmt.Sprintf("%s.part_%0*d%s", stem, width, index, ext)
}

// OutputPath returns the full path for the part at index.
func (r *SplitRequest) OutputPath(index int) string {
	dir := r.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, r.OutputName(index))
}
