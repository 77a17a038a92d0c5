package types

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest classifies request validation failures. These are
// detected before any I/O is performed; errors.Is reports true for every
// error in this family.
var ErrInvalidRequest = errors.New("invalid split request")

// Request validation errors
var (
	ErrInvalidPartCount = fmt.Errorf("%w: part count must be at least 1", ErrInvalidRequest)
	ErrMissingInputPath = fmt.Errorf("%w: input path is required", ErrInvalidRequest)
	ErrNegativeFileSize = fmt.Errorf("%w: file size cannot be negative", ErrInvalidRequest)
	ErrInputNotRegular  = fmt.Errorf("%w: input is not a regular file", ErrInvalidRequest)
)
