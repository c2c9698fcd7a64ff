package sweep

import "errors"

var (
	// ErrSampleCount indicates fewer than one requested sample.
	ErrSampleCount = errors.New("sweep: sample count must be at least 1")

	// ErrInvalidRange indicates bounds that the spacing rule cannot use.
	ErrInvalidRange = errors.New("sweep: invalid range")
)
