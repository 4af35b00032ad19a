package ggfx

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every filter in the module. Sub-packages wrap
// these sentinels, so callers can classify any failure with errors.Is.
var (
	// ErrInvalidArgument is returned for malformed sizes, regions and parameters.
	ErrInvalidArgument = errors.New("ggfx: invalid argument")

	// ErrNilReference is returned when a required buffer, filter, kernel or
	// mapping is missing.
	ErrNilReference = errors.New("ggfx: nil reference")

	// ErrUnsupported is returned when a filter is invoked through a path it
	// does not implement.
	ErrUnsupported = errors.New("ggfx: unsupported operation")
)

// Specific errors returned by the buffer and filter contract.
var (
	// ErrInvalidDimensions is returned when a buffer is created with a
	// non-positive width or height, or with a pixel slice of the wrong length.
	ErrInvalidDimensions = fmt.Errorf("%w: invalid buffer dimensions", ErrInvalidArgument)

	// ErrInvalidRegion is returned when a region has negative extent or does
	// not fit inside the buffers it addresses.
	ErrInvalidRegion = fmt.Errorf("%w: invalid region", ErrInvalidArgument)

	// ErrNilBuffer is returned when a required buffer is nil.
	ErrNilBuffer = fmt.Errorf("%w: buffer is nil", ErrNilReference)

	// ErrNilFilter is returned when a nil filter is applied.
	ErrNilFilter = fmt.Errorf("%w: filter is nil", ErrNilReference)
)
