package genhw

import "errors"

// Pipeline build errors.
var (
	// ErrBadPipelineData is returned when the supplied configuration
	// fragments describe an illegal pipeline: an unrecognized fragment or
	// shader stage, oversized vertex input, an illegal topology, or a
	// stage combination the hardware cannot run. Specific failures wrap
	// this error.
	ErrBadPipelineData = errors.New("genhw: malformed pipeline data")

	// ErrUnavailable is returned for operations the driver does not
	// implement and for fences queried before any submission.
	ErrUnavailable = errors.New("genhw: unavailable")

	// ErrNotReady is returned when a fence has not signaled within the
	// requested wait.
	ErrNotReady = errors.New("genhw: not ready")
)
