package world

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced at the public API boundary (spec.md §7). The
// core never panics or aborts the process on a caller-supplied bad value;
// these are returned, wrapped with context via fmt.Errorf("...: %w", ...).
var (
	// ErrUnsupportedScale is returned when a Range's Scale isn't one the
	// selected generator/version can serve.
	ErrUnsupportedScale = errors.New("unsupported scale")
	// ErrUnsupportedVersion is returned when a Generator is requested for
	// a version/dimension pair this implementation doesn't dispatch.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrAllocationFailed is returned by AllocCache when it ends up without a
	// buffer. No upper bound on a Range's size is checked before allocating.
	ErrAllocationFailed = errors.New("allocation failed")
	// ErrInvalidRange is returned for non-positive extents or a caller
	// buffer smaller than getMinCacheSize requires.
	ErrInvalidRange = errors.New("invalid range")
)

// wrapErr attaches a message to a sentinel error at a public API boundary.
func wrapErr(sentinel error, msg string) error {
	return fmt.Errorf("world: %w: %s", sentinel, msg)
}
