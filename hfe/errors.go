package hfe

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers (spec.md §7). All are reported
// synchronously; no partial output is produced on failure. Use errors.Is
// against these sentinels; the concrete error returned is usually wrapped
// with fmt.Errorf("%w: ...", ErrXxx) to carry the offending value.
var (
	// ErrNotHFEImage is returned when the magic bytes at offset 0 don't
	// spell "HXCPICFE".
	ErrNotHFEImage = errors.New("not an HFE image")

	// ErrUnsupportedEncoding is returned when the header's encoding byte
	// is neither 2 (SD/FM) nor 0 (DD/MFM).
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnsupportedInterfaceMode is returned when the header's interface
	// mode byte isn't 7.
	ErrUnsupportedInterfaceMode = errors.New("unsupported interface mode")

	// ErrInvalidTrackCount is returned when the number of decoded tracks
	// doesn't equal sides*tracks.
	ErrInvalidTrackCount = errors.New("invalid track count")

	// ErrMalformedTrack is returned when a track's address/data marks
	// don't match the expected value, a sector id repeats within one
	// track, or a sector id falls outside 0..Sectors-1.
	ErrMalformedTrack = errors.New("malformed track")
)

// wrapf wraps a sentinel error with a formatted detail message, keeping
// errors.Is(err, sentinel) working for callers.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
