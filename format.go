package apetag

import (
	"io"

	"github.com/simonhull/apetag/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to keep the public API in one place.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatAPE     = types.FormatAPE
	FormatMP3     = types.FormatMP3
	FormatWAV     = types.FormatWAV
	FormatAIFF    = types.FormatAIFF
)

// DetectFormat is a wrapper around types.DetectFormat.
// Maintains the public API while delegating to internal implementation.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
