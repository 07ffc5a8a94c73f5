package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// UnsupportedContainerError is an alias to types.UnsupportedContainerError.
// Re-exporting from internal/types to keep the public API in one place.
type UnsupportedContainerError = types.UnsupportedContainerError

// MalformedSizeError is an alias to types.MalformedSizeError.
// Re-exporting from internal/types to keep the public API in one place.
type MalformedSizeError = types.MalformedSizeError

// TooMuchDataError is an alias to types.TooMuchDataError.
// Re-exporting from internal/types to keep the public API in one place.
type TooMuchDataError = types.TooMuchDataError

// InvalidEncodingError is an alias to types.InvalidEncodingError.
// Re-exporting from internal/types to keep the public API in one place.
type InvalidEncodingError = types.InvalidEncodingError
