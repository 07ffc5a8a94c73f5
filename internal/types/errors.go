package types

import (
	"fmt"
	"math"
)

// UnsupportedContainerError is returned when the container probe rejects
// the stream, or when a save is attempted on a container that cannot
// carry an APE tag.
type UnsupportedContainerError struct {
	Path   string
	Reason string
}

func (e *UnsupportedContainerError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported container: %s", e.Reason)
	}
	return fmt.Sprintf("%s: unsupported container: %s", e.Path, e.Reason)
}

// MalformedSizeError is returned when a tag's declared size is
// inconsistent with the stream it was found in, such as a trailing tag
// whose size would place its start before the beginning of the file.
type MalformedSizeError struct {
	Reason string
}

func (e *MalformedSizeError) Error() string {
	return fmt.Sprintf("malformed tag size: %s", e.Reason)
}

// TooMuchDataError is returned when a serialized tag would exceed the
// 32-bit size field of the tag footer.
type TooMuchDataError struct {
	Size uint64
}

func (e *TooMuchDataError) Error() string {
	return fmt.Sprintf("serialized tag size %d exceeds the maximum of %d bytes", e.Size, uint64(math.MaxUint32))
}

// InvalidEncodingError is returned when bytes that must be valid UTF-8
// are not, such as item keys, text values, and locator values.
type InvalidEncodingError struct {
	What string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8", e.What)
}
