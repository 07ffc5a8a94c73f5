package types

import (
	"io"

	"github.com/simonhull/apetag/internal/binary"
)

// Format represents the detected container format
type Format int

const (
	// FormatUnknown represents an unknown or unsupported container.
	FormatUnknown Format = iota
	// FormatAPE represents Monkey's Audio files.
	FormatAPE
	// FormatMP3 represents MP3 audio files.
	FormatMP3
	// FormatWAV represents WAV audio files.
	FormatWAV
	// FormatAIFF represents AIFF audio files.
	FormatAIFF
)

// String returns the human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatAPE:
		return "APE"
	case FormatMP3:
		return "MP3"
	case FormatWAV:
		return "WAV"
	case FormatAIFF:
		return "AIFF"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatAPE:
		return []string{".ape"}
	case FormatMP3:
		return []string{".mp3"}
	case FormatWAV:
		return []string{".wav"}
	case FormatAIFF:
		return []string{".aiff", ".aif"}
	default:
		return nil
	}
}

// TagCapable reports whether the format may legally carry a trailing
// APE tag. Only these containers are accepted by the save path.
func (f Format) TagCapable() bool {
	return f == FormatAPE || f == FormatMP3
}

// DetectFormat determines the container format by examining magic bytes.
//
// Supported formats: APE (Monkey's Audio), MP3, WAV, AIFF
//
// Detection is based on file signatures at the beginning of the file.
// It does not validate the entire file structure.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	// File must be at least 4 bytes for any meaningful detection
	if size < 4 {
		return FormatUnknown, &UnsupportedContainerError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, 4)
	if err := sr.ReadAt(magic, 0, "file magic bytes"); err != nil {
		return FormatUnknown, &UnsupportedContainerError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	// Check for Monkey's Audio ("MAC " or the legacy "MACF")
	if string(magic) == "MAC " || string(magic) == "MACF" {
		return FormatAPE, nil
	}

	// Check for ID3v2 tag (MP3)
	if string(magic[:3]) == "ID3" {
		return FormatMP3, nil
	}

	// Check for MP3 frame sync (0xFFE or 0xFFF)
	// This catches MP3 files without ID3 tags
	if magic[0] == 0xFF && (magic[1]&0xE0) == 0xE0 {
		return FormatMP3, nil
	}

	// Check for RIFF/WAV (RIFF....WAVE)
	if string(magic) == "RIFF" && size >= 12 {
		waveTag := make([]byte, 4)
		if err := sr.ReadAt(waveTag, 8, "WAVE tag"); err == nil {
			if string(waveTag) == "WAVE" {
				return FormatWAV, nil
			}
		}
	}

	// Check for AIFF (FORM....AIFF)
	if string(magic) == "FORM" && size >= 12 {
		aiffTag := make([]byte, 4)
		if err := sr.ReadAt(aiffTag, 8, "AIFF tag"); err == nil {
			if string(aiffTag) == "AIFF" || string(aiffTag) == "AIFC" {
				return FormatAIFF, nil
			}
		}
	}

	return FormatUnknown, &UnsupportedContainerError{
		Path:   path,
		Reason: "unrecognized file signature",
	}
}
