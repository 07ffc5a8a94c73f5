package id3

import "io"

// v1Size is the fixed size of an ID3v1 tag, always the last 128 bytes
// of the file when present.
const v1Size = 128

// SkipV1 positions the stream immediately before a trailing ID3v1 tag,
// or at end-of-stream if none exists.
func SkipV1(rs io.ReadSeeker) error {
	if _, err := rs.Seek(-v1Size, io.SeekEnd); err != nil {
		// Stream shorter than an ID3v1 tag
		_, err = rs.Seek(0, io.SeekEnd)
		return err
	}

	var magic [3]byte
	if _, err := io.ReadFull(rs, magic[:]); err != nil {
		return err
	}

	if string(magic[:]) == "TAG" {
		_, err := rs.Seek(-3, io.SeekCurrent)
		return err
	}

	_, err := rs.Seek(0, io.SeekEnd)
	return err
}
