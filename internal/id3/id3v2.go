// Package id3 implements just enough of the ID3 family to navigate
// around neighboring tags: ID3v2 header parsing and skipping, plus
// trailing ID3v1 and Lyrics3v2 skipping. Frame-level parsing is out of
// scope; callers only need to know where the blocks begin and end.
package id3

import (
	"fmt"
	"io"
)

// headerSize is the fixed size of an ID3v2 tag header.
const headerSize = 10

// footerSize is the fixed size of an ID3v2 tag footer, present when the
// header's footer flag is set.
const footerSize = 10

// Header is the 10-byte ID3v2 tag header.
type Header struct {
	Version  byte // Major version (2, 3 or 4)
	Revision byte
	Flags    byte
	Size     uint32 // Tag size (excluding header and footer), synchsafe
}

// HasFooter reports whether a 10-byte footer follows the tag.
func (h Header) HasFooter() bool {
	return h.Flags&0x10 != 0
}

// ParseHeader parses an ID3v2 header from the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < headerSize {
		return Header{}, io.ErrUnexpectedEOF
	}

	if string(b[0:3]) != "ID3" {
		return Header{}, fmt.Errorf("missing ID3 identifier")
	}

	return Header{
		Version:  b[3],
		Revision: b[4],
		Flags:    b[5],
		Size:     decodeSynchsafe(b[6:10]),
	}, nil
}

// Embedded is an iff.EmbeddedParser for ID3v2 blocks held in container
// chunks. It reports the length of the trailing footer region when the
// block's footer flag is set.
func Embedded(content []byte) (int64, error) {
	header, err := ParseHeader(content)
	if err != nil {
		return 0, err
	}

	if header.HasFooter() {
		return footerSize, nil
	}

	return 0, nil
}

// Skip consumes a leading ID3v2 tag at the current position, leaving
// the stream just past it. No-op if no tag is present.
func Skip(rs io.ReadSeeker) error {
	var buf [headerSize]byte
	n, err := io.ReadFull(rs, buf[:])
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		// Too short to hold an ID3v2 tag; rewind and carry on
		_, err = rs.Seek(int64(-n), io.SeekCurrent)
		return err
	}
	if err != nil {
		return err
	}

	header, err := ParseHeader(buf[:])
	if err != nil {
		_, err = rs.Seek(-headerSize, io.SeekCurrent)
		return err
	}

	skip := int64(header.Size)
	if header.HasFooter() {
		skip += footerSize
	}
	_, err = rs.Seek(skip, io.SeekCurrent)

	return err
}

// decodeSynchsafe decodes a 4-byte synchsafe integer (7 bits per byte).
func decodeSynchsafe(b []byte) uint32 {
	return uint32(b[0]&0x7F)<<21 | uint32(b[1]&0x7F)<<14 | uint32(b[2]&0x7F)<<7 | uint32(b[3]&0x7F)
}
