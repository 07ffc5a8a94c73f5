// Package iff implements a sequential cursor over IFF/RIFF-style chunk
// streams.
//
// A chunk is a 4-byte identifier followed by an unsigned 32-bit payload
// length. Chunks start on even boundaries: an odd-sized chunk is padded
// with a single zero byte that is not counted in the declared size.
// The byte order of the size field differs per container (RIFF/WAVE is
// little-endian, FORM/AIFF is big-endian), so the cursor is generic over
// a byte-order strategy.
package iff

import (
	"encoding/binary"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/apetag/internal/types"
)

// ByteOrder is the byte-order strategy a Cursor is instantiated with.
type ByteOrder interface {
	Order() binary.ByteOrder
}

// BigEndian selects big-endian chunk sizes (FORM/AIFF).
type BigEndian struct{}

// Order returns the encoding/binary byte order for this strategy.
func (BigEndian) Order() binary.ByteOrder { return binary.BigEndian }

// LittleEndian selects little-endian chunk sizes (RIFF/WAVE).
type LittleEndian struct{}

// Order returns the encoding/binary byte order for this strategy.
func (LittleEndian) Order() binary.ByteOrder { return binary.LittleEndian }

// EmbeddedParser inspects an embedded metadata block held in a chunk and
// reports the length of any trailing footer region that follows the
// chunk content in the stream.
type EmbeddedParser func(content []byte) (trailer int64, err error)

// Cursor reads chunks sequentially from a stream. ID and Size describe
// the chunk most recently visited by Next.
type Cursor[B ByteOrder] struct {
	ID    [4]byte
	Size  uint32
	order B
}

// Next reads the next chunk header: a 4-byte identifier followed by a
// 4-byte size in the configured byte order. Short reads surface as
// io.EOF or io.ErrUnexpectedEOF.
func (c *Cursor[B]) Next(r io.Reader) error {
	if _, err := io.ReadFull(r, c.ID[:]); err != nil {
		return err
	}

	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	c.Size = c.order.Order().Uint32(buf[:])

	return nil
}

// ReadContent reads exactly Size bytes of chunk payload verbatim.
//
// Padding is NOT corrected, so callers can inspect the stream position
// before deciding whether a trailing block follows the payload. Call
// CorrectPosition before the next chunk read.
func (c *Cursor[B]) ReadContent(r io.Reader) ([]byte, error) {
	content := make([]byte, c.Size)
	if _, err := io.ReadFull(r, content); err != nil {
		return nil, err
	}
	return content, nil
}

// ReadCString reads the chunk payload as a NUL-padded UTF-8 string,
// corrects padding, and strips NUL characters from both ends.
// Invalid UTF-8 fails with InvalidEncodingError.
func (c *Cursor[B]) ReadCString(rs io.ReadSeeker) (string, error) {
	content, err := c.ReadContent(rs)
	if err != nil {
		return "", err
	}
	if err := c.CorrectPosition(rs); err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", &types.InvalidEncodingError{What: "chunk " + string(c.ID[:])}
	}

	return strings.Trim(string(content), "\x00"), nil
}

// ReadPString reads the chunk payload as a length-prefixed UTF-8 string,
// where the chunk's declared size is the length. Padding correction is
// driven by the parity of the bytes read. Invalid UTF-8 fails with
// InvalidEncodingError; NUL bytes are preserved.
func (c *Cursor[B]) ReadPString(rs io.ReadSeeker) (string, error) {
	return c.ReadPStringN(rs, int(c.Size))
}

// ReadPStringN is ReadPString with an explicit length, for strings that
// carry their own size prefix inside a larger chunk (RIFF INFO items).
// Padding correction follows the parity of the explicit length, not the
// chunk's declared size.
func (c *Cursor[B]) ReadPStringN(rs io.ReadSeeker, length int) (string, error) {
	content := make([]byte, length)
	if _, err := io.ReadFull(rs, content); err != nil {
		return "", err
	}

	if length%2 != 0 {
		if _, err := rs.Seek(1, io.SeekCurrent); err != nil {
			return "", err
		}
	}

	if !utf8.Valid(content) {
		return "", &types.InvalidEncodingError{What: "chunk " + string(c.ID[:])}
	}

	return string(content), nil
}

// ReadEmbedded reads the chunk payload, hands it to parse, skips the
// trailing footer region parse reports (if any), and corrects padding.
// Parse failures propagate unchanged. The raw payload is returned.
func (c *Cursor[B]) ReadEmbedded(rs io.ReadSeeker, parse EmbeddedParser) ([]byte, error) {
	content := make([]byte, c.Size)
	if _, err := io.ReadFull(rs, content); err != nil {
		return nil, err
	}

	trailer, err := parse(content)
	if err != nil {
		return nil, err
	}

	if trailer > 0 {
		if _, err := rs.Seek(trailer, io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	if err := c.CorrectPosition(rs); err != nil {
		return nil, err
	}

	return content, nil
}

// Skip seeks forward over the chunk payload without reading it, then
// corrects padding.
func (c *Cursor[B]) Skip(rs io.ReadSeeker) error {
	if _, err := rs.Seek(int64(c.Size), io.SeekCurrent); err != nil {
		return err
	}

	return c.CorrectPosition(rs)
}

// CorrectPosition skips the padding byte after an odd-sized chunk.
//
// Chunks are expected to start on even boundaries, and are padded with
// a 0 if necessary. This is NOT the null terminator of the value, and
// it is NOT included in the chunk's size.
func (c *Cursor[B]) CorrectPosition(rs io.ReadSeeker) error {
	if c.Size%2 != 0 {
		if _, err := rs.Seek(1, io.SeekCurrent); err != nil {
			return err
		}
	}

	return nil
}
