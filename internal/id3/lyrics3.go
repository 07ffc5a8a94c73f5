package id3

import (
	"fmt"
	"io"
	"strconv"
)

// A Lyrics3v2 block ends with a 6-digit decimal size followed by the
// 9-byte "LYRICS200" signature. The size covers the block from
// "LYRICSBEGIN" up to, but excluding, the size digits themselves.
const lyrics3TailSize = 15

// SkipLyrics3v2 consumes a trailing Lyrics3v2 block ending at the
// current position, leaving the stream at the block's start. No-op if
// no block is present, in which case the position is unchanged.
func SkipLyrics3v2(rs io.ReadSeeker) error {
	if _, err := rs.Seek(-lyrics3TailSize, io.SeekCurrent); err != nil {
		return err
	}

	var tail [lyrics3TailSize]byte
	if _, err := io.ReadFull(rs, tail[:]); err != nil {
		return err
	}

	if string(tail[6:]) != "LYRICS200" {
		return nil
	}

	size, err := strconv.ParseInt(string(tail[:6]), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid Lyrics3v2 size field: %w", err)
	}

	_, err = rs.Seek(-(size + lyrics3TailSize), io.SeekCurrent)
	return err
}
