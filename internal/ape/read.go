package ape

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/simonhull/apetag/internal/types"
)

// ReadTag parses a tag from a stream positioned just past the 8-byte
// preamble of its header (footer=false) or footer (footer=true).
//
// The returned size is the tag's full on-disk extent: the declared size
// (items plus footer) plus the 32-byte header when the flags announce
// one. After a footer read the stream is left at the start of the
// footer; after a header read, at the end of the items.
func ReadTag(rs io.ReadSeeker, footer bool) (*Tag, uint32, error) {
	version, err := readUint32(rs)
	if err != nil {
		return nil, 0, err
	}

	size, err := readUint32(rs)
	if err != nil {
		return nil, 0, err
	}
	if size < BoundarySize {
		return nil, 0, &types.MalformedSizeError{Reason: "declared size smaller than the footer"}
	}

	count, err := readUint32(rs)
	if err != nil {
		return nil, 0, err
	}

	rawFlags, err := readUint32(rs)
	if err != nil {
		return nil, 0, err
	}

	// 8 reserved bytes close the boundary block
	if _, err := rs.Seek(8, io.SeekCurrent); err != nil {
		return nil, 0, err
	}

	if footer {
		// The items end where the footer begins; back up over
		// items + footer to reach their start. A declared size
		// reaching past the start of the stream is garbage.
		pos, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, 0, err
		}
		if int64(size) > pos {
			return nil, 0, &types.MalformedSizeError{Reason: "file has a tag with an invalid size"}
		}
		if _, err := rs.Seek(-int64(size), io.SeekCurrent); err != nil {
			return nil, 0, err
		}
	}

	items := make([]Item, 0, count)
	for i := uint32(0); i < count; i++ {
		item, err := readItem(rs)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	flags := Flags(rawFlags)
	if flags.HasHeader() {
		size += BoundarySize
	}

	tag := &Tag{
		Items:    items,
		ReadOnly: flags.ReadOnly(),
		Version:  version,
	}

	return tag, size, nil
}

// readItem parses one item: value size, flags, NUL-terminated key,
// then the value bytes.
func readItem(r io.Reader) (Item, error) {
	valueSize, err := readUint32(r)
	if err != nil {
		return Item{}, err
	}

	flags, err := readUint32(r)
	if err != nil {
		return Item{}, err
	}

	var key []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Item{}, err
		}
		if b[0] == 0 {
			break
		}
		key = append(key, b[0])
	}
	if !utf8.Valid(key) {
		return Item{}, &types.InvalidEncodingError{What: "item key"}
	}

	value := make([]byte, valueSize)
	if _, err := io.ReadFull(r, value); err != nil {
		return Item{}, err
	}

	kind := itemKind(flags)
	if kind != Binary && !utf8.Valid(value) {
		return Item{}, &types.InvalidEncodingError{What: "item " + string(key)}
	}

	return Item{
		Key:      string(key),
		Kind:     kind,
		Value:    value,
		ReadOnly: flags&1 != 0,
	}, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
