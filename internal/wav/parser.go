// Package wav reads text metadata from RIFF/WAVE containers.
//
// WAVE is a RIFF container with little-endian chunk sizes. Text
// metadata lives in LIST chunks of type INFO, as length-prefixed
// sub-items padded to even boundaries by their own length parity.
package wav

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"

	"github.com/simonhull/apetag/internal/id3"
	"github.com/simonhull/apetag/internal/iff"
	"github.com/simonhull/apetag/internal/types"
)

// Parse reads the INFO metadata of a WAVE stream positioned at its
// start. The embedded ID3 chunk, if any, is returned raw.
func Parse(rs io.ReadSeeker) ([]types.Field, []byte, error) {
	// RIFF header: "RIFF" + size + "WAVE"
	if _, err := rs.Seek(12, io.SeekStart); err != nil {
		return nil, nil, err
	}

	var (
		cursor iff.Cursor[iff.LittleEndian]
		fields []types.Field
		id3Tag []byte
	)

	for {
		err := cursor.Next(rs)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch string(cursor.ID[:]) {
		case "LIST":
			listFields, err := parseList(rs, &cursor)
			if err != nil {
				return nil, nil, err
			}
			fields = append(fields, listFields...)
		case "ID3 ", "id3 ":
			content, err := cursor.ReadEmbedded(rs, id3.Embedded)
			if err != nil {
				return nil, nil, err
			}
			id3Tag = content
		default:
			if err := cursor.Skip(rs); err != nil {
				return nil, nil, err
			}
		}
	}

	return fields, id3Tag, nil
}

// parseList consumes a LIST chunk. INFO lists yield their sub-items;
// other list types are skipped whole.
func parseList(rs io.ReadSeeker, cursor *iff.Cursor[iff.LittleEndian]) ([]types.Field, error) {
	var listType [4]byte
	if _, err := io.ReadFull(rs, listType[:]); err != nil {
		return nil, err
	}

	remaining := int64(cursor.Size) - 4

	if string(listType[:]) != "INFO" {
		if _, err := rs.Seek(remaining, io.SeekCurrent); err != nil {
			return nil, err
		}
		return nil, cursor.CorrectPosition(rs)
	}

	var fields []types.Field
	for remaining >= 8 {
		var header [8]byte
		if _, err := io.ReadFull(rs, header[:]); err != nil {
			return nil, err
		}
		key := string(header[:4])
		size := binary.LittleEndian.Uint32(header[4:])

		// Sub-item values carry their own length and parity padding,
		// independent of the LIST chunk's declared size.
		value, err := cursor.ReadPStringN(rs, int(size))
		if err != nil {
			return nil, err
		}

		fields = append(fields, types.Field{
			Key:   key,
			Value: strings.Trim(value, "\x00"),
		})

		remaining -= 8 + int64(size) + int64(size%2)
	}

	return fields, cursor.CorrectPosition(rs)
}
