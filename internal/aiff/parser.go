// Package aiff reads text metadata chunks from AIFF/AIFC containers.
//
// AIFF is a FORM container with big-endian chunk sizes. Only the plain
// text chunks and the embedded ID3 chunk are visited; audio data and
// properties are skipped.
package aiff

import (
	"errors"
	"io"

	"github.com/simonhull/apetag/internal/id3"
	"github.com/simonhull/apetag/internal/iff"
	"github.com/simonhull/apetag/internal/types"
)

// textChunks are the AIFF chunks holding NUL-padded text.
var textChunks = map[string]bool{
	"NAME": true, // title
	"AUTH": true, // author
	"(c) ": true, // copyright
	"ANNO": true, // annotation
}

// Parse reads the text metadata chunks of an AIFF stream positioned at
// its start. The embedded ID3 chunk, if any, is returned raw.
func Parse(rs io.ReadSeeker) ([]types.Field, []byte, error) {
	// FORM header: "FORM" + size + "AIFF"/"AIFC"
	if _, err := rs.Seek(12, io.SeekStart); err != nil {
		return nil, nil, err
	}

	var (
		cursor iff.Cursor[iff.BigEndian]
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

		switch {
		case textChunks[string(cursor.ID[:])]:
			value, err := cursor.ReadCString(rs)
			if err != nil {
				return nil, nil, err
			}
			fields = append(fields, types.Field{Key: string(cursor.ID[:]), Value: value})
		case string(cursor.ID[:]) == "ID3 ":
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
