package ape

import (
	"bytes"
	"io"

	"github.com/simonhull/apetag/internal/id3"
	"github.com/simonhull/apetag/internal/types"
)

// Placement is one located tag block with its absolute, end-exclusive
// byte range in the stream.
type Placement struct {
	Start int64
	End   int64
	Tag   *Tag
}

// Location is the result of scanning the tag region of a stream.
//
// At most one nonstandard leading block and one standard trailing block
// exist. Insert is the fallback insertion point for a brand-new tag: it
// sits immediately before any trailing legacy blocks (ID3v1,
// Lyrics3v2), which must remain nearest end-of-file.
type Location struct {
	Leading  *Placement
	Trailing *Placement
	Insert   int64
}

// Locate scans a stream for APE tag blocks. The stream must be
// positioned at the start of the tag-search region, after any leading
// container tag has been skipped by the caller.
func Locate(rs io.ReadSeeker) (*Location, error) {
	loc := &Location{}

	preamble := make([]byte, len(Preamble))
	if _, err := io.ReadFull(rs, preamble); err != nil {
		return nil, err
	}

	if bytes.Equal(preamble, Preamble[:]) {
		// A tag at the start of the tag region is nonstandard. It is
		// removed on save and rewritten at the bottom, where it
		// belongs.
		start, err := rs.Seek(-int64(len(Preamble)), io.SeekCurrent)
		if err != nil {
			return nil, err
		}
		if _, err := rs.Seek(int64(len(Preamble)), io.SeekCurrent); err != nil {
			return nil, err
		}

		tag, size, err := ReadTag(rs, false)
		if err != nil {
			return nil, err
		}

		loc.Leading = &Placement{
			Start: start,
			End:   start + int64(size),
			Tag:   tag,
		}
	} else {
		if _, err := rs.Seek(-int64(len(Preamble)), io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	// Skip over ID3v1 and Lyrics3v2 tags; each is a no-op when absent
	if err := id3.SkipV1(rs); err != nil {
		return nil, err
	}
	if err := id3.SkipLyrics3v2(rs); err != nil {
		return nil, err
	}

	// In case there's no tag already, this is the spot it belongs
	insert, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	loc.Insert = insert

	// Now search for a tag footer ending at the insertion point
	if _, err := rs.Seek(-BoundarySize, io.SeekCurrent); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rs, preamble); err != nil {
		return nil, err
	}

	if bytes.Equal(preamble, Preamble[:]) {
		tag, size, err := ReadTag(rs, true)
		if err != nil {
			return nil, err
		}

		// The tag extends backward from the insertion point; a size
		// reaching past the start of the stream is garbage.
		if int64(size) > insert {
			return nil, &types.MalformedSizeError{Reason: "file has a tag with an invalid size"}
		}

		loc.Trailing = &Placement{
			Start: insert - int64(size),
			End:   insert,
			Tag:   tag,
		}
	}

	return loc, nil
}

// ReadOnlyItems returns the authoritative read-only override set: the
// union of items flagged read-only across every located block, leading
// block first.
func (l *Location) ReadOnlyItems() []Item {
	var out []Item
	if l.Leading != nil {
		out = append(out, l.Leading.Tag.readOnlyItems()...)
	}
	if l.Trailing != nil {
		for _, item := range l.Trailing.Tag.readOnlyItems() {
			replaced := false
			for i := range out {
				if out[i].Key == item.Key {
					out[i] = item
					replaced = true
					break
				}
			}
			if !replaced {
				out = append(out, item)
			}
		}
	}
	return out
}

// Existing returns the most authoritative located tag for reading: the
// standard trailing block when present, else the leading block, else
// nil.
func (l *Location) Existing() *Tag {
	if l.Trailing != nil {
		return l.Trailing.Tag
	}
	if l.Leading != nil {
		return l.Leading.Tag
	}
	return nil
}
