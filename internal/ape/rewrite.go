package ape

import (
	"io"

	"github.com/simonhull/apetag/internal/id3"
)

// Edit replaces the byte range [Start, End) of a buffer with Data.
// A zero-length range inserts; empty Data removes.
type Edit struct {
	Start int64
	End   int64
	Data  []byte
}

// Apply applies edits to buf in order and returns the resulting buffer.
func Apply(buf []byte, edits []Edit) []byte {
	for _, e := range edits {
		buf = splice(buf, e)
	}
	return buf
}

func splice(buf []byte, e Edit) []byte {
	out := make([]byte, 0, int64(len(buf))-(e.End-e.Start)+int64(len(e.Data)))
	out = append(out, buf[:e.Start]...)
	out = append(out, e.Data...)
	out = append(out, buf[e.End:]...)
	return out
}

// Edits computes the ordered edit list that replaces the located tag
// region with rendered (possibly empty, which removes the tag).
//
// Both ranges refer to the original, pre-edit offsets. The trailing
// edit comes first: the leading block lies strictly before the
// trailing/insertion position, so an edit at or after it does not
// shift the earlier range.
func (l *Location) Edits(rendered []byte) []Edit {
	var edits []Edit

	if l.Trailing != nil {
		edits = append(edits, Edit{Start: l.Trailing.Start, End: l.Trailing.End, Data: rendered})
	} else {
		edits = append(edits, Edit{Start: l.Insert, End: l.Insert, Data: rendered})
	}

	// A leading tag is never rewritten in place; it is removed here
	// and relocated to the trailing position above.
	if l.Leading != nil {
		edits = append(edits, Edit{Start: l.Leading.Start, End: l.Leading.End})
	}

	return edits
}

// WriteTo computes the full post-save file content for tag and writes
// it to w. The stream must be positioned at its start; any leading
// ID3v2 tag is skipped before the tag region is scanned.
//
// No byte reaches w until every parsing, location, and serialization
// step has succeeded.
func WriteTo(w io.Writer, rs io.ReadSeeker, tag *Tag) error {
	if err := id3.Skip(rs); err != nil {
		return err
	}

	loc, err := Locate(rs)
	if err != nil {
		return err
	}

	// Metadata marked read-only on disk survives regardless of what
	// the caller supplied.
	final := &Tag{
		Items:    MergeReadOnly(tag.Items, loc.ReadOnlyItems()),
		ReadOnly: tag.ReadOnly,
	}

	rendered, err := Render(final)
	if err != nil {
		return err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return err
	}
	buf, err := io.ReadAll(rs)
	if err != nil {
		return err
	}

	buf = Apply(buf, loc.Edits(rendered))

	_, err = w.Write(buf)
	return err
}
