package ape

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/simonhull/apetag/internal/types"
)

func roundTripItems() []Item {
	return []Item{
		NewText("A", "x"),
		{Key: "B", Kind: Binary, Value: []byte{0x01, 0x02}, ReadOnly: true},
		NewLocator("Cover Art (Front)", "cover.jpg"),
	}
}

func TestReadTag_RoundTripFromHeader(t *testing.T) {
	want := roundTripItems()
	rendered, err := Render(&Tag{Items: want})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	rs := bytes.NewReader(rendered)
	if _, err := rs.Seek(int64(len(Preamble)), io.SeekStart); err != nil {
		t.Fatal(err)
	}

	tag, size, err := ReadTag(rs, false)
	if err != nil {
		t.Fatalf("ReadTag() error: %v", err)
	}

	if !reflect.DeepEqual(tag.Items, want) {
		t.Errorf("round-tripped items = %+v, want %+v", tag.Items, want)
	}
	if tag.Version != WriteVersion {
		t.Errorf("Version = %d, want %d", tag.Version, WriteVersion)
	}
	// Declared size plus the header announced by the flags
	if int(size) != len(rendered) {
		t.Errorf("size = %d, want full extent %d", size, len(rendered))
	}
}

func TestReadTag_RoundTripFromFooter(t *testing.T) {
	want := roundTripItems()
	rendered, err := Render(&Tag{Items: want, ReadOnly: true})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	rs := bytes.NewReader(rendered)
	footerStart := int64(len(rendered) - BoundarySize)
	if _, err := rs.Seek(footerStart+int64(len(Preamble)), io.SeekStart); err != nil {
		t.Fatal(err)
	}

	tag, size, err := ReadTag(rs, true)
	if err != nil {
		t.Fatalf("ReadTag() error: %v", err)
	}

	if !reflect.DeepEqual(tag.Items, want) {
		t.Errorf("round-tripped items = %+v, want %+v", tag.Items, want)
	}
	if !tag.ReadOnly {
		t.Error("ReadOnly = false, want true")
	}
	if int(size) != len(rendered) {
		t.Errorf("size = %d, want full extent %d", size, len(rendered))
	}
}

// footerOnlyTag builds an APEv1-style tag: items followed by a footer
// that announces no header, version 1000.
func footerOnlyTag(items []Item) []byte {
	var body bytes.Buffer
	for _, item := range items {
		sz := make([]byte, 4)
		binary.LittleEndian.PutUint32(sz, uint32(len(item.Value)))
		body.Write(sz)
		binary.LittleEndian.PutUint32(sz, itemFlags(item))
		body.Write(sz)
		body.WriteString(item.Key)
		body.WriteByte(0)
		body.Write(item.Value)
	}

	footer := make([]byte, BoundarySize)
	copy(footer, Preamble[:])
	binary.LittleEndian.PutUint32(footer[8:], 1000)
	binary.LittleEndian.PutUint32(footer[12:], uint32(body.Len()+BoundarySize))
	binary.LittleEndian.PutUint32(footer[16:], uint32(len(items)))
	binary.LittleEndian.PutUint32(footer[20:], 0)

	return append(body.Bytes(), footer...)
}

func TestReadTag_V1FooterOnly(t *testing.T) {
	want := []Item{NewText("Artist", "Someone")}
	data := footerOnlyTag(want)

	rs := bytes.NewReader(data)
	footerStart := int64(len(data) - BoundarySize)
	if _, err := rs.Seek(footerStart+int64(len(Preamble)), io.SeekStart); err != nil {
		t.Fatal(err)
	}

	tag, size, err := ReadTag(rs, true)
	if err != nil {
		t.Fatalf("ReadTag() error: %v", err)
	}

	if !reflect.DeepEqual(tag.Items, want) {
		t.Errorf("items = %+v, want %+v", tag.Items, want)
	}
	if tag.Version != 1000 {
		t.Errorf("Version = %d, want 1000", tag.Version)
	}
	// No header flag, so the extent is items + footer only
	if int(size) != len(data) {
		t.Errorf("size = %d, want %d", size, len(data))
	}
}

func TestReadTag_DeclaredSizeSmallerThanFooter(t *testing.T) {
	boundary := make([]byte, BoundarySize)
	copy(boundary, Preamble[:])
	binary.LittleEndian.PutUint32(boundary[8:], 2000)
	binary.LittleEndian.PutUint32(boundary[12:], 16) // impossible: smaller than the footer

	rs := bytes.NewReader(boundary)
	if _, err := rs.Seek(int64(len(Preamble)), io.SeekStart); err != nil {
		t.Fatal(err)
	}

	_, _, err := ReadTag(rs, false)
	var sizeErr *types.MalformedSizeError
	if !errors.As(err, &sizeErr) {
		t.Errorf("ReadTag() error = %v, want MalformedSizeError", err)
	}
}

func TestReadTag_ShortStream(t *testing.T) {
	rs := bytes.NewReader(Preamble[:])
	if _, err := rs.Seek(int64(len(Preamble)), io.SeekStart); err != nil {
		t.Fatal(err)
	}

	_, _, err := ReadTag(rs, false)
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadTag() error = %v, want end-of-stream", err)
	}
}

func TestReadTag_InvalidItemEncoding(t *testing.T) {
	// A text item whose value is not UTF-8 must fail hard
	items := []Item{{Key: "K", Kind: Text, Value: []byte{0xFF, 0xFE}}}
	data := footerOnlyTag(items)

	rs := bytes.NewReader(data)
	footerStart := int64(len(data) - BoundarySize)
	if _, err := rs.Seek(footerStart+int64(len(Preamble)), io.SeekStart); err != nil {
		t.Fatal(err)
	}

	_, _, err := ReadTag(rs, true)
	var encErr *types.InvalidEncodingError
	if !errors.As(err, &encErr) {
		t.Errorf("ReadTag() error = %v, want InvalidEncodingError", err)
	}
}
