package ape

import (
	"bytes"
	"math"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Render serializes a tag to its exact on-disk byte sequence:
// a 32-byte header, the items in order, and a 32-byte footer that is
// byte-identical to the header except for the header bit.
//
// An empty item set renders to zero bytes (no header or footer at
// all), which is what removes a tag on rewrite. A tag whose total size
// would not fit the footer's 32-bit size field fails with
// TooMuchDataError before producing any bytes.
func Render(t *Tag) ([]byte, error) {
	if len(t.Items) == 0 {
		return nil, nil
	}

	var body bytes.Buffer
	bw := binary.NewSafeWriter(&body)

	for _, item := range t.Items {
		if !item.valid() {
			return nil, &types.InvalidEncodingError{What: "item " + item.Key}
		}

		if err := binary.WriteLE(bw, uint32(len(item.Value))); err != nil {
			return nil, err
		}
		if err := binary.WriteLE(bw, itemFlags(item)); err != nil {
			return nil, err
		}
		if err := bw.WriteString(item.Key); err != nil {
			return nil, err
		}
		if err := bw.WriteByte(0); err != nil {
			return nil, err
		}
		if err := bw.WriteBytes(item.Value); err != nil {
			return nil, err
		}
	}

	// The declared size covers the items and the footer, not the header
	size := uint64(body.Len()) + BoundarySize
	if size > math.MaxUint32 {
		return nil, &types.TooMuchDataError{Size: size}
	}

	count := uint32(len(t.Items))

	out := make([]byte, 0, BoundarySize+body.Len()+BoundarySize)
	out = append(out, renderBoundary(uint32(size), count, boundaryFlags(true, t.ReadOnly))...)
	out = append(out, body.Bytes()...)
	out = append(out, renderBoundary(uint32(size), count, boundaryFlags(false, t.ReadOnly))...)

	return out, nil
}

// renderBoundary renders one 32-byte header or footer block.
func renderBoundary(size, count uint32, flags Flags) []byte {
	var buf bytes.Buffer
	bw := binary.NewSafeWriter(&buf)

	// Writes to a bytes.Buffer cannot fail
	_ = bw.WriteBytes(Preamble[:])
	_ = binary.WriteLE(bw, uint32(WriteVersion))
	_ = binary.WriteLE(bw, size)
	_ = binary.WriteLE(bw, count)
	_ = binary.WriteLE(bw, uint32(flags))
	// The boundary must end in 8 bytes of zeros
	_ = binary.WriteLE(bw, uint64(0))

	return buf.Bytes()
}
