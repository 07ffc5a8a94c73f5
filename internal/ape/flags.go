package ape

// Flags is the 32-bit flag field of an APE tag header or footer.
//
// Header and footer of the same tag differ by exactly one bit (29), so
// flag handling goes through named predicates and setters rather than
// inline bit literals.
type Flags uint32

const (
	flagReadOnly  Flags = 1 << 0
	flagIsHeader  Flags = 1 << 29
	flagHasFooter Flags = 1 << 30
	flagHasHeader Flags = 1 << 31
)

// ReadOnly reports whether the whole tag is marked read-only.
func (f Flags) ReadOnly() bool { return f&flagReadOnly != 0 }

// IsHeader reports whether this flag field belongs to the header copy
// of the boundary block rather than the footer.
func (f Flags) IsHeader() bool { return f&flagIsHeader != 0 }

// HasFooter reports whether the tag contains a footer.
func (f Flags) HasFooter() bool { return f&flagHasFooter != 0 }

// HasHeader reports whether the tag contains a header.
func (f Flags) HasHeader() bool { return f&flagHasHeader != 0 }

// boundaryFlags builds the flag field written to a rendered tag
// boundary. Rendered tags always carry both header and footer.
func boundaryFlags(header, readOnly bool) Flags {
	f := flagHasFooter | flagHasHeader
	if header {
		f |= flagIsHeader
	}
	if readOnly {
		f |= flagReadOnly
	}
	return f
}

// itemFlags is the 32-bit flag field of a single item: bit 0 is the
// read-only flag, bits 1-2 hold the value kind.
func itemFlags(i Item) uint32 {
	f := uint32(i.Kind) << 1
	if i.ReadOnly {
		f |= 1
	}
	return f
}

// itemKind extracts the value kind from an item flag field.
func itemKind(f uint32) ItemKind {
	return ItemKind((f >> 1) & 3)
}
