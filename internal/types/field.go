package types

// Field is one text metadata entry read from a chunk container, keyed
// by its chunk or sub-chunk identifier ("NAME", "INAM", ...).
type Field struct {
	Key   string
	Value string
}
