// Package ape implements reading, locating, serializing, and rewriting
// APEv2 tags, the trailer metadata block used by Monkey's Audio and MP3
// files. A tag belongs at end-of-file, but some writers put it at the
// start of the tag region instead; the locator finds both and the
// rewriter always relocates a misplaced tag to the standard trailing
// position.
package ape

import "unicode/utf8"

// ItemKind is the value type of a tag item, stored in bits 1-2 of the
// item flags.
type ItemKind uint8

const (
	// Text is a UTF-8 text value.
	Text ItemKind = iota
	// Binary is an opaque binary payload.
	Binary
	// Locator is a UTF-8 locator/URI value.
	Locator
)

// String returns the human-readable kind name.
func (k ItemKind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	case Locator:
		return "locator"
	default:
		return "unknown"
	}
}

// Item is a single key/value entry in an APE tag.
//
// Value holds the encoded bytes: UTF-8 for Text and Locator kinds, raw
// bytes for Binary. Keys are arbitrary text excluding NUL, which
// separates key from value on disk.
type Item struct {
	Key      string
	Kind     ItemKind
	Value    []byte
	ReadOnly bool
}

// NewText creates a text item.
func NewText(key, value string) Item {
	return Item{Key: key, Kind: Text, Value: []byte(value)}
}

// NewBinary creates a binary item.
func NewBinary(key string, value []byte) Item {
	return Item{Key: key, Kind: Binary, Value: value}
}

// NewLocator creates a locator item.
func NewLocator(key, value string) Item {
	return Item{Key: key, Kind: Locator, Value: []byte(value)}
}

// Text returns the value decoded as a string. Meaningful for Text and
// Locator items; for Binary items it returns the raw bytes as-is.
func (i Item) Text() string {
	return string(i.Value)
}

// valid reports whether the item can be serialized: a NUL-free key and,
// for Text and Locator kinds, a UTF-8 value.
func (i Item) valid() bool {
	for j := 0; j < len(i.Key); j++ {
		if i.Key[j] == 0 {
			return false
		}
	}
	if i.Kind != Binary && !utf8.Valid(i.Value) {
		return false
	}
	return true
}
