package apetag

import (
	"github.com/simonhull/apetag/internal/ape"
)

// Tag is an alias to ape.Tag: an ordered item sequence plus a whole-tag
// read-only flag.
type Tag = ape.Tag

// Item is an alias to ape.Item: one key/value entry of a tag.
type Item = ape.Item

// ItemKind is an alias to ape.ItemKind: the value type of an item.
type ItemKind = ape.ItemKind

// Re-export the item kinds.
const (
	// Text is a UTF-8 text value.
	Text = ape.Text
	// Binary is an opaque binary payload.
	Binary = ape.Binary
	// Locator is a UTF-8 locator/URI value.
	Locator = ape.Locator
)

// NewText creates a text item.
func NewText(key, value string) Item {
	return ape.NewText(key, value)
}

// NewBinary creates a binary item.
func NewBinary(key string, value []byte) Item {
	return ape.NewBinary(key, value)
}

// NewLocator creates a locator item.
func NewLocator(key, value string) Item {
	return ape.NewLocator(key, value)
}
