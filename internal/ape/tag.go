package ape

// Preamble is the fixed 8-byte magic identifying both the header and
// footer placements of an APE tag.
var Preamble = [8]byte{'A', 'P', 'E', 'T', 'A', 'G', 'E', 'X'}

const (
	// BoundarySize is the fixed size of a tag header or footer.
	BoundarySize = 32

	// WriteVersion is the tag version written on every rewrite. An
	// older on-disk version is always upgraded.
	WriteVersion = 2000
)

// Tag is an ordered sequence of items plus a whole-tag read-only flag.
//
// Tags are ephemeral: built fresh per scan, consumed by merging and
// serialization. The durable artifact is only the on-disk bytes.
type Tag struct {
	Items    []Item
	ReadOnly bool

	// Version is the on-disk version this tag was read with (1000 or
	// 2000), or zero for a tag built in memory.
	Version uint32
}

// Get returns a pointer to the item with the given key, or nil.
func (t *Tag) Get(key string) *Item {
	for i := range t.Items {
		if t.Items[i].Key == key {
			return &t.Items[i]
		}
	}
	return nil
}

// Set replaces the item with a matching key, preserving its position,
// or appends when the key is new.
func (t *Tag) Set(item Item) {
	for i := range t.Items {
		if t.Items[i].Key == item.Key {
			t.Items[i] = item
			return
		}
	}
	t.Items = append(t.Items, item)
}

// Remove deletes the item with the given key, if present.
func (t *Tag) Remove(key string) {
	for i := range t.Items {
		if t.Items[i].Key == key {
			t.Items = append(t.Items[:i], t.Items[i+1:]...)
			return
		}
	}
}

// readOnlyItems returns the items flagged read-only, in order.
func (t *Tag) readOnlyItems() []Item {
	var out []Item
	for _, item := range t.Items {
		if item.ReadOnly {
			out = append(out, item)
		}
	}
	return out
}

// MergeReadOnly applies the on-disk read-only override set to the
// caller-supplied items: every caller item except those whose key
// matches an override key, followed by every override item verbatim.
// Read-only protection therefore survives regardless of caller intent.
func MergeReadOnly(desired, overrides []Item) []Item {
	if len(overrides) == 0 {
		return desired
	}

	overridden := make(map[string]bool, len(overrides))
	for _, item := range overrides {
		overridden[item.Key] = true
	}

	out := make([]Item, 0, len(desired)+len(overrides))
	for _, item := range desired {
		if !overridden[item.Key] {
			out = append(out, item)
		}
	}
	return append(out, overrides...)
}
