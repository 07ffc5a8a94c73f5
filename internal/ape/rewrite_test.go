package ape

import (
	"bytes"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		buf   string
		edits []Edit
		want  string
	}{
		{
			name:  "replace range",
			buf:   "aaaBBBccc",
			edits: []Edit{{Start: 3, End: 6, Data: []byte("XY")}},
			want:  "aaaXYccc",
		},
		{
			name:  "insert at point",
			buf:   "aaaccc",
			edits: []Edit{{Start: 3, End: 3, Data: []byte("BBB")}},
			want:  "aaaBBBccc",
		},
		{
			name:  "remove range",
			buf:   "aaaBBBccc",
			edits: []Edit{{Start: 3, End: 6}},
			want:  "aaaccc",
		},
		{
			name:  "append at end",
			buf:   "aaa",
			edits: []Edit{{Start: 3, End: 3, Data: []byte("ZZ")}},
			want:  "aaaZZ",
		},
		{
			name: "later edit then earlier removal",
			// Edits are expressed in original offsets; the first edit
			// sits entirely after the second, so applying in order
			// keeps both ranges valid.
			buf: "LLLaaaTTT",
			edits: []Edit{
				{Start: 6, End: 9, Data: []byte("NEW")},
				{Start: 0, End: 3},
			},
			want: "aaaNEW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply([]byte(tt.buf), tt.edits)
			if string(got) != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocation_Edits(t *testing.T) {
	rendered := []byte("NEWTAG")

	t.Run("insert when no tag", func(t *testing.T) {
		loc := &Location{Insert: 100}
		edits := loc.Edits(rendered)
		if len(edits) != 1 {
			t.Fatalf("Edits() = %d edits, want 1", len(edits))
		}
		if edits[0].Start != 100 || edits[0].End != 100 {
			t.Errorf("edit range = [%d, %d), want [100, 100)", edits[0].Start, edits[0].End)
		}
	})

	t.Run("replace trailing", func(t *testing.T) {
		loc := &Location{
			Trailing: &Placement{Start: 80, End: 120},
			Insert:   120,
		}
		edits := loc.Edits(rendered)
		if len(edits) != 1 {
			t.Fatalf("Edits() = %d edits, want 1", len(edits))
		}
		if edits[0].Start != 80 || edits[0].End != 120 {
			t.Errorf("edit range = [%d, %d), want [80, 120)", edits[0].Start, edits[0].End)
		}
	})

	t.Run("leading removal comes after trailing edit", func(t *testing.T) {
		loc := &Location{
			Leading: &Placement{Start: 0, End: 64},
			Insert:  200,
		}
		edits := loc.Edits(rendered)
		if len(edits) != 2 {
			t.Fatalf("Edits() = %d edits, want 2", len(edits))
		}
		if edits[0].Start != 200 {
			t.Errorf("first edit at %d, want insertion at 200", edits[0].Start)
		}
		if edits[1].Start != 0 || edits[1].End != 64 || edits[1].Data != nil {
			t.Errorf("second edit = %+v, want removal of [0, 64)", edits[1])
		}
	})
}

func saveTo(t *testing.T, stream []byte, tag *Tag) []byte {
	t.Helper()
	var out bytes.Buffer
	if err := WriteTo(&out, bytes.NewReader(stream), tag); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	return out.Bytes()
}

func TestWriteTo_AppendToUntagged(t *testing.T) {
	audio := audioBytes(200)
	tag := &Tag{Items: []Item{NewText("Title", "Song")}}

	got := saveTo(t, audio, tag)

	want := append(append([]byte{}, audio...), mustRender(t, tag)...)
	if !bytes.Equal(got, want) {
		t.Errorf("saved stream mismatch:\n got %d bytes\nwant %d bytes", len(got), len(want))
	}
}

func TestWriteTo_ReplaceTrailing(t *testing.T) {
	audio := audioBytes(200)
	old := mustRender(t, &Tag{Items: []Item{NewText("Title", "Old")}})
	stream := append(append([]byte{}, audio...), old...)

	tag := &Tag{Items: []Item{NewText("Title", "New")}}
	got := saveTo(t, stream, tag)

	want := append(append([]byte{}, audio...), mustRender(t, tag)...)
	if !bytes.Equal(got, want) {
		t.Error("saved stream does not replace the old trailing tag in place")
	}
}

func TestWriteTo_Idempotent(t *testing.T) {
	audio := audioBytes(200)
	tag := &Tag{Items: []Item{
		NewText("Title", "Song"),
		NewBinary("Cover Art (Front)", []byte{0xDE, 0xAD}),
	}}

	first := saveTo(t, audio, tag)
	second := saveTo(t, first, tag)

	if !bytes.Equal(first, second) {
		t.Error("saving the same tag twice changed the stream")
	}
}

func TestWriteTo_RelocatesLeadingTag(t *testing.T) {
	leading := mustRender(t, &Tag{Items: []Item{NewText("Title", "Song")}})
	audio := audioBytes(200)
	stream := append(append([]byte{}, leading...), audio...)

	tag := &Tag{Items: []Item{NewText("Title", "Song")}}
	got := saveTo(t, stream, tag)

	want := append(append([]byte{}, audio...), mustRender(t, tag)...)
	if !bytes.Equal(got, want) {
		t.Error("leading tag was not removed and relocated to end-of-file")
	}
	if bytes.Equal(got[:len(Preamble)], Preamble[:]) {
		t.Error("saved stream still starts with a tag preamble")
	}
}

func TestWriteTo_EmptyTagRemoves(t *testing.T) {
	audio := audioBytes(200)
	old := mustRender(t, &Tag{Items: []Item{NewText("Title", "Song")}})
	stream := append(append([]byte{}, audio...), old...)

	got := saveTo(t, stream, &Tag{})

	if !bytes.Equal(got, audio) {
		t.Errorf("saved stream = %d bytes, want bare %d-byte audio", len(got), len(audio))
	}
}

func TestWriteTo_ReadOnlyItemsSurvive(t *testing.T) {
	onDisk := mustRender(t, &Tag{Items: []Item{
		{Key: "Serial", Kind: Text, Value: []byte("123"), ReadOnly: true},
	}})
	audio := audioBytes(200)
	stream := append(append([]byte{}, audio...), onDisk...)

	// The caller tries to overwrite the protected key
	got := saveTo(t, stream, &Tag{Items: []Item{
		NewText("Serial", "hacked"),
		NewText("Title", "Song"),
	}})

	loc, err := Locate(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("Locate() after save: %v", err)
	}
	saved := loc.Existing()
	if saved == nil {
		t.Fatal("no tag found after save")
	}

	serial := saved.Get("Serial")
	if serial == nil || serial.Text() != "123" || !serial.ReadOnly {
		t.Errorf("Serial = %+v, want read-only 123", serial)
	}
	if title := saved.Get("Title"); title == nil || title.Text() != "Song" {
		t.Errorf("Title = %v, want Song", title)
	}
}

func TestWriteTo_UpgradesV1Footer(t *testing.T) {
	items := []Item{NewText("Artist", "Someone")}
	audio := audioBytes(200)
	stream := append(append([]byte{}, audio...), footerOnlyTag(items)...)

	got := saveTo(t, stream, &Tag{Items: items})

	// The headerless footer-only layout is rewritten as a full
	// header+footer block at the current version.
	want := append(append([]byte{}, audio...), mustRender(t, &Tag{Items: items})...)
	if !bytes.Equal(got, want) {
		t.Error("footer-only tag was not upgraded to a header+footer block")
	}
}

func TestWriteTo_PreservesLegacyTrailers(t *testing.T) {
	audio := audioBytes(200)
	old := mustRender(t, &Tag{Items: []Item{NewText("Title", "Old")}})
	legacy := append(lyrics3v2Tag(), id3v1Tag()...)
	stream := append(append(append([]byte{}, audio...), old...), legacy...)

	tag := &Tag{Items: []Item{NewText("Title", "New")}}
	got := saveTo(t, stream, tag)

	want := append(append(append([]byte{}, audio...), mustRender(t, tag)...), legacy...)
	if !bytes.Equal(got, want) {
		t.Error("tag was not rewritten immediately before the legacy trailers")
	}
}

func TestWriteTo_PreservesLeadingID3v2(t *testing.T) {
	// 10-byte ID3v2.3 header with a 20-byte body, no footer
	id3v2 := append([]byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, 20}, make([]byte, 20)...)
	audio := audioBytes(200)
	stream := append(append([]byte{}, id3v2...), audio...)

	tag := &Tag{Items: []Item{NewText("Title", "Song")}}
	got := saveTo(t, stream, tag)

	want := append(append(append([]byte{}, id3v2...), audio...), mustRender(t, tag)...)
	if !bytes.Equal(got, want) {
		t.Error("leading ID3v2 tag was not left in place")
	}
}
