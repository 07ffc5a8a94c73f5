// Package apetag reads and writes APEv2 trailer tags in audio files.
//
// APE tags are the key/value metadata blocks used by Monkey's Audio and,
// alongside ID3, by MP3 files. The tag normally sits at the very end of
// the file, before any trailing ID3v1 or Lyrics3v2 blocks; some writers
// nonstandardly place it at the front instead. This package finds tags
// in either position, and on save always relocates a misplaced tag to
// the standard trailing position.
//
// # Quick Start
//
// Reading a tag:
//
//	file, err := apetag.Open("song.ape")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	if item := file.Tag.Get("Title"); item != nil {
//		fmt.Println(item.Text())
//	}
//
// Writing one:
//
//	file.Tag.Set(apetag.NewText("Title", "New Title"))
//	if err := file.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// # Read-Only Items
//
// An item whose on-disk flag marks it read-only survives any save, even
// one that omits it or supplies a different value for its key. The
// on-disk value always wins.
//
// # Supported Containers
//
//   - APE (Monkey's Audio): read and write
//   - MP3: read and write, coexisting with ID3v2/ID3v1/Lyrics3v2 tags
//   - WAV, AIFF: text metadata chunks are readable, but these
//     containers cannot carry an APE tag and reject Save
//
// # Error Handling
//
// Parsing, location, and serialization failures abort a save before any
// byte reaches the destination. Saves write to a temporary file and
// rename it over the target, so a failed save leaves the original file
// unchanged.
package apetag
