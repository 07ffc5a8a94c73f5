package main

import (
	"fmt"
	"os"

	"github.com/simonhull/apetag"
	binutil "github.com/simonhull/apetag/internal/binary"
)

// Useful test tool to confirm what we're able to actually read from a
// file's tag region.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tag-dump <file>")
		os.Exit(1)
	}

	file, err := apetag.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fmt.Printf("%s: %s, %d bytes\n", file.Path, file.Format, file.Size)

	for _, field := range file.Fields {
		fmt.Printf("  [%s] %s\n", field.Key, field.Value)
	}

	for _, item := range file.Tag.Items {
		ro := ""
		if item.ReadOnly {
			ro = " (read-only)"
		}
		switch item.Kind {
		case apetag.Binary:
			fmt.Printf("  %s = <%d bytes binary>%s\n", item.Key, len(item.Value), ro)
		default:
			fmt.Printf("  %s = %q%s\n", item.Key, item.Text(), ro)
		}
	}

	dumpFooter(os.Args[1], file.Size)
}

// dumpFooter prints the raw trailing footer fields, if one sits at the
// very end of the file.
func dumpFooter(path string, size int64) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	if size < 32 {
		return
	}

	sr := binutil.NewSafeReader(f, size, path)

	preamble := make([]byte, 8)
	if err := sr.ReadAt(preamble, size-32, "footer preamble"); err != nil {
		return
	}
	if string(preamble) != "APETAGEX" {
		fmt.Println("no trailing footer")
		return
	}

	version, _ := binutil.ReadLE[uint32](sr, size-24, "footer version")
	tagSize, _ := binutil.ReadLE[uint32](sr, size-20, "footer size")
	count, _ := binutil.ReadLE[uint32](sr, size-16, "footer item count")
	flags, _ := binutil.ReadLE[uint32](sr, size-12, "footer flags")

	fmt.Printf("footer: version=%d size=%d items=%d flags=%#08x\n",
		version, tagSize, count, flags)
}
