package apetag

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/apetag/internal/aiff"
	"github.com/simonhull/apetag/internal/ape"
	"github.com/simonhull/apetag/internal/id3"
	"github.com/simonhull/apetag/internal/types"
	"github.com/simonhull/apetag/internal/wav"
)

// Field is an alias to types.Field: one text metadata entry read from a
// WAV or AIFF container chunk.
type Field = types.Field

// File represents an opened audio file with its located tag.
//
// For APE and MP3 containers, Tag holds the items of the existing APE
// tag (standard trailing placement preferred over a nonstandard leading
// one), or an empty tag when none exists. Edit Tag and call Save to
// rewrite the file.
//
// For WAV and AIFF containers, Fields holds the container's text
// metadata chunks; these containers cannot carry an APE tag and
// reject Save.
//
// Always call Close() when done to release file resources:
//
//	file, err := apetag.Open("song.ape")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path to the audio file
	Path string

	// Detected container format
	Format Format

	// File size in bytes
	Size int64

	// The located APE tag (APE/MP3 containers)
	Tag Tag

	// Container text metadata (WAV/AIFF containers)
	Fields []Field

	reader io.ReaderAt
}

// Open opens an audio file and locates its metadata.
//
// Supported containers: APE (Monkey's Audio), MP3, WAV, AIFF.
//
// Only the metadata region is parsed; audio content is never loaded.
//
// Example:
//
//	file, err := apetag.Open("song.ape")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	for _, item := range file.Tag.Items {
//		fmt.Printf("%s = %s\n", item.Key, item.Text())
//	}
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := OpenReader(f, stat.Size(), path)
	if err != nil {
		f.Close()
		return nil, err
	}

	// Keep the handle for Save
	file.reader = f

	return file, nil
}

// OpenReader opens from an io.ReaderAt instead of a path. The path is
// used only for error messages. The caller retains ownership of r; a
// File opened this way can SaveTo a new path but not Save in place.
func OpenReader(r io.ReaderAt, size int64, path string) (*File, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, err
	}

	file := &File{
		Path:   path,
		Format: format,
		Size:   size,
		reader: r,
	}

	section := io.NewSectionReader(r, 0, size)

	switch format {
	case FormatAPE, FormatMP3:
		if err := id3.Skip(section); err != nil {
			return nil, fmt.Errorf("parse %s: %w", format, err)
		}
		loc, err := ape.Locate(section)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", format, err)
		}
		if tag := loc.Existing(); tag != nil {
			file.Tag = *tag
		}
	case FormatWAV:
		fields, _, err := wav.Parse(section)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", format, err)
		}
		file.Fields = fields
	case FormatAIFF:
		fields, _, err := aiff.Parse(section)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", format, err)
		}
		file.Fields = fields
	}

	return file, nil
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be used.
func (f *File) Close() error {
	if closer, ok := f.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ReadMany opens multiple audio files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open, all successfully opened files are closed
// and an error is returned.
func ReadMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
