package apetag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/simonhull/apetag/internal/ape"
	"github.com/simonhull/apetag/internal/types"
)

// Save rewrites the file with the current Tag.
//
// This is an atomic operation: the new content is written to a
// temporary file first, then renamed over the original path. If any
// step fails, the original file remains unchanged.
//
// The whole file is buffered in memory for the rewrite, since the tag
// region can change length.
//
// Options can be provided to customize save behavior:
//
//	err := file.Save(
//	    apetag.WithBackup(".bak"),
//	    apetag.WithPreserveModTime(),
//	)
//
// Returns UnsupportedContainerError for containers that cannot carry
// an APE tag (WAV, AIFF).
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveTo(f.Path, opts...)
}

// SaveTo writes the rewritten file to a new location, leaving the
// original untouched.
//
// Like Save, this writes to a temporary file in the output directory
// and renames it into place.
func (f *File) SaveTo(outputPath string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if !f.Format.TagCapable() {
		return &types.UnsupportedContainerError{
			Path:   f.Path,
			Reason: fmt.Sprintf("%s cannot carry an APE tag", f.Format),
		}
	}

	if f.reader == nil {
		return fmt.Errorf("file not open: reader is nil")
	}

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		info, err := os.Stat(f.Path)
		if err == nil {
			origInfo = info
		}
	}

	// Create temp file in same directory as output (for atomic rename)
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".apetag-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	// No byte reaches the temp file until locating, merging, and
	// serialization have all succeeded.
	section := io.NewSectionReader(f.reader, 0, f.Size)
	if err := ape.WriteTo(tempFile, section, &f.Tag); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Handle backup option (rename original to .bak before replace)
	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	// Atomic rename temp -> output
	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	// Mark success so defer doesn't clean up
	success = true

	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime())
	}

	return nil
}
