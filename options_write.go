package apetag

// SaveOption configures behavior when saving files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := file.Save(
//	    apetag.WithBackup(".bak"),
//	    apetag.WithPreserveModTime(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	preserveModTime bool   // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		backupSuffix:    "",
		preserveModTime: false,
	}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file will have the specified suffix appended to the
// original filename. For example, WithBackup(".bak") will create
// "song.ape.bak" before modifying "song.ape".
//
// If the backup file already exists, it will be overwritten.
//
// Example:
//
//	err := file.Save(apetag.WithBackup(".bak"))
//	// Original file preserved as song.ape.bak
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time to the
// current time. This option preserves the original modification time,
// useful when updating metadata without changing the "modified" date.
//
// Example:
//
//	err := file.Save(apetag.WithPreserveModTime())
//	// File modification time unchanged
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
