package logging

// FileSettings is the rotation policy of a file-backed Logger. The zero
// value disables rotation entirely. Policies are replaced wholesale by
// Configure; there is no partial merge.
type FileSettings struct {
	// ClearOnStartup truncates the primary log file when the policy is
	// applied to a file-backed logger.
	ClearOnStartup bool

	// EnableRotation turns on the size check that runs before every record
	// is written to an owned file.
	EnableRotation bool

	// MaxFileSize is the size in bytes at or above which the primary file
	// rotates. A zero size with rotation enabled rotates on every write.
	MaxFileSize uint64

	// MaxBackups bounds the numbered backup generations kept on disk.
	// Configure stores negative counts as zero.
	MaxBackups int
}
