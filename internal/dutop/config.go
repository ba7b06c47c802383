package dutop

import "time"

// Config holds the analysis options. It is read once when the walk
// starts and never modified afterwards.
type Config struct {
	// MaxDepth limits traversal below the root: directories more than
	// MaxDepth path components beneath the root are pruned and nothing
	// under them is counted. Negative means unlimited.
	MaxDepth int
	// Exclude contains glob patterns matched against an entry's base
	// name. A matching file is skipped; a matching directory is pruned
	// together with everything beneath it.
	Exclude []string
	// FollowLinks controls whether symbolic links are followed.
	FollowLinks bool
	// Workers is the walker parallelism. Zero selects a default based
	// on the available CPUs. Negative is a configuration error.
	Workers int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// DefaultConfig returns a Config with unlimited depth, no exclusions
// and automatic parallelism.
func DefaultConfig() Config {
	return Config{MaxDepth: -1}
}

// DirectoryEntry is the aggregated usage of one immediate child of the
// analyzed root. It is immutable once produced.
type DirectoryEntry struct {
	// Path is the path of the child, or the root itself for files
	// directly inside it.
	Path string `json:"path"`
	// Size is the allocated size in bytes.
	Size int64 `json:"size"`
	// Files is the number of files attributed to this entry.
	Files int64 `json:"file_count"`
	// Dirs is the number of directories within this entry, the entry
	// itself included.
	Dirs int64 `json:"dir_count"`
}

// Result holds the outcome of one analysis run.
//
// TotalSize, TotalFiles and TotalDirs cover every bucket discovered
// during the walk; TopDirectories is the ranked subset requested by
// the caller.
type Result struct {
	// RootPath is the analyzed directory.
	RootPath string `json:"root_path"`
	// TotalSize is the allocated size of all counted files in bytes.
	TotalSize int64 `json:"total_size"`
	// TotalFiles is the number of distinct physical files counted.
	TotalFiles int64 `json:"total_files"`
	// TotalDirs is the number of directories strictly below the root.
	TotalDirs int64 `json:"total_dirs"`
	// SkippedEntries is the number of entries skipped due to errors.
	SkippedEntries int64 `json:"skipped_entries"`
	// TopDirectories holds the largest immediate children, descending
	// by size, ties broken by path.
	TopDirectories []DirectoryEntry `json:"top_directories"`
	// Elapsed is the total time taken by the walk.
	Elapsed time.Duration `json:"elapsed"`
}
