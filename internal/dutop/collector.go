package dutop

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// identityKey uniquely identifies a physical file object across the
// hard-link paths that reference it.
type identityKey struct {
	dev uint64
	ino uint64
}

// bucketStats accumulates usage for one immediate child of the root
// while the walk is running.
type bucketStats struct {
	size  int64
	files int64
	dirs  int64
}

// collector aggregates walk events from concurrent fastwalk callbacks
// using a mutex. The identity set and the bucket map share the same
// critical section so that the insert-if-absent check and the counter
// updates it guards cannot race.
type collector struct {
	mu sync.Mutex

	root    string
	buckets map[string]*bucketStats
	seen    map[identityKey]struct{}

	totalFiles int64
	totalBytes int64
	totalDirs  int64
	skipped    int64
}

// newCollector creates a collector for a walk rooted at root.
func newCollector(root string) *collector {
	return &collector{
		root:    root,
		buckets: make(map[string]*bucketStats),
		seen:    make(map[identityKey]struct{}),
	}
}

// bucketFor maps a directory to the bucket that owns it: the first path
// component below the root, or the root itself. File callers pass the
// file's parent directory, which places files directly in the root into
// the root bucket.
func (c *collector) bucketFor(dir string) string {
	rel, err := filepath.Rel(c.root, dir)
	if err != nil || rel == "." || rel == "" {
		return c.root
	}

	first, _, _ := strings.Cut(rel, string(filepath.Separator))

	return filepath.Join(c.root, first)
}

// bucket returns the stats for key, creating them on first reference.
// Callers must hold mu.
func (c *collector) bucket(key string) *bucketStats {
	stats, ok := c.buckets[key]
	if !ok {
		stats = &bucketStats{}
		c.buckets[key] = stats
	}

	return stats
}

// addFile records one regular file. The first path observed for an
// identity key claims the file's bytes; later hard-link paths are
// ignored entirely. When haveKey is false the file has no stable
// identity and is counted unconditionally.
func (c *collector) addFile(path string, key identityKey, haveKey bool, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if haveKey {
		if _, dup := c.seen[key]; dup {
			return
		}

		c.seen[key] = struct{}{}
	}

	stats := c.bucket(c.bucketFor(filepath.Dir(path)))
	stats.size += size
	stats.files++
	c.totalFiles++
	c.totalBytes += size
}

// addDir records one directory strictly below the root.
func (c *collector) addDir(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bucket(c.bucketFor(path)).dirs++
	c.totalDirs++
}

// addSkipped counts an entry that could not be read.
func (c *collector) addSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped++
}

// snapshot returns the running file and byte counters for progress
// reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totalFiles, c.totalBytes
}

// finalize converts the accumulated buckets into an immutable Result.
// The complete bucket set is sorted before truncation, so totals and
// ranking are independent of the requested topN. Entries are ordered by
// size descending with ties broken by path, keeping repeated runs on an
// unchanged tree byte-identical.
func (c *collector) finalize(topN int) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	var totalSize int64

	entries := make([]DirectoryEntry, 0, len(c.buckets))
	for path, stats := range c.buckets {
		totalSize += stats.size
		entries = append(entries, DirectoryEntry{
			Path:  path,
			Size:  stats.size,
			Files: stats.files,
			Dirs:  stats.dirs,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Size != entries[j].Size {
			return entries[i].Size > entries[j].Size
		}

		return entries[i].Path < entries[j].Path
	})

	if topN < 0 {
		topN = 0
	}

	if topN < len(entries) {
		entries = entries[:topN:topN]
	}

	return &Result{
		RootPath:       c.root,
		TotalSize:      totalSize,
		TotalFiles:     c.totalFiles,
		TotalDirs:      c.totalDirs,
		SkippedEntries: c.skipped,
		TopDirectories: entries,
	}
}
