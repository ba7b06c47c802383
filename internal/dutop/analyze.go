package dutop

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// depthBelow returns the number of path components between root and path.
func depthBelow(path, root string) int {
	rel := strings.TrimPrefix(path, root)

	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return 0
	}

	return strings.Count(rel, string(filepath.Separator)) + 1
}

// statLink returns the metadata of a symlink's target. fastwalk entries
// resolve the target through their Stat method; os.Stat is the fallback.
func statLink(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if de, ok := entry.(fastwalk.DirEntry); ok {
		return de.Stat()
	}

	return os.Stat(path)
}

// startProgressReporter invokes hook(files, bytes) on each tick until
// ctx is done.
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Analyze walks the tree rooted at root and aggregates actual disk
// usage into buckets keyed by the root's immediate children, returning
// the topN largest. Totals cover every bucket regardless of topN.
//
// Preconditions are checked before any traversal: root must exist and
// be a directory, exclude patterns must compile, and the worker count
// must not be negative. Per-entry failures during the walk (permission
// denied, vanished files, broken symlinks) never abort the run; the
// entry is skipped and counted in Result.SkippedEntries.
//
// Hard-linked files are counted once globally. The bucket that receives
// a hard-linked file's bytes is whichever path the parallel walk
// reaches first: totals are independent of walk order, per-bucket
// attribution of hard links is not.
//
// The walk can be cancelled via ctx, in which case the context error is
// returned. Progress updates are sent to progressHook if provided.
func Analyze(
	ctx context.Context,
	root string,
	cfg Config,
	topN int,
	logger *logrus.Logger,
	progressHook func(files, bytes int64),
) (*Result, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	if root == "" {
		root = "."
	}

	root = filepath.Clean(root)

	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid worker count %d", cfg.Workers)
	}

	if topN < 0 {
		topN = 0
	}

	excludes, err := newExcluder(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	collector := newCollector(root)

	// Child context so the progress reporter stops when the walk ends.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, cfg.ProgressInterval)

	logger.WithFields(logrus.Fields{
		"path":         root,
		"max_depth":    cfg.MaxDepth,
		"follow_links": cfg.FollowLinks,
		"workers":      cfg.Workers,
	}).Info("starting disk usage analysis")

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     cfg.FollowLinks,
		NumWorkers: cfg.Workers,
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.WithError(err).WithField("path", path).Debug("skipping unreadable entry")
			collector.addSkipped()

			return nil //nolint:nilerr // Per-entry errors never abort the walk.
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		isDir := entry.IsDir()

		var info fs.FileInfo

		// Classify followed symlinks by their target so that a link to
		// a directory is descended and a link to a file is counted.
		if cfg.FollowLinks && entry.Type()&fs.ModeSymlink != 0 {
			info, err = statLink(path, entry)
			if err != nil {
				logger.WithError(err).WithField("path", path).Debug("skipping broken symlink")
				collector.addSkipped()

				return nil
			}

			isDir = info.IsDir()
		}

		if excludes.matches(path) {
			logger.WithField("path", path).Debug("excluding entry")

			if isDir {
				return filepath.SkipDir
			}

			return nil
		}

		if isDir {
			depth := depthBelow(path, root)
			if cfg.MaxDepth >= 0 && depth > cfg.MaxDepth {
				logger.WithField("path", path).Debug("pruning directory beyond max depth")

				return filepath.SkipDir
			}

			if path != root {
				collector.addDir(path)
			}

			return nil
		}

		if info == nil {
			if !entry.Type().IsRegular() {
				return nil
			}

			info, err = entry.Info()
			if err != nil {
				collector.addSkipped()

				return nil //nolint:nilerr // Per-entry errors never abort the walk.
			}
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		key, haveKey := identityOf(path, info)
		collector.addFile(path, key, haveKey, allocatedSize(info))

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	result := collector.finalize(topN)
	result.Elapsed = time.Since(start)

	if result.SkippedEntries > 0 {
		logger.WithField("skipped", result.SkippedEntries).Info("skipped entries due to errors")
	}

	logger.WithFields(logrus.Fields{
		"total_size":  result.TotalSize,
		"total_files": result.TotalFiles,
		"total_dirs":  result.TotalDirs,
	}).Info("analysis complete")

	return result, nil
}
