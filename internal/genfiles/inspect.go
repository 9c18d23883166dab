package genfiles

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
)

// InspectOptions configures a statistics scan over an existing tree.
type InspectOptions struct {
	// Root is the directory to scan.
	Root string
	// Include holds doublestar patterns matched against paths relative to
	// Root; when non-empty, only matching files are counted.
	Include []string
	// Exclude holds doublestar patterns; matching files are skipped and
	// matching directories are not descended into.
	Exclude []string
}

// TreeStats aggregates what Inspect found on disk. Files with a ".bin" or
// ".txt" suffix feed the embedded Stats; anything else is tallied in the
// Other counters so the binary/text split stays exact.
type TreeStats struct {
	// Dirs is the number of directories below the root.
	Dirs int64 `json:"dirs"`
	// Stats aggregates the .bin and .txt files.
	Stats Stats `json:"stats"`
	// OtherFiles counts files with any other suffix.
	OtherFiles int64 `json:"other_files"`
	// OtherBytes is the cumulative size of those files.
	OtherBytes int64 `json:"other_bytes"`
	// Errors is the number of entries that could not be read.
	Errors int64 `json:"errors"`
	// Elapsed is the total scan time.
	Elapsed time.Duration `json:"elapsed"`
}

// treeCollector aggregates scan results from concurrent fastwalk
// callbacks using a mutex.
type treeCollector struct {
	mu         sync.Mutex
	stats      Stats
	dirs       int64
	otherFiles int64
	otherBytes int64
	errors     int64
}

func (c *treeCollector) addDir() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirs++
}

func (c *treeCollector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors++
}

// addFile classifies path by suffix and records its size.
func (c *treeCollector) addFile(path string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch filepath.Ext(path) {
	case ".bin":
		c.stats.Record(size, true)
	case ".txt":
		c.stats.Record(size, false)
	default:
		c.otherFiles++
		c.otherBytes += size
	}
}

func (c *treeCollector) finalize(elapsed time.Duration) *TreeStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &TreeStats{
		Dirs:       c.dirs,
		Stats:      c.stats,
		OtherFiles: c.otherFiles,
		OtherBytes: c.otherBytes,
		Errors:     c.errors,
		Elapsed:    elapsed,
	}
}

// matchAny reports whether rel matches any of the doublestar patterns.
// Patterns with ** match across nested directories.
func matchAny(rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
	}

	return false
}

// Inspect walks the tree under opt.Root and rebuilds generation-shaped
// statistics from what is actually on disk. It never modifies the tree.
//
// The walk runs on fastwalk's parallel traversal and can be cancelled
// via ctx. Unreadable entries are counted in Errors and skipped.
func Inspect(ctx context.Context, opt InspectOptions) (*TreeStats, error) {
	if opt.Root == "" {
		opt.Root = "."
	}

	opt.Root = filepath.Clean(opt.Root)

	if info, err := os.Stat(opt.Root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Root)
	}

	collector := &treeCollector{}
	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("error accessing path")
			collector.addError()

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if path == opt.Root {
			return nil
		}

		rel, relErr := filepath.Rel(opt.Root, path)
		if relErr != nil {
			rel = path
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matchAny(rel, opt.Exclude) {
				return filepath.SkipDir
			}

			collector.addDir()

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if matchAny(rel, opt.Exclude) {
			return nil
		}

		if len(opt.Include) > 0 && !matchAny(rel, opt.Include) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		collector.addFile(rel, info.Size())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return collector.finalize(time.Since(start)), nil
}
