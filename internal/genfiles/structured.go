package genfiles

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// StructuredOptions configures a structured generation run.
type StructuredOptions struct {
	// Root is the directory receiving the subdirectories.
	Root string
	// Dirs is the number of subdirectories to create.
	Dirs int
	// MaxFiles caps the per-subdirectory file count; each subdirectory
	// holds a uniform random count in [1, MaxFiles].
	MaxFiles int
	// MaxSizeKB is the maximum file size in KB.
	MaxSizeKB int
	// MinSize is the minimum file size in bytes. Values above the maximum
	// are clamped down to it.
	MinSize int
	// Types selects binary, text, or mixed payloads.
	Types TypePolicy
}

// Structured creates opts.Dirs subdirectories under opts.Root, each
// populated with a random count of files of random size, typed according
// to opts.Types. Per-file and per-subdirectory failures are reported,
// skipped, and excluded from the returned statistics; they never abort
// the run.
func Structured(opts StructuredOptions, src *Source, hook Hook) (*Result, error) {
	if err := os.MkdirAll(opts.Root, 0o755); err != nil {
		return nil, fmt.Errorf("creating root directory %q: %w", opts.Root, err)
	}

	log.Info().Str("dir", opts.Root).Int("dirs", opts.Dirs).Int("max_files", opts.MaxFiles).
		Msg("creating structured directory")

	maxSize := opts.MaxSizeKB * 1024

	minSize := opts.MinSize
	if minSize > maxSize {
		log.Warn().Int("min_bytes", minSize).Int("max_bytes", maxSize).
			Msg("minimum size is larger than maximum, using maximum for both")

		minSize = maxSize
	}

	res := &Result{}

	for i := 1; i <= opts.Dirs; i++ {
		sub := fmt.Sprintf("subdir_%03d", i)

		if err := os.MkdirAll(filepath.Join(opts.Root, sub), 0o755); err != nil {
			log.Warn().Str("dir", sub).Err(err).Msg("creating subdirectory failed, skipping")
			res.Failures = append(res.Failures, Failure{Path: sub, Cause: err.Error()})

			continue
		}

		log.Debug().Str("dir", sub).Msg("created subdirectory")

		count := src.intBetween(1, opts.MaxFiles)

		for j := 1; j <= count; j++ {
			binary := opts.Types == TypeBinary
			if opts.Types == TypeMixed {
				binary = src.coin()
			}

			ext := ".txt"
			if binary {
				ext = ".bin"
			}

			name := fmt.Sprintf("file_%03d%s", j, ext)
			rel := path.Join(sub, name)
			size := src.intBetween(minSize, maxSize)
			data := src.Data(size, binary)

			err := os.WriteFile(filepath.Join(opts.Root, sub, name), data, 0o644)
			if hook != nil {
				hook(FileEvent{Path: rel, Size: int64(size), Binary: binary, Err: err})
			}

			if err != nil {
				log.Warn().Str("file", rel).Err(err).Msg("write failed, skipping")
				res.Failures = append(res.Failures, Failure{Path: rel, Cause: err.Error()})

				continue
			}

			log.Debug().Str("file", rel).Int("bytes", size).Bool("binary", binary).
				Msg("created file")
			res.Stats.Record(int64(size), binary)
		}
	}

	return res, nil
}
