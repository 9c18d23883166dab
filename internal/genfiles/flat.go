package genfiles

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FlatOptions configures a flat generation run.
type FlatOptions struct {
	// Root is the directory receiving the files.
	Root string
	// Files is the number of files to create.
	Files int
	// SizeKB is the fixed size of every file in KB.
	SizeKB int
}

// Flat creates opts.Files identically sized binary files directly inside
// opts.Root, creating the directory first if needed. A failed write is
// reported, skipped, and excluded from the returned statistics; it never
// aborts the batch. Existing files with the same names are overwritten,
// so repeating a run leaves the same set of files in place.
func Flat(opts FlatOptions, src *Source, hook Hook) (*Result, error) {
	if err := os.MkdirAll(opts.Root, 0o755); err != nil {
		return nil, fmt.Errorf("creating root directory %q: %w", opts.Root, err)
	}

	log.Info().Str("dir", opts.Root).Int("files", opts.Files).Int("size_kb", opts.SizeKB).
		Msg("creating files")

	size := int64(opts.SizeKB) * 1024
	res := &Result{}

	for i := 1; i <= opts.Files; i++ {
		name := fmt.Sprintf("fixed_file_%03d.bin", i)
		data := src.Data(int(size), true)

		err := os.WriteFile(filepath.Join(opts.Root, name), data, 0o644)
		if hook != nil {
			hook(FileEvent{Path: name, Size: size, Binary: true, Err: err})
		}

		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("write failed, skipping")
			res.Failures = append(res.Failures, Failure{Path: name, Cause: err.Error()})

			continue
		}

		log.Debug().Str("file", name).Int64("bytes", size).Msg("created binary file")
		res.Stats.Record(size, true)
	}

	return res, nil
}
