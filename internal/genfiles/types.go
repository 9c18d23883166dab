package genfiles

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMinSize is the minimum structured file size in bytes when the
// caller does not specify one.
const DefaultMinSize = 100

// maxSizeKBLimit is the largest accepted KB size; anything above it
// would overflow the byte count on conversion.
const maxSizeKBLimit = math.MaxInt / 1024

// Mode selects which generator a Request runs.
type Mode int

const (
	// ModeStructured creates nested subdirectories with randomized file
	// counts, types, and sizes. It is the default mode.
	ModeStructured Mode = iota
	// ModeFlat creates a fixed count of identically sized binary files
	// directly inside the root directory.
	ModeFlat
)

// String returns the mode name used in reports.
func (m Mode) String() string {
	if m == ModeFlat {
		return "flat"
	}

	return "structured"
}

// TypePolicy decides whether generated files hold binary or text payloads.
type TypePolicy int

const (
	// TypeMixed resolves every file independently with an unbiased random
	// choice between binary and text. It is the default policy.
	TypeMixed TypePolicy = iota
	// TypeBinary generates only binary files.
	TypeBinary
	// TypeText generates only text files.
	TypeText
)

// String returns the selector name used on the command line and in profiles.
func (p TypePolicy) String() string {
	switch p {
	case TypeBinary:
		return "bin"
	case TypeText:
		return "txt"
	default:
		return "mix"
	}
}

// ParseTypePolicy converts a selector name into a TypePolicy.
func ParseTypePolicy(name string) (TypePolicy, error) {
	switch name {
	case "bin", "binary":
		return TypeBinary, nil
	case "txt", "text":
		return TypeText, nil
	case "", "mix", "mixed":
		return TypeMixed, nil
	default:
		return TypeMixed, fmt.Errorf("unknown file type %q: must be one of bin, txt, mix", name)
	}
}

// FileEvent describes one attempted file write during generation.
// Err is nil when the write succeeded.
type FileEvent struct {
	Path   string
	Size   int64
	Binary bool
	Err    error
}

// Hook receives a FileEvent after every write attempt. A nil Hook is
// ignored by the generators.
type Hook func(FileEvent)

// Request carries one complete generation order: the mode, the root
// directory, and the mode-specific parameters. It exists only for the
// duration of the run and is never persisted.
type Request struct {
	Mode Mode
	// Root is the directory receiving all generated entries.
	Root string

	// Files and SizeKB apply to flat mode: the file count and the fixed
	// per-file size in KB.
	Files  int
	SizeKB int

	// Dirs, MaxFiles, MaxSizeKB, MinSize, and Types apply to structured
	// mode: subdirectory count, per-directory file cap, maximum file size
	// in KB, minimum file size in bytes, and the file type policy.
	Dirs      int
	MaxFiles  int
	MaxSizeKB int
	MinSize   int
	Types     TypePolicy

	// Seed makes the run reproducible when non-zero.
	Seed int64
}

// Validate checks the request before any filesystem mutation happens.
// Violations are usage errors.
func (r Request) Validate() error {
	if r.Root == "" {
		return errors.New("root directory is required")
	}

	if r.Mode == ModeFlat {
		if r.Files <= 0 {
			return errors.New("file count must be an integer greater than 0")
		}

		if r.SizeKB <= 0 {
			return errors.New("file size in KB must be an integer greater than 0")
		}

		if r.SizeKB > maxSizeKBLimit {
			return fmt.Errorf("file size in KB must not exceed %d", maxSizeKBLimit)
		}

		return nil
	}

	if r.Dirs <= 0 {
		return errors.New("subdirectory count must be an integer greater than 0")
	}

	if r.MaxFiles <= 0 {
		return errors.New("max files per subdirectory must be an integer greater than 0")
	}

	if r.MaxSizeKB <= 0 {
		return errors.New("max file size in KB must be an integer greater than 0")
	}

	if r.MaxSizeKB > maxSizeKBLimit {
		return fmt.Errorf("max file size in KB must not exceed %d", maxSizeKBLimit)
	}

	if r.MinSize < 0 {
		return errors.New("minimum file size cannot be negative")
	}

	return nil
}

// Run validates the request, seeds a Source, and dispatches to the
// selected generator. The hook may be nil.
func (r Request) Run(hook Hook) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	src := NewSource(r.Seed)

	if r.Mode == ModeFlat {
		return Flat(FlatOptions{Root: r.Root, Files: r.Files, SizeKB: r.SizeKB}, src, hook)
	}

	return Structured(StructuredOptions{
		Root:      r.Root,
		Dirs:      r.Dirs,
		MaxFiles:  r.MaxFiles,
		MaxSizeKB: r.MaxSizeKB,
		MinSize:   r.MinSize,
		Types:     r.Types,
	}, src, hook)
}
