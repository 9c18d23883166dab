package genfiles

// Stats accumulates counts and byte totals over one generation run.
// Record is the only mutator, so total figures always equal the sum of
// the binary and text figures. A Stats is owned by the run that fills it
// and is read-only once the run returns.
type Stats struct {
	// TotalFiles is the number of files successfully written.
	TotalFiles int64 `json:"total_files"`
	// TotalBytes is the cumulative size of all written files.
	TotalBytes int64 `json:"total_bytes"`
	// BinaryFiles is the number of binary files written.
	BinaryFiles int64 `json:"binary_files"`
	// BinaryBytes is the cumulative size of all binary files.
	BinaryBytes int64 `json:"binary_bytes"`
	// TextFiles is the number of text files written.
	TextFiles int64 `json:"text_files"`
	// TextBytes is the cumulative size of all text files.
	TextBytes int64 `json:"text_bytes"`
}

// Record counts one successfully written file of the given size,
// incrementing the totals and exactly one of the binary/text pairs.
func (s *Stats) Record(size int64, binary bool) {
	s.TotalFiles++
	s.TotalBytes += size

	if binary {
		s.BinaryFiles++
		s.BinaryBytes += size
	} else {
		s.TextFiles++
		s.TextBytes += size
	}
}

// Failure records a single path that could not be created. Failed writes
// are skipped, never retried, and excluded from Stats.
type Failure struct {
	// Path is relative to the generation root.
	Path string `json:"path"`
	// Cause is the text of the underlying error.
	Cause string `json:"cause"`
}

// Result is the outcome of one generation run: statistics over the files
// that were written plus the list of per-file failures that were skipped.
type Result struct {
	Stats    Stats     `json:"stats"`
	Failures []Failure `json:"failures,omitempty"`
}
