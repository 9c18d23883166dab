package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/igorbrzezek/genfiles/internal/genfiles"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	bytesPerKB = 1024.0
	bytesPerMB = 1024.0 * 1024.0
)

// WriteJSON outputs v in indented JSON format.
func WriteJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// WriteSummary outputs the statistics report for a generation run in
// human-readable table format. Flat runs report a single average since
// every file has the same size and type; structured runs break the
// figures down per category.
//
//nolint:forbidigo // This function prints output to the console.
func WriteSummary(res *genfiles.Result, mode genfiles.Mode, writer io.Writer) error {
	stats := res.Stats

	if stats.TotalFiles == 0 {
		fmt.Fprintln(writer, "\nNo files were generated.")

		return writeFailures(res.Failures, writer)
	}

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nGeneration stats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", stats.TotalFiles)
	fmt.Fprintf(w, "Total size:\t%.2f MB (%d bytes)\n", toMB(stats.TotalBytes), stats.TotalBytes)

	if mode == genfiles.ModeFlat {
		fmt.Fprintf(w, "File type:\tbinary (fixed size)\n")
		fmt.Fprintf(w, "Average file size:\t%.2f MB\n",
			safeDiv(toMB(stats.TotalBytes), float64(stats.TotalFiles)))
	} else {
		writeCategory(w, "Binary files", stats.BinaryFiles, stats.BinaryBytes)
		writeCategory(w, "Text files", stats.TextFiles, stats.TextBytes)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	return writeFailures(res.Failures, writer)
}

// writeCategory renders one file category. Empty categories report an
// average of 0 rather than dividing by zero.
func writeCategory(w io.Writer, label string, files, size int64) {
	fmt.Fprintf(w, "\n%s:\t%d\n", label, files)
	fmt.Fprintf(w, "  Total size:\t%.2f MB\n", toMB(size))
	fmt.Fprintf(w, "  Average size:\t%.2f KB\n", safeDiv(toKB(size), float64(files)))
}

// writeFailures lists the files a run had to skip.
func writeFailures(failures []genfiles.Failure, writer io.Writer) error {
	if len(failures) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(writer, "\nSkipped files: %d\n", len(failures)); err != nil {
		return err
	}

	for _, failure := range failures {
		fmt.Fprintf(writer, "  - %s: %s\n", failure.Path, failure.Cause)
	}

	return nil
}

// WriteTreeSummary outputs inspection statistics in human-readable
// table format.
//
//nolint:forbidigo // This function prints output to the console.
func WriteTreeSummary(ts *genfiles.TreeStats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	totalFiles := ts.Stats.TotalFiles + ts.OtherFiles
	totalBytes := ts.Stats.TotalBytes + ts.OtherBytes

	fmt.Fprintln(w, "\nTree stats:\t\t")
	fmt.Fprintf(w, "Directories:\t%d\n", ts.Dirs)
	fmt.Fprintf(w, "Total files:\t%d\n", totalFiles)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(totalBytes)), totalBytes)
	fmt.Fprintf(w, "Binary files:\t%d (%s)\n",
		ts.Stats.BinaryFiles, humanize.IBytes(uint64(ts.Stats.BinaryBytes)))
	fmt.Fprintf(w, "Text files:\t%d (%s)\n",
		ts.Stats.TextFiles, humanize.IBytes(uint64(ts.Stats.TextBytes)))

	if ts.OtherFiles > 0 {
		fmt.Fprintf(w, "Other files:\t%d (%s)\n",
			ts.OtherFiles, humanize.IBytes(uint64(ts.OtherBytes)))
	}

	if ts.Errors > 0 {
		fmt.Fprintf(w, "Errors:\t%d\n", ts.Errors)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", ts.Elapsed)

	return w.Flush()
}

func toMB(size int64) float64 {
	return float64(size) / bytesPerMB
}

func toKB(size int64) float64 {
	return float64(size) / bytesPerKB
}

// safeDiv divides num by den, returning 0 for an empty denominator.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}
