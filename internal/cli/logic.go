package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/igorbrzezek/genfiles/internal/genfiles"
)

// generate runs a validated request, streaming progress to stderr when
// attached to a terminal, and prints the confirmation and optional
// statistics report to stdout.
//
//nolint:forbidigo // This function prints output to the console.
func generate(request genfiles.Request, output string, stat, verbose bool) error {
	enableProgress := progressEnabled(output, verbose, isatty.IsTerminal(os.Stderr.Fd()))

	var hook genfiles.Hook

	finish := func() {}

	if enableProgress {
		bar := newProgressBar("Generating files", progressTotal(request))

		hook = func(_ genfiles.FileEvent) {
			_ = bar.Add(1)
		}

		finish = func() {
			_ = bar.Finish()
		}
	}

	result, err := request.Run(hook)

	// Clear the status line before printing anything else
	finish()

	if err != nil {
		return err
	}

	switch request.Mode {
	case genfiles.ModeFlat:
		fmt.Printf("\nFinished successfully. Created files in directory: %s\n", request.Root)
	case genfiles.ModeStructured:
		fmt.Printf("\nFinished successfully. Structure created in directory: %s\n", request.Root)
	}

	if !stat {
		return nil
	}

	switch strings.ToLower(output) {
	case "json":
		return WriteJSON(result, os.Stdout)
	case "table":
		return WriteSummary(result, request.Mode, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

// inspect scans an existing tree and renders its statistics.
func inspect(options genfiles.InspectOptions, output string) error {
	ctx := context.Background()

	stats, err := genfiles.Inspect(ctx, options)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "json":
		return WriteJSON(stats, os.Stdout)
	case "table":
		return WriteTreeSummary(stats, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

// progressEnabled reports whether a run should draw a progress bar on
// stderr. Verbose logging and json output both suppress it.
func progressEnabled(output string, verbose, tty bool) bool {
	return strings.ToLower(output) != "json" && !verbose && tty
}

// progressTotal reports the number of files a request will attempt, or
// -1 when the count is drawn at random during the run.
func progressTotal(request genfiles.Request) int64 {
	if request.Mode == genfiles.ModeFlat {
		return int64(request.Files)
	}

	return -1
}

// newProgressBar returns a bar writing to stderr so that stdout stays
// reserved for reports. A negative total renders a spinner.
func newProgressBar(description string, total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "#", SaucerPadding: " ", BarStart: "|", BarEnd: "|"}),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
