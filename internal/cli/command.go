package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/igorbrzezek/genfiles/internal/genfiles"
	"github.com/igorbrzezek/genfiles/internal/logger"
	"github.com/igorbrzezek/genfiles/internal/profile"
)

// allowedOutputs contains the accepted --output values.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// options collects every root-command flag.
type options struct {
	directory   string
	fileCreate  []int
	dirs        int
	maxFiles    int
	maxSizeKB   int
	binOnly     bool
	txtOnly     bool
	mixed       bool
	minSizeStr  string
	seed        int64
	profilePath string
	initProfile bool
	stat        bool
	output      string
	verbose     bool
}

// New creates the root command with the given version.
func New(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "genfiles",
		Short: "Generate directory and file structures for testing purposes",
		Long: heredoc.Doc(`
			genfiles creates synthetic directory trees filled with random binary
			and text files, for provisioning test data.

			Structured mode (the default) creates -n subdirectories, each holding
			a random number of files (1 to -m) with random sizes of up to -k KB.
			Flat mode (--file-create N,M) instead creates N binary files of
			exactly M KB directly inside the target directory.

			A YAML profile (--profile) can carry the same parameters; flags given
			on the command line override the profile values.
		`),
		Example: heredoc.Doc(`
			# 10 subdirectories with up to 5 files each, up to 1 MB per file
			genfiles -d ./testdata -n 10 -m 5 -k 1024 --stat

			# 100 binary files of exactly 64 KB
			genfiles -d ./testdata --file-create 100,64

			# reproducible text-only tree
			genfiles -d ./testdata -n 3 -m 4 -k 16 --txt --seed 42
		`),
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Init(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.initProfile {
				rendered, err := profile.Starter(opts.directory)
				if err != nil {
					return fmt.Errorf("rendering starter profile: %w", err)
				}

				//nolint:forbidigo // Profile template output to console
				fmt.Println(rendered)

				return nil
			}

			if err := validateOutput(opts.output); err != nil {
				return err
			}

			request, err := buildRequest(cmd, opts)
			if err != nil {
				return err
			}

			if err := request.Validate(); err != nil {
				return err
			}

			// Validation is done; errors past this point are not usage errors.
			cmd.SilenceUsage = true

			return generate(request, opts.output, opts.stat, opts.verbose)
		},
	}

	flags := root.Flags()
	flags.SortFlags = false

	flags.StringVarP(&opts.directory, "directory", "d", "",
		"Name of the root directory to be created (required unless a profile provides it)")
	flags.IntSliceVarP(&opts.fileCreate, "file-create", "f", nil,
		"Flat mode: create N binary files of M KB each (overrides -n, -m, -k and the type flags)")
	flags.IntVarP(&opts.dirs, "dirs", "n", 0,
		"Number of subdirectories to create (structured mode)")
	flags.IntVarP(&opts.maxFiles, "max-files", "m", 0,
		"Maximum number of files (from 1 to M) in each subdirectory (structured mode)")
	flags.IntVarP(&opts.maxSizeKB, "max-size-kb", "k", 0,
		"Maximum file size in kilobytes (structured mode)")
	flags.BoolVar(&opts.binOnly, "bin", false, "Generate only binary files")
	flags.BoolVar(&opts.txtOnly, "txt", false, "Generate only text files")
	flags.BoolVar(&opts.mixed, "mix", false, "Generate a mix of binary and text files (approx. 50/50 - default)")
	flags.StringVar(&opts.minSizeStr, "min-size", "100B", "Minimum file size in structured mode (e.g., 100B, 1KB)")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed for reproducible runs (0 = time-based)")
	flags.StringVarP(&opts.profilePath, "profile", "p", "", "Path to a YAML generation profile")
	flags.BoolVar(&opts.initProfile, "init-profile", false, "Print a starter profile and exit")
	flags.BoolVar(&opts.stat, "stat", false,
		"Show statistics on the generated files (count, total size, average size)")
	flags.StringVarP(&opts.output, "output", "o", "table", "Statistics output format: json or table")

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug output")

	root.MarkFlagsMutuallyExclusive("bin", "txt", "mix")

	root.AddCommand(newInspectCmd())

	return root
}

// buildRequest merges the profile (when given) with the command-line
// flags, flags winning, and resolves the generation mode.
func buildRequest(cmd *cobra.Command, opts *options) (genfiles.Request, error) {
	var request genfiles.Request

	if opts.profilePath != "" {
		prof, err := profile.LoadFile(opts.profilePath)
		if err != nil {
			return request, err
		}

		request, err = prof.Request()
		if err != nil {
			return request, fmt.Errorf("profile %q: %w", prof.Name, err)
		}

		log.Debug().Str("name", prof.Name).Str("source", prof.Source).Msg("loaded generation profile")
	}

	flags := cmd.Flags()

	if flags.Changed("directory") {
		request.Root = opts.directory
	}

	if request.Root == "" {
		return request, errors.New("root directory is required")
	}

	if flags.Changed("seed") {
		request.Seed = opts.seed
	}

	if flags.Changed("file-create") {
		if len(opts.fileCreate) != 2 {
			return request, errors.New("--file-create takes exactly two values: N (file count) and M (size in KB)")
		}

		request.Mode = genfiles.ModeFlat
		request.Files = opts.fileCreate[0]
		request.SizeKB = opts.fileCreate[1]

		if request.Files <= 0 || request.SizeKB <= 0 {
			return request, errors.New(
				"for --file-create, both N (file count) and M (size in KB) must be integers greater than 0")
		}

		return request, nil
	}

	if request.Mode != genfiles.ModeStructured {
		return request, nil
	}

	if flags.Changed("dirs") {
		request.Dirs = opts.dirs
	}

	if flags.Changed("max-files") {
		request.MaxFiles = opts.maxFiles
	}

	if flags.Changed("max-size-kb") {
		request.MaxSizeKB = opts.maxSizeKB
	}

	if (!flags.Changed("dirs") && request.Dirs == 0) ||
		(!flags.Changed("max-files") && request.MaxFiles == 0) ||
		(!flags.Changed("max-size-kb") && request.MaxSizeKB == 0) {
		return request, errors.New("when --file-create is not used, -n, -m, and -k are required for structured generation")
	}

	switch {
	case opts.binOnly:
		request.Types = genfiles.TypeBinary
	case opts.txtOnly:
		request.Types = genfiles.TypeText
	case opts.mixed:
		request.Types = genfiles.TypeMixed
	}

	// Parse minSize string to bytes
	if opts.profilePath == "" || flags.Changed("min-size") {
		size, err := humanize.ParseBytes(opts.minSizeStr)
		if err != nil {
			return request, fmt.Errorf("invalid min-size: %w", err)
		}

		request.MinSize = int(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return request, nil
}

// newInspectCmd creates the inspect subcommand.
func newInspectCmd() *cobra.Command {
	var (
		includes []string
		excludes []string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Report statistics for an existing directory tree",
		Long: heredoc.Doc(`
			inspect walks a directory tree and reports how many directories and
			binary/text files it holds, together with their sizes. Files are
			classified by extension: .bin counts as binary, .txt as text, and
			everything else is reported separately.

			Doublestar patterns filter the walk, matched against paths relative
			to the inspected root (e.g. 'subdir_00*/**').
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			options := genfiles.InspectOptions{
				Include: includes,
				Exclude: excludes,
			}

			if len(args) > 0 {
				options.Root = args[0]
			}

			cmd.SilenceUsage = true

			return inspect(options, output)
		},
	}

	cmd.Flags().StringSliceVarP(&includes, "include", "i", nil, "Doublestar patterns to include")
	cmd.Flags().StringSliceVarP(&excludes, "exclude", "e", nil, "Doublestar patterns to exclude")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: json or table")

	return cmd
}

// validateOutput rejects output formats other than table and JSON.
func validateOutput(output string) error {
	if !slices.Contains(allowedOutputs, output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", output, allowedOutputs)
	}

	return nil
}
