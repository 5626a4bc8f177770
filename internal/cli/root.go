// Package cli implements the cobra-based command line surface for
// mpl-header.
//
// The tool has a single operation — stamp headers under a directory —
// so the root command runs it directly instead of dispatching to
// subcommands. This file defines the root command, global flags, and
// the error-to-exit-code translation.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stephenle/mpl-header/internal/model"
)

// Global flag variables shared across the package.
var (
	// jsonOutput controls whether the run summary is formatted as JSON.
	// When true, the summary uses structured JSON on stdout and all
	// human-readable progress lines move to stderr.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values for the root command.
// These are bound to cobra flags in NewRootCommand.
type rootFlags struct {
	dir              string // --dir: root directory to scan
	dryRun           bool   // --dry-run: preview without writing
	backup           bool   // --backup: save .bak copies before writing
	respectGitignore bool   // --respect-gitignore: also honor the root .gitignore
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "mpl-header",
		Short: "Add MPL 2.0 license headers to source files",
		Long: `mpl-header walks a directory tree and inserts a Mozilla Public License 2.0
header into TypeScript, JavaScript, HTML, and CSS files, skipping files
that already carry one.

Build directories (node_modules, dist, .git, ...) and build-config files
are never touched. HTML files keep their <!DOCTYPE> declaration first;
the header is spliced in right after it.

Examples:
  mpl-header --dry-run              # Preview changes
  mpl-header                        # Apply headers under the current directory
  mpl-header --backup --dir ./app   # Apply with .bak backups under ./app`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// The tool takes no positional arguments; the scan root comes
		// from --dir.
		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors to the
		// Execute error handler below.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInject(cmd, flags)
		},
	}

	// Register the operation flags.
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Preview changes without modifying files")
	rootCmd.Flags().BoolVar(&flags.backup, "backup", false, "Create .bak backup files before modifying")
	rootCmd.Flags().StringVar(&flags.dir, "dir", ".", "Root directory to process")
	rootCmd.Flags().BoolVar(&flags.respectGitignore, "respect-gitignore", false, "Also skip files matched by the root .gitignore")

	// Output-shaping flags.
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run summary in JSON format")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by the command and translates them into
// appropriate OS exit codes. CLIError values carry their own exit
// codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json flag.
func printError(message string, underlying error) {
	if jsonOutput {
		// We write to stderr for errors, even in JSON mode, because
		// stdout is reserved for the summary object.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "{\n  \"error\": %q,\n  \"detail\": %q\n}\n", message, underlying.Error())
		} else {
			fmt.Fprintf(os.Stderr, "{\n  \"error\": %q\n}\n", message)
		}
	} else {
		// Text format: "Error: <message>" on stderr.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. This is used for trace output that helps users understand
// what the tool is doing.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
