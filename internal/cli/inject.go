// Package cli — inject.go implements the header-stamping run behind the
// root command.
//
// Orchestration steps:
//  1. Resolve and validate the scan root (missing root is fatal)
//  2. Discover candidate files in stable sorted order
//  3. Process each file via the injector, accumulating counts
//  4. Print the summary (text or JSON) and map errors to the exit code
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stephenle/mpl-header/internal/header"
	"github.com/stephenle/mpl-header/internal/injector"
	"github.com/stephenle/mpl-header/internal/model"
	"github.com/stephenle/mpl-header/internal/scan"
)

// runInject is the main orchestration function for the root command.
func runInject(cmd *cobra.Command, flags *rootFlags) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	// In JSON mode stdout carries only the summary object, so all
	// human-readable progress lines move to stderr.
	logOut := out
	if jsonOutput {
		logOut = errOut
	}

	// Step 1: resolve the scan root to an absolute path and require it
	// to exist. A missing root is the only fatal condition.
	root, err := filepath.Abs(flags.dir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve root directory", err)
	}

	info, statErr := os.Stat(root)
	if statErr != nil || !info.IsDir() {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("directory does not exist: %s", root), statErr)
	}
	VerboseLog("Scan root: %s", root)

	printBanner(logOut, root, flags.dryRun)

	// Step 2: discover candidate files. The scanner returns them
	// deduplicated and lexicographically sorted, so repeated runs over
	// an unchanged tree behave identically.
	scanner := scan.NewScanner()
	scanner.RespectGitignore = flags.respectGitignore

	files, err := scanner.Discover(root)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to scan for source files", err)
	}
	VerboseLog("Discovered %d candidate file(s)", len(files))

	// An empty tree is not an error: warn and exit 0. JSON consumers
	// still get a (zeroed) summary object.
	if len(files) == 0 {
		fmt.Fprintln(logOut, "[WARN] No source files found!")
		if jsonOutput {
			return printSummaryJSON(out, &model.RunSummary{
				Root:   root,
				DryRun: flags.dryRun,
				Backup: flags.backup,
			})
		}
		return nil
	}

	fmt.Fprintf(logOut, "Found %d source files\n\n", len(files))

	// Step 3: process every file. The injector absorbs per-file
	// failures into the summary; the loop never aborts.
	inj := injector.New(flags.dryRun, flags.backup, logOut)
	summary := inj.Run(files)
	summary.Root = root

	// Step 4: print the summary and translate per-file errors into a
	// non-zero exit code.
	if jsonOutput {
		if err := printSummaryJSON(out, summary); err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to encode summary", err)
		}
	} else {
		printSummaryText(logOut, summary)
	}

	if summary.HasErrors() {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("%d file(s) could not be processed", summary.Errors))
	}
	return nil
}

// printBanner announces what the run is about to do: the scan root, the
// extensions considered, the directories never touched, and the dry-run
// notice when applicable.
func printBanner(w io.Writer, root string, dryRun bool) {
	fmt.Fprintf(w, "Scanning for source files in: %s\n", root)
	fmt.Fprintf(w, "Supported extensions: %s\n", strings.Join(header.SupportedExtensions(), ", "))
	fmt.Fprintf(w, "Excluded directories: %s\n", strings.Join(scan.ExcludedDirNames(), ", "))
	fmt.Fprintln(w)

	if dryRun {
		fmt.Fprintln(w, "DRY RUN MODE - No files will be modified")
		fmt.Fprintln(w)
	}
}

// printSummaryText outputs the aggregate summary block as human-readable
// text, with contextual notes for dry-run and backup modes.
func printSummaryText(w io.Writer, summary *model.RunSummary) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total files scanned:  %d\n", summary.Scanned)
	fmt.Fprintf(w, "Files modified:       %d\n", summary.Modified)
	fmt.Fprintf(w, "Files skipped:        %d\n", summary.Skipped)
	fmt.Fprintf(w, "Errors:               %d\n", summary.Errors)

	if summary.DryRun {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "This was a dry run. No files were actually modified.")
		fmt.Fprintln(w, "Run without --dry-run to apply the headers.")
	}

	if summary.Backup && summary.Modified > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Backups created with .bak extension")
		fmt.Fprintln(w, "You can safely delete these after verifying the changes.")
	}

	fmt.Fprintln(w)
}

// printSummaryJSON outputs the summary as indented JSON for machine
// consumption.
func printSummaryJSON(w io.Writer, summary *model.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
