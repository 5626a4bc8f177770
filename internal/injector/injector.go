// Package injector — injector.go implements the per-file header
// pipeline and the run loop that folds outcomes into a RunSummary.
package injector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/stephenle/mpl-header/internal/header"
	"github.com/stephenle/mpl-header/internal/model"
	"github.com/stephenle/mpl-header/internal/scan"
)

// defaultFileMode is used when the original file's permissions cannot
// be determined (the file vanished between read and write).
const defaultFileMode = 0644

// Injector applies license headers to individual files. It is
// configured once per run and processes files strictly sequentially:
// each file is read, optionally backed up, optionally written, and
// closed before the next one is touched.
type Injector struct {
	// DryRun simulates the run: would-be changes are reported and
	// counted as modifications, but the filesystem is never touched.
	DryRun bool

	// Backup copies each file to <path>.bak before overwriting it.
	Backup bool

	// Out receives the tagged per-file progress lines
	// ([SKIP], [OK], [DRY-RUN], ...). Defaults to os.Stdout.
	Out io.Writer
}

// New creates an Injector writing progress lines to out.
// A nil out falls back to os.Stdout.
func New(dryRun, backup bool, out io.Writer) *Injector {
	if out == nil {
		out = os.Stdout
	}
	return &Injector{DryRun: dryRun, Backup: backup, Out: out}
}

// Run processes every file in order and returns the accumulated
// summary. Per-file failures are logged and counted; the loop always
// continues to the next file.
func (inj *Injector) Run(files []string) *model.RunSummary {
	summary := &model.RunSummary{
		DryRun:  inj.DryRun,
		Backup:  inj.Backup,
		Scanned: len(files),
	}
	for _, path := range files {
		summary.Record(inj.Process(path))
	}
	return summary
}

// Process runs the full pipeline for a single file and returns its
// outcome. It never returns an error: every failure mode is mapped to
// a Skipped or Errored result so the caller's loop stays trivial.
func (inj *Injector) Process(path string) model.FileResult {
	// Step 1: unsupported extensions and excluded filenames are quietly
	// skipped. The scanner normally filters these already, but Process
	// guards on its own so it is safe on any path.
	cat, ok := header.CategoryForPath(path)
	if !ok {
		return model.FileResult{Path: path, Action: model.ActionSkipped, Detail: "unsupported file type"}
	}
	if scan.IsExcludedFile(filepath.Base(path)) {
		return model.FileResult{Path: path, Action: model.ActionSkipped, Detail: "excluded filename"}
	}

	// Step 2: read and decode the file. A file that cannot be decoded
	// as text is a recoverable, per-file condition — warn and skip.
	content, err := readText(path)
	if err != nil {
		fmt.Fprintf(inj.Out, "[WARN] Error reading %s: %v\n", path, err)
		return model.FileResult{Path: path, Action: model.ActionSkipped, Detail: fmt.Sprintf("unreadable: %v", err)}
	}

	// Step 3: idempotence guard. Reapplying the tool to an
	// already-headered file must be a no-op.
	if header.Has(content) {
		fmt.Fprintf(inj.Out, "[SKIP] %s (already has header)\n", path)
		return model.FileResult{Path: path, Action: model.ActionSkipped, Detail: "already has header"}
	}

	// Steps 4-5: select the template and splice it in.
	newContent := header.Apply(cat, content)

	// Step 6: dry-run reports the would-be change and stops before any
	// filesystem side effect.
	if inj.DryRun {
		fmt.Fprintf(inj.Out, "[DRY-RUN] Would add header to: %s\n", path)
		return model.FileResult{Path: path, Action: model.ActionModified, Detail: "dry-run"}
	}

	// Step 7: save the backup before the original is overwritten.
	if inj.Backup {
		backupPath, backupErr := backupFile(path)
		if backupErr != nil {
			fmt.Fprintf(inj.Out, "[ERROR] Error backing up %s: %v\n", path, backupErr)
			return model.FileResult{Path: path, Action: model.ActionErrored, Detail: fmt.Sprintf("backup failed: %v", backupErr)}
		}
		fmt.Fprintf(inj.Out, "[BACKUP] Created backup: %s\n", backupPath)
	}

	// Step 8: overwrite in place, keeping the file's permissions.
	if writeErr := writeText(path, newContent); writeErr != nil {
		fmt.Fprintf(inj.Out, "[ERROR] Error writing %s: %v\n", path, writeErr)
		return model.FileResult{Path: path, Action: model.ActionErrored, Detail: fmt.Sprintf("write failed: %v", writeErr)}
	}

	fmt.Fprintf(inj.Out, "[OK] Added header to: %s\n", path)
	return model.FileResult{Path: path, Action: model.ActionModified}
}

// readText reads a file and decodes it as text. UTF-8 is the primary
// encoding; content that is not valid UTF-8 is retried with ISO 8859-1,
// a permissive single-byte decoding that can represent any byte
// sequence without failure.
func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("content is neither valid UTF-8 nor Latin-1: %w", err)
	}
	return string(decoded), nil
}

// writeText overwrites path with content encoded as UTF-8, preserving
// the file's existing permission bits.
func writeText(path string, content string) error {
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}

// backupFile copies path to a sibling <path>.bak, preserving the
// permission bits and modification time where the platform allows.
// Returns the backup path.
func backupFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat original: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read original: %w", err)
	}

	backupPath := path + ".bak"
	if err := os.WriteFile(backupPath, raw, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	// Carry the original's mtime over to the copy. Access time is not
	// tracked separately, so the mtime stands in for both.
	if err := os.Chtimes(backupPath, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("failed to set backup times: %w", err)
	}

	return backupPath, nil
}
