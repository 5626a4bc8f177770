// Package model defines the domain types for the mpl-header CLI.
//
// All entities here are transient, per-run representations: a FileResult
// is created when a candidate file is processed and folded into the
// RunSummary immediately. No state survives a run — there is no database,
// cache, or cross-run bookkeeping of any kind.
package model

import (
	"fmt"
	"strings"
)

// FileAction represents the outcome of processing a single candidate file.
// Every discovered file resolves to exactly one of these three outcomes:
//
//	Modified — a header was written (or would be, in dry-run mode)
//	Skipped  — nothing to do (already headered, excluded, or undecodable)
//	Errored  — processing failed in a recoverable, per-file way
type FileAction string

const (
	// ActionModified indicates a header was inserted into the file.
	// In dry-run mode this means a header would have been inserted;
	// dry-run counts as a would-be modification for reporting purposes.
	ActionModified FileAction = "modified"

	// ActionSkipped indicates the file was left untouched: it already
	// carries a license header, is of an unsupported type, is excluded
	// by name, or could not be decoded as text.
	ActionSkipped FileAction = "skipped"

	// ActionErrored indicates a per-file failure (e.g. a write error).
	// Errored files are counted and reported but never abort the run.
	ActionErrored FileAction = "errored"
)

// String returns the string representation of FileAction.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI logs and JSON summaries.
func (a FileAction) String() string {
	return string(a)
}

// IsValid checks whether the FileAction value is one of the
// predefined valid outcomes.
func (a FileAction) IsValid() bool {
	switch a {
	case ActionModified, ActionSkipped, ActionErrored:
		return true
	default:
		return false
	}
}

// ParseFileAction converts a string to a FileAction.
// Returns an error if the string does not match any valid action.
func ParseFileAction(s string) (FileAction, error) {
	action := FileAction(strings.ToLower(s))
	if !action.IsValid() {
		return "", fmt.Errorf("invalid file action: %q (valid: modified, skipped, errored)", s)
	}
	return action, nil
}

// FileResult records the outcome of processing one candidate file.
// It exists only for the duration of a run: created when the file is
// read, folded into the RunSummary, and discarded.
type FileResult struct {
	// Path is the file's path as discovered under the scan root.
	Path string `json:"path"`

	// Action is the resolved outcome for this file.
	Action FileAction `json:"action"`

	// Detail optionally explains the outcome, e.g. "already has header"
	// or the text of a write error. Empty for plain modifications.
	Detail string `json:"detail,omitempty"`
}

// RunSummary accumulates per-file outcomes across a whole run and is
// printed (as text or JSON) once all discovered files are processed.
type RunSummary struct {
	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`

	// DryRun records whether the run was a simulation.
	DryRun bool `json:"dryRun"`

	// Backup records whether .bak copies were requested.
	Backup bool `json:"backup"`

	// Scanned is the total number of candidate files discovered.
	Scanned int `json:"scanned"`

	// Modified counts files that received a header (or would have,
	// in dry-run mode).
	Modified int `json:"modified"`

	// Skipped counts files intentionally left untouched.
	Skipped int `json:"skipped"`

	// Errors counts per-file recoverable failures.
	Errors int `json:"errors"`

	// Results holds the individual per-file outcomes, in the stable
	// discovery order.
	Results []FileResult `json:"results,omitempty"`
}

// Record folds one per-file outcome into the summary counters.
// Unknown actions are counted as errors rather than silently dropped,
// so a programming mistake surfaces in the summary instead of vanishing.
func (s *RunSummary) Record(res FileResult) {
	s.Results = append(s.Results, res)
	switch res.Action {
	case ActionModified:
		s.Modified++
	case ActionSkipped:
		s.Skipped++
	default:
		s.Errors++
	}
}

// HasErrors reports whether any per-file error occurred during the run.
// The process exits non-zero when this is true.
func (s *RunSummary) HasErrors() bool {
	return s.Errors > 0
}

// ExitCode defines the CLI exit codes. These codes allow scripts and CI
// systems to programmatically determine the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the run completed without per-file errors.
	// A run that discovered zero candidate files also exits with this
	// code — an empty tree is not an error.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates a fatal condition (the scan root does
	// not exist) or that at least one per-file error occurred.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
