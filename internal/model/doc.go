// Package model defines the domain types and value objects for the
// mpl-header CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (FileResult, RunSummary) are transient representations that
// live only for the duration of a single run — there are no persistent
// state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
