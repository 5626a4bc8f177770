// Package injector implements the per-file header pipeline for the
// mpl-header CLI: decode the file as text, check for an existing
// header, splice the template in, optionally save a .bak copy, and
// overwrite the file in place (or only report, in dry-run mode).
//
// Every per-file failure is absorbed into the run summary — one bad
// file never halts a bulk run. Only the CLI layer aborts, and only for
// a missing scan root.
package injector
