// Package header holds the license header templates and the logic that
// decides whether a file already carries a header and where a new header
// must be spliced in.
//
// The package is pure string manipulation: it never touches the
// filesystem. All configuration tables (extension→template mapping,
// comment styles) are immutable package-level data initialized once at
// process start.
package header
