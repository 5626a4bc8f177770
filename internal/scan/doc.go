// Package scan implements candidate file discovery for the mpl-header
// CLI.
//
// Discovery is a recursive walk beneath a root directory that keeps
// files with a supported extension, drops anything under an excluded
// directory segment (node_modules, dist, .git, ...) or with an excluded
// build-config filename, and optionally honors the root .gitignore.
//
// The result is deduplicated and sorted lexicographically, so repeated
// runs over an unchanged tree enumerate files identically and output
// stays diff-friendly.
package scan
