// Package header — header.go defines the MPL 2.0 header templates, the
// extension→template mapping, the header-presence check, and the splice
// logic that inserts a header into file content.
package header

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Category identifies a comment style for the header. Several
// extensions share a category (e.g. .ts/.js/.tsx/.jsx all use
// line comments).
type Category string

const (
	// CategoryScript covers TypeScript and JavaScript files
	// (.ts, .js, .tsx, .jsx). The header uses // line comments.
	CategoryScript Category = "script"

	// CategoryHTML covers .html files. The header is wrapped in an
	// HTML comment and, when the file starts with a DOCTYPE
	// declaration, is spliced in after it rather than prepended.
	CategoryHTML Category = "html"

	// CategoryCSS covers .css files. The header is wrapped in a
	// /* ... */ block comment.
	CategoryCSS Category = "css"
)

// String returns the string representation of Category.
func (c Category) String() string {
	return string(c)
}

// headerScript is the header for TS/JS-like files. The trailing blank
// line separates the header from the original content.
const headerScript = `// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Copyright (c) 2025 Stephen Le

`

// headerHTML is the header for HTML files, wrapped in an HTML comment.
const headerHTML = `<!--
  This Source Code Form is subject to the terms of the Mozilla Public
  License, v. 2.0. If a copy of the MPL was not distributed with this
  file, You can obtain one at https://mozilla.org/MPL/2.0/.

  Copyright (c) 2025 Stephen Le
-->

`

// headerCSS is the header for CSS files, wrapped in a block comment.
const headerCSS = `/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at https://mozilla.org/MPL/2.0/.
 *
 * Copyright (c) 2025 Stephen Le
 */

`

// templates maps each category to its literal header block.
var templates = map[Category]string{
	CategoryScript: headerScript,
	CategoryHTML:   headerHTML,
	CategoryCSS:    headerCSS,
}

// extensionCategories maps supported file extensions to their header
// category. Extensions are matched case-sensitively: a .TS file is not
// a candidate.
var extensionCategories = map[string]Category{
	".ts":   CategoryScript,
	".js":   CategoryScript,
	".tsx":  CategoryScript,
	".jsx":  CategoryScript,
	".html": CategoryHTML,
	".css":  CategoryCSS,
}

// indicators are the literal substrings whose presence within the scan
// window marks a file as already headered. The bare "MPL" token is
// intentionally broad: it also matches files whose first characters
// contain that token for unrelated reasons. That false positive is
// accepted in favor of never double-inserting a header.
var indicators = []string{
	"Mozilla Public License",
	"MPL",
	"https://mozilla.org/MPL/2.0",
	"Copyright (c) 2025 Stephen Le",
}

// scanWindow is the number of leading characters inspected by Has.
// Headers always sit at the very top of a file, so looking further
// would only increase the false-positive surface.
const scanWindow = 500

// doctypeMarker is the literal, case-sensitive marker that triggers the
// HTML splice path. Lowercase or mixed-case doctypes fall through to a
// plain prepend.
const doctypeMarker = "<!DOCTYPE"

// CategoryForExtension returns the header category for a file extension
// (including the leading dot). The second return value is false for
// unsupported extensions.
func CategoryForExtension(ext string) (Category, bool) {
	cat, ok := extensionCategories[ext]
	return cat, ok
}

// CategoryForPath returns the header category for a file path, based on
// its extension. The second return value is false for unsupported paths.
func CategoryForPath(path string) (Category, bool) {
	return CategoryForExtension(filepath.Ext(path))
}

// Template returns the literal header block for a category.
// It panics on an unknown category, which can only happen through a
// programming error — categories never come from user input.
func Template(cat Category) string {
	tpl, ok := templates[cat]
	if !ok {
		panic("header: unknown category " + string(cat))
	}
	return tpl
}

// SupportedExtensions returns the list of file extensions the tool
// processes, sorted for stable display in CLI output.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionCategories))
	for ext := range extensionCategories {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Has reports whether the content already carries a license header.
// Only the first 500 characters are inspected; any of the indicator
// substrings counts as a hit. This is the idempotence guard that makes
// re-running the tool over an already-stamped tree a no-op.
func Has(content string) bool {
	window := headWindow(content)
	for _, indicator := range indicators {
		if strings.Contains(window, indicator) {
			return true
		}
	}
	return false
}

// headWindow returns the first scanWindow characters (runes, not bytes)
// of content. Counting runes keeps the window consistent with how the
// original text was authored regardless of how many bytes each
// character occupies.
func headWindow(content string) string {
	count := 0
	for i := range content {
		if count == scanWindow {
			return content[:i]
		}
		count++
	}
	return content
}

// Apply returns the content with the category's header inserted.
//
// For HTML content that, after stripping surrounding whitespace, begins
// with the literal <!DOCTYPE marker, the header is spliced in
// immediately after the > that terminates the declaration, preceded by
// one newline, and the remainder's leading whitespace is stripped
// before appending. All other content gets the header prepended as-is.
func Apply(cat Category, content string) string {
	tpl := Template(cat)

	if cat == CategoryHTML && strings.HasPrefix(strings.TrimSpace(content), doctypeMarker) {
		// Locate the end of the DOCTYPE declaration. The search for >
		// starts at the first occurrence of the marker itself, so a >
		// inside leading content cannot terminate it early.
		start := strings.Index(content, doctypeMarker)

		// If the declaration is never closed, end stays at 0 and the
		// splice degenerates to newline + header + stripped content.
		end := 0
		if pos := strings.IndexByte(content[start:], '>'); pos >= 0 {
			end = start + pos + 1
		}

		rest := strings.TrimLeftFunc(content[end:], unicode.IsSpace)
		return content[:end] + "\n" + tpl + rest
	}

	return tpl + content
}
