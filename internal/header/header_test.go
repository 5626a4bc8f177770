package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCategoryForPath verifies the extension→category mapping, including
// the case-sensitive matching rule (a .TS file is not a candidate).
func TestCategoryForPath(t *testing.T) {
	tests := []struct {
		path      string
		expected  Category
		supported bool
	}{
		{"src/app.ts", CategoryScript, true},
		{"src/app.js", CategoryScript, true},
		{"src/App.tsx", CategoryScript, true},
		{"src/App.jsx", CategoryScript, true},
		{"public/index.html", CategoryHTML, true},
		{"styles/main.css", CategoryCSS, true},
		{"README.md", "", false},
		{"script.py", "", false},
		{"noextension", "", false},
		{"upper.TS", "", false},   // extensions match case-sensitively
		{"page.HTML", "", false},  // extensions match case-sensitively
		{"archive.ts.bak", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			cat, ok := CategoryForPath(tt.path)
			assert.Equal(t, tt.supported, ok)
			if tt.supported {
				assert.Equal(t, tt.expected, cat)
			}
		})
	}
}

// TestTemplate_Shapes verifies structural properties of all three header
// blocks: each carries the MPL notice and the copyright line, and each
// ends with a blank line that separates it from the original content.
func TestTemplate_Shapes(t *testing.T) {
	for _, cat := range []Category{CategoryScript, CategoryHTML, CategoryCSS} {
		t.Run(cat.String(), func(t *testing.T) {
			tpl := Template(cat)
			assert.Contains(t, tpl, "Mozilla Public License")
			assert.Contains(t, tpl, "https://mozilla.org/MPL/2.0/")
			assert.Contains(t, tpl, "Copyright (c) 2025 Stephen Le")
			assert.True(t, strings.HasSuffix(tpl, "\n\n"),
				"template must end with a blank line before original content")
		})
	}

	// Comment style per category.
	assert.True(t, strings.HasPrefix(Template(CategoryScript), "// "))
	assert.True(t, strings.HasPrefix(Template(CategoryHTML), "<!--\n"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(Template(CategoryHTML), "\n"), "-->"))
	assert.True(t, strings.HasPrefix(Template(CategoryCSS), "/*\n"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(Template(CategoryCSS), "\n"), "*/"))
}

// TestSupportedExtensions verifies the extension list is complete and sorted.
func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	assert.Equal(t, []string{".css", ".html", ".js", ".jsx", ".ts", ".tsx"}, exts)
}

// TestHas verifies the header-presence check, including the scan window
// boundary and the documented breadth of the bare "MPL" indicator.
func TestHas(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "full script header",
			content:  Template(CategoryScript) + "const x = 1;\n",
			expected: true,
		},
		{
			name:     "copyright line only",
			content:  "// Copyright (c) 2025 Stephen Le\nconst x = 1;\n",
			expected: true,
		},
		{
			name:     "mpl url only",
			content:  "/* https://mozilla.org/MPL/2.0 */\nbody {}\n",
			expected: true,
		},
		{
			name:     "bare MPL token matches even unrelated content",
			content:  "const SAMPLE = \"MPL\";\n",
			expected: true,
		},
		{
			name:     "plain source",
			content:  "const x = 1;\n",
			expected: false,
		},
		{
			name:     "empty content",
			content:  "",
			expected: false,
		},
		{
			name: "indicator beyond the 500-character window",
			content: strings.Repeat("a", 500) +
				"// Copyright (c) 2025 Stephen Le\n",
			expected: false,
		},
		{
			name: "indicator ending exactly at the window boundary",
			content: strings.Repeat("a", 500-len("MPL")) +
				"MPL" + strings.Repeat("b", 100),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Has(tt.content))
		})
	}
}

// TestHas_MultibyteWindow verifies that the scan window counts
// characters, not bytes. 500 two-byte runes push the indicator out of
// the window even though it starts before byte offset 1000.
func TestHas_MultibyteWindow(t *testing.T) {
	content := strings.Repeat("é", 500) + "MPL"
	assert.False(t, Has(content))

	content = strings.Repeat("é", 490) + "MPL"
	assert.True(t, Has(content))
}

// TestApply_Prepend verifies the plain prepend path used for script and
// CSS files (and headerless HTML).
func TestApply_Prepend(t *testing.T) {
	t.Run("script", func(t *testing.T) {
		result := Apply(CategoryScript, "const x = 1;\n")
		assert.Equal(t, Template(CategoryScript)+"const x = 1;\n", result)
	})

	t.Run("css", func(t *testing.T) {
		result := Apply(CategoryCSS, "body { margin: 0; }\n")
		assert.Equal(t, Template(CategoryCSS)+"body { margin: 0; }\n", result)
	})

	t.Run("leading whitespace is preserved outside the HTML splice", func(t *testing.T) {
		result := Apply(CategoryScript, "\n\nconst x = 1;\n")
		assert.Equal(t, Template(CategoryScript)+"\n\nconst x = 1;\n", result)
	})
}

// TestApply_HTMLDoctype verifies the DOCTYPE splice: the header lands
// immediately after the declaration, preceded by one newline, and the
// remainder's leading whitespace is stripped.
func TestApply_HTMLDoctype(t *testing.T) {
	t.Run("doctype at start", func(t *testing.T) {
		result := Apply(CategoryHTML, "<!DOCTYPE html>\n<html></html>")
		assert.Equal(t, "<!DOCTYPE html>\n"+Template(CategoryHTML)+"<html></html>", result)
	})

	t.Run("doctype after leading whitespace", func(t *testing.T) {
		result := Apply(CategoryHTML, "\n  <!DOCTYPE html>\n<html></html>")
		// Content before the declaration's closing > is preserved verbatim.
		assert.Equal(t, "\n  <!DOCTYPE html>\n"+Template(CategoryHTML)+"<html></html>", result)
	})

	t.Run("extra blank lines after doctype are stripped", func(t *testing.T) {
		result := Apply(CategoryHTML, "<!DOCTYPE html>\n\n\n<html></html>")
		assert.Equal(t, "<!DOCTYPE html>\n"+Template(CategoryHTML)+"<html></html>", result)
	})

	t.Run("no doctype prepends", func(t *testing.T) {
		result := Apply(CategoryHTML, "<html></html>")
		assert.Equal(t, Template(CategoryHTML)+"<html></html>", result)
	})

	t.Run("lowercase doctype is not the literal marker", func(t *testing.T) {
		result := Apply(CategoryHTML, "<!doctype html>\n<html></html>")
		assert.Equal(t, Template(CategoryHTML)+"<!doctype html>\n<html></html>", result)
	})

	t.Run("unterminated doctype degenerates to stripped prepend", func(t *testing.T) {
		result := Apply(CategoryHTML, "<!DOCTYPE html")
		// No closing > exists: the splice point is offset zero, so the
		// result is a newline, the header, then the stripped content.
		assert.Equal(t, "\n"+Template(CategoryHTML)+"<!DOCTYPE html", result)
	})
}

// TestApply_Idempotence verifies that applying a header and re-checking
// Has closes the loop: stamped output is always detected as headered.
func TestApply_Idempotence(t *testing.T) {
	for _, cat := range []Category{CategoryScript, CategoryHTML, CategoryCSS} {
		t.Run(cat.String(), func(t *testing.T) {
			stamped := Apply(cat, "content\n")
			require.True(t, Has(stamped))
		})
	}
}
