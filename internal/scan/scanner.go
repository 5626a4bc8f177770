// Package scan — scanner.go implements the deterministic directory walk
// that produces the ordered list of candidate files.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/stephenle/mpl-header/internal/header"
)

// excludedDirs are directory names that must never be scanned. A path
// is dropped when any of its segments matches one of these names.
var excludedDirs = map[string]struct{}{
	"node_modules": {},
	".vite":        {},
	"out":          {},
	"dist":         {},
	".git":         {},
	"__pycache__":  {},
	".cache":       {},
	"coverage":     {},
	"build":        {},
}

// excludedFiles are exact filenames that must never receive a header,
// matched against a path's final component. These are build-config
// files whose tooling chokes on leading comments.
var excludedFiles = map[string]struct{}{
	"vite.config.ts":          {},
	"vite.main.config.ts":     {},
	"vite.preload.config.ts":  {},
	"vite.renderer.config.ts": {},
	"forge.config.ts":         {},
}

// Scanner discovers candidate files beneath a root directory.
// The zero value is usable; NewScanner exists for symmetry with the
// rest of the codebase.
type Scanner struct {
	// RespectGitignore additionally filters candidates through the
	// root's .gitignore file, when one exists. Off by default: the
	// fixed exclusion sets alone define the tool's documented behavior.
	RespectGitignore bool
}

// NewScanner creates a Scanner with default settings.
func NewScanner() *Scanner {
	return &Scanner{}
}

// IsExcludedDir reports whether a directory name is in the exclusion set.
func IsExcludedDir(name string) bool {
	_, ok := excludedDirs[name]
	return ok
}

// IsExcludedFile reports whether a filename is in the exclusion set.
func IsExcludedFile(name string) bool {
	_, ok := excludedFiles[name]
	return ok
}

// ExcludedDirNames returns the directory exclusion set sorted for
// stable display in CLI output.
func ExcludedDirNames() []string {
	names := make([]string, 0, len(excludedDirs))
	for name := range excludedDirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasExcludedSegment reports whether any path segment of path matches
// an excluded directory name. The whole path is checked, root included:
// scanning a tree that itself lives under an excluded directory yields
// nothing.
func HasExcludedSegment(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if IsExcludedDir(segment) {
			return true
		}
	}
	return false
}

// Discover walks the tree beneath root and returns the sorted,
// deduplicated list of candidate file paths: files with a supported
// extension that are not excluded by directory segment or filename.
//
// The root must be an existing directory. Unreadable subtrees are
// reported to stderr and skipped rather than failing the whole walk —
// discovery mirrors the per-file error policy of the run itself.
func (s *Scanner) Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	// When the root itself sits below an excluded directory, nothing
	// beneath it is a candidate.
	if HasExcludedSegment(root) {
		return nil, nil
	}

	// Optionally load the root .gitignore. Only the root-level file is
	// consulted; nested .gitignore files are out of scope for this tool.
	var ignoreMatcher gitignore.IgnoreMatcher
	if s.RespectGitignore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, statErr := os.Stat(gitIgnorePath); statErr == nil {
			matcher, ignErr := gitignore.NewGitIgnore(gitIgnorePath)
			if ignErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse .gitignore file %s: %v\n", gitIgnorePath, ignErr)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	// seen deduplicates paths; WalkDir visits each entry once, but the
	// map also makes dedup explicit instead of an accident of the walk.
	seen := make(map[string]struct{})

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Report and continue: an unreadable entry must not stop
			// discovery of the rest of the tree.
			fmt.Fprintf(os.Stderr, "Warning: error accessing path %s: %v\n", path, err)
			return nil
		}

		if d.IsDir() {
			// Prune excluded directories so the walk never descends
			// into node_modules and friends.
			if path != root && IsExcludedDir(d.Name()) {
				return fs.SkipDir
			}
			// The matcher only reports directory patterns (e.g.
			// "generated/") against the directory itself, so ignored
			// directories must be pruned here rather than caught by
			// the per-file check below.
			if ignoreMatcher != nil && path != root && ignoreMatcher.Match(path, true) {
				return fs.SkipDir
			}
			return nil
		}

		// Unsupported extensions are not candidates.
		if _, ok := header.CategoryForPath(path); !ok {
			return nil
		}

		// Exact-filename exclusions (build configs).
		if IsExcludedFile(d.Name()) {
			return nil
		}

		// Pruning already keeps us out of excluded directories below
		// root; the segment check also covers symlinked or oddly
		// joined paths.
		if HasExcludedSegment(path) {
			return nil
		}

		if ignoreMatcher != nil && ignoreMatcher.Match(path, false) {
			return nil
		}

		seen[path] = struct{}{}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	// Stable, lexicographic order: repeated runs over an unchanged tree
	// must enumerate files identically.
	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}
