// Package discovery finds corpus input files by expanding glob patterns.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of glob patterns to match files against,
	// relative to BaseDir. An empty or nil list means no files are
	// discovered.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// Ignore holds glob patterns for paths to exclude, matched against
	// the slash-separated path relative to BaseDir.
	Ignore []string
}

// Discover walks BaseDir and returns files matching any of the configured
// glob patterns. Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	if len(opts.Patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	validPatterns := validatePatterns(opts.Patterns)
	if len(validPatterns) == 0 {
		return nil, nil
	}

	ignore, err := compileIgnore(opts.Ignore)
	if err != nil {
		return nil, err
	}

	w := &walker{
		absBase:  absBase,
		patterns: validPatterns,
		ignore:   ignore,
		seen:     make(map[string]bool),
	}

	if err := filepath.Walk(absBase, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

// Languages extracts language codes from discovered files: the portion
// of each base name before the first dot. Codes are deduplicated and
// sorted.
func Languages(files []string) []string {
	seen := make(map[string]bool, len(files))
	codes := make([]string, 0, len(files))
	for _, file := range files {
		code := strings.SplitN(filepath.Base(file), ".", 2)[0]
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// compileIgnore compiles ignore patterns with / as the separator.
func compileIgnore(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// walker holds state for the directory walk.
type walker struct {
	absBase  string
	patterns []string
	ignore   []glob.Glob
	seen     map[string]bool
	result   []string
}

// visit is the filepath.WalkFunc callback.
func (w *walker) visit(path string, info os.FileInfo, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(w.absBase, path)
	if err != nil || rel == "." {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if w.isIgnored(rel) {
		if info.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	if info.IsDir() {
		return nil
	}

	if w.matchesAny(rel) {
		w.addFile(path)
	}
	return nil
}

// isIgnored returns true if rel matches any ignore pattern.
func (w *walker) isIgnored(rel string) bool {
	for _, g := range w.ignore {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// matchesAny returns true if rel matches any of the configured patterns.
func (w *walker) matchesAny(rel string) bool {
	for _, p := range w.patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// addFile adds a file to the result set if not already seen.
func (w *walker) addFile(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	if !w.seen[absPath] {
		w.seen[absPath] = true
		w.result = append(w.result, path)
	}
}
