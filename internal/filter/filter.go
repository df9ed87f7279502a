// Package filter applies include/exclude name globs to the final file list.
// It never influences traversal; ignored directories are decided by the ignore package.
package filter

import (
	"path/filepath"

	"github.com/bethropolis/projct/internal/utils"
	"github.com/gobwas/glob"
)

// Filter keeps files whose base name matches an include pattern (when any are
// set) and drops files whose base name matches an exclude pattern.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
	// set when include patterns were given, even if none compiled
	restricted bool
}

// New compiles the include and exclude globs. Patterns that do not compile are
// logged and never match.
func New(include, exclude []string, logger utils.Logger) *Filter {
	if logger == nil {
		logger = utils.NoopLogger{}
	}
	return &Filter{
		include:    compileAll(include, logger),
		exclude:    compileAll(exclude, logger),
		restricted: len(include) > 0,
	}
}

func compileAll(patterns []string, logger utils.Logger) []glob.Glob {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			logger.Warn("Invalid filter pattern %q: %v", p, err)
			continue
		}
		out = append(out, g)
	}
	return out
}

// Empty reports whether the filter would keep every file.
func (f *Filter) Empty() bool {
	return !f.restricted && len(f.exclude) == 0
}

// Apply returns the files that pass, preserving order.
func (f *Filter) Apply(files []string) []string {
	if f.Empty() {
		return files
	}
	kept := make([]string, 0, len(files))
	for _, path := range files {
		if f.Keep(path) {
			kept = append(kept, path)
		}
	}
	return kept
}

// Keep reports whether a single file passes the filter.
func (f *Filter) Keep(path string) bool {
	name := filepath.Base(path)
	if f.restricted && !anyMatch(f.include, name) {
		return false
	}
	return !anyMatch(f.exclude, name)
}

func anyMatch(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
