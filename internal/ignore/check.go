package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore checks if a file or directory should be ignored.
// path may be absolute or relative to the root.
func (r *Resolver) ShouldIgnore(path string, isDir bool) bool {
	if r == nil {
		return false
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(r.rootDir, path)
	}
	path = filepath.Clean(path)

	ignored := false
	if r.index != nil {
		ignored = r.index.Resolve(path, isDir)
		if ignored {
			r.logger.Debug("ignore.ShouldIgnore: %q ignored by %s rules", path, r.ignoreFileName)
		}
	}

	if r.extra != nil {
		rel, err := filepath.Rel(r.rootDir, path)
		if err == nil && rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			if match := r.extra.Relative(filepath.ToSlash(rel), isDir); match != nil {
				r.logger.Debug("ignore.ShouldIgnore: %q matched extra rule %s (ignore=%v)", path, match, match.Ignore())
				return match.Ignore()
			}
		}
	}

	return ignored
}
