package ignore

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Index maps every directory that owns an ignore file to its scopes.
// It is built once by a full pre-scan and only read afterwards.
type Index struct {
	root   string
	scopes map[string][]*Scope
}

// BuildIndex pre-scans rootDir for ignore files using the given options.
func BuildIndex(rootDir string, opts ...Option) (*Index, error) {
	r, err := newResolver(rootDir, opts)
	if err != nil {
		return nil, err
	}
	return r.buildIndex(), nil
}

func (r *Resolver) buildIndex() *Index {
	ix := &Index{root: r.rootDir, scopes: make(map[string][]*Scope)}

	walkErr := filepath.WalkDir(r.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.logger.Warn("ignore: skipping %s during pre-scan: %v", path, err)
			return nil
		}
		if d.IsDir() || d.Name() != r.ignoreFileName {
			return nil
		}
		dir := filepath.Dir(path)
		ix.scopes[dir] = append(ix.scopes[dir], r.loadScope(path))
		return nil
	})
	if walkErr != nil {
		r.logger.Warn("ignore: pre-scan of %s stopped early: %v", r.rootDir, walkErr)
	}

	r.logger.Debug("ignore: indexed %d directories with %s files under %s", len(ix.scopes), r.ignoreFileName, r.rootDir)
	return ix
}

// loadScope reads one ignore file. A file that cannot be read still yields a
// scope holding the built-in patterns.
func (r *Resolver) loadScope(path string) *Scope {
	patterns := builtinPatterns()

	f, err := os.Open(path)
	if err != nil {
		r.logger.Warn("Cannot read %s: %v", path, err)
		return newScope(filepath.Dir(path), patterns, r.compile, r.logger)
	}
	defer f.Close()

	parsed, err := ParsePatterns(f)
	if err != nil {
		r.logger.Warn("Cannot read %s: %v", path, err)
	}
	patterns = append(patterns, parsed...)
	r.logger.Debug("ignore: loaded %d patterns from %s", len(parsed), path)
	return newScope(filepath.Dir(path), patterns, r.compile, r.logger)
}

// Root returns the directory the index was built from.
func (ix *Index) Root() string { return ix.root }

// Len returns the number of directories owning at least one scope.
func (ix *Index) Len() int { return len(ix.scopes) }

// Scopes returns the scopes owned by dir.
func (ix *Index) Scopes(dir string) []*Scope {
	return ix.scopes[filepath.Clean(dir)]
}

// ScopesFor collects the scopes on the way from path (or its containing
// directory for files) up to the root, ordered shallowest first.
func (ix *Index) ScopesFor(path string, isDir bool) []*Scope {
	current := filepath.Clean(path)
	if !isDir {
		current = filepath.Dir(current)
	}

	var found []*Scope
	for {
		found = append(found, ix.scopes[current]...)
		if current == ix.root {
			break
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i].dir) < len(found[j].dir)
	})
	return found
}

// Resolve folds every relevant scope, shallowest first. A deeper scope that
// flips an inherited ignore back to false overrides its ancestors.
func (ix *Index) Resolve(path string, isDir bool) bool {
	scopes := ix.ScopesFor(path, isDir)
	if len(scopes) == 0 {
		return false
	}

	ignored := false
	override := false
	for _, s := range scopes {
		current := s.ShouldIgnore(path, isDir, ignored)
		if ignored && !current {
			override = true
			ignored = false
		} else {
			ignored = current
			override = false
		}
	}
	return ignored && !override
}

// NewIndex assembles an index from prepared scopes instead of scanning the filesystem.
func NewIndex(root string, scopes ...*Scope) *Index {
	ix := &Index{root: filepath.Clean(root), scopes: make(map[string][]*Scope)}
	for _, s := range scopes {
		ix.scopes[s.dir] = append(ix.scopes[s.dir], s)
	}
	return ix
}
