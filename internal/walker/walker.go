// Package walker handles directory traversal and tree rendering
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchIndent    = "│   "
	lastIndent      = "    "

	permissionDeniedLine = "[Permission Denied]"
)

// entry is one directory listing item.
type entry struct {
	name  string
	path  string
	isDir bool
}

type treeWalker struct {
	root    string
	options WalkOptions
	checker IgnoreChecker
	tracker *SkippedTracker
	tree    strings.Builder
}

// Walk renders the tree under rootDir and collects the text files to dump.
// Unreadable entries are reported inline or skipped; the only error returned
// is for a root that cannot be accessed. checker may be nil.
func Walk(rootDir string, checker IgnoreChecker, opts ...Option) (Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return Result{}, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}
	info, err := os.Stat(absRootDir)
	if err != nil {
		return Result{}, fmt.Errorf("walker: cannot access '%s': %w", absRootDir, err)
	}

	w := &treeWalker{
		root:    absRootDir,
		options: options,
		checker: checker,
		tracker: NewSkippedTracker(64),
	}

	options.Logger.Debug("walker.Walk started. Root: %s, MaxDepth: %d, ShowIgnored: %v, ShowBinary: %v",
		absRootDir, options.MaxDepth, options.ShowIgnored, options.ShowBinary)

	fmt.Fprintf(&w.tree, "%s/\n", rootName(absRootDir))

	var files []string
	if info.IsDir() {
		files = w.walkDir(absRootDir, 0, "")
	} else if w.keepRootFile(absRootDir) {
		files = []string{absRootDir}
	}

	options.Logger.Debug("walker.Walk finished: %d files, %d skipped", len(files), len(w.tracker.Items()))
	return Result{
		Tree:    w.tree.String(),
		Files:   files,
		Skipped: w.tracker.Items(),
	}, nil
}

// keepRootFile applies the file checks to a root that is not a directory.
func (w *treeWalker) keepRootFile(path string) bool {
	if w.isOutputFile(filepath.Base(path)) {
		return false
	}
	return w.options.ShowBinary || w.options.IsText(path)
}

// walkDir lists dir (at depth) and recurses into visible subdirectories.
func (w *treeWalker) walkDir(dir string, depth int, prefix string) []string {
	if w.options.MaxDepth >= 0 && depth+1 > w.options.MaxDepth {
		w.options.Logger.Debug("Walker: depth limit reached at %q", dir)
		w.tracker.Track(w.relative(dir), ReasonSkippedDepth, true)
		return nil
	}

	entries, err := w.readDir(dir)
	if err != nil {
		w.options.Logger.Warn("Cannot read directory %s: %v", dir, err)
		w.tracker.Track(w.relative(dir), ReasonSkippedPermError, true)
		fmt.Fprintf(&w.tree, "%s%s%s\n", prefix, lastConnector, permissionDeniedLine)
		return nil
	}

	visible := entries[:0]
	for _, e := range entries {
		if w.include(e) {
			visible = append(visible, e)
		}
	}

	var files []string
	for i, e := range visible {
		connector, indent := branchConnector, branchIndent
		if i == len(visible)-1 {
			connector, indent = lastConnector, lastIndent
		}

		if e.isDir {
			fmt.Fprintf(&w.tree, "%s%s%s/\n", prefix, connector, e.name)
			files = append(files, w.walkDir(e.path, depth+1, prefix+indent)...)
			continue
		}
		fmt.Fprintf(&w.tree, "%s%s%s\n", prefix, connector, e.name)
		files = append(files, e.path)
	}
	return files
}

// include applies self-exclusion, ignore rules and the text check to one entry.
func (w *treeWalker) include(e entry) bool {
	if w.isOutputFile(e.name) {
		w.options.Logger.Debug("Walker: Skipping output file %q", e.path)
		w.tracker.Track(w.relative(e.path), ReasonSkippedOutput, e.isDir)
		return false
	}

	if w.checker != nil && w.checker.ShouldIgnore(e.path, e.isDir) {
		if !w.options.ShowIgnored {
			w.options.Logger.Debug("Walker: Ignored %q by matcher rules", e.path)
			w.tracker.Track(w.relative(e.path), ReasonIgnoredRule, e.isDir)
			return false
		}
		w.options.Logger.Debug("Walker: Showing ignored entry %q", e.path)
	}

	if !e.isDir && !w.options.ShowBinary && !w.options.IsText(e.path) {
		w.options.Logger.Debug("Walker: Skipping binary file %q", e.path)
		w.tracker.Track(w.relative(e.path), ReasonSkippedBinary, false)
		return false
	}
	return true
}

// readDir returns dir's entries, directories first, then by name.
// Symlinks are classified by their target.
func (w *treeWalker) readDir(dir string) ([]entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		e := entry{name: d.Name(), path: filepath.Join(dir, d.Name()), isDir: d.IsDir()}
		if d.Type()&os.ModeSymlink != 0 {
			info, statErr := os.Stat(e.path)
			if statErr != nil {
				w.options.Logger.Debug("Walker: cannot follow symlink %q: %v", e.path, statErr)
				w.tracker.Track(w.relative(e.path), ReasonSkippedInfoError, false)
				continue
			}
			e.isDir = info.IsDir()
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})
	return entries, nil
}

func (w *treeWalker) isOutputFile(name string) bool {
	return w.options.OutputFileName != "" && name == w.options.OutputFileName
}

func (w *treeWalker) relative(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}

// rootName is the display name of the root: the base name of its resolved path.
func rootName(absRootDir string) string {
	resolved, err := filepath.EvalSymlinks(absRootDir)
	if err != nil {
		resolved = absRootDir
	}
	name := filepath.Base(resolved)
	if name == "" || name == string(filepath.Separator) || name == "." {
		return "."
	}
	return name
}
