// Package walker handles directory traversal and tree rendering
package walker

import (
	"sync"
)

// IgnoreChecker decides whether a path is excluded. *ignore.Resolver satisfies it.
type IgnoreChecker interface {
	ShouldIgnore(path string, isDir bool) bool
}

// Classifier reports whether a regular file holds text.
type Classifier func(path string) bool

// Result is the outcome of a walk.
type Result struct {
	// Tree is the rendered tree, starting with the root line.
	Tree string
	// Files lists the text files to dump, in rendering order.
	Files []string
	// Skipped lists the entries left out and why.
	Skipped []SkippedItem
}

// SkippedReason clarifies why a file/directory was not listed.
type SkippedReason string

const (
	ReasonIgnoredRule      SkippedReason = "Ignored (Gitignore/Custom Rule)"
	ReasonSkippedBinary    SkippedReason = "Skipped (Binary File)"
	ReasonSkippedOutput    SkippedReason = "Skipped (Output File)"
	ReasonSkippedDepth     SkippedReason = "Skipped (Depth Limit)"
	ReasonSkippedPermError SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedInfoError SkippedReason = "Skipped (File Info Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker is a struct to track skipped items
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return st.items
}
