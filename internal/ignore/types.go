// Package ignore provides file/directory pattern matching for exclusion
package ignore

import (
	"github.com/bethropolis/projct/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// DefaultIgnoreFileName is the name of the per-directory rule files picked up by the pre-scan.
const DefaultIgnoreFileName = ".gitignore"

// Pattern is one compiled ignore rule.
type Pattern struct {
	// Text is glob-ready: '?', '[' and ']' are escaped to bracket literals.
	Text          string
	Negative      bool
	DirectoryOnly bool
	// Anchored patterns match from the scope's directory instead of any path segment.
	Anchored bool
}

// Resolver determines whether a file or directory should be ignored by
// folding every ignore file between the walk root and the path.
type Resolver struct {
	// Pre-scanned hierarchy of rule files; nil when disabled
	index *Index

	// Extra rules layered over the hierarchy
	extra gitignore.GitIgnore

	// Configuration flags
	rootDir        string
	ignoreFileName string
	customPatterns []string
	compile        CompileFunc
	logger         utils.Logger
	disabled       bool
}

// Config holds configuration options for the resolver
type Config struct {
	RootDir        string
	IgnoreFileName string
	CustomRules    []string
	Logger         utils.Logger
	Disabled       bool
}
