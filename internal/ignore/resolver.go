package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/projct/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates a Resolver and pre-scans rootDir for ignore files.
func New(rootDir string, opts ...Option) (*Resolver, error) {
	r, err := newResolver(rootDir, opts)
	if err != nil {
		return nil, err
	}

	r.init()
	return r, nil
}

func newResolver(rootDir string, opts []Option) (*Resolver, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	r := &Resolver{
		rootDir:        absRootDir,
		ignoreFileName: DefaultIgnoreFileName,
		compile:        GlobCompiler,
		logger:         &utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// init builds the hierarchy index and the extra rule set
func (r *Resolver) init() {
	r.logger.Debug("ignore.New: Initializing for root: %s", r.rootDir)

	if r.disabled {
		r.logger.Debug("ignore.New: %s files disabled, skipping pre-scan", r.ignoreFileName)
	} else {
		r.index = r.buildIndex()
	}

	if len(r.customPatterns) > 0 {
		r.logger.Debug("ignore.New: Adding %d extra rules: %v", len(r.customPatterns), r.customPatterns)
		body := strings.Join(r.customPatterns, "\n")
		r.extra = gitignore.New(strings.NewReader(body), r.rootDir, nil)
	}
}

// Index exposes the pre-scanned hierarchy; nil when the resolver is disabled.
func (r *Resolver) Index() *Index { return r.index }

// RootDir returns the absolute walk root.
func (r *Resolver) RootDir() string { return r.rootDir }
