// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"
	"strings"

	"github.com/bethropolis/projct/internal/ignore"
	"github.com/bethropolis/projct/internal/utils"
	"github.com/bethropolis/projct/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	RootDir        string
	MaxDepth       int // negative = no limit
	UseGitignore   bool
	ShowIgnored    bool
	ShowBinary     bool
	OutputFileName string
	IgnorePatterns []string
	Logger         utils.Logger
}

// ConfigureWalker sets up the ignore resolver and walker options based on the config
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (
	*ignore.Resolver,
	[]walker.Option,
	error,
) {
	if cfg.Logger == nil {
		cfg.Logger = utils.NoopLogger{}
	}
	if infoLog == nil {
		infoLog = func(string, ...interface{}) {}
	}

	// --- Clean extra ignore patterns ---
	var customPatterns []string
	for _, pattern := range cfg.IgnorePatterns {
		if p := strings.TrimSpace(pattern); p != "" {
			customPatterns = append(customPatterns, p)
		}
	}
	if len(customPatterns) > 0 {
		infoLog("Using custom ignore patterns: %v", customPatterns)
	}

	if cfg.UseGitignore {
		infoLog("Applying %s files.", ignore.DefaultIgnoreFileName)
	} else {
		infoLog("Not reading %s files.", ignore.DefaultIgnoreFileName)
	}

	// --- Initialize ignore resolver ---
	resolver, err := ignore.NewFromConfig(ignore.Config{
		RootDir:     cfg.RootDir,
		CustomRules: customPatterns,
		Logger:      cfg.Logger,
		Disabled:    !cfg.UseGitignore,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}
	if idx := resolver.Index(); idx != nil {
		cfg.Logger.Debug("Found ignore rules in %d directories", idx.Len())
	}

	// --- Set up walk options ---
	walkOptions := []walker.Option{
		walker.WithLogger(cfg.Logger),
		walker.WithMaxDepth(cfg.MaxDepth),
		walker.WithShowIgnored(cfg.ShowIgnored),
		walker.WithShowBinary(cfg.ShowBinary),
		walker.WithOutputFileName(cfg.OutputFileName),
	}
	if cfg.MaxDepth >= 0 {
		infoLog("Limiting traversal to depth %d.", cfg.MaxDepth)
	}

	return resolver, walkOptions, nil
}
