// Package ignore decides which paths are excluded by layered .gitignore files.
//
// Every ignore file found under the root becomes a Scope owned by its
// directory. Within a scope the last matching rule wins; across scopes the
// verdicts are folded shallowest first, so a deeper negation can re-include a
// path an ancestor excluded. Resolution only reads the index built up front,
// so results do not depend on traversal order.
//
// Supported syntax: one pattern per line, blank lines and '#' comments
// skipped, '!' negates, a trailing '/' restricts to directories, a leading '/'
// anchors to the owning directory, "\ " is a literal space. "**" on its own
// matches everything; elsewhere it behaves like '*'.
package ignore

// NewFromConfig creates a Resolver from a Config struct
func NewFromConfig(cfg Config) (*Resolver, error) {
	options := []Option{
		WithIgnoreFileName(cfg.IgnoreFileName),
		WithDisabled(cfg.Disabled),
	}

	if len(cfg.CustomRules) > 0 {
		options = append(options, WithCustomRules(cfg.CustomRules))
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	return New(cfg.RootDir, options...)
}

// IsIgnored is a convenience function to check if a path should be ignored
func IsIgnored(resolver *Resolver, path string, isDir bool) bool {
	if resolver == nil {
		return false
	}
	return resolver.ShouldIgnore(path, isDir)
}
