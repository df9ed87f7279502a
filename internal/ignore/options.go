package ignore

import "github.com/bethropolis/projct/internal/utils"

// Option functions for configuration
type Option func(*Resolver)

// WithIgnoreFileName changes the rule file name looked up in every directory.
func WithIgnoreFileName(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.ignoreFileName = name
		}
	}
}

// WithCustomRules adds gitignore-syntax rules evaluated relative to the root,
// on top of the hierarchical verdict.
func WithCustomRules(patterns []string) Option {
	return func(r *Resolver) {
		r.customPatterns = nil
		for _, p := range patterns {
			if p != "" {
				r.customPatterns = append(r.customPatterns, p)
			}
		}
	}
}

// WithCompiler swaps the glob backend.
func WithCompiler(compile CompileFunc) Option {
	return func(r *Resolver) {
		if compile != nil {
			r.compile = compile
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDisabled turns off ignore-file processing. Custom rules still apply.
func WithDisabled(disabled bool) Option {
	return func(r *Resolver) {
		r.disabled = disabled
	}
}
