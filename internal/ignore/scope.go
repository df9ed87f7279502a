package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bethropolis/projct/internal/utils"
)

// rule is a Pattern paired with its compiled matcher.
type rule struct {
	Pattern
	matchAll bool
	matcher  Matcher
}

func (r rule) match(candidate string) bool {
	if r.matchAll {
		return true
	}
	if r.matcher == nil {
		return false
	}
	if r.Anchored {
		return r.matcher.Match(candidate) || r.matcher.Match(strings.TrimSuffix(candidate, "/"))
	}
	for _, segment := range strings.Split(candidate, "/") {
		if r.matcher.Match(segment) {
			return true
		}
	}
	return false
}

// Scope is the ordered rule list owned by one directory. It is immutable once built.
type Scope struct {
	dir   string
	rules []rule
}

// NewScope compiles patterns for dir with the default glob backend.
// Patterns are used as given; built-ins are not added.
func NewScope(dir string, patterns []Pattern) *Scope {
	return newScope(dir, patterns, GlobCompiler, utils.NoopLogger{})
}

func newScope(dir string, patterns []Pattern, compile CompileFunc, logger utils.Logger) *Scope {
	s := &Scope{dir: filepath.Clean(dir), rules: make([]rule, 0, len(patterns))}
	for _, p := range patterns {
		r := rule{Pattern: p}
		if p.Text == "**" {
			r.matchAll = true
		} else {
			text := strings.ReplaceAll(p.Text, "**", "*")
			var seps []rune
			if p.Anchored {
				seps = []rune{'/'}
			}
			m, err := compile(text, seps...)
			if err != nil {
				logger.Debug("ignore: pattern %q in %s does not compile, it will never match: %v", p.Text, s.dir, err)
			} else {
				r.matcher = m
			}
		}
		s.rules = append(s.rules, r)
	}
	return s
}

// Dir returns the owning directory.
func (s *Scope) Dir() string { return s.dir }

// Patterns returns the scope's patterns in evaluation order.
func (s *Scope) Patterns() []Pattern {
	out := make([]Pattern, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Pattern
	}
	return out
}

// relative returns path relative to the scope directory in slash form,
// "" for the directory itself. ok is false when path lies outside the scope.
func (s *Scope) relative(path string) (rel string, ok bool) {
	rel, err := filepath.Rel(s.dir, filepath.Clean(path))
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return filepath.ToSlash(rel), true
}

// ShouldIgnore folds the scope's rules over path in file order, starting from
// the verdict inherited from shallower scopes. The last matching rule decides,
// and a negation as the last match always yields false for this scope.
func (s *Scope) ShouldIgnore(path string, isDir bool, inherited bool) bool {
	if len(s.rules) == 0 {
		return inherited
	}
	rel, ok := s.relative(path)
	if !ok {
		return inherited
	}

	target := rel
	if isDir {
		target += "/"
	}
	// Directory-only rules never match a regular file's own name. An ignoring
	// one still covers the directory holding the file; a negated one is skipped.
	var parent string
	if !isDir {
		if i := strings.LastIndex(rel, "/"); i >= 0 {
			parent = rel[:i+1]
		}
	}

	result := inherited
	lastWasNegative := false
	for _, r := range s.rules {
		candidate := target
		if r.DirectoryOnly && !isDir {
			if r.Negative || parent == "" {
				continue
			}
			candidate = parent
		}
		if !r.match(candidate) {
			continue
		}
		if r.Negative {
			result = false
			lastWasNegative = true
		} else {
			result = true
			lastWasNegative = false
		}
	}
	return result && !lastWasNegative
}
