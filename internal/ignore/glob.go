package ignore

import (
	"strings"

	"github.com/gobwas/glob"
)

// Matcher reports whether a candidate string matches a compiled pattern.
type Matcher interface {
	Match(candidate string) bool
}

// CompileFunc compiles pattern text into a Matcher. When separators are given,
// wildcards do not cross them.
type CompileFunc func(text string, separators ...rune) (Matcher, error)

// GlobCompiler is the default CompileFunc, backed by gobwas/glob.
func GlobCompiler(text string, separators ...rune) (Matcher, error) {
	return glob.Compile(toGlobSyntax(text), separators...)
}

// toGlobSyntax rewrites the bracket literals produced by CompilePattern into
// backslash escapes and quotes the brace characters gobwas would treat as alternation.
func toGlobSyntax(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '[' && i+2 < len(text) && text[i+2] == ']' {
			switch text[i+1] {
			case '?', '[', ']':
				b.WriteByte('\\')
				b.WriteByte(text[i+1])
				i += 2
				continue
			}
		}
		if c == '{' || c == '}' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
