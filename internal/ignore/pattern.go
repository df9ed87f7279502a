package ignore

import (
	"bufio"
	"io"
	"strings"
)

// literalEscaper turns glob metacharacters into bracket literals; ignore files
// treat them as plain characters.
var literalEscaper = strings.NewReplacer("?", "[?]", "[", "[[]", "]", "[]]")

// builtinPatterns are prepended to every scope so version-control metadata never shows up.
func builtinPatterns() []Pattern {
	return []Pattern{
		{Text: ".git", DirectoryOnly: true},
		{Text: ".gitattributes"},
		{Text: ".gitignore"},
	}
}

// CompilePattern parses one trimmed, non-comment line of an ignore file.
// It reports false when the line leaves nothing to match.
func CompilePattern(line string) (Pattern, bool) {
	line = strings.ReplaceAll(line, `\ `, " ")

	var p Pattern
	if strings.HasPrefix(line, "!") {
		p.Negative = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		p.DirectoryOnly = true
		line = line[:len(line)-1]
	}
	if strings.HasPrefix(line, "/") {
		p.Anchored = true
		line = line[1:]
	}
	if line == "" {
		return Pattern{}, false
	}

	p.Text = literalEscaper.Replace(line)
	return p, true
}

// ParsePatterns reads an ignore file body. Blank lines and '#' comments are skipped.
// Patterns parsed before a read error are returned together with the error.
func ParsePatterns(r io.Reader) ([]Pattern, error) {
	var patterns []Pattern
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if p, ok := CompilePattern(line); ok {
			patterns = append(patterns, p)
		}
	}
	return patterns, scanner.Err()
}
