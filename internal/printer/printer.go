// Package printer handles output formatting and display
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/bethropolis/projct/internal/utils"
)

// DefaultMaxFileSize is the content cutoff in bytes when none is configured.
const DefaultMaxFileSize int64 = 100000

// Printer writes the tree and the file contents to the configured output destination
type Printer struct {
	output      io.Writer
	root        string
	maxFileSize int64
	lineNumbers bool
	logger      utils.Logger
	count       atomic.Int64
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:      os.Stdout,
		maxFileSize: DefaultMaxFileSize,
		logger:      utils.NoopLogger{},
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithRoot sets the directory file headers are made relative to
func (p *Printer) WithRoot(root string) *Printer {
	p.root = root
	return p
}

// WithMaxFileSize sets the size above which contents are replaced by a placeholder; 0 disables it
func (p *Printer) WithMaxFileSize(size int64) *Printer {
	p.maxFileSize = size
	return p
}

// MaxFileSize returns the content cutoff in bytes; 0 means no limit
func (p *Printer) MaxFileSize() int64 {
	return p.maxFileSize
}

// WithLineNumbers enables or disables line numbering
func (p *Printer) WithLineNumbers(enabled bool) *Printer {
	p.lineNumbers = enabled
	return p
}

// WithLogger sets the diagnostic sink
func (p *Printer) WithLogger(logger utils.Logger) *Printer {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// PrintTree writes the rendered tree as is.
func (p *Printer) PrintTree(tree string) error {
	_, err := io.WriteString(p.output, tree)
	return err
}

// PrintFiles dumps every file in order and stops at the first write error.
func (p *Printer) PrintFiles(paths []string) error {
	for _, path := range paths {
		if err := p.PrintFile(path); err != nil {
			return err
		}
	}
	return nil
}

// PrintFile writes one file section: a header with the relative path followed
// by the content or a bracketed placeholder. Problems with the file itself
// end up in the placeholder; only failures to write are returned.
func (p *Printer) PrintFile(path string) error {
	p.count.Add(1)
	rel := p.relative(path)

	if _, err := fmt.Fprintf(p.output, "\n%s:\n", rel); err != nil {
		return err
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	if p.maxFileSize > 0 && size > p.maxFileSize {
		p.logger.Debug("printer: %s is %d bytes, over the %d byte limit", rel, size, p.maxFileSize)
		_, err := fmt.Fprintf(p.output, "[File is too big to show (%d bytes)]\n", size)
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn("Cannot read %s: %v", rel, err)
		_, werr := fmt.Fprintf(p.output, "[Cannot read %s: %v]\n", rel, err)
		return werr
	}
	if !utf8.Valid(content) {
		_, werr := fmt.Fprintf(p.output, "[Cannot read %s: invalid UTF-8]\n", rel)
		return werr
	}

	text := string(content)
	if strings.TrimSpace(text) == "" {
		_, werr := io.WriteString(p.output, "[Empty]\n")
		return werr
	}

	var b strings.Builder
	for i, line := range splitLines(text) {
		if p.lineNumbers {
			fmt.Fprintf(&b, "%4d: %s\n", i+1, line)
		} else {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	_, err = io.WriteString(p.output, b.String())
	return err
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}

func (p *Printer) relative(path string) string {
	if p.root == "" {
		return path
	}
	rel, err := filepath.Rel(p.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// splitLines splits on '\n', drops one trailing '\r' per line and does not
// produce an empty last line for a trailing newline.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, line := range parts {
		parts[i] = strings.TrimSuffix(line, "\r")
	}
	return parts
}
