package walker

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// sniffLength is how much of a file is checked for NUL bytes.
const sniffLength = 1024

// IsTextFile reports whether the file at path looks like text: no NUL byte in
// the first KiB and valid UTF-8 throughout. Unreadable files are not text.
func IsTextFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false
	}
	if bytes.IndexByte(head[:n], 0) >= 0 {
		return false
	}

	rest, err := io.ReadAll(f)
	if err != nil {
		return false
	}
	return utf8.Valid(append(head[:n], rest...))
}
