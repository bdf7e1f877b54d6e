// Package textdec decodes the text parameter section of a ScanM header file
// into logical lines.
//
// Characters are normally stored as two bytes, a zero byte followed by the
// character code. When the section has been transcoded through UTF-8 on
// the way to disk, a non-ASCII character such as 'µ' arrives as a lead byte
// that is first decoded as a character of its own, followed by a three-byte
// group whose first byte is the real character code. The group therefore
// replaces the character emitted just before it and then appends one more
// character from its third byte.
package textdec

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// maxLineBytes bounds a single raw line. The zero padding at the end of a
// header section may arrive without a newline.
const maxLineBytes = 16 << 20

// DecodeLine decodes one raw line, including its trailing newline byte and
// the zero byte it inherited from the previous line's newline pair. The
// result is cut at the first decoded newline.
func DecodeLine(raw []byte) string {
	out := make([]rune, 0, len(raw)/2)

	i := -1
	for n := (len(raw) - 1) / 2; n > 0; n-- {
		if i+1 >= len(raw) {
			break
		}
		if raw[i+1] == 0 {
			i += 2
			if i >= len(raw) {
				break
			}
			out = append(out, decodeByte(raw[i]))
			continue
		}

		i += 3
		if i >= len(raw) {
			break
		}
		lead := decodeByte(raw[i-2])
		if last := len(out) - 1; last >= 0 {
			out[last] = lead
		} else {
			out = append(out, lead)
		}
		out = append(out, decodeByte(raw[i]))
	}

	s := string(out)
	if j := strings.IndexByte(s, '\n'); j >= 0 {
		s = s[:j]
	}
	return s
}

// decodeByte maps a byte to the character with the same code point.
func decodeByte(b byte) rune {
	return charmap.ISO8859_1.DecodeByte(b)
}

// Scanner yields decoded, non-empty lines from a text section. It stops at
// the end of input or at the first line that starts with a NUL character.
// A Scanner is single-use; scan the same bytes again with a new Scanner.
type Scanner struct {
	sc   *bufio.Scanner
	line string
	raw  int
	done bool
}

// NewScanner returns a Scanner reading the bytes that follow the pre-header.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	sc.Split(splitRawLines)
	return &Scanner{sc: sc}
}

// Scan advances to the next line with content.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for s.sc.Scan() {
		s.raw++
		line := DecodeLine(s.sc.Bytes())
		if line == "" {
			continue
		}
		if line[0] == 0 {
			break
		}
		s.line = line
		return true
	}
	s.done = true
	s.line = ""
	return false
}

// Text returns the most recent line produced by Scan.
func (s *Scanner) Text() string {
	return s.line
}

// RawLines returns the number of raw newline-delimited segments consumed,
// including skipped empty ones.
func (s *Scanner) RawLines() int {
	return s.raw
}

// Err returns the first read error, if any.
func (s *Scanner) Err() error {
	return s.sc.Err()
}

// Lines decodes all lines of data.
func Lines(data []byte) ([]string, error) {
	var lines []string
	sc := NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// splitRawLines is a bufio.SplitFunc that cuts after every newline byte and
// keeps it, so the zero byte of the newline pair starts the next token.
func splitRawLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
