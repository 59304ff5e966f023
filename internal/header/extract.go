package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// MaxFileReadLines bounds how much of any file is read.
	MaxFileReadLines = 160
	// MaxHeaderLines bounds how many lines may follow the start delimiter.
	MaxHeaderLines = 80
)

// HeaderLine is one line of a header with its 1-based line number in the file.
type HeaderLine struct {
	Text string
	Num  int
}

// maxLineBytes is how much of one line ReadLines keeps. The remainder of a
// longer line is discarded.
const maxLineBytes = 4096

// ReadLines reads at most limit lines from r, without line terminators.
// Lines longer than maxLineBytes are truncated rather than rejected.
func ReadLines(r io.Reader, limit int) ([]string, error) {
	br := bufio.NewReaderSize(r, maxLineBytes)
	lines := make([]string, 0, limit)
	var cur []byte
	for len(lines) < limit {
		chunk, more, err := br.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read lines: %w", err)
		}
		if room := maxLineBytes - len(cur); room > 0 {
			cur = append(cur, chunk[:min(len(chunk), room)]...)
		}
		if more {
			continue
		}
		lines = append(lines, string(cur))
		cur = cur[:0]
	}
	return lines, nil
}

// Extract locates the header block in the leading lines of file. The result
// starts with the start delimiter and ends with the end delimiter.
func Extract(lines []string, file string) ([]HeaderLine, *Error) {
	s := StyleFor(file)
	i := 0
	for i < len(lines) && (strings.HasPrefix(lines[i], "#!") || strings.TrimSpace(lines[i]) == "---") {
		i++
	}
	if i >= len(lines) || lines[i] != s.Delimiter() {
		return nil, errorf(StartDelimiterMissing, file, min(i+1, len(lines)),
			"Could not find matching start delimiter")
	}

	out := []HeaderLine{{Text: lines[i], Num: i + 1}}
	end := min(len(lines), i+1+MaxHeaderLines)
	for j := i + 1; j < end; j++ {
		out = append(out, HeaderLine{Text: lines[j], Num: j + 1})
		if lines[j] == s.Delimiter() {
			return out, nil
		}
	}
	return nil, errorf(UnexpectedEOF, file, out[len(out)-1].Num,
		"Unexpected end of header: no end delimiter within %d lines of the start delimiter", MaxHeaderLines)
}
