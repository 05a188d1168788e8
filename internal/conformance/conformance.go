// Package conformance parses the UCA conformance test file format:
// blank and '#'-leading lines are ignored, and every other line is a
// whitespace-separated sequence of hexadecimal code points describing
// one test string.
package conformance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is one parsed test string plus its 1-indexed source line, kept
// around so a failing conformance assertion can point back at the
// offending input.
type Line struct {
	SourceLine int
	CodePoints []rune
}

// HasSurrogate reports whether l contains a UTF-16 surrogate code
// point, the case the format permits callers to skip.
func (l Line) HasSurrogate() bool {
	for _, cp := range l.CodePoints {
		if cp >= 0xD800 && cp <= 0xDFFF {
			return true
		}
	}
	return false
}

// String renders the line's code points as a UTF-8 string.
func (l Line) String() string {
	return string(l.CodePoints)
}

// Parse reads the conformance file format from r.
func Parse(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		cps := make([]rune, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("conformance: line %d: invalid code point %q: %w", lineNo, f, err)
			}
			cps = append(cps, rune(v))
		}
		if len(cps) == 0 {
			continue
		}

		lines = append(lines, Line{SourceLine: lineNo, CodePoints: cps})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("conformance: %w", err)
	}
	return lines, nil
}
