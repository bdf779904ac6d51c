package exiftool

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// maxLineSize bounds a single output line. Embedded binary previews can make
// exiftool emit very long JSON lines.
const maxLineSize = 16 << 20

// Lines yields r one line at a time, without the trailing newline. A read
// error is yielded once, after which the sequence ends.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

// Collect folds a line sequence into one string, restoring the line breaks.
// It returns whatever was accumulated before a read error, with the error.
func Collect(lines iter.Seq2[string, error]) (string, error) {
	var sb strings.Builder
	for line, err := range lines {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
