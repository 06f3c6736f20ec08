package foam

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"
)

// maxLine bounds a single input line; nonuniform field data can put a whole
// list on one line.
const maxLine = 64 * 1024 * 1024

type lineReader struct {
	sc  *bufio.Scanner
	lno int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	sc.Split(scanLines)
	return &lineReader{sc: sc}
}

// scanLines is a [bufio.SplitFunc] that ends lines at "\r\n", "\r" or "\n".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	}
	// need more data; a trailing \r may be the start of \r\n
	return 0, nil, nil
}

// skip consumes n raw lines without looking at them.
func (lr *lineReader) skip(n int) error {
	for range n {
		if !lr.sc.Scan() {
			if err := lr.sc.Err(); err != nil {
				return err
			}
			return &ParseError{Lno: lr.lno, Err: fmt.Errorf("%w: expected %d lines", ErrShortHeader, n)}
		}
		lr.lno++
	}
	return nil
}

// lines iterates over the remaining raw lines with their 1-based line number.
func (lr *lineReader) lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for lr.sc.Scan() {
			lr.lno++
			if !yield(lr.lno, lr.sc.Text()) {
				return
			}
		}
	}
}

func (lr *lineReader) err() error {
	return lr.sc.Err()
}

// significant drops comments and blank lines from raw.
//
// A line starting with /* opens a block comment and a line ending with */
// closes it. The closing line is always dropped, even when it is also the
// opening line. Inside a block nothing else is looked at. Outside a block a
// line starting with // is dropped, and a trailing // comment is cut off.
func significant(raw iter.Seq2[int, string]) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		inComment := false
		for lno, line := range raw {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "/*") {
				inComment = true
			}
			if strings.HasSuffix(line, "*/") {
				inComment = false
				continue
			}
			if inComment || line == "" || strings.HasPrefix(line, "//") {
				continue
			}
			line, _, _ = strings.Cut(line, "//")
			if !yield(lno, strings.TrimSpace(line)) {
				return
			}
		}
	}
}
