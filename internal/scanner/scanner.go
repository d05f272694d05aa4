// Package scanner splits a text stream into numbered lines. Lines have no
// length limit; a line is held in memory whole.
package scanner

import (
	"bufio"
	"io"
	"iter"
)

// Scanner reads lines lazily from an io.Reader. Lines may be terminated by
// "\n", "\r\n" or a lone "\r"; terminators are not part of the yielded text.
type Scanner struct {
	r   *bufio.Reader
	buf []byte
	err error
}

// New creates and returns a new Scanner reading from r.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Lines returns the remaining lines of the input, numbered from 1. Iteration
// stops early on a read error, which is then reported by Err.
func (s *Scanner) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lno := 0
		for {
			line, ok := s.readLine()
			if !ok {
				return
			}
			lno++
			if !yield(lno, line) {
				return
			}
		}
	}
}

// Err returns the first non-EOF error encountered while reading.
func (s *Scanner) Err() error {
	return s.err
}

// readLine returns the next line. It reports false at end of input or on a
// read error; a partial line cut short by an error is dropped.
func (s *Scanner) readLine() (string, bool) {
	if s.err != nil {
		return "", false
	}
	s.buf = s.buf[:0]
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				s.err = err
				return "", false
			}
			// Input ending without a terminator still yields its last line.
			return string(s.buf), len(s.buf) > 0
		}
		switch c {
		case '\n':
			return string(s.buf), true
		case '\r':
			next, err := s.r.Peek(1)
			switch {
			case err == nil && next[0] == '\n':
				_, _ = s.r.Discard(1)
			case err != nil && err != io.EOF:
				s.err = err
			}
			return string(s.buf), true
		}
		s.buf = append(s.buf, c)
	}
}
