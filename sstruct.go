package sstruct

import (
	"io"
	"strings"
)

// ParseStream parses the Simple Struct document read from r and returns the
// field values keyed by field name. The caller keeps ownership of r.
func ParseStream(r io.Reader, opts ...Option) (*Record, error) {
	return NewDecoder(r, opts...).Decode()
}

// ParseFile opens the named file, parses it like ParseStream and closes it.
// Failure to open the file is reported as a *ReadError.
func ParseFile(path string, opts ...Option) (*Record, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	return decode(f, path, &o)
}

// ParseString parses an in-memory document like ParseStream.
func ParseString(s string, opts ...Option) (*Record, error) {
	return ParseStream(strings.NewReader(s), opts...)
}
