package sstruct

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-sstruct/internal/parser"
	"github.com/KimNorgaard/go-sstruct/internal/scanner"
)

// Decoder reads and decodes a Simple Struct document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option

	meta *Record
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required. Closing
// r while Decode runs makes Decode fail with a ReadError.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and returns the field values keyed by field
// name. Field comments are stored in the Record returned by Meta.
//
// Lines are read one at a time; nothing is returned until the input is
// exhausted. A read failure is returned as a *ReadError and no Record is
// returned with it.
func (d *Decoder) Decode() (*Record, error) {
	o, err := buildOptions(d.opts)
	if err != nil {
		return nil, err
	}
	d.meta = o.meta
	return decode(d.r, "", &o)
}

// Meta returns the Record holding field comments. It is nil until Decode
// has been called, and is the Record passed with the Meta option if any.
func (d *Decoder) Meta() *Record {
	return d.meta
}

func decode(r io.Reader, path string, o *options) (*Record, error) {
	if r == nil {
		return nil, fmt.Errorf("sstruct: Decode(nil reader)")
	}

	// Metadata is collected apart and merged into the caller's Record only
	// once the whole input has been read.
	values, meta := NewRecord(), NewRecord()
	p := parser.New(func(f parser.Field) {
		values.Set(f.Name, joinLines(f.Values, o.trimValue))
		meta.Set(f.Name, joinLines(f.Comments, o.trimMeta))
	}, o.log)

	s := scanner.New(r)
	for lno, text := range s.Lines() {
		p.Feed(lno, text)
	}
	if err := s.Err(); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	p.Close()
	for k, v := range meta.All() {
		o.meta.Set(k, v)
	}
	return values, nil
}
