package sstruct

import (
	"iter"
	"maps"
	"slices"

	"github.com/go-json-experiment/json/jsontext"
)

// Record is a string mapping that remembers the order in which keys were
// last set. Setting an existing key replaces its value and moves it to the
// end, so a parsed Record lists fields in the order they were closed.
//
// The zero value is not ready for use; create Records with NewRecord.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores v under k.
func (r *Record) Set(k, v string) {
	if _, ok := r.values[k]; ok {
		r.keys = slices.DeleteFunc(r.keys, func(s string) bool { return s == k })
	}
	r.keys = append(r.keys, k)
	r.values[k] = v
}

// Get returns the value stored under k.
func (r *Record) Get(k string) (string, bool) {
	v, ok := r.values[k]
	return v, ok
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the keys in order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// All iterates over the entries in order.
func (r *Record) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Map returns the entries as an unordered map.
func (r *Record) Map() map[string]string {
	return maps.Clone(r.values)
}

// MarshalJSONTo encodes the Record as a JSON object with keys in order.
func (r *Record) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for k, v := range r.All() {
		if err := enc.WriteToken(jsontext.String(k)); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(v)); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}
