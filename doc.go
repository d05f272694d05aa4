/*
Package sstruct parses Simple Struct documents: a line-oriented, human-editable
text format that maps field names to multi-line text values, with comment
lines attached to the field that follows them.

A field starts with a separator line, a run of punctuation followed by the
field name. It ends with a line holding only the same separator, or with a
separator line naming the next field. Every other line in between is part of
the value, kept verbatim. Lines starting with '#' before a separator form the
field's metadata.

	# The greeting shown on start-up
	--- greeting
	Hello,
	world
	--- farewell
	Bye
	---

Parsing this document yields the values

	greeting: "Hello,\nworld"
	farewell: "Bye"

and the metadata

	greeting: " The greeting shown on start-up"
	farewell: ""

Inside a field, separator lines that use a different token are plain data, so
values can contain other Simple Struct documents.

The same document can be parsed from a stream, a file or a string:

	meta := sstruct.NewRecord()
	values, err := sstruct.ParseFile("config.ss", sstruct.Meta(meta))
	if err != nil {
		// handle error
	}
	greeting, _ := values.Get("greeting")

Leading and trailing blank lines of values and metadata are removed unless
disabled with TrimValue(false) or TrimMeta(false). Lines the parser cannot
place are logged through the Logger option and otherwise ignored; the only
errors are failures to read the input, reported as *ReadError.
*/
package sstruct
