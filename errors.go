package sstruct

// A ReadError reports that the input could not be opened or read. Parsing
// stops at the first ReadError and no result is returned.
type ReadError struct {
	// Path is the file name for ParseFile, empty for streams.
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return "sstruct: read input: " + e.Err.Error()
	}
	return "sstruct: read " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }
