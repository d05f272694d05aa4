package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	p := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Documents returns the names of the embedded Simple Struct documents.
func Documents() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.ss")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, path.Base(m))
	}
	return names, nil
}
