package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// TestdataFS holds the embedded fixtures. Each input NAME.bft is paired with
// NAME.golden, holding either its canonical encoding or the decode error.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Fixtures returns the base names of all embedded inputs, without extension.
func Fixtures() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.bft")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(path.Base(m), ".bft")
	}
	return names, nil
}
