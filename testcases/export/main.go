// Command export writes the test cases as layout files, for use with the
// chord command.
// Run from the module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chord/config"
	"seehuhn.de/go/chord/testcases"
)

const outDir = "testdata/layouts"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name + ".toml"
			if err := write(filepath.Join(outDir, name), toFile(tc)); err != nil {
				panic(err)
			}
		}
	}
}

func toFile(tc testcases.TestCase) *config.File {
	return &config.File{
		Layout: config.Layout{
			Width:     float64(tc.Width),
			Height:    float64(tc.Height),
			Allocator: tc.Allocator,
		},
		Rows: tc.Matrix,
	}
}

func write(path string, f *config.File) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := config.Encode(fd, f); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
