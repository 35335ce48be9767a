/*
Package testdata provides access to the Greek test texts of this module.

Test case files are line oriented, in the manner of the Unicode test files:

	"input" ; expected occurrences # comment

Lines starting with '#' are comments. The input is a Go string literal
(escapes like \n are allowed). Expected occurrences are separated by blanks,
each one written as kind:left|right, with kind one of I, B or V and left and
right the texts of the vowel groups. A single '-' denotes "no occurrence".
*/
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Reader returns a reader for the given Greek test file.
func Reader(file string) (io.Reader, error) {
	data, err := os.ReadFile(Path(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Path returns the path of the given Greek test file.
func Path(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "greek", file)
}
