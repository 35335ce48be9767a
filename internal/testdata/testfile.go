package testdata

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
)

// Expectation is an expected hiatus occurrence of a test case.
type Expectation struct {
	Kind        string // I, B or V
	Left, Right string // texts of the vowel groups
}

func (e Expectation) String() string {
	return e.Kind + ":" + e.Left + "|" + e.Right
}

// TestFile is a scanner for hiatus test case files.
type TestFile struct {
	in       *os.File
	scanner  *bufio.Scanner
	lineno   int
	input    string
	expected []Expectation
	comment  string
	err      error
}

// OpenTestFile opens a test case file from the Greek test data directory.
// Errors are reported to t, if given.
func OpenTestFile(file string, t *testing.T) *TestFile {
	f, err := os.Open(Path(file))
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading %s: %v", file, err)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading %s: %v\n", file, err)
		}
		return nil
	}
	tf := &TestFile{in: f}
	tf.scanner = bufio.NewScanner(f)
	return tf
}

// Scan advances to the next test case. It returns false at the end of the
// file or on a malformed line; in the latter case Err returns the error.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		tf.lineno++
		line := strings.TrimSpace(tf.scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := tf.parse(line); err != nil {
			tf.err = fmt.Errorf("line %d: %w", tf.lineno, err)
			return false
		}
		return true
	}
	return false
}

func (tf *TestFile) parse(line string) (err error) {
	q, err := strconv.QuotedPrefix(line)
	if err != nil {
		return fmt.Errorf("input is not a quoted string: %w", err)
	}
	if tf.input, err = strconv.Unquote(q); err != nil {
		return err
	}
	rest := strings.TrimSpace(line[len(q):])
	if !strings.HasPrefix(rest, ";") {
		return fmt.Errorf("missing ';' after input")
	}
	rest, tf.comment, _ = strings.Cut(rest[1:], "#")
	tf.comment = strings.TrimSpace(tf.comment)
	tf.expected = tf.expected[:0:0]
	for _, field := range strings.Fields(rest) {
		if field == "-" {
			continue
		}
		kind, texts, ok := strings.Cut(field, ":")
		if !ok {
			return fmt.Errorf("malformed expectation %q", field)
		}
		left, right, ok := strings.Cut(texts, "|")
		if !ok {
			return fmt.Errorf("malformed expectation %q", field)
		}
		tf.expected = append(tf.expected, Expectation{Kind: kind, Left: left, Right: right})
	}
	return nil
}

// Input returns the input text of the current test case.
func (tf *TestFile) Input() string {
	return tf.input
}

// Expected returns the expected occurrences of the current test case.
func (tf *TestFile) Expected() []Expectation {
	return tf.expected
}

// Comment returns the comment of the current test case.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// Line returns the line number of the current test case.
func (tf *TestFile) Line() int {
	return tf.lineno
}

// Err returns the first error encountered while scanning.
func (tf *TestFile) Err() error {
	if tf.err != nil {
		return tf.err
	}
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}
