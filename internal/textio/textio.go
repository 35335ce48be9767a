/*
Package textio reads and writes the text files of the hiatus tool.

Input is expected to be UTF-8. A byte order mark selects UTF-16 (little or
big endian) instead, and a UTF-8 byte order mark is dropped. Input which is
not valid UTF-8 is rejected with ErrDecode.
*/
package textio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrDecode is returned if an input cannot be read or decoded.
var ErrDecode = errors.New("cannot decode input text")

// ErrWrite is returned if an output file cannot be written.
var ErrWrite = errors.New("cannot write output")

// Decode reads all of r and returns it as a string. Reading stops early if
// ctx is cancelled. Invalid UTF-8 yields an error wrapping both ErrDecode and
// encoding.ErrInvalidUTF8.
func Decode(ctx context.Context, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: no input present", ErrDecode)
	}
	dec := unicode.BOMOverride(encoding.UTF8Validator)
	data, err := io.ReadAll(transform.NewReader(&ctxReader{ctx: ctx, r: r}, dec))
	if err != nil {
		T().Errorf("textio: %v", err)
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	T().Debugf("textio: decoded %d bytes of input", len(data))
	return string(data), nil
}

// ReadFile reads and decodes the text file at path.
func ReadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()
	return Decode(ctx, f)
}

// WriteFile writes data to the file at path, creating or truncating it.
// It returns the absolute path of the file written.
func WriteFile(path string, data []byte) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(abs, data, 0644); err != nil {
		T().Errorf("textio: %v", err)
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return abs, nil
}

// ctxReader stops reading as soon as its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
