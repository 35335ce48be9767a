package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/npillmayer/hiatus"
	"github.com/npillmayer/hiatus/internal/config"
	"github.com/npillmayer/hiatus/internal/textio"
	"github.com/npillmayer/hiatus/report"
)

// outputs holds the absolute paths of the files written.
type outputs struct {
	html, csv, json string
}

// execute reads the input of cfg, detects hiatus and writes all output
// files of cfg.
func execute(ctx context.Context, cfg config.Config) (*hiatus.Result, outputs, error) {
	var out outputs
	text, err := textio.ReadFile(ctx, cfg.Input)
	if err != nil {
		return nil, out, fmt.Errorf("reading %s: %w", cfg.Input, err)
	}
	res := hiatus.Detect(text, cfg.Options()...)
	T().Infof("%s: %d hiatus occurrences", cfg.Input, len(res.Occurrences))
	if out.html, err = writeReport(cfg.HTML, res, func(w io.Writer, res *hiatus.Result) error {
		return report.HTML(w, res, report.HTMLOptions{})
	}); err != nil {
		return nil, out, err
	}
	if out.csv, err = writeReport(cfg.CSV, res, report.CSV); err != nil {
		return nil, out, err
	}
	if cfg.JSON != "" {
		if out.json, err = writeReport(cfg.JSON, res, report.JSON); err != nil {
			return nil, out, err
		}
	}
	return res, out, nil
}

func writeReport(path string, res *hiatus.Result, render func(io.Writer, *hiatus.Result) error) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf, res); err != nil {
		return "", err
	}
	abs, err := textio.WriteFile(path, buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return abs, nil
}

// process reads the text file at inputPath, detects hiatus with default
// options, writes an HTML document and a CSV table, and returns the
// occurrences found.
func process(inputPath, htmlPath, csvPath string) ([]hiatus.Occurrence, error) {
	cfg := config.Defaults()
	cfg.Input, cfg.HTML, cfg.CSV = inputPath, htmlPath, csvPath
	res, _, err := execute(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return res.Occurrences, nil
}
