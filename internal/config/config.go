/*
Package config holds the run-time configuration of the hiatus tool.

A configuration is assembled from layers, with later layers overriding
earlier ones: defaults, an optional JSON file, the environment (variables
prefixed with HIATUS_) and finally command-line flags. Configurations are
read-only once assembled.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/hiatus"
)

// Errors returned by Validate.
var (
	ErrInvalidLookahead = errors.New("lookahead must be at least 1")
	ErrInvalidLogLevel  = errors.New("log level must be one of debug, info, error")
	ErrNoOutput         = errors.New("output path must not be empty")
)

// Config is the configuration of a hiatus run or server.
type Config struct {
	Input           string `json:"input"`
	HTML            string `json:"html"`
	CSV             string `json:"csv"`
	JSON            string `json:"json"` // optional
	MaxLookahead    int    `json:"max_lookahead"`
	IotaAsDiphthong *bool  `json:"iota_as_diphthong"` // nil if not set
	LogLevel        string `json:"log_level"`
	Addr            string `json:"addr"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	no := false
	return Config{
		HTML:            "hiatus.html",
		CSV:             "hiatus.csv",
		MaxLookahead:    hiatus.DefaultLookahead,
		IotaAsDiphthong: &no,
		LogLevel:        "error",
		Addr:            ":8484",
	}
}

// LoadJSON reads a configuration from a file path or from raw JSON.
// Unknown fields are rejected.
func LoadJSON(path string, raw []byte) (Config, error) {
	var cfg Config
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, errors.New("no config source provided")
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Merge overlays over onto base. Empty strings, a zero lookahead and a nil
// iota setting in over do not override.
func Merge(base, over Config) Config {
	out := base
	if over.Input != "" {
		out.Input = over.Input
	}
	if over.HTML != "" {
		out.HTML = over.HTML
	}
	if over.CSV != "" {
		out.CSV = over.CSV
	}
	if over.JSON != "" {
		out.JSON = over.JSON
	}
	if over.MaxLookahead != 0 {
		out.MaxLookahead = over.MaxLookahead
	}
	if over.IotaAsDiphthong != nil {
		b := *over.IotaAsDiphthong
		out.IotaAsDiphthong = &b
	}
	if lvl := strings.TrimSpace(over.LogLevel); lvl != "" {
		out.LogLevel = strings.ToLower(lvl)
	}
	if over.Addr != "" {
		out.Addr = over.Addr
	}
	return out
}

// EnvOverlay builds a configuration overlay from environment variables
// (in the form of os.Environ). Recognized keys are HIATUS_INPUT,
// HIATUS_HTML, HIATUS_CSV, HIATUS_JSON, HIATUS_MAX_LOOKAHEAD,
// HIATUS_IOTA_AS_DIPHTHONG, HIATUS_LOG_LEVEL and HIATUS_ADDR; other keys
// are ignored.
func EnvOverlay(environ []string) (Config, error) {
	var over Config
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, "HIATUS_") {
			continue
		}
		val = strings.TrimSpace(val)
		switch strings.TrimPrefix(key, "HIATUS_") {
		case "INPUT":
			over.Input = val
		case "HTML":
			over.HTML = val
		case "CSV":
			over.CSV = val
		case "JSON":
			over.JSON = val
		case "MAX_LOOKAHEAD":
			k, err := strconv.Atoi(val)
			if err != nil {
				return over, fmt.Errorf("config: %s: %w", key, err)
			}
			over.MaxLookahead = k
		case "IOTA_AS_DIPHTHONG":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return over, fmt.Errorf("config: %s: %w", key, err)
			}
			over.IotaAsDiphthong = &b
		case "LOG_LEVEL":
			over.LogLevel = val
		case "ADDR":
			over.Addr = val
		}
	}
	return over, nil
}

// Validate checks a merged configuration.
func Validate(cfg Config) error {
	if cfg.MaxLookahead < 1 {
		return fmt.Errorf("%w, is %d", ErrInvalidLookahead, cfg.MaxLookahead)
	}
	switch cfg.LogLevel {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("%w, is %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.HTML) == "" || strings.TrimSpace(cfg.CSV) == "" {
		return ErrNoOutput
	}
	return nil
}

// Iota tells if an iota subscript is to be treated as forming a diphthong.
func (cfg Config) Iota() bool {
	return cfg.IotaAsDiphthong != nil && *cfg.IotaAsDiphthong
}

// Options returns the detection options of a configuration.
func (cfg Config) Options() []hiatus.Option {
	return []hiatus.Option{
		hiatus.WithOptions(hiatus.Options{
			Lookahead:       cfg.MaxLookahead,
			IotaAsDiphthong: cfg.Iota(),
		}),
	}
}
