/*
Command hiatus highlights hiatus in a polytonic Greek text.

Usage:

	hiatus [flags] <input>
	hiatus serve [flags]

The first form reads a UTF-8 text file, writes an annotated HTML document
and a CSV table of all occurrences, and prints the number of occurrences
found. The second form runs an HTTP service (see package internal/server).

Flags override environment variables (HIATUS_*), which override a JSON
configuration file given with --config, which overrides the defaults.

Exit codes: 0 on success, 1 if reading the input or writing an output
fails, 2 on configuration errors.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/hiatus/internal/config"
	"github.com/npillmayer/hiatus/internal/server"
	"github.com/npillmayer/hiatus/report"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

const (
	exitOK     = 0
	exitIO     = 1
	exitConfig = 2
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// flagValues holds the values of the command-line flags common to both
// forms of the command.
type flagValues struct {
	configFile   string
	maxLookahead int
	iotaDiph     bool
	logLevel     string
}

func (fv *flagValues) register(fs *flag.FlagSet) {
	fs.StringVar(&fv.configFile, "config", "", "JSON configuration file")
	fs.IntVar(&fv.maxLookahead, "max-lookahead", 8, "number of clusters to look ahead from a vowel")
	fs.BoolVar(&fv.iotaDiph, "iota-as-diphthong", false, "treat an iota subscript as forming a diphthong")
	fs.StringVar(&fv.logLevel, "log-level", "", "trace level: debug, info or error")
}

// assemble merges defaults, configuration file, environment and the flags
// explicitly set on the command line.
func assemble(fs *flag.FlagSet, fv *flagValues, environ []string, cli config.Config) (config.Config, error) {
	cfg := config.Defaults()
	if fv.configFile != "" {
		base, err := config.LoadJSON(fv.configFile, nil)
		if err != nil {
			return cfg, err
		}
		cfg = config.Merge(cfg, base)
	}
	env, err := config.EnvOverlay(environ)
	if err != nil {
		return cfg, err
	}
	cfg = config.Merge(cfg, env)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-lookahead":
			if fv.maxLookahead == 0 { // would not override
				fv.maxLookahead = -1
			}
			cli.MaxLookahead = fv.maxLookahead
		case "iota-as-diphthong":
			b := fv.iotaDiph
			cli.IotaAsDiphthong = &b
		case "log-level":
			cli.LogLevel = fv.logLevel
		}
	})
	cfg = config.Merge(cfg, cli)
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseInterspersed parses flags which may appear before, between or after
// positional arguments, and returns the positional arguments. Everything
// after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func setTraceLevel(level string) {
	switch level {
	case "debug":
		T().SetTraceLevel(tracing.LevelDebug)
	case "info":
		T().SetTraceLevel(tracing.LevelInfo)
	default:
		T().SetTraceLevel(tracing.LevelError)
	}
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "serve" {
		return serve(args[1:], environ, stderr)
	}
	fs := flag.NewFlagSet("hiatus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var fv flagValues
	fv.register(fs)
	var cli config.Config
	fs.StringVar(&cli.HTML, "html", "", "HTML output file (default hiatus.html)")
	fs.StringVar(&cli.CSV, "csv", "", "CSV output file (default hiatus.csv)")
	fs.StringVar(&cli.JSON, "json", "", "JSON output file (optional)")
	summary := fs.Bool("summary", false, "print a table of all occurrences")
	quiet := fs.Bool("quiet", false, "print nothing on success")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: hiatus [flags] <input>\n       hiatus serve [flags]\n")
		fs.PrintDefaults()
	}
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}
	if len(positional) > 1 {
		fmt.Fprintf(stderr, "hiatus: expected a single input file, have %d\n", len(positional))
		return exitConfig
	}
	if len(positional) == 1 {
		cli.Input = positional[0]
	}
	cfg, err := assemble(fs, &fv, environ, cli)
	if err != nil {
		fmt.Fprintf(stderr, "hiatus: %v\n", err)
		return exitConfig
	}
	if cfg.Input == "" {
		fs.Usage()
		return exitConfig
	}
	setTraceLevel(cfg.LogLevel)
	res, out, err := execute(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "hiatus: %v\n", err)
		return exitIO
	}
	if *quiet {
		return exitOK
	}
	colored := isTerminal(stdout)
	if *summary {
		if err := report.Summary(stdout, res, colored); err != nil {
			fmt.Fprintf(stderr, "hiatus: %v\n", err)
			return exitIO
		}
	}
	done := fmt.Sprintf("Done. %d hiatus occurrences.", len(res.Occurrences))
	if colored {
		done = color.Green.Sprint(done)
	}
	fmt.Fprintln(stdout, done)
	fmt.Fprintln(stdout, "HTML:", out.html)
	fmt.Fprintln(stdout, "CSV :", out.csv)
	if out.json != "" {
		fmt.Fprintln(stdout, "JSON:", out.json)
	}
	return exitOK
}

func serve(args, environ []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("hiatus serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var fv flagValues
	fv.register(fs)
	var cli config.Config
	fs.StringVar(&cli.Addr, "addr", "", "address to listen on (default :8484)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}
	cfg, err := assemble(fs, &fv, environ, cli)
	if err != nil {
		fmt.Fprintf(stderr, "hiatus: %v\n", err)
		return exitConfig
	}
	setTraceLevel(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.New(cfg).ListenAndServe(ctx, cfg.Addr); err != nil {
		fmt.Fprintf(stderr, "hiatus: %v\n", err)
		return exitIO
	}
	return exitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
