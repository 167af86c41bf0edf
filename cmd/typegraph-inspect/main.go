// Package main provides the entry point for typegraph-inspect, a small
// command line tool that resolves a YAML fixture file and prints the
// resulting type graph.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arcweave/typegraph/internal/ident"
	"github.com/arcweave/typegraph/resolve"
	"github.com/arcweave/typegraph/resolve/fixture"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "typegraph-inspect: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("typegraph-inspect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		logLevel = fs.String("log-level", "info", "log level: error|warn|info|debug")
		workers  = fs.Int("workers", 0, "worker count for member resolution (0 = GOMAXPROCS)")
		showVer  = fs.Bool("version", false, "print version and exit")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typegraph-inspect [options] <fixture.yaml>\n\n")
		fmt.Fprintf(os.Stderr, "Resolves a YAML ParserResult fixture and prints the type graph.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		fs.Usage()
		return fmt.Errorf("parse flags: %w", err)
	}

	if *showVer {
		fmt.Printf("typegraph-inspect %s\n", version)
		return nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("exactly one fixture path required")
	}

	logger, err := setupLogger(*logLevel)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	pr, err := fixture.Load(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}

	opts := []resolve.Option{resolve.WithLogger(logger)}
	if *workers > 0 {
		opts = append(opts, resolve.WithWorkerCount(*workers))
	}

	result, err := resolve.Resolve(pr, opts...)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	return printSummary(os.Stdout, result)
}

type typeSummary struct {
	GlobalName string   `yaml:"globalName"`
	FieldName  string   `yaml:"fieldName"`
	Kind       string   `yaml:"kind"`
	Inherits   []string `yaml:"inherits,omitempty"`
	Implements []string `yaml:"implements,omitempty"`
	Supertype  string   `yaml:"supertype,omitempty"`
}

type aliasSummary struct {
	GlobalName string `yaml:"globalName"`
	Target     string `yaml:"target,omitempty"`
}

type summaryDocument struct {
	Types       []typeSummary  `yaml:"types"`
	Functions   []string       `yaml:"functions"`
	Typealiases []aliasSummary `yaml:"typealiases"`
}

func printSummary(w io.Writer, result *resolve.Result) error {
	doc := summaryDocument{
		Types:     make([]typeSummary, 0, len(result.Types)),
		Functions: make([]string, 0, len(result.Functions)),
	}
	for _, t := range result.Types {
		ts := typeSummary{
			GlobalName: t.GlobalName(),
			FieldName:  ident.ToLowerSnake(t.Name()),
			Kind:       t.Kind().String(),
		}
		for _, inh := range t.InheritsSlice() {
			ts.Inherits = append(ts.Inherits, inh.GlobalName())
		}
		for _, impl := range t.ImplementsSlice() {
			ts.Implements = append(ts.Implements, impl.GlobalName())
		}
		if t.Supertype() != nil {
			ts.Supertype = t.Supertype().GlobalName()
		}
		doc.Types = append(doc.Types, ts)
	}
	for _, m := range result.Functions {
		doc.Functions = append(doc.Functions, m.Name())
	}
	for _, a := range result.Typealiases {
		as := aliasSummary{GlobalName: a.GlobalName()}
		if a.Type() != nil {
			as.Target = a.Type().GlobalName()
		}
		doc.Typealiases = append(doc.Typealiases, as)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(doc)
}

func setupLogger(level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch level {
	case "error":
		slogLevel = slog.LevelError
	case "warn":
		slogLevel = slog.LevelWarn
	case "info":
		slogLevel = slog.LevelInfo
	case "debug":
		slogLevel = slog.LevelDebug
	default:
		return nil, fmt.Errorf("invalid log level: %q", level)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), nil
}
