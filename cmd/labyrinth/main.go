// Command labyrinth reads 3D maze records from a file and prints, for each
// maze, how many minutes the escape takes or that there is no way out.
//
// Usage:
//
//	labyrinth [flags] [input.txt]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/escape"
)

// errUsage reports bad command line arguments; usage is already printed.
var errUsage = errors.New("usage")

// cliFlags holds the parsed command line.
type cliFlags struct {
	fs *flag.FlagSet

	configPath    string
	engine        string
	workers       int
	lang          string
	format        string
	skipInvalid   bool
	strictRows    bool
	strictRecords bool
	verbose       bool
	input         string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("labyrinth: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

// run is the whole command: parse args, merge settings, solve, report.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := buildConfig(f)
	if err != nil {
		return err
	}

	outs, err := escape.RunFile(ctx, f.input, stdout, cfg.Options()...)
	if err != nil {
		return err
	}

	if f.verbose {
		logger := log.New(stderr, "labyrinth: ", 0)
		for _, out := range outs {
			logger.Printf("maze %d: %s, %d open cells, %d edges, engine %s, escaped=%t",
				out.Index+1, out.Dims, out.OpenCells, out.Edges, cfg.GetEngine(), out.Escaped)
		}
	}
	return nil
}

func parseFlags(args []string, output io.Writer) (*cliFlags, error) {
	f := &cliFlags{fs: flag.NewFlagSet("labyrinth", flag.ContinueOnError)}
	fs := f.fs
	fs.SetOutput(output)
	fs.StringVar(&f.configPath, "config", "", "optional JSON settings file")
	fs.StringVar(&f.engine, "engine", config.DefaultEngine, "solver engine: dijkstra, bfs or gonum")
	fs.IntVar(&f.workers, "workers", config.DefaultWorkers, "number of mazes solved concurrently")
	fs.StringVar(&f.lang, "lang", config.DefaultLanguage, "report language: en or de")
	fs.StringVar(&f.format, "format", config.DefaultFormat, "report format: text or json")
	fs.BoolVar(&f.skipInvalid, "skip-invalid", false, "report mazes without start or end instead of failing")
	fs.BoolVar(&f.strictRows, "strict-rows", false, "reject rows shorter than the declared column count")
	fs.BoolVar(&f.strictRecords, "strict-records", false, "reject stray lines between records instead of skipping them")
	fs.BoolVar(&f.verbose, "v", false, "log per-maze statistics to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: labyrinth [flags] [input.txt]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errUsage
	}

	f.input = "input.txt"
	switch fs.NArg() {
	case 0:
	case 1:
		f.input = fs.Arg(0)
	default:
		fs.Usage()
		return nil, errUsage
	}
	return f, nil
}

// buildConfig loads the settings file, if any, and applies the flags given
// on the command line on top of it.
func buildConfig(f *cliFlags) (*config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "engine":
			cfg.Engine = &f.engine
		case "workers":
			cfg.Workers = &f.workers
		case "lang":
			cfg.Language = &f.lang
		case "format":
			cfg.Format = &f.format
		case "skip-invalid":
			cfg.SkipInvalid = &f.skipInvalid
		case "strict-rows":
			cfg.StrictRows = &f.strictRows
		case "strict-records":
			cfg.StrictRecords = &f.strictRecords
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
