package escape

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/parser"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("escape: invalid option supplied")

// Engine names a shortest-path implementation.
type Engine string

// Available engines.
const (
	EngineDijkstra Engine = "dijkstra"
	EngineBFS      Engine = "bfs"
	EngineGonum    Engine = "gonum"
)

// Engines lists every supported engine.
func Engines() []Engine { return []Engine{EngineDijkstra, EngineBFS, EngineGonum} }

// Format selects the report layout.
type Format string

const (
	// FormatText writes one message line per maze.
	FormatText Format = "text"
	// FormatJSON writes a single JSON report.
	FormatJSON Format = "json"
)

// Option configures a pipeline run.
type Option func(*Options)

// Options holds the pipeline settings.
type Options struct {
	Engine      Engine
	Workers     int
	SkipInvalid bool
	Messages    Messages
	Format      Format
	RunID       string // empty: a fresh UUID per report
	Parser      []parser.Option

	err error
}

// DefaultOptions returns Dijkstra, one worker, abort on invalid mazes,
// English text output.
func DefaultOptions() Options {
	return Options{
		Engine:   EngineDijkstra,
		Workers:  1,
		Messages: English,
		Format:   FormatText,
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithEngine selects the solver implementation.
func WithEngine(e Engine) Option {
	return func(o *Options) {
		for _, known := range Engines() {
			if e == known {
				o.Engine = e
				return
			}
		}
		o.err = fmt.Errorf("%w: unknown engine %q", ErrOptionViolation, e)
	}
}

// WithWorkers solves up to n mazes concurrently. n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSkipInvalid reports mazes without a unique start or end as invalid
// instead of aborting the run.
func WithSkipInvalid() Option {
	return func(o *Options) {
		o.SkipInvalid = true
	}
}

// WithMessages overrides the text report wording.
func WithMessages(m Messages) Option {
	return func(o *Options) {
		o.Messages = m
	}
}

// WithFormat selects text or JSON output.
func WithFormat(f Format) Option {
	return func(o *Options) {
		if f != FormatText && f != FormatJSON {
			o.err = fmt.Errorf("%w: unknown format %q", ErrOptionViolation, f)
			return
		}
		o.Format = f
	}
}

// WithRunID fixes the run identifier of JSON reports.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithParserOptions forwards options to the record decoder.
func WithParserOptions(opts ...parser.Option) Option {
	return func(o *Options) {
		o.Parser = append(o.Parser, opts...)
	}
}
