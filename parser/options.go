package parser

import "fmt"

// DefaultMaxDimension bounds each header dimension.
const DefaultMaxDimension = 30

// Option configures decoding via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation by the first Next call.
type Option func(*Options)

// Options holds the decoding parameters.
type Options struct {
	// MaxDimension is the largest accepted value of L, R and C.
	MaxDimension int
	// StrictRows rejects rows shorter than C instead of padding them with rock.
	StrictRows bool
	// StrictRecords rejects non-blank lines outside a record instead of
	// skipping them.
	StrictRecords bool

	err error
}

// DefaultOptions returns MaxDimension=30, lenient rows and skipped stray lines.
func DefaultOptions() Options {
	return Options{MaxDimension: DefaultMaxDimension}
}

// WithMaxDimension overrides the per-axis limit. n must be positive.
func WithMaxDimension(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxDimension must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDimension = n
	}
}

// WithStrictRows makes short rows a MalformedInputError.
func WithStrictRows() Option {
	return func(o *Options) {
		o.StrictRows = true
	}
}

// WithStrictRecords makes any line between records that is neither blank
// nor a record header a MalformedInputError.
func WithStrictRecords() Option {
	return func(o *Options) {
		o.StrictRecords = true
	}
}
