// Package codec provides options and error definitions for the text format.
package codec

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for serialization and deserialization.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("codec: invalid option supplied")

	// ErrWrite is returned when the destination writer fails.
	ErrWrite = errors.New("codec: write failed")

	// ErrRead is returned when the source reader fails.
	ErrRead = errors.New("codec: read failed")

	// ErrParse is returned when the value parser rejects a line.
	ErrParse = errors.New("codec: cannot parse value")
)

// NoDepthLimit disables the skip-deep ceiling.
const NoDepthLimit = -1

// MaxIndent caps the number of tabs written in pretty mode.
const MaxIndent = 32

// Ellipsis is the marker line written when the skip-deep ceiling is hit.
const Ellipsis = "..."

// Parser turns a single line of text into a value.
type Parser[T any] func(line string) (T, error)

// ParseInt parses a base-10 int line.
func ParseInt(line string) (int, error) {
	return strconv.Atoi(line)
}

// ParseFloat parses a float64 line.
func ParseFloat(line string) (float64, error) {
	return strconv.ParseFloat(line, 64)
}

// Option configures Serialize via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Serialize runs.
type Option func(*Options)

// Options holds the serialization knobs.
type Options struct {
	// Pretty enables tab indentation and the "<depth>: " prefix.
	Pretty bool

	// SkipDeep stops the walk at the first node deeper than this value.
	// NoDepthLimit disables it.
	SkipDeep int

	// Format renders a value; nil means fmt.Sprint.
	Format func(v any) string

	err error
}

// DefaultOptions returns plain output with no depth limit.
func DefaultOptions() Options {
	return Options{
		Pretty:   false,
		SkipDeep: NoDepthLimit,
		Format:   func(v any) string { return fmt.Sprint(v) },
	}
}

// WithPretty turns on display formatting.
func WithPretty() Option {
	return func(o *Options) { o.Pretty = true }
}

// WithSkipDeep sets the depth ceiling.
//
//	d >= 0: stop at the first node with depth > d
//	        (that node is not written; "..." takes its line)
//	d == NoDepthLimit: no ceiling
//	d < NoDepthLimit: invalid option → ErrOptionViolation
func WithSkipDeep(d int) Option {
	return func(o *Options) {
		if d < NoDepthLimit {
			o.err = fmt.Errorf("%w: SkipDeep cannot be below %d (%d)", ErrOptionViolation, NoDepthLimit, d)
			return
		}
		o.SkipDeep = d
	}
}

// WithFormatter overrides how values are rendered. fn receives the node's
// value boxed as any.
func WithFormatter(fn func(v any) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.Format = fn
		}
	}
}
