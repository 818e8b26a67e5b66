// Package decode turns an input stream into a lazy sequence of frequencies.
//
// Two formats are understood: newline-delimited decimal text, and raw
// fixed-width IEEE-754 floats with no header or delimiter. Decoders read one
// record per call to Next, so a consumer that stops early never causes the
// rest of the input to be read.
package decode

import (
	"fmt"
	"io"

	"github.com/jmylchreest/freqbeep/internal/tone"
)

// Mode selects the input format.
type Mode int

const (
	// ModeText reads one decimal number per line.
	ModeText Mode = iota
	// ModeRaw reads fixed-width binary floats.
	ModeRaw
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeRaw:
		return "raw"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Decoder yields frequencies one at a time.
type Decoder interface {
	// Next returns the next frequency. It returns io.EOF once the input
	// is exhausted; any other error is final.
	Next() (tone.Hertz, error)
}

// New creates the Decoder for mode over r.
// opts is only consulted in ModeRaw.
func New(r io.Reader, mode Mode, opts RawOptions) (Decoder, error) {
	switch mode {
	case ModeText:
		return NewText(r), nil
	case ModeRaw:
		return NewRaw(r, opts)
	default:
		return nil, fmt.Errorf("unknown decode mode %s", mode)
	}
}

// ParseError reports a text line that is not a decimal number.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line content
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid frequency %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure to open or read the input.
type ReadError struct {
	Op   string // "open" or "read"
	Path string // empty when the source is not a file
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s input: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
