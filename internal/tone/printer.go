package tone

import (
	"fmt"
	"io"

	"github.com/jmylchreest/freqbeep/internal/config"
)

// Printer writes one frequency per line instead of making a sound.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Emit writes freq followed by a newline.
func (p *Printer) Emit(freq Hertz) error {
	if _, err := fmt.Fprintln(p.w, freq.Format()); err != nil {
		return &ToneError{Backend: config.BackendPrint, Frequency: freq, Err: err}
	}
	return nil
}

// Close is a no-op.
func (p *Printer) Close() error {
	return nil
}
