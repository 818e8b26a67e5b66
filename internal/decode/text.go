package decode

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/freqbeep/internal/tone"
)

// errNotDecimal rejects Go-only literal forms that ParseFloat would accept.
var errNotDecimal = errors.New("not a decimal number")

// TextDecoder reads one decimal frequency per line.
type TextDecoder struct {
	reader *bufio.Reader
	line   int
	err    error
}

// NewText creates a TextDecoder reading from r.
func NewText(r io.Reader) *TextDecoder {
	return &TextDecoder{reader: bufio.NewReader(r)}
}

// Next parses the next line as a single-precision decimal number.
// Surrounding whitespace, including a trailing carriage return, is ignored.
// An empty line is a ParseError. Lines have no length limit.
func (d *TextDecoder) Next() (tone.Hertz, error) {
	if d.err != nil {
		return 0, d.err
	}

	raw, err := d.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		d.err = &ReadError{Op: "read", Err: err}
		return 0, d.err
	}
	if raw == "" {
		// Clean end of input, including after an unterminated last line.
		d.err = io.EOF
		return 0, d.err
	}
	d.line++

	text := strings.TrimSpace(raw)
	f, err := parseFloat32(text)
	if err != nil {
		d.err = &ParseError{Line: d.line, Text: text, Err: err}
		return 0, d.err
	}
	return tone.Hertz(f), nil
}

// parseFloat32 parses s as a 32-bit decimal float. Literals beyond the
// float32 range saturate to ±Inf rather than failing. Hex mantissas and
// underscore digit separators are rejected.
func parseFloat32(s string) (float64, error) {
	if !isDecimal(s) {
		return 0, errNotDecimal
	}

	f, err := strconv.ParseFloat(s, 32)
	if err == nil {
		return f, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return 0, unwrapNumError(err)
}

// isDecimal reports whether s avoids the Go literal extensions: a 0x prefix
// after an optional sign, or any underscore.
func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	digits := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

// unwrapNumError drops strconv's function name and quoted input, which the
// ParseError already carries.
func unwrapNumError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
