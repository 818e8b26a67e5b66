package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/jmylchreest/freqbeep/internal/tone"
)

// Record widths in bytes.
const (
	Width32 = 4
	Width64 = 8
)

// RawOptions describes the binary record layout.
type RawOptions struct {
	// Width is the record size in bytes: Width32 (default) or Width64.
	Width int

	// ByteOrder defaults to the host's native order.
	ByteOrder binary.ByteOrder
}

// ParseByteOrder maps "native", "little" and "big" to a binary.ByteOrder.
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "", "native":
		return binary.NativeEndian, nil
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q (want native, little or big)", name)
	}
}

// RawDecoder reads fixed-width binary floats.
type RawDecoder struct {
	r      io.Reader
	order  binary.ByteOrder
	buf    []byte
	record int
	err    error

	// Trailing holds the byte count of a discarded partial record.
	Trailing int
}

// NewRaw creates a RawDecoder reading from r.
func NewRaw(r io.Reader, opts RawOptions) (*RawDecoder, error) {
	width := opts.Width
	if width == 0 {
		width = Width32
	}
	if width != Width32 && width != Width64 {
		return nil, fmt.Errorf("unsupported raw record width %d (want %d or %d)", width, Width32, Width64)
	}

	order := opts.ByteOrder
	if order == nil {
		order = binary.NativeEndian
	}

	return &RawDecoder{
		r:     r,
		order: order,
		buf:   make([]byte, width),
	}, nil
}

// Next reads exactly one record and reinterprets its bits as a float.
// A short final record ends the sequence with io.EOF; its length is kept in
// Trailing.
func (d *RawDecoder) Next() (tone.Hertz, error) {
	if d.err != nil {
		return 0, d.err
	}

	n, err := io.ReadFull(d.r, d.buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		d.err = io.EOF
		return 0, d.err
	case errors.Is(err, io.ErrUnexpectedEOF):
		d.Trailing = n
		d.err = io.EOF
		return 0, d.err
	default:
		d.err = &ReadError{Op: "read", Err: err}
		return 0, d.err
	}
	d.record++

	if len(d.buf) == Width64 {
		return tone.Hertz(math.Float64frombits(d.order.Uint64(d.buf))), nil
	}
	return tone.Hertz(math.Float32frombits(d.order.Uint32(d.buf))), nil
}

// Records returns how many complete records have been decoded.
func (d *RawDecoder) Records() int {
	return d.record
}
