// Package judgeio reads and writes the whitespace-separated integer streams
// used by online judges, without going through fmt.
package judgeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

var (
	// ErrSyntax reports a token that is not a decimal integer.
	ErrSyntax = errors.New("judgeio: malformed integer")

	// ErrRange reports an integer that does not fit the requested type.
	ErrRange = errors.New("judgeio: integer out of range")
)

const bufferSize = 1 << 16

// Reader scans signed decimal integers separated by ASCII whitespace.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r in a buffered integer scanner.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, bufferSize)}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t' || b == '\v' || b == '\f'
}

// Int64 returns the next integer, or io.EOF when only whitespace remains.
// The last token may end at EOF without a trailing newline.
func (r *Reader) Int64() (int64, error) {
	b, err := r.r.ReadByte()
	for err == nil && isSpace(b) {
		b, err = r.r.ReadByte()
	}
	if err != nil {
		return 0, err
	}

	neg := false
	if b == '-' {
		neg = true
		if b, err = r.r.ReadByte(); err != nil {
			return 0, fmt.Errorf("%w: lone '-'", ErrSyntax)
		}
	}

	// Accumulate negatively so that math.MinInt64 is reachable.
	var x int64
	digits := 0
	for {
		if b < '0' || b > '9' {
			if !isSpace(b) {
				return 0, fmt.Errorf("%w: unexpected byte %q", ErrSyntax, b)
			}
			break
		}
		d := int64(b - '0')
		if x < (math.MinInt64+d)/10 {
			return 0, fmt.Errorf("%w: more than 64 bits", ErrRange)
		}
		x = 10*x - d
		digits++
		if b, err = r.r.ReadByte(); err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: lone '-'", ErrSyntax)
	}
	if !neg {
		if x == math.MinInt64 {
			return 0, fmt.Errorf("%w: more than 64 bits", ErrRange)
		}
		x = -x
	}

	return x, nil
}

// Int is Int64 narrowed to int. Values outside int's range yield ErrRange.
func (r *Reader) Int() (int, error) {
	x, err := r.Int64()
	if err != nil {
		return 0, err
	}
	if x < math.MinInt || x > math.MaxInt {
		return 0, fmt.Errorf("%w: %d overflows int", ErrRange, x)
	}

	return int(x), nil
}

// Ints reads exactly len(dst) integers into dst. Running out of input
// midway yields io.ErrUnexpectedEOF.
func (r *Reader) Ints(dst ...*int) error {
	for i, p := range dst {
		x, err := r.Int()
		if err == io.EOF && i > 0 {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		*p = x
	}

	return nil
}

// Writer buffers integer output. Call Flush when done.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter wraps w in a buffered integer writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, bufferSize), buf: make([]byte, 0, 24)}
}

// Line writes vals separated by single spaces and terminated by a newline.
func (w *Writer) Line(vals ...int64) error {
	for i, v := range vals {
		if i > 0 {
			if err := w.w.WriteByte(' '); err != nil {
				return err
			}
		}
		w.buf = strconv.AppendInt(w.buf[:0], v, 10)
		if _, err := w.w.Write(w.buf); err != nil {
			return err
		}
	}

	return w.w.WriteByte('\n')
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
