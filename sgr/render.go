// @focus: #sgr { render }
package sgr

import (
	"errors"
	"io"
)

// ErrBufferTooSmall reports that a destination buffer cannot hold the fully
// rendered escape sequence. Rendering never produces truncated output: the
// caller gets the complete sequence or this error, nothing in between.
var ErrBufferTooSmall = errors.New("sgr: buffer too small")

// Escape sequence framing
const (
	esc        = 0x1b
	csiOpen    = '['
	sgrEnd     = 'm'
	sgrSep     = ';'
	headerSize = 2 // ESC '['
)

// MaxCodeSize is the worst-case encoded size of one code: up to three
// decimal digits plus one separator or terminator byte. A sequence of n
// codes therefore needs at most headerSize + n*MaxCodeSize bytes.
const MaxCodeSize = 4

// csiPrefix is pre-allocated for the streaming path (avoid allocations
// during render).
var csiPrefix = []byte("\x1b[")

// appendDecimal appends the canonical decimal digits of v: no leading
// zeros, one to three digits. Values are byte-sized so three digits is the
// ceiling.
func appendDecimal(dst []byte, v uint8) []byte {
	if v >= 100 {
		return append(dst, '0'+v/100, '0'+v/10%10, '0'+v%10)
	}
	if v >= 10 {
		return append(dst, '0'+v/10, '0'+v%10)
	}
	return append(dst, '0'+v)
}

// putCode writes the decimal digits of v followed by suffix into buf.
// Returns the byte count written, or 0 if buf is too short to hold it.
func putCode(buf []byte, v uint8, suffix byte) int {
	n := 2 // units digit + suffix
	switch {
	case v >= 100:
		n = 4
	case v >= 10:
		n = 3
	}
	if len(buf) < n {
		return 0
	}
	i := 0
	if v >= 100 {
		buf[i] = '0' + v/100
		i++
		buf[i] = '0' + v/10%10
		i++
	} else if v >= 10 {
		buf[i] = '0' + v/10
		i++
	}
	buf[i] = '0' + v%10
	buf[i+1] = suffix
	return n
}

// Render serializes codes into dst as one ANSI escape sequence
// "\x1b[c1;c2;...;cnm" and returns the written prefix of dst.
//
// Zero codes render to an empty slice, not "\x1b[m". If dst cannot hold the
// complete sequence, Render returns ErrBufferTooSmall and no output. The
// output is pure ASCII by construction (control byte, digits, ';', 'm').
func Render(dst []byte, codes ...Code) ([]byte, error) {
	if len(codes) == 0 {
		return dst[:0], nil
	}
	if len(dst) < headerSize {
		return nil, ErrBufferTooSmall
	}
	dst[0] = esc
	dst[1] = csiOpen
	total := headerSize
	for i, c := range codes {
		suffix := byte(sgrSep)
		if i+1 == len(codes) {
			suffix = sgrEnd
		}
		n := putCode(dst[total:], uint8(c), suffix)
		if n == 0 {
			return nil, ErrBufferTooSmall
		}
		total += n
	}
	return dst[:total], nil
}

// RenderTo writes the escape sequence for codes to w, one code at a time
// through a small stack scratch. Unlike Render it has no length ceiling;
// the only failures are the writer's own. Zero codes write nothing.
func RenderTo(w io.Writer, codes ...Code) error {
	_, err := renderTo(w, codes)
	return err
}

func renderTo(w io.Writer, codes []Code) (int, error) {
	if len(codes) == 0 {
		return 0, nil
	}
	total, err := w.Write(csiPrefix)
	if err != nil {
		return total, err
	}
	var buf [MaxCodeSize]byte
	for i, c := range codes {
		suffix := byte(sgrSep)
		if i+1 == len(codes) {
			suffix = sgrEnd
		}
		n := putCode(buf[:], uint8(c), suffix)
		m, err := w.Write(buf[:n])
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
