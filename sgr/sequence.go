package sgr

import "io"

// Sequence is an ordered list of codes rendered as one combined escape
// sequence. Order is preserved verbatim into the output; nothing is
// deduplicated or validated. Whether a particular code list means anything
// to the terminal is the caller's concern, e.g. nothing here stops an
// ExtendedFg with no mode selector after it.
type Sequence []Code

// stringBufSize covers sequences up to 15 codes on the stack; longer ones
// take the allocating fallback in String.
const stringBufSize = 64

// String renders the machine escape text, e.g. "\x1b[1;4m".
//
// An empty sequence renders to the empty string, not "\x1b[m": applying no
// codes emits nothing. Short sequences render through a stack buffer; the
// guaranteed zero-allocation paths are Render and WriteTo.
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}
	var scratch [stringBufSize]byte
	buf := scratch[:]
	if need := headerSize + len(s)*MaxCodeSize; need > len(buf) {
		buf = make([]byte, need)
	}
	out, _ := Render(buf, s...) // buf holds the worst case, cannot fail
	return string(out)
}

// GoString renders the diagnostic form: the escape text as a readable quoted
// literal, e.g. `"\x1b[1;4m"`. An empty sequence yields an empty string
// (quoted-nothing), mirroring String's empty rule.
func (s Sequence) GoString() string {
	if len(s) == 0 {
		return ""
	}
	buf := make([]byte, 0, 8+len(s)*MaxCodeSize)
	buf = append(buf, `"\x1b[`...)
	for i, c := range s {
		if i > 0 {
			buf = append(buf, sgrSep)
		}
		buf = appendDecimal(buf, uint8(c))
	}
	buf = append(buf, 'm', '"')
	return string(buf)
}

// WriteTo implements io.WriterTo over the streaming renderer. An empty
// sequence writes nothing.
func (s Sequence) WriteTo(w io.Writer) (int64, error) {
	n, err := renderTo(w, s)
	return int64(n), err
}
