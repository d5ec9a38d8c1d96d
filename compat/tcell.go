// Package compat bridges tcell styles to SGR sequences, so applications
// built on tcell can reuse its Style values when writing plain styled text
// outside a tcell screen (logs, prompts, piped reports).
package compat

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgfx/sgr"
)

// attrCodes maps tcell attribute bits to SGR codes, in tcell's mask order
var attrCodes = [...]struct {
	mask tcell.AttrMask
	code sgr.Code
}{
	{tcell.AttrBold, sgr.Bold},
	{tcell.AttrBlink, sgr.Blink},
	{tcell.AttrReverse, sgr.Inverse},
	{tcell.AttrUnderline, sgr.Underline},
	{tcell.AttrDim, sgr.Dim},
	{tcell.AttrItalic, sgr.Italic},
	{tcell.AttrStrikeThrough, sgr.Strike},
}

// colorNumberMask extracts the palette number from a valid non-RGB
// tcell color; the flag bits live above the low 32.
const colorNumberMask = 0xffffffff

// Attrs converts a tcell attribute mask to the equivalent SGR codes.
func Attrs(mask tcell.AttrMask) sgr.Sequence {
	b := new(sgr.Builder)
	appendAttrs(b, mask)
	seq, _ := b.Sequence() // seven codes max, cannot overflow
	return seq
}

// FromStyle converts a tcell style into the SGR sequence reproducing it on
// an xterm-compatible terminal. Default or invalid colors contribute no
// color group; the caller decides whether to emit a reset first.
func FromStyle(st tcell.Style) sgr.Sequence {
	fg, bg, mask := st.Decompose()

	b := new(sgr.Builder)
	appendAttrs(b, mask)
	appendColor(b, sgr.Foreground, fg)
	appendColor(b, sgr.Background, bg)
	seq, _ := b.Sequence() // 7 attrs + two 5-code groups fit the builder
	return seq
}

func appendAttrs(b *sgr.Builder, mask tcell.AttrMask) {
	for _, ac := range attrCodes {
		if mask&ac.mask != 0 {
			b.Code(ac.code)
		}
	}
}

func appendColor(b *sgr.Builder, g sgr.Ground, c tcell.Color) {
	if !c.Valid() {
		return
	}
	if c.IsRGB() {
		r, gr, bl := c.RGB()
		if g == sgr.Background {
			b.RGBBg(uint8(r), uint8(gr), uint8(bl))
		} else {
			b.RGBFg(uint8(r), uint8(gr), uint8(bl))
		}
		return
	}
	num := uint64(c) & colorNumberMask
	if num > 255 {
		// Named colors past the palette carry an RGB equivalent
		r, gr, bl := c.RGB()
		if g == sgr.Background {
			b.RGBBg(uint8(r), uint8(gr), uint8(bl))
		} else {
			b.RGBFg(uint8(r), uint8(gr), uint8(bl))
		}
		return
	}
	if g == sgr.Background {
		b.PalBg(uint8(num))
	} else {
		b.PalFg(uint8(num))
	}
}
