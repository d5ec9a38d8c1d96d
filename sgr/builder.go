package sgr

import "errors"

// ErrBuilderFull reports that more codes were appended to a Builder than its
// fixed storage holds. Sequence fails closed rather than dropping codes.
var ErrBuilderFull = errors.New("sgr: builder capacity exceeded")

// Ground selects which plane an extended color applies to.
type Ground uint8

const (
	Foreground Ground = iota
	Background
)

// selector returns the extended-color selector code for the ground.
func (g Ground) selector() Code {
	if g == Background {
		return ExtendedBg
	}
	return ExtendedFg
}

// Pal expands a 256-palette color request to its SGR parameter group:
// [selector, 5, index].
func Pal(g Ground, index uint8) Sequence {
	return Sequence{g.selector(), ModePalette, Code(index)}
}

// TrueColor expands a 24-bit color request to its SGR parameter group:
// [selector, 2, r, g, b].
func TrueColor(g Ground, r, gr, b uint8) Sequence {
	return Sequence{g.selector(), ModeRGB, Code(r), Code(gr), Code(b)}
}

// builderCap bounds a Builder to typical sequence sizes: a handful of
// attributes plus a few five-code color groups.
const builderCap = 32

// Builder accumulates codes into fixed storage, letting callers mix named
// constants, runtime Code values, and structured color requests in one chain
// without manual slice bookkeeping:
//
//	seq, err := new(sgr.Builder).
//		Code(sgr.Bold).
//		RGBFg(243, 159, 24).
//		PalBg(28).
//		Sequence()
//
// The zero value is ready to use. A Builder is not safe for concurrent use;
// build sequences per call site, render them anywhere.
type Builder struct {
	codes    [builderCap]Code
	n        int
	overflow bool
}

func (b *Builder) add(codes ...Code) *Builder {
	for _, c := range codes {
		if b.n == len(b.codes) {
			b.overflow = true
			return b
		}
		b.codes[b.n] = c
		b.n++
	}
	return b
}

// Code appends one plain code, named or computed at runtime.
func (b *Builder) Code(c Code) *Builder {
	return b.add(c)
}

// PalFg appends a foreground 256-palette color group (38;5;index).
func (b *Builder) PalFg(index uint8) *Builder {
	return b.add(ExtendedFg, ModePalette, Code(index))
}

// PalBg appends a background 256-palette color group (48;5;index).
func (b *Builder) PalBg(index uint8) *Builder {
	return b.add(ExtendedBg, ModePalette, Code(index))
}

// RGBFg appends a foreground 24-bit color group (38;2;r;g;b).
func (b *Builder) RGBFg(r, g, bl uint8) *Builder {
	return b.add(ExtendedFg, ModeRGB, Code(r), Code(g), Code(bl))
}

// RGBBg appends a background 24-bit color group (48;2;r;g;b).
func (b *Builder) RGBBg(r, g, bl uint8) *Builder {
	return b.add(ExtendedBg, ModeRGB, Code(r), Code(g), Code(bl))
}

// Len reports how many codes have been accumulated.
func (b *Builder) Len() int {
	return b.n
}

// Sequence normalizes the fixed internal storage to a plain code list,
// uniform regardless of how many codes it holds. The returned Sequence
// aliases the Builder's storage and stays valid as long as the Builder is
// not appended to again; no allocation takes place.
//
// Returns ErrBuilderFull if any append overflowed the fixed capacity.
func (b *Builder) Sequence() (Sequence, error) {
	if b.overflow {
		return nil, ErrBuilderFull
	}
	return Sequence(b.codes[:b.n]), nil
}
