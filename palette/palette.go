// Package palette provides xterm 256-color palette math: cube and grayscale
// index construction, index decomposition back to RGB, and nearest-index
// matching for 24-bit colors.
//
// Palette layout: indices 0-15 are the 16 standard colors, 16-231 a 6x6x6
// color cube (index = 16 + 36r + 6g + b, channel levels 0,95,135,175,215,255),
// and 232-255 a 24-step gray ramp (level = 8 + 10*step).
package palette

import "github.com/lixenwraith/termgfx/sgr"

const (
	cubeBase  = 16
	grayBase  = 232
	graySteps = 24
)

// cubeLevels are the channel values of the 6x6x6 color cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// standardRGB holds the VGA values of the 16 standard colors (indices 0-15).
// Real terminals theme these freely; the values here are the conventional
// ones and only matter for nearest-match and decomposition.
var standardRGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xaa, 0x00, 0x00}, // red
	{0x00, 0xaa, 0x00}, // green
	{0xaa, 0x55, 0x00}, // yellow
	{0x00, 0x00, 0xaa}, // blue
	{0xaa, 0x00, 0xaa}, // magenta
	{0x00, 0xaa, 0xaa}, // cyan
	{0xaa, 0xaa, 0xaa}, // white
	{0x55, 0x55, 0x55}, // bright black
	{0xff, 0x55, 0x55}, // bright red
	{0x55, 0xff, 0x55}, // bright green
	{0xff, 0xff, 0x55}, // bright yellow
	{0x55, 0x55, 0xff}, // bright blue
	{0xff, 0x55, 0xff}, // bright magenta
	{0x55, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// Commonly referenced palette indices, ordered dark-to-light within each hue
const (
	Navy      uint8 = 17  // (0,0,1)
	DarkBlue  uint8 = 18  // (0,0,2)
	Cobalt    uint8 = 33  // (0,2,5)
	Teal      uint8 = 44  // (0,4,4)
	Cyan      uint8 = 51  // (0,5,5)
	Maroon    uint8 = 52  // (1,0,0)
	Indigo    uint8 = 63  // (1,1,5)
	SteelBlue uint8 = 75  // (1,3,5)
	Purple    uint8 = 129 // (3,0,5)
	Lime      uint8 = 154 // (3,5,0)
	Crimson   uint8 = 160 // (4,0,0)
	Red       uint8 = 196 // (5,0,0)
	Orange    uint8 = 208 // (5,2,0)
	Amber     uint8 = 214 // (5,3,0)
	Gold      uint8 = 220 // (5,4,0)
	Yellow    uint8 = 226 // (5,5,0)
	DarkGray  uint8 = 240 // gray step 8, level 88
)

// Cube returns the palette index for a color cube coordinate.
// r, g, b must be in [0,5]; values outside that range are clamped.
func Cube(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return cubeBase + 36*r + 6*g + b
}

// CubeCoords returns the (r, g, b) cube coordinates for a color cube index.
// Index must be in [16,231]; returns (0,0,0) for out-of-range indices.
func CubeCoords(index uint8) (r, g, b uint8) {
	if index < cubeBase || index >= grayBase {
		return 0, 0, 0
	}
	n := index - cubeBase
	return n / 36, (n % 36) / 6, n % 6
}

// Gray returns the palette index for a grayscale step.
// step must be in [0,23] (indices 232-255, levels 8-238); clamped otherwise.
func Gray(step uint8) uint8 {
	if step >= graySteps {
		step = graySteps - 1
	}
	return grayBase + step
}

// ToRGB decomposes any palette index into its RGB channel values.
func ToRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < cubeBase:
		c := standardRGB[index]
		return c[0], c[1], c[2]
	case index < grayBase:
		cr, cg, cb := CubeCoords(index)
		return cubeLevels[cr], cubeLevels[cg], cubeLevels[cb]
	default:
		level := 8 + 10*(index-grayBase)
		return level, level, level
	}
}

// Fg returns the SGR sequence selecting index as the foreground color.
func Fg(index uint8) sgr.Sequence {
	return sgr.Pal(sgr.Foreground, index)
}

// Bg returns the SGR sequence selecting index as the background color.
func Bg(index uint8) sgr.Sequence {
	return sgr.Pal(sgr.Background, index)
}
