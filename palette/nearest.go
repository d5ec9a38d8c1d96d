package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// cubeIndex maps a channel value 0-255 to its nearest cube level 0-5.
// Pre-computed at init time.
var cubeIndex [256]uint8

// labPalette caches the full palette as colorful colors for perceptual
// matching in Nearest.
var labPalette [256]colorful.Color

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := absInt(i - int(cubeLevels[0]))
		for j := 1; j < 6; j++ {
			if d := absInt(i - int(cubeLevels[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}

	for i := 0; i < 256; i++ {
		r, g, b := ToRGB(uint8(i))
		labPalette[i] = colorful.Color{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(b) / 255,
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FromRGB returns the nearest palette index for an RGB value using cheap
// channel arithmetic: near-gray inputs compare the gray ramp against the
// cube, everything else snaps each channel to its nearest cube level.
// Only cube and ramp indices (16-255) are produced; the themable standard
// colors 0-15 are never chosen.
func FromRGB(r, g, b uint8) uint8 {
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(absInt(int(r)-gray), absInt(int(g)-gray), absInt(int(b)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return cubeBase // black cube corner
		}
		if gray > 243 {
			return 231 // white cube corner
		}
		grayIdx := uint8(grayBase + (gray-8)/10)

		grayLevel := 8 + int(grayIdx-grayBase)*10
		grayDist := absInt(int(r)-grayLevel) + absInt(int(g)-grayLevel) + absInt(int(b)-grayLevel)

		cr, cg, cb := cubeIndex[r], cubeIndex[g], cubeIndex[b]
		cubeDist := absInt(int(r)-int(cubeLevels[cr])) +
			absInt(int(g)-int(cubeLevels[cg])) +
			absInt(int(b)-int(cubeLevels[cb]))

		if grayDist < cubeDist {
			return grayIdx
		}
	}

	return cubeBase + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// Nearest returns the palette index perceptually closest to c, by Lab
// distance over the full 256-entry palette. Slower than FromRGB but
// noticeably better on saturated mid-tones.
func Nearest(c colorful.Color) uint8 {
	best := 0
	bestDist := c.DistanceLab(labPalette[0])
	for i := 1; i < 256; i++ {
		if d := c.DistanceLab(labPalette[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}
