package palette

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// TestCube verifies cube index math and clamping
func TestCube(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		expected uint8
	}{
		{"Black corner", 0, 0, 0, 16},
		{"White corner", 5, 5, 5, 231},
		{"Pure red", 5, 0, 0, 196},
		{"Pure green", 0, 5, 0, 46},
		{"Pure blue", 0, 0, 5, 21},
		{"Clamped", 9, 9, 9, 231},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cube(tt.r, tt.g, tt.b); got != tt.expected {
				t.Errorf("Expected index %d, got %d", tt.expected, got)
			}
		})
	}
}

// TestCubeCoordsRoundTrip verifies decomposition inverts Cube across the
// whole cube range.
func TestCubeCoordsRoundTrip(t *testing.T) {
	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b := uint8(0); b < 6; b++ {
				idx := Cube(r, g, b)
				gr, gg, gb := CubeCoords(idx)
				if gr != r || gg != g || gb != b {
					t.Errorf("Index %d: expected (%d,%d,%d), got (%d,%d,%d)", idx, r, g, b, gr, gg, gb)
				}
			}
		}
	}

	// Out-of-range indices decompose to zero
	if r, g, b := CubeCoords(15); r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected (0,0,0) for standard-color index, got (%d,%d,%d)", r, g, b)
	}
	if r, g, b := CubeCoords(232); r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected (0,0,0) for gray index, got (%d,%d,%d)", r, g, b)
	}
}

// TestGray verifies ramp indexing and clamping
func TestGray(t *testing.T) {
	if got := Gray(0); got != 232 {
		t.Errorf("Expected 232, got %d", got)
	}
	if got := Gray(23); got != 255 {
		t.Errorf("Expected 255, got %d", got)
	}
	if got := Gray(100); got != 255 {
		t.Errorf("Expected clamp to 255, got %d", got)
	}
}

// TestToRGB pins decomposition for each palette region
func TestToRGB(t *testing.T) {
	tests := []struct {
		name    string
		index   uint8
		r, g, b uint8
	}{
		{"Standard black", 0, 0x00, 0x00, 0x00},
		{"Standard red", 1, 0xaa, 0x00, 0x00},
		{"Bright white", 15, 0xff, 0xff, 0xff},
		{"Cube black", 16, 0, 0, 0},
		{"Cube red", 196, 255, 0, 0},
		{"Cube white", 231, 255, 255, 255},
		{"First gray", 232, 8, 8, 8},
		{"Mid gray", 240, 88, 88, 88},
		{"Last gray", 255, 238, 238, 238},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ToRGB(tt.index)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

// TestFromRGBRoundTrip verifies exact cube and ramp colors map back to their
// own index.
func TestFromRGBRoundTrip(t *testing.T) {
	for i := 16; i < 256; i++ {
		r, g, b := ToRGB(uint8(i))
		if got := FromRGB(r, g, b); got != uint8(i) {
			t.Errorf("Index %d (%d,%d,%d): expected round trip, got %d", i, r, g, b, got)
		}
	}
}

// TestFromRGBGrayRamp verifies near-gray inputs prefer the ramp over the
// coarse cube grays.
func TestFromRGBGrayRamp(t *testing.T) {
	idx := FromRGB(120, 120, 120)
	if idx < 232 {
		t.Errorf("Expected a gray ramp index for (120,120,120), got %d", idx)
	}
	r, _, _ := ToRGB(idx)
	if d := absInt(int(r) - 120); d > 5 {
		t.Errorf("Gray level %d too far from 120", r)
	}
}

// TestNearestExact verifies perceptual matching finds exact palette colors
func TestNearestExact(t *testing.T) {
	tests := []struct {
		name     string
		color    colorful.Color
		expected uint8
	}{
		{"Black", colorful.Color{R: 0, G: 0, B: 0}, 0}, // standard black wins the tie with cube black
		{"Pure red", colorful.Color{R: 1, G: 0, B: 0}, 196},
		{"Pure green", colorful.Color{R: 0, G: 1, B: 0}, 46},
		{"First gray", colorful.Color{R: 8.0 / 255, G: 8.0 / 255, B: 8.0 / 255}, 232},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest(tt.color); got != tt.expected {
				t.Errorf("Expected index %d, got %d", tt.expected, got)
			}
		})
	}
}

// TestFgBg verifies the SGR sequence helpers expand to palette color groups
func TestFgBg(t *testing.T) {
	if got := Fg(208).String(); got != "\x1b[38;5;208m" {
		t.Errorf("Expected \\x1b[38;5;208m, got %q", got)
	}
	if got := Bg(28).String(); got != "\x1b[48;5;28m" {
		t.Errorf("Expected \\x1b[48;5;28m, got %q", got)
	}
}
