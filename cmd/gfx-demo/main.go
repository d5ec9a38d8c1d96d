// gfx-demo prints attribute samples, the 16 basic colors, the xterm 256
// palette grid, and a truecolor gradient with its nearest-palette
// approximation. It is a consumer of the library, nothing more.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/lixenwraith/termgfx/palette"
	"github.com/lixenwraith/termgfx/sgr"
)

// cellWidth is the printed width of one palette swatch ("NNN ")
const cellWidth = 4

var (
	colsFlag     = flag.Int("cols", 0, "Palette grid columns (0 = fit terminal width)")
	gradientFlag = flag.Int("gradient", 64, "Gradient width in cells (0 = skip)")
)

func main() {
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)

	printAttributes(w)
	printBasicColors(w)
	printPaletteGrid(w, gridColumns())
	if *gradientFlag > 0 {
		printGradient(w, *gradientFlag)
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Write failed: %v\n", err)
		os.Exit(1)
	}
}

// gridColumns picks the palette grid width from the flag or the terminal
func gridColumns() int {
	if *colsFlag > 0 {
		return *colsFlag
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < cellWidth {
		return 16
	}
	cols := width / cellWidth
	if cols > 36 {
		cols = 36 // one cube slice per row reads best
	}
	return cols
}

func printAttributes(w *bufio.Writer) {
	attrs := []struct {
		name    string
		on, off sgr.Code
	}{
		{"bold", sgr.Bold, sgr.ResetWeight},
		{"dim", sgr.Dim, sgr.ResetWeight},
		{"italic", sgr.Italic, sgr.ResetItalic},
		{"underline", sgr.Underline, sgr.ResetUnderline},
		{"blink", sgr.Blink, sgr.ResetBlink},
		{"inverse", sgr.Inverse, sgr.ResetInverse},
		{"hidden", sgr.Hidden, sgr.ResetHidden},
		{"strike", sgr.Strike, sgr.ResetStrike},
	}

	fmt.Fprintln(w, "Attributes:")
	for _, a := range attrs {
		fmt.Fprintf(w, "  %s%-10s%s", a.on, a.name, a.off)
	}
	fmt.Fprintf(w, "%s\n\n", sgr.Reset)
}

func printBasicColors(w *bufio.Writer) {
	fmt.Fprintln(w, "Basic colors:")
	fmt.Fprint(w, "  ")
	for c := sgr.Black; c <= sgr.White; c++ {
		fmt.Fprintf(w, "%s%3d %s", c, c, sgr.Default)
	}
	fmt.Fprint(w, "\n  ")
	for c := sgr.BrightBlack; c <= sgr.BrightWhite; c++ {
		fmt.Fprintf(w, "%s%3d %s", c, c, sgr.Default)
	}
	fmt.Fprint(w, "\n  ")
	for c := sgr.BlackBg; c <= sgr.WhiteBg; c++ {
		fmt.Fprintf(w, "%s%3d %s", c, c, sgr.DefaultBg)
	}
	fmt.Fprint(w, "\n  ")
	for c := sgr.BrightBlackBg; c <= sgr.BrightWhiteBg; c++ {
		fmt.Fprintf(w, "%s%3d %s", c, c, sgr.DefaultBg)
	}
	fmt.Fprintf(w, "%s\n\n", sgr.Reset)
}

func printPaletteGrid(w *bufio.Writer, cols int) {
	fmt.Fprintln(w, "256-color palette:")
	for i := 0; i < 256; i++ {
		if i%cols == 0 {
			if i > 0 {
				fmt.Fprintf(w, "%s\n", sgr.Reset)
			}
			fmt.Fprint(w, "  ")
		}

		// Dark text on light swatches, light text on dark ones
		r, g, b := palette.ToRGB(uint8(i))
		fg := sgr.BrightWhite
		if int(r)+int(g)+int(b) > 380 {
			fg = sgr.Black
		}

		if err := sgr.RenderTo(w, sgr.ExtendedBg, sgr.ModePalette, sgr.Code(i), fg); err != nil {
			fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(w, "%3d ", i)
	}
	fmt.Fprintf(w, "%s\n\n", sgr.Reset)
}

// printGradient renders a hue sweep in truecolor, then the same sweep
// snapped to the palette with perceptual matching.
func printGradient(w *bufio.Writer, steps int) {
	fmt.Fprintln(w, "Truecolor gradient and nearest-palette approximation:")

	fmt.Fprint(w, "  ")
	for x := 0; x < steps; x++ {
		c := colorful.Hsv(float64(x)*360/float64(steps), 0.9, 0.9)
		r, g, b := c.RGB255()
		seq, err := new(sgr.Builder).RGBBg(r, g, b).Sequence()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(w, "%s ", seq)
	}
	fmt.Fprintf(w, "%s\n", sgr.Reset)

	fmt.Fprint(w, "  ")
	for x := 0; x < steps; x++ {
		c := colorful.Hsv(float64(x)*360/float64(steps), 0.9, 0.9)
		fmt.Fprintf(w, "%s ", palette.Bg(palette.Nearest(c)))
	}
	fmt.Fprintf(w, "%s\n", sgr.Reset)
}
