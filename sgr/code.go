package sgr

// Code is a single SGR parameter value (0-255).
//
// Codes are plain values: equality is numeric, copies are free, and there is
// no identity beyond the byte itself. The named constants in this package are
// transmitted verbatim to the terminal's control-sequence interpreter, so
// their numeric values are wire-stable and must never be renumbered.
type Code uint8

// Attributes
const (
	Bold      Code = 1
	Dim       Code = 2
	Italic    Code = 3
	Underline Code = 4
	Blink     Code = 5
	Inverse   Code = 7 // flip foreground and background
	Hidden    Code = 8
	Strike    Code = 9
)

// Resets
const (
	Reset          Code = 0 // reset all attributes
	ResetWeight    Code = 22
	ResetItalic    Code = 23
	ResetUnderline Code = 24
	ResetBlink     Code = 25
	ResetInverse   Code = 27
	ResetHidden    Code = 28
	ResetStrike    Code = 29
)

// Basic foreground colors
const (
	Black   Code = 30
	Red     Code = 31
	Green   Code = 32
	Yellow  Code = 33
	Blue    Code = 34
	Magenta Code = 35
	Cyan    Code = 36
	White   Code = 37
	Default Code = 39
)

// Basic background colors
const (
	BlackBg   Code = 40
	RedBg     Code = 41
	GreenBg   Code = 42
	YellowBg  Code = 43
	BlueBg    Code = 44
	MagentaBg Code = 45
	CyanBg    Code = 46
	WhiteBg   Code = 47
	DefaultBg Code = 49
)

// Bright foreground colors
const (
	BrightBlack   Code = 90
	BrightRed     Code = 91
	BrightGreen   Code = 92
	BrightYellow  Code = 93
	BrightBlue    Code = 94
	BrightMagenta Code = 95
	BrightCyan    Code = 96
	BrightWhite   Code = 97
)

// Bright background colors
const (
	BrightBlackBg   Code = 100
	BrightRedBg     Code = 101
	BrightGreenBg   Code = 102
	BrightYellowBg  Code = 103
	BrightBlueBg    Code = 104
	BrightMagentaBg Code = 105
	BrightCyanBg    Code = 106
	BrightWhiteBg   Code = 107
)

// Extended color selectors. An extended color is a parameter group:
// selector, mode, then one palette index or three RGB channels,
// e.g. 38;5;208 or 48;2;255;0;0.
const (
	ExtendedFg  Code = 38
	ExtendedBg  Code = 48
	ModeRGB     Code = 2
	ModePalette Code = 5
)

// String renders the single-code escape sequence, e.g. "\x1b[1m" for Bold.
func (c Code) String() string {
	var buf [8]byte
	out, _ := Render(buf[:], c) // 7 bytes worst case, cannot fail
	return string(out)
}

// GoString renders the diagnostic form: the escape text as a readable quoted
// literal with the ESC byte spelled out, e.g. `"\x1b[1m"` for Bold.
func (c Code) GoString() string {
	buf := make([]byte, 0, 12)
	buf = append(buf, `"\x1b[`...)
	buf = appendDecimal(buf, uint8(c))
	buf = append(buf, 'm', '"')
	return string(buf)
}
