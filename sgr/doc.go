// @focus: #sgr { codes, render }
// Package sgr constructs ANSI SGR (Select Graphic Rendition) escape
// sequences: text attributes, the 16 basic colors, xterm-256 palette
// indices, and 24-bit RGB colors.
//
// Features:
//   - Named catalog of every standard SGR parameter value
//   - Multi-parameter extended color groups (38;5;N and 38;2;R;G;B)
//   - Zero-allocation rendering into caller-provided fixed buffers
//   - Fixed-capacity Builder for composing mixed attribute/color sequences
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences for xterm-compatible terminals. It only emits; it never parses,
// never touches the terminal, and holds no state, so everything here is safe
// for concurrent use without synchronization.
package sgr
