package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	defaultSwatchWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// Swatch returns an ANSI-coloured preview block for a colour. Width
// specifies how many characters wide the block should be. Returns an empty
// string when colour output is unavailable.
func Swatch(o OKLCH, width int) string {
	if DisableColourOutput || !TerminalSupportsColour() {
		return ""
	}
	if width <= 0 {
		width = defaultSwatchWidth
	}

	r, g, b := o.Color().RGB255()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a colour preview with a text overlay. The text
// colour is black or white, whichever contrasts better with the swatch.
func SwatchWithText(o OKLCH, text string, width int) string {
	if DisableColourOutput || !TerminalSupportsColour() {
		return text
	}
	if width <= 0 {
		width = defaultSwatchWidth
	}

	c := o.Color()
	var fg string
	if Luminance(c) > 0.18 {
		// Light background, dark text.
		fg = fmt.Sprintf("%s0;0;0%s", ansiFgPrefix, ansiSuffix)
	} else {
		fg = fmt.Sprintf("%s255;255;255%s", ansiFgPrefix, ansiSuffix)
	}

	r, g, b := c.RGB255()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg + fg + display + ansiReset
}

// TerminalSupportsColour reports whether stdout is a terminal that likely
// understands truecolor escape sequences.
func TerminalSupportsColour() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
