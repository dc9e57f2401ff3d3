package components

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color returns a true-color foreground escape for a hex color with or
// without the leading "#", or "" when it does not parse.
func Color(hex string) string {
	return sgr(38, hex)
}

// BgColor is Color for the background.
func BgColor(hex string) string {
	return sgr(48, hex)
}

// Reset clears all styling.
func Reset() string {
	return "\x1b[0m"
}

func sgr(layer int, hex string) string {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", layer, r, g, b)
}
