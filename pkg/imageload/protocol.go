package imageload

import (
	"fmt"
	"os"
	"strings"
)

// Protocol is the terminal image protocol used to draw card images.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolHalfblocks
	ProtocolKitty
	ProtocolITerm2
	ProtocolSixel
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolHalfblocks: "halfblocks",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
}

func (p Protocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// ParseProtocol maps a config value to a protocol. "auto" and "" select
// by terminal detection.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Detect(), nil
	case "halfblocks", "half-blocks", "unicode":
		return ProtocolHalfblocks, nil
	case "kitty":
		return ProtocolKitty, nil
	case "iterm2":
		return ProtocolITerm2, nil
	case "sixel":
		return ProtocolSixel, nil
	case "none", "off":
		return ProtocolNone, nil
	default:
		return ProtocolNone, fmt.Errorf("imageload: unknown protocol %q", s)
	}
}

// Detect picks a protocol from the environment. Kitty-compatible and
// iTerm2 terminals get their native protocol; everything else, and any
// SSH session, gets halfblocks.
func Detect() Protocol {
	if isSSH() {
		return ProtocolHalfblocks
	}
	switch strings.ToLower(os.Getenv("TERM_PROGRAM")) {
	case "ghostty", "kitty", "wezterm":
		return ProtocolKitty
	case "iterm.app":
		return ProtocolITerm2
	}
	switch os.Getenv("TERM") {
	case "xterm-kitty", "xterm-ghostty":
		return ProtocolKitty
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return ProtocolKitty
	}
	if os.Getenv("ITERM_SESSION_ID") != "" || os.Getenv("LC_TERMINAL") == "iTerm2" {
		return ProtocolITerm2
	}
	return ProtocolHalfblocks
}

func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
