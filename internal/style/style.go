// Package style renders terminal messages.
package style

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Style tags a message with its role in the output.
type Style int

const (
	Plain Style = iota
	Header
	Info
	Success
	Failure
	Warning
	Title
)

const bannerWidth = 60

func attributes(s Style) []color.Attribute {
	switch s {
	case Header:
		return []color.Attribute{color.FgMagenta, color.Bold}
	case Info:
		return []color.Attribute{color.FgBlue}
	case Success:
		return []color.Attribute{color.FgGreen}
	case Failure:
		return []color.Attribute{color.FgRed}
	case Warning:
		return []color.Attribute{color.FgYellow}
	case Title:
		return []color.Attribute{color.FgCyan, color.Bold}
	}
	return nil
}

// Format returns msg rendered in style s.
func Format(msg string, s Style) string {
	attrs := attributes(s)
	if len(attrs) == 0 {
		return msg
	}
	return color.New(attrs...).Sprint(msg)
}

// Bold returns msg rendered in style s with bold added.
func Bold(msg string, s Style) string {
	return color.New(append(attributes(s), color.Bold)...).Sprint(msg)
}

// Banner returns msg framed by two rules of '=' in the header style.
func Banner(msg string) string {
	rule := Format(strings.Repeat("=", bannerWidth), Header)
	return "\n" + rule + "\n" + Format(msg, Header) + "\n" + rule + "\n"
}

// Configure enables or disables color for the process. Color is off when
// noColor is set, when NO_COLOR is non-empty, or when stdout is not a terminal.
func Configure(noColor bool) {
	color.NoColor = noColor || !Supported(os.Stdout.Fd())
}

// Supported reports whether fd is a terminal that accepts color and
// NO_COLOR is unset.
func Supported(fd uintptr) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
