// Package textutil renders terminal output for tooling: centered header
// rules, tagged status messages, and a progress bar.
package textutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const defaultWidth = 80

// TerminalWidth returns the width of the terminal attached to stdout,
// or 80 when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// CenterHeader returns the title centered in a rule of the given
// character, sized to the terminal width:
//
//	--------------------- building assets ---------------------
func CenterHeader(title string, header rune) string {
	return centerHeader(title, header, TerminalWidth())
}

func centerHeader(title string, header rune, width int) string {
	msg := " " + strings.TrimSpace(title) + " "
	if len(msg) >= width {
		return msg
	}
	left := (width - len(msg)) / 2
	right := width - len(msg) - left
	return strings.Repeat(string(header), left) + msg + strings.Repeat(string(header), right)
}

// PrintCenterHeader prints a centered header rule to stdout.
func PrintCenterHeader(title string, header rune) {
	fmt.Println(CenterHeader(title, header))
}

// Message formats a tagged status line: "[HEADER][TAG] - msg". The tag
// is optional and upper-cased; brackets are added when missing.
func Message(header, tag, msg string) string {
	formatted := ""
	if tag != "" {
		formatted = strings.ToUpper(tag)
		if !strings.HasPrefix(formatted, "[") {
			formatted = "[" + formatted + "]"
		}
	}
	return fmt.Sprintf("[%s]%s - %s", header, formatted, msg)
}

var errorHeader = color.New(color.FgRed, color.Bold)

// PrintError prints a "[ERROR][TAG] - msg" line to stderr, with the
// header in red when stderr is a color-capable terminal.
func PrintError(msg, tag string) {
	FprintError(color.Error, msg, tag)
}

// FprintError is PrintError writing to w.
func FprintError(w io.Writer, msg, tag string) {
	line := Message("ERROR", tag, msg)
	// Re-render only the [ERROR] header with color.
	rest := strings.TrimPrefix(line, "[ERROR]")
	fmt.Fprintln(w, errorHeader.Sprint("[ERROR]")+rest)
}
