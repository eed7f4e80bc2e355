package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type tone int

const (
	toneOK tone = iota
	toneWarn
	toneError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	labelWidth = 18
	indent     = "  "
)

var toneStyles = map[tone]struct{ label, color string }{
	toneOK:    {"OK", ansiGreen},
	toneWarn:  {"WARN", ansiYellow},
	toneError: {"ERROR", ansiRed},
}

// painter renders report lines, adding ANSI color only for terminals.
type painter struct {
	color bool
}

func newPainter(w io.Writer) painter {
	return painter{color: shouldColorize(w)}
}

func (p painter) paint(color, s string) string {
	if !p.color || color == "" {
		return s
	}
	return color + s + ansiReset
}

// status renders "  <label>: [TONE] message".
func (p painter) status(label string, t tone, message string) string {
	style := toneStyles[t]
	text := "[" + style.label + "]"
	if message != "" {
		text += " " + message
	}
	return p.paint(style.color, keyValue(label, text))
}

// header renders a section title and a rule of the same width.
func (p painter) header(title string) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len([]rune(line)))
	return []string{p.paint(ansiBlue, line), p.paint(ansiBlue, rule)}
}

func keyValue(label, value string) string {
	return fmt.Sprintf("%s%-*s %s", indent, labelWidth, label+":", value)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
