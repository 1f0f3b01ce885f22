package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiBold  = "\033[1m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// console writes the user-facing report. Styling is applied only when the
// destination is a terminal.
type console struct {
	w        io.Writer
	colorize bool
}

func newConsole(w io.Writer) *console {
	return &console{w: w, colorize: shouldColorize(w)}
}

func (c *console) line(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *console) blank() {
	fmt.Fprintln(c.w)
}

func (c *console) heading(format string, args ...any) {
	c.styled(ansiBold, format, args...)
}

func (c *console) success(format string, args ...any) {
	c.styled(ansiGreen, "✓ "+format, args...)
}

func (c *console) styled(code, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if c.colorize {
		text = code + text + ansiReset
	}
	fmt.Fprintln(c.w, text)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
