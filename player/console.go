package player

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// Console is one terminal. Every human reading from the same stream must
// share its Console, since the scanner buffers input ahead of the line it
// returns.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer // Prompts and board feedback
	errOut  io.Writer // Rejected input
}

func NewConsole(in io.Reader, out, errOut io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		errOut:  errOut,
	}
}

var (
	stdConsole     *Console
	stdConsoleOnce sync.Once
)

// Stdio returns the process-wide Console over stdin, stdout and stderr.
func Stdio() *Console {
	stdConsoleOnce.Do(func() {
		stdConsole = NewConsole(os.Stdin, os.Stdout, os.Stderr)
	})
	return stdConsole
}
