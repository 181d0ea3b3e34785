package render

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Writer prints display lines to an output stream. A downstream
// consumer closing the stream early (report piped into head, for
// example) is normal termination, not a failure; any other write error
// is reported.
type Writer struct {
	out io.Writer
}

// NewWriter wraps out, normally os.Stdout.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Print writes the lines one per row. It stops silently on a closed
// pipe and returns nil; other write errors abort with the error.
func (w *Writer) Print(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w.out, line); err != nil {
			if isClosedPipe(err) {
				return nil
			}
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// Printf formats and writes a single line, with the same closed-pipe
// handling as Print.
func (w *Writer) Printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.out, format+"\n", args...); err != nil {
		if isClosedPipe(err) {
			return nil
		}
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func isClosedPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
