package scale

import (
	"fmt"

	"golang.org/x/term"
)

// TerminalMetrics reads the size of the terminal attached to fd and reports
// it in cells (columns by rows).
func TerminalMetrics(fd int) (Metrics, error) {
	if !term.IsTerminal(fd) {
		return Metrics{}, fmt.Errorf("fd %d is not a terminal", fd)
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return Metrics{}, fmt.Errorf("get terminal size: %w", err)
	}

	return Metrics{Width: float64(cols), Height: float64(rows)}, nil
}
