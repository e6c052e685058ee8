package model

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws an engine's grid as text, one line per row
type TerminalRenderer struct{}

// Display writes the grid to w
func (r *TerminalRenderer) Display(w io.Writer, e *Engine) error {
	bw := bufio.NewWriter(w)
	currentRow := -1
	for cell := range e.Cells() {
		if cell.Row != currentRow {
			if currentRow >= 0 {
				bw.WriteByte('\n')
			}
			currentRow = cell.Row
		}
		if cell.Alive {
			bw.WriteString(gridPosBlock)
		} else {
			bw.WriteString(gridPosEmpty)
		}
	}
	if currentRow >= 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		slog.Warn("clearing terminal", "error", err)
	}
}
