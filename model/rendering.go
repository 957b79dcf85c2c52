package model

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	cellAlive = "●"
	cellDead  = " "

	ansiClearScreen = "\033[2J\033[H"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// Display renders a box-bordered frame of the board to the terminal
func (r *TerminalRenderer) Display(b *Board) {
	var sb strings.Builder

	sb.WriteString("┌" + strings.Repeat("─", b.cols) + "┐\n")
	for row := 0; row < b.rows; row++ {
		sb.WriteString("│")
		for col := 0; col < b.cols; col++ {
			if b.Get(row, col) {
				sb.WriteString(cellAlive)
			} else {
				sb.WriteString(cellDead)
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", b.cols) + "┘\n")

	fmt.Fprint(r.out(), sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out(), ansiClearScreen)
}
