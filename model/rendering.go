package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws a board as text, one row per y
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the board
func (r *TerminalRenderer) Display(v View) error {
	w := bufio.NewWriter(r.Out)
	for y := range v.Height() {
		for x := range v.Width() {
			c, err := v.Get(x, y)
			if err != nil {
				return errors.Wrap(err, "[Display] failed to read cell")
			}
			if c == Alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to flush")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
