// This file is part of Gotron.
//
// Gotron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotron.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

// Package colorterm implements the Terminal interface for the debugger. It
// supports color output, history and tab completion.
package colorterm

import (
	"bufio"
	"os"

	"github.com/fatih/color"
	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         chan readRune
	commandHistory []string
	tabCompletion  terminal.TabCompletion

	styles map[terminal.Style]*color.Color
}

type readRune struct {
	r   rune
	err error
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{
		styles: map[terminal.Style]*color.Color{
			terminal.StyleHelp:              color.New(color.FgWhite, color.Faint),
			terminal.StyleFeedback:          color.New(color.FgWhite),
			terminal.StyleFeedbackSecondary: color.New(color.FgWhite, color.Faint),
			terminal.StyleCPUStep:           color.New(color.FgYellow),
			terminal.StyleInstrument:        color.New(color.FgCyan),
			terminal.StyleLog:               color.New(color.FgMagenta),
			terminal.StyleError:             color.New(color.FgRed),
		},
	}
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0)

	// runes are read in a separate goroutine so that TermRead() can also
	// service the ReadEvents channels
	ct.reader = make(chan readRune)
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			c, _, err := r.ReadRune()
			ct.reader <- readRune{r: c, err: err}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

