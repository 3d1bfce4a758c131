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

package colorterm

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gotron/logger"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if events == nil {
		events = &terminal.ReadEvents{}
	}

	if err := ct.CBreakMode(); err != nil {
		return "", err
	}
	defer func() {
		_ = ct.CanonicalMode()
	}()

	p := prompt.String()
	input := make([]rune, 0, 80)
	cursor := 0
	history := len(ct.commandHistory)

	redraw := func() {
		ct.EasyTerm.TermPrint(easyterm.CarriageHome)
		ct.EasyTerm.TermPrint(easyterm.ClearLine)
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(string(input))
		if n := len(input) - cursor; n > 0 {
			ct.EasyTerm.TermPrint(fmt.Sprintf(easyterm.CursorLeft, n))
		}
	}

	redraw()

	// escape sequences arrive one rune at a time
	var esc []rune

	for {
		select {
		case <-events.IntEvents:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case f := <-events.RawEvents:
			f()

		case rr := <-ct.reader:
			if rr.err != nil {
				if rr.err == io.EOF {
					return "", curated.Errorf(terminal.UserAbort)
				}
				return "", rr.err
			}

			if esc != nil {
				esc = append(esc, rr.r)
				if len(esc) < 2 {
					continue // for loop
				}
				if esc[0] == easyterm.EscCursor {
					switch esc[1] {
					case easyterm.CursorUp:
						if history > 0 {
							history--
							input = []rune(ct.commandHistory[history])
							cursor = len(input)
						}
					case easyterm.CursorDown:
						if history < len(ct.commandHistory)-1 {
							history++
							input = []rune(ct.commandHistory[history])
						} else {
							history = len(ct.commandHistory)
							input = input[:0]
						}
						cursor = len(input)
					case easyterm.CursorForward:
						if cursor < len(input) {
							cursor++
						}
					case easyterm.CursorBackward:
						if cursor > 0 {
							cursor--
						}
					}
				}
				esc = nil
				redraw()
				continue // for loop
			}

			switch rr.r {
			case easyterm.KeyEsc:
				esc = make([]rune, 0, 2)

			case easyterm.KeyInterrupt:
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserInterrupt)

			case easyterm.KeyEndOfFile:
				if len(input) == 0 {
					ct.EasyTerm.TermPrint("\n")
					return "", curated.Errorf(terminal.UserAbort)
				}

			case easyterm.KeySuspend:
				if err := easyterm.SuspendProcess(); err != nil {
					logger.Log(logger.Allow, "colorterm", err)
				}

			case easyterm.KeyTab:
				if ct.tabCompletion != nil {
					input = []rune(ct.tabCompletion.Complete(string(input)))
					cursor = len(input)
					redraw()
				}

			case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
				ct.EasyTerm.TermPrint("\n")
				s := string(input)
				if s != "" {
					ct.commandHistory = append(ct.commandHistory, s)
				}
				if ct.tabCompletion != nil {
					ct.tabCompletion.Reset()
				}
				return s, nil

			case easyterm.KeyBackspace, easyterm.KeyDelete:
				if cursor > 0 {
					input = append(input[:cursor-1], input[cursor:]...)
					cursor--
					redraw()
				}

			default:
				if rr.r >= ' ' {
					input = append(input[:cursor], append([]rune{rr.r}, input[cursor:]...)...)
					cursor++
					redraw()
				}
			}
		}
	}
}
