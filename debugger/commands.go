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

package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/debugger/govern"
	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/debugger/terminal/commandline"
	"github.com/jetsetilly/gotron/disassembly"
	"github.com/jetsetilly/gotron/hardware/input"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/logger"
	"github.com/jetsetilly/gotron/paths"
	"github.com/jetsetilly/gotron/prefs"
)

// debugger keywords.
const (
	cmdStep     = "STEP"
	cmdBack     = "BACK"
	cmdForward  = "FORWARD"
	cmdRun      = "RUN"
	cmdFrame    = "FRAME"
	cmdBreak    = "BREAK"
	cmdWatch    = "WATCH"
	cmdWatchLog = "WATCHLOG"
	cmdList     = "LIST"
	cmdDrop     = "DROP"
	cmdClear    = "CLEAR"
	cmdCPU      = "CPU"
	cmdRAM      = "RAM"
	cmdPoke     = "POKE"
	cmdDisasm   = "DISASM"
	cmdSymbol   = "SYMBOL"
	cmdTV       = "TV"
	cmdInput    = "INPUT"
	cmdReset    = "RESET"
	cmdHalt     = "HALT"
	cmdPrefs    = "PREFS"
	cmdLog      = "LOG"
	cmdMemviz   = "MEMVIZ"
	cmdHelp     = "HELP"
	cmdQuit     = "QUIT"
)

// usage and description of every command.
var commandHelp = map[string][2]string{
	cmdStep:     {"STEP [n]", "Step forward one or more cycles. Pressing return with no input is the same as STEP"},
	cmdBack:     {"BACK [n]", "Step backwards one or more cycles. The television is not rewound"},
	cmdForward:  {"FORWARD [n]", "Replay cycles undone by BACK"},
	cmdRun:      {"RUN", "Run the emulation until a halt condition is met or until interrupted with Ctrl-C"},
	cmdFrame:    {"FRAME", "Run the emulation until the next vertical sync"},
	cmdBreak:    {"BREAK <address|label>", "Halt the emulation when the instruction at the address is about to be executed"},
	cmdWatch:    {"WATCH [READ|WRITE] <address>", "Halt the emulation when the RAM address is accessed"},
	cmdWatchLog: {"WATCHLOG [CLEAR]", "List the most recent watch hits"},
	cmdList:     {"LIST [BREAKS|WATCHES]", "List current breakpoints and watches"},
	cmdDrop:     {"DROP <BREAK|WATCH> <n>", "Drop a breakpoint or watch, using the number reported by LIST"},
	cmdClear:    {"CLEAR [BREAKS|WATCHES]", "Clear all breakpoints and watches"},
	cmdCPU:      {"CPU", "Display the current state of the CPU"},
	cmdRAM:      {"RAM <address> [length]", "Display the contents of RAM"},
	cmdPoke:     {"POKE <address> <value>", "Change the value of a RAM address. Clears the rewind history"},
	cmdDisasm:   {"DISASM [address] [count]", "Disassemble ROM. Defaults to the next instruction"},
	cmdSymbol:   {"SYMBOL <label>", "Search for the address of the label"},
	cmdTV:       {"TV", "Display the current state of the television"},
	cmdInput:    {"INPUT [value|button...]", "Set the value of the input port. Buttons are RIGHT LEFT DOWN UP START SELECT B A"},
	cmdReset:    {"RESET [SOFT|HARD]", "Reset the emulation. A hard reset is the same as a power cycle"},
	cmdHalt:     {"HALT [HSYNC|FRAMETIMEOUT] [ON|OFF]", "Halt the emulation on horizontal timing errors or frame timeouts"},
	cmdPrefs:    {"PREFS [SAVE|LOAD|key] [value]", "List or change preference values. SAVE and LOAD use the preferences file"},
	cmdLog:      {"LOG [n|CLEAR]", "Display the most recent log entries"},
	cmdMemviz:   {"MEMVIZ [file]", "Write a dot graph of the current emulation state. A unique filename is chosen if one is not given"},
	cmdHelp:     {"HELP [command]", "Lists commands and provides help for individual debugger commands"},
	cmdQuit:     {"QUIT", "Exits the emulator"},
}

// options for the tab completion engine.
var commandOptions = map[string][]string{}

func init() {
	buttons := []string{"RIGHT", "LEFT", "DOWN", "UP", "START", "SELECT", "B", "A"}
	keywords := make([]string, 0, len(commandHelp))
	for k := range commandHelp {
		keywords = append(keywords, k)
		commandOptions[k] = nil
	}
	sort.Strings(keywords)

	commandOptions[cmdWatch] = []string{"READ", "WRITE"}
	commandOptions[cmdWatchLog] = []string{"CLEAR"}
	commandOptions[cmdList] = []string{"BREAKS", "WATCHES"}
	commandOptions[cmdDrop] = []string{"BREAK", "WATCH"}
	commandOptions[cmdClear] = []string{"BREAKS", "WATCHES"}
	commandOptions[cmdInput] = buttons
	commandOptions[cmdReset] = []string{"SOFT", "HARD"}
	commandOptions[cmdHalt] = []string{"HSYNC", "FRAMETIMEOUT"}
	commandOptions[cmdPrefs] = []string{"SAVE", "LOAD"}
	commandOptions[cmdLog] = []string{"CLEAR"}
	commandOptions[cmdHelp] = keywords
}

func parseNumber(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, curated.Errorf("not a valid %d bit number (%s)", bits, s)
	}
	return v, nil
}

// parseAddress accepts a number or a label.
func (dbg *Debugger) parseAddress(s string) (uint16, error) {
	if a, ok := dbg.dsm.Sym.SearchLabel(s); ok {
		return a, nil
	}
	v, err := parseNumber(s, 16)
	return uint16(v), err
}

// optionalCount returns the next token as a positive number. Returns def if
// there is no token.
func optionalCount(tokens *commandline.Tokens, def int) (int, error) {
	s, ok := tokens.Get()
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, curated.Errorf("count must be a positive number (%s)", s)
	}
	return v, nil
}

// parseCommand scans user input for valid commands and acts upon it.
func (dbg *Debugger) parseCommand(userInput string) error {
	tokens := commandline.TokeniseInput(userInput)

	command, ok := tokens.Get()
	if !ok {
		command = cmdStep
	}
	command = strings.ToUpper(command)

	if _, ok := commandHelp[command]; !ok {
		return curated.Errorf(UnknownCommand, command)
	}

	if err := dbg.processTokens(command, tokens); err != nil {
		return curated.Errorf("%s: %v", command, err)
	}

	return nil
}

func (dbg *Debugger) processTokens(command string, tokens *commandline.Tokens) error {
	switch command {
	case cmdQuit:
		dbg.setState(govern.Ending)

	case cmdHelp:
		keyword, ok := tokens.Get()
		if !ok {
			keywords := make([]string, 0, len(commandHelp))
			for k := range commandHelp {
				keywords = append(keywords, k)
			}
			sort.Strings(keywords)
			dbg.printLine(terminal.StyleHelp, strings.Join(keywords, " "))
			return nil
		}
		h, ok := commandHelp[strings.ToUpper(keyword)]
		if !ok {
			return curated.Errorf("no help for %s", strings.ToUpper(keyword))
		}
		dbg.printLine(terminal.StyleHelp, h[0])
		dbg.printLine(terminal.StyleHelp, h[1])

	case cmdStep:
		n, err := optionalCount(tokens, 1)
		if err != nil {
			return err
		}
		_, err = dbg.runUntil(govern.Stepping, func(c int, _ television.Result) bool {
			return c >= n
		})
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, dbg.dsm.GetEntryByAddress(dbg.lastPC).String())

	case cmdBack:
		n, err := optionalCount(tokens, 1)
		if err != nil {
			return err
		}
		dbg.setState(govern.Rewinding)
		c := 0
		for c < n && dbg.Rewind.Back() {
			c++
		}
		dbg.setState(govern.Paused)
		if c == 0 {
			return curated.Errorf("no history")
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("rewound %d cycles", c))

	case cmdForward:
		n, err := optionalCount(tokens, 1)
		if err != nil {
			return err
		}
		dbg.setState(govern.Rewinding)
		c := 0
		for c < n && dbg.Rewind.Forward() {
			c++
		}
		dbg.setState(govern.Paused)
		if c == 0 {
			return curated.Errorf("nothing to replay")
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("replayed %d cycles", c))

	case cmdRun:
		_, err := dbg.runUntil(govern.Running, nil)
		return err

	case cmdFrame:
		_, err := dbg.runUntil(govern.Running, func(_ int, res television.Result) bool {
			return res.NewFrame
		})
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, dbg.gig.TV.GetCoords().String())

	case cmdBreak:
		s, ok := tokens.Get()
		if !ok {
			return curated.Errorf("address required")
		}
		a, err := dbg.parseAddress(s)
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.add(a); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint at %s", dbg.formatAddress(a)))

	case cmdWatch:
		ev := watchEventAny
		s, ok := tokens.Get()
		switch strings.ToUpper(s) {
		case "READ":
			ev = watchEventRead
			s, ok = tokens.Get()
		case "WRITE":
			ev = watchEventWrite
			s, ok = tokens.Get()
		}
		if !ok {
			return curated.Errorf("address required")
		}
		a, err := dbg.parseAddress(s)
		if err != nil {
			return err
		}
		return dbg.watches.add(a, ev)

	case cmdWatchLog:
		if s, ok := tokens.Get(); ok {
			if strings.ToUpper(s) != "CLEAR" {
				return curated.Errorf("unknown option (%s)", s)
			}
			dbg.watchLog.clear()
			return nil
		}
		hits := dbg.watchLog.entries()
		if len(hits) == 0 {
			dbg.printLine(terminal.StyleFeedback, "watch log is empty")
		}
		for _, h := range hits {
			dbg.printLine(terminal.StyleFeedback, h.String())
		}

	case cmdList:
		s, _ := tokens.Get()
		switch strings.ToUpper(s) {
		case "BREAKS":
			dbg.breakpoints.list()
		case "WATCHES":
			dbg.watches.list()
		case "":
			dbg.breakpoints.list()
			dbg.watches.list()
		default:
			return curated.Errorf("unknown option (%s)", s)
		}

	case cmdDrop:
		s, _ := tokens.Get()
		n, ok := tokens.Get()
		if !ok {
			return curated.Errorf("number required")
		}
		num, err := strconv.Atoi(n)
		if err != nil {
			return curated.Errorf("not a number (%s)", n)
		}
		switch strings.ToUpper(s) {
		case "BREAK":
			if err := dbg.breakpoints.drop(num); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint #%d dropped", num))
		case "WATCH":
			if err := dbg.watches.drop(num); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("watch #%d dropped", num))
		default:
			return curated.Errorf("unknown option (%s)", s)
		}

	case cmdClear:
		s, _ := tokens.Get()
		switch strings.ToUpper(s) {
		case "BREAKS":
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		case "WATCHES":
			dbg.watches.clear()
			dbg.printLine(terminal.StyleFeedback, "watches cleared")
		case "":
			dbg.breakpoints.clear()
			dbg.watches.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints and watches cleared")
		default:
			return curated.Errorf("unknown option (%s)", s)
		}

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, dbg.gig.CPU.String())

	case cmdRAM:
		s, ok := tokens.Get()
		if !ok {
			return curated.Errorf("address required")
		}
		a, err := parseNumber(s, 16)
		if err != nil {
			return err
		}
		l, err := optionalCount(tokens, 16)
		if err != nil {
			return err
		}
		dbg.dumpRAM(uint16(a), l)

	case cmdPoke:
		s, ok := tokens.Get()
		if !ok {
			return curated.Errorf("address required")
		}
		a, err := parseNumber(s, 16)
		if err != nil {
			return err
		}
		s, ok = tokens.Get()
		if !ok {
			return curated.Errorf("value required")
		}
		v, err := parseNumber(s, 8)
		if err != nil {
			return err
		}
		dbg.gig.Mem.Poke(uint16(a), uint8(v))
		dbg.Rewind.Reset()
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%04x <- %02x", uint16(a)&memory.RAMMask, uint8(v)))

	case cmdDisasm:
		a := dbg.gig.CPU.QueuedPC
		if s, ok := tokens.Get(); ok {
			v, err := dbg.parseAddress(s)
			if err != nil {
				return err
			}
			a = v
		}
		n, err := optionalCount(tokens, 10)
		if err != nil {
			return err
		}
		dbg.dsm.WriteRange(termWriter{dbg: dbg, sty: terminal.StyleFeedback}, disassembly.WriteAttr{Context: true}, a, n)

	case cmdSymbol:
		s, ok := tokens.Get()
		if !ok {
			return curated.Errorf("label required")
		}
		a, ok := dbg.dsm.Sym.SearchLabel(s)
		if !ok {
			return curated.Errorf("no such label (%s)", s)
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%s -> $%04x", s, a))

	case cmdTV:
		dbg.printLine(terminal.StyleInstrument, dbg.gig.TV.GetCoords().String())
		spec := dbg.gig.TV.GetSpec()
		dbg.printLine(terminal.StyleFeedbackSecondary, fmt.Sprintf("%s  horiz=%s  vert=%s", spec.ID, spec.Horiz, spec.Vert))

	case cmdInput:
		if tokens.Remaining() == 0 {
			dbg.printLine(terminal.StyleInstrument, fmt.Sprintf("%02x (%s)", dbg.gig.Input.Value(), dbg.gig.Input))
			return nil
		}
		s, _ := tokens.Peek()
		if v, err := strconv.ParseUint(s, 0, 8); err == nil {
			dbg.gig.Input.Set(uint8(v))
		} else {
			dbg.gig.Input.Reset()
			for tokens.Remaining() > 0 {
				s, _ = tokens.Get()
				b, err := input.ParseButton(s)
				if err != nil {
					return err
				}
				dbg.gig.Input.Press(b)
			}
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%02x (%s)", dbg.gig.Input.Value(), dbg.gig.Input))

	case cmdReset:
		s, _ := tokens.Get()
		switch strings.ToUpper(s) {
		case "SOFT":
			dbg.gig.SoftReset()
		case "HARD", "":
			dbg.gig.HardReset()
		default:
			return curated.Errorf("unknown option (%s)", s)
		}
		dbg.Rewind.Reset()
		dbg.watchLog.clear()
		dbg.printLine(terminal.StyleFeedback, "emulation reset")

	case cmdHalt:
		opt, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("HSYNC: %s  FRAMETIMEOUT: %s", dbg.Prefs.HaltHSync, dbg.Prefs.HaltFrameTimeout))
			return nil
		}
		var p *prefs.Bool
		switch strings.ToUpper(opt) {
		case "HSYNC":
			p = dbg.Prefs.HaltHSync
		case "FRAMETIMEOUT":
			p = dbg.Prefs.HaltFrameTimeout
		default:
			return curated.Errorf("unknown option (%s)", opt)
		}
		if v, ok := tokens.Get(); ok {
			if err := p.Set(strings.ToLower(v)); err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%s: %s", strings.ToUpper(opt), p))

	case cmdPrefs:
		key, ok := tokens.Get()
		if !ok {
			termWriter{dbg: dbg, sty: terminal.StyleFeedback}.Write([]byte(dbg.registry.String()))
			return nil
		}
		switch strings.ToUpper(key) {
		case "SAVE":
			return dbg.SavePreferences()
		case "LOAD":
			return dbg.LoadPreferences()
		}
		key = strings.ToLower(key)
		if v, ok := tokens.Get(); ok {
			if err := dbg.registry.Set(key, v); err != nil {
				return err
			}
		}
		v, err := dbg.registry.Get(key)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%s :: %v", key, v))

	case cmdLog:
		w := termWriter{dbg: dbg, sty: terminal.StyleLog}
		s, ok := tokens.Get()
		if !ok {
			logger.Write(w)
			return nil
		}
		if strings.ToUpper(s) == "CLEAR" {
			logger.Clear()
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return curated.Errorf("count must be a positive number (%s)", s)
		}
		logger.Tail(w, n)

	case cmdMemviz:
		fn, ok := tokens.Get()
		if !ok {
			fn = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", dbg.romName))
		}
		return dbg.memviz(fn)
	}

	return nil
}

func (dbg *Debugger) dumpRAM(addr uint16, length int) {
	s := strings.Builder{}
	for i := 0; i < length; i++ {
		a := (addr + uint16(i)) & memory.RAMMask
		if i%16 == 0 {
			if s.Len() > 0 {
				dbg.printLine(terminal.StyleInstrument, s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", dbg.gig.Mem.Peek(a)))
	}
	if s.Len() > 0 {
		dbg.printLine(terminal.StyleInstrument, s.String())
	}

	if v, ok := dbg.dsm.Sym.Variable(addr); ok {
		dbg.printLine(terminal.StyleFeedbackSecondary, v.String())
	}
}
