// This file is part of Zube.
//
// Zube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zube.  If not, see <https://www.gnu.org/licenses/>.


package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/zube/bench"
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/logger"
)

// Sentinal error patterns.
const (
	FileError      = "script: %v"
	UnknownCommand = "script: %s: %d: unrecognised command (%s)"
	ArgumentError  = "script: %s: %d: %s: %v"
	ExpectFailed   = "script: %s: %d: %s: expected %#x got %#x"
	CommandError   = "script: %s: %d: %s: %w"
)

type loop struct {
	line int

	// loop counters count upwards because it is more natural when
	// referencing the counter value
	count    int
	countEnd int

	countName string
}

// Script is a list of commands that drive a bench.
type Script struct {
	name  string
	lines []string

	bench  *bench.Bench
	output io.Writer

	// index of the next line to execute
	ln int

	loops     []loop
	variables map[string]int
}

// NewScript creates a new script from the contents of the reader. Output from
// reads and the log command is written to output, which can be nil.
func NewScript(name string, r io.Reader, bn *bench.Bench, output io.Writer) (*Script, error) {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		name:      name,
		bench:     bn,
		output:    output,
		variables: make(map[string]int),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		scr.lines = append(scr.lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	return scr, nil
}

// LoadScript creates a new script from the named file.
func LoadScript(filename string, bn *bench.Bench, output io.Writer) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()
	return NewScript(filename, f, bn, output)
}

// Name of the script.
func (scr *Script) Name() string {
	return scr.name
}

// Line returns the line number (counting from one) of the next line to be
// executed.
func (scr *Script) Line() int {
	return scr.ln + 1
}

// Done returns true if there are no more lines to execute.
func (scr *Script) Done() bool {
	return scr.ln >= len(scr.lines)
}

// Rewind the script to the first line. The bench is not changed.
func (scr *Script) Rewind() {
	scr.ln = 0
	scr.loops = scr.loops[:0]
	scr.variables = make(map[string]int)
}

// Position records how far through the script execution has reached,
// including the state of any loops.
type Position struct {
	ln        int
	loops     []loop
	variables map[string]int
}

// Position returns the current position of the script.
func (scr *Script) Position() Position {
	pos := Position{
		ln:        scr.ln,
		loops:     make([]loop, len(scr.loops)),
		variables: make(map[string]int, len(scr.variables)),
	}
	copy(pos.loops, scr.loops)
	for k, v := range scr.variables {
		pos.variables[k] = v
	}
	return pos
}

// Seek returns the script to a previously recorded position. The bench is
// not changed.
func (scr *Script) Seek(pos Position) {
	scr.ln = pos.ln
	scr.loops = append(scr.loops[:0], pos.loops...)
	scr.variables = make(map[string]int, len(pos.variables))
	for k, v := range pos.variables {
		scr.variables[k] = v
	}
}

// Run the script to completion.
func (scr *Script) Run() error {
	for !scr.Done() {
		if err := scr.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes lines until one command has been executed. Blank lines and
// comments are skipped.
func (scr *Script) Step() error {
	for !scr.Done() {
		ln := scr.ln
		toks := strings.Fields(scr.lines[ln])
		scr.ln++

		if len(toks) == 0 || strings.HasPrefix(toks[0], "#") {
			continue // for loop
		}

		if err := scr.execute(ln+1, toks); err != nil {
			logger.Logf(scr.bench.Bridge.Env, "script", "%v", err)
			return err
		}
		return nil
	}
	return nil
}

// value converts a token to a number. Loop variables are referenced with the
// % prefix.
func (scr *Script) value(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "%") {
		v, ok := scr.variables[s[1:]]
		if !ok {
			return 0, fmt.Errorf("variable %s does not exist", s[1:])
		}
		if uint64(v) >= 1<<bits {
			return 0, fmt.Errorf("variable %s out of range (%d)", s[1:], v)
		}
		return uint64(v), nil
	}

	if strings.HasPrefix(s, "$") {
		s = fmt.Sprintf("0x%s", s[1:])
	}
	return strconv.ParseUint(s, 0, bits)
}

// expectation parses an optional "expect V" clause.
func (scr *Script) expectation(toks []string, bits int) (uint64, bool, error) {
	switch len(toks) {
	case 0:
		return 0, false, nil
	case 2:
		if toks[0] != "expect" {
			return 0, false, fmt.Errorf("unrecognised clause (%s)", toks[0])
		}
		v, err := scr.value(toks[1], bits)
		return v, true, err
	}
	return 0, false, fmt.Errorf("malformed expect clause")
}

func (scr *Script) execute(ln int, toks []string) error {
	cmd := toks[0]
	args := toks[1:]

	argErr := func(err error) error {
		return curated.Errorf(ArgumentError, scr.name, ln, cmd, err)
	}
	cmdErr := func(err error) error {
		return curated.Errorf(CommandError, scr.name, ln, cmd, err)
	}

	switch cmd {
	default:
		return curated.Errorf(UnknownCommand, scr.name, ln, cmd)

	case "reset":
		if len(args) != 0 {
			return argErr(fmt.Errorf("too many arguments"))
		}
		if err := scr.bench.Reset(); err != nil {
			return cmdErr(err)
		}

	case "clock":
		if len(args) != 1 {
			return argErr(fmt.Errorf("clock count required"))
		}
		n, err := scr.value(args[0], 32)
		if err != nil {
			return argErr(err)
		}
		if err := scr.bench.Clock(int(n)); err != nil {
			return cmdErr(err)
		}

	case "log":
		logger.Write(scr.output)

	case "do":
		if len(args) < 1 || len(args) > 2 {
			return argErr(fmt.Errorf("wrong number of arguments"))
		}
		ct, err := strconv.Atoi(args[0])
		if err != nil {
			return argErr(err)
		}
		lp := loop{
			line:     ln - 1,
			countEnd: ct,
		}
		if len(args) == 2 {
			lp.countName = args[1]
			scr.variables[lp.countName] = lp.count
		}
		scr.loops = append(scr.loops, lp)

	case "loop":
		if len(args) > 0 {
			return argErr(fmt.Errorf("too many arguments"))
		}
		idx := len(scr.loops) - 1
		if idx == -1 {
			return argErr(fmt.Errorf("loop without a do"))
		}

		lp := &scr.loops[idx]
		lp.count++

		if lp.count < lp.countEnd {
			// return to the line after the do
			scr.ln = lp.line + 1
			if lp.countName != "" {
				scr.variables[lp.countName] = lp.count
			}
		} else {
			scr.loops = scr.loops[:idx]
			delete(scr.variables, lp.countName)
		}

	case "host":
		return scr.host(ln, args, argErr, cmdErr)

	case "fabric":
		return scr.fabric(ln, args, argErr, cmdErr)

	case "fifo":
		return scr.fifo(ln, args, argErr, cmdErr)
	}

	return nil
}

func (scr *Script) host(ln int, args []string, argErr, cmdErr func(error) error) error {
	if len(args) < 2 {
		return argErr(fmt.Errorf("direction and address required"))
	}

	addr, err := scr.value(args[1], 16)
	if err != nil {
		return argErr(err)
	}

	switch args[0] {
	case "write":
		if len(args) != 3 {
			return argErr(fmt.Errorf("value required"))
		}
		v, err := scr.value(args[2], 8)
		if err != nil {
			return argErr(err)
		}
		if err := scr.bench.HostWrite(uint16(addr), uint8(v)); err != nil {
			return cmdErr(err)
		}

	case "read":
		exp, ok, err := scr.expectation(args[2:], 8)
		if err != nil {
			return argErr(err)
		}
		v, err := scr.bench.HostRead(uint16(addr))
		if err != nil {
			return cmdErr(err)
		}
		fmt.Fprintf(scr.output, "host read %#04x = %#02x\n", addr, v)
		if ok && uint64(v) != exp {
			return curated.Errorf(ExpectFailed, scr.name, ln, "host read", exp, v)
		}

	default:
		return argErr(fmt.Errorf("unrecognised direction (%s)", args[0]))
	}

	return nil
}

func (scr *Script) fabric(ln int, args []string, argErr, cmdErr func(error) error) error {
	if len(args) < 2 {
		return argErr(fmt.Errorf("direction and address required"))
	}

	addr, err := scr.value(args[1], 32)
	if err != nil {
		return argErr(err)
	}

	switch args[0] {
	case "write":
		if len(args) != 3 {
			return argErr(fmt.Errorf("value required"))
		}
		v, err := scr.value(args[2], 32)
		if err != nil {
			return argErr(err)
		}
		if err := scr.bench.FabricWrite(uint32(addr), uint32(v)); err != nil {
			return cmdErr(err)
		}

	case "read":
		exp, ok, err := scr.expectation(args[2:], 32)
		if err != nil {
			return argErr(err)
		}
		v, err := scr.bench.FabricRead(uint32(addr))
		if err != nil {
			return cmdErr(err)
		}
		fmt.Fprintf(scr.output, "fabric read %#08x = %#02x\n", addr, v)
		if ok && uint64(v) != exp {
			return curated.Errorf(ExpectFailed, scr.name, ln, "fabric read", exp, v)
		}

	default:
		return argErr(fmt.Errorf("unrecognised direction (%s)", args[0]))
	}

	return nil
}

func (scr *Script) fifo(ln int, args []string, argErr, cmdErr func(error) error) error {
	if len(args) < 1 {
		return argErr(fmt.Errorf("push or pop required"))
	}

	switch args[0] {
	case "push":
		if len(args) != 2 {
			return argErr(fmt.Errorf("value required"))
		}
		v, err := scr.value(args[1], 8)
		if err != nil {
			return argErr(err)
		}
		if err := scr.bench.FifoPush(uint8(v)); err != nil {
			return cmdErr(err)
		}

	case "pop":
		exp, ok, err := scr.expectation(args[1:], 8)
		if err != nil {
			return argErr(err)
		}
		v, err := scr.bench.FifoPop()
		if err != nil {
			return cmdErr(err)
		}
		fmt.Fprintf(scr.output, "fifo pop = %#02x\n", v)
		if ok && uint64(v) != exp {
			return curated.Errorf(ExpectFailed, scr.name, ln, "fifo pop", exp, v)
		}

	default:
		return argErr(fmt.Errorf("unrecognised fifo operation (%s)", args[0]))
	}

	return nil
}
