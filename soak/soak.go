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


package soak

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/zube/bench"
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/digest"
	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/fabric"
	"github.com/jetsetilly/zube/logger"
)

// Sentinal error patterns.
const (
	Mismatch = "soak: transaction %d: %s: expected %#02x got %#02x"
	Failed   = "soak: transaction %d: %w"
)

// Report is the result of a soak run.
type Report struct {
	Seed         int64
	Transactions int
	Cycles       uint64

	HostWrites   int
	HostReads    int
	FabricWrites int
	FabricReads  int
	FlagReads    int
	Collisions   int
	FifoPushes   int
	FifoPops     int

	// number of clocks the bridge was driving the host bus
	Driven int

	// hash of the bridge activity. runs with the same seed and preferences
	// have the same digest
	Digest string
}

func (r Report) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("seed: %d\n", r.Seed))
	s.WriteString(fmt.Sprintf("transactions: %d (%d clocks)\n", r.Transactions, r.Cycles))
	s.WriteString(fmt.Sprintf("host: %d writes, %d reads\n", r.HostWrites, r.HostReads))
	s.WriteString(fmt.Sprintf("fabric: %d writes, %d reads\n", r.FabricWrites, r.FabricReads))
	s.WriteString(fmt.Sprintf("flag reads: %d\n", r.FlagReads))
	s.WriteString(fmt.Sprintf("simultaneous writes: %d\n", r.Collisions))
	s.WriteString(fmt.Sprintf("fifo: %d pushes, %d pops\n", r.FifoPushes, r.FifoPops))
	s.WriteString(fmt.Sprintf("host bus driven for %d clocks\n", r.Driven))
	s.WriteString(fmt.Sprintf("digest: %s", r.Digest))
	return s.String()
}

// the kinds of transaction in a soak run
const (
	opHostWrite = iota
	opHostWriteFlags
	opHostRead
	opHostReadFlags
	opFabricWrite
	opFabricWriteBase
	opFabricRead
	opFabricReadFlags
	opFabricReadBase
	opSimultaneous
	opFifoPush
	opFifoPop
	numOps
)

// ProgressInterval is the number of transactions between progress messages.
const ProgressInterval = 10000

// Run a soak of the specified number of transactions. Progress is written to
// output, which can be nil.
func Run(env *environment.Environment, transactions int, output io.Writer) (Report, error) {
	if output == nil {
		output = io.Discard
	}

	bn := bench.NewBench(env)
	probe := &bench.ContentionProbe{}
	bn.AddProbe(probe)
	dig := &digest.Trace{}
	bn.AddProbe(dig)

	cfg := bn.Bridge.Config
	sh := newShadow(cfg.Registers, cfg.FifoDepth)
	rnd := env.Random

	rep := Report{Seed: rnd.Seed()}

	if err := bn.Reset(); err != nil {
		return rep, curated.Errorf(Failed, 0, err)
	}

	hostAddr := func(r int) uint16 {
		return cfg.HostBase + uint16(r)
	}
	hostFlags := cfg.HostBase + uint16(cfg.Registers)
	fabricAddr := func(r int) uint32 {
		return cfg.FabricBase + fabric.OffsetData + uint32(r)*4
	}
	fabricFlags := cfg.FabricBase + fabric.OffsetData + uint32(cfg.Registers)*4

	for i := 0; i < transactions; i++ {
		r := rnd.Stream(cfg.Registers)
		v := uint8(rnd.Stream(256))

		check := func(what string, expected uint8, got uint8) error {
			if expected != got {
				return curated.Errorf(Mismatch, i, what, expected, got)
			}
			return nil
		}

		var err error

		switch rnd.Stream(numOps) {
		case opHostWrite:
			rep.HostWrites++
			err = bn.HostWrite(hostAddr(r), v)
			sh.hostWrite(r, v)

		case opHostWriteFlags:
			rep.HostWrites++
			err = bn.HostWrite(hostFlags, v)

		case opHostRead:
			rep.HostReads++
			var got uint8
			got, err = bn.HostRead(hostAddr(r))
			if err == nil {
				err = check(fmt.Sprintf("host read of register %d", r), sh.values[r], got)
			}

		case opHostReadFlags:
			rep.HostReads++
			rep.FlagReads++
			var got uint8
			got, err = bn.HostRead(hostFlags)
			if err == nil {
				err = check("host flags", sh.hostFlags(), got)
			}

		case opFabricWrite:
			rep.FabricWrites++
			err = bn.FabricWrite(fabricAddr(r), uint32(rnd.Stream(0x10000))<<8|uint32(v))
			sh.fabricWrite(r, v)

		case opFabricWriteBase:
			rep.FabricWrites++
			err = bn.FabricWrite(cfg.FabricBase, uint32(v))

		case opFabricRead:
			rep.FabricReads++
			var got uint32
			got, err = bn.FabricRead(fabricAddr(r))
			if err == nil {
				err = check(fmt.Sprintf("fabric read of register %d", r), sh.values[r], uint8(got))
			}

		case opFabricReadFlags:
			rep.FabricReads++
			rep.FlagReads++
			var got uint32
			got, err = bn.FabricRead(fabricFlags)
			if err == nil {
				err = check("fabric flags", sh.fabricFlags(), uint8(got))
			}

		case opFabricReadBase:
			rep.FabricReads++
			var got uint32
			got, err = bn.FabricRead(cfg.FabricBase)
			if err == nil && got != uint32(cfg.HostBase) {
				err = curated.Errorf(Mismatch, i, "base address", cfg.HostBase, got)
			}

		case opSimultaneous:
			rep.Collisions++
			fr := rnd.Stream(cfg.Registers)
			fv := uint8(rnd.Stream(256))
			err = bn.SimultaneousWrite(hostAddr(r), v, fabricAddr(fr), uint32(fv))
			if fr != r {
				sh.fabricWrite(fr, fv)
			}
			sh.hostWrite(r, v)

		case opFifoPush:
			if sh.push(v) {
				rep.FifoPushes++
				err = bn.FifoPush(v)
			}

		case opFifoPop:
			if exp, ok := sh.pop(); ok {
				rep.FifoPops++
				var got uint8
				got, err = bn.FifoPop()
				if err == nil {
					err = check("fifo pop", exp, got)
				}
			}
		}

		rep.Transactions++
		rep.Cycles = bn.Bridge.Cycles()
		rep.Driven = probe.Driven
		rep.Digest = dig.Hash()

		if err != nil {
			if !curated.Is(err, Mismatch) {
				err = curated.Errorf(Failed, i, err)
			}
			logger.Log(env, "soak", err)
			return rep, err
		}

		if rep.Transactions%ProgressInterval == 0 {
			fmt.Fprintf(output, "%d transactions\n", rep.Transactions)
		}
	}

	return rep, nil
}
