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


package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/zube/hardware"
	"github.com/jetsetilly/zube/hardware/registers"
)

// Trace is a bench probe that chains a hash of the bridge pins and state on
// every clock.
type Trace struct {
	digest [sha1.Size]byte

	// the previous digest followed by the state of the bridge for the
	// current clock
	buf []byte

	clocks uint64
}

// Hash implements digest.Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Trace) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.clocks = 0
}

// Clocks returns the number of clocks in the digest.
func (dig *Trace) Clocks() uint64 {
	return dig.clocks
}

func bit(b bool, n uint) byte {
	if b {
		return 1 << n
	}
	return 0
}

// Sample implements bench.Probe interface.
func (dig *Trace) Sample(b *hardware.Bridge) error {
	dig.buf = append(dig.buf[:0], dig.digest[:]...)

	host := b.Host
	dig.buf = binary.LittleEndian.AppendUint16(dig.buf, host.Pins.Address)
	dig.buf = append(dig.buf, host.Pins.DataIn, host.Data.Value,
		bit(!host.Pins.WriteStrobeB, 0)|bit(!host.Pins.ReadStrobeB, 1)|bit(!host.Pins.IORQB, 2)|bit(host.BusDir(), 3))

	fab := b.Fabric
	dig.buf = binary.LittleEndian.AppendUint32(dig.buf, fab.Pins.Addr)
	dig.buf = binary.LittleEndian.AppendUint32(dig.buf, fab.Pins.DatWr)
	dig.buf = binary.LittleEndian.AppendUint32(dig.buf, fab.DatRd)
	dig.buf = append(dig.buf, bit(fab.Pins.Cyc, 0)|bit(fab.Pins.Stb, 1)|bit(fab.Pins.We, 2)|bit(fab.Ack, 3))

	for r := registers.Register(0); int(r) < b.Config.Registers; r++ {
		v, _ := b.Registers.Peek(r)
		dig.buf = append(dig.buf, v)
	}
	dig.buf = append(dig.buf,
		uint8(b.Registers.Status.Peek(registers.Host)),
		uint8(b.Registers.Status.Peek(registers.Fabric)),
		b.FIFO.DataOut(), bit(b.FIFO.NotEmpty(), 0), bit(b.ResetPin, 1))

	dig.digest = sha1.Sum(dig.buf)
	dig.clocks++

	return nil
}
