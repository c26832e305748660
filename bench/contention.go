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


package bench

import (
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/hardware"
	"github.com/jetsetilly/zube/hardware/bus"
)

// Sentinal error patterns.
const (
	Contention     = "contention: bridge and host both driving data bus (%#02x and %#02x)"
	DirectionStuck = "contention: bus direction held after read strobe released (%#04x)"
)

// ContentionProbe checks the bus direction rules of the host bus on every
// clock: the bridge must never drive the bus while the host is driving it for
// a write, and the bridge must stop driving the bus on the first clock that
// samples the read strobe as released.
type ContentionProbe struct {
	// number of clocks on which the bus direction was asserted
	Driven int
}

// Sample implements the Probe interface.
func (c *ContentionProbe) Sample(b *hardware.Bridge) error {
	pins := b.Host.Pins

	host := bus.Tristate{}
	if !pins.WriteStrobeB {
		host.Drive(pins.DataIn)
	}

	_, _, contention := b.Host.Data.Resolve(host)
	if contention {
		return curated.Errorf(Contention, b.Host.Data.Value, pins.DataIn)
	}

	if !b.Host.BusDir() {
		return nil
	}

	c.Driven++

	if pins.ReadStrobeB {
		return curated.Errorf(DirectionStuck, pins.Address)
	}

	return nil
}
