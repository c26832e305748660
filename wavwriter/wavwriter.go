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


package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/hardware"
	"github.com/jetsetilly/zube/hardware/clocks"
	"github.com/jetsetilly/zube/logger"
)

// List of channels in the order they appear in the WAV file.
const (
	HostWriteStrobe = iota
	HostReadStrobe
	HostBusDir
	HostData
	FabricRequest
	FabricAck
	FabricData
	NumChannels
)

// ChannelNames for each of the channels.
var ChannelNames = []string{
	"host write strobe",
	"host read strobe",
	"host bus direction",
	"host data",
	"fabric request",
	"fabric ack",
	"fabric data",
}

// sample values for the logic level of single bit signals
const (
	lo = 0x00
	hi = 0xff
)

// SampleRate of the WAV file. One sample per fast clock.
const SampleRate = int(clocks.Fabric * 1000000)

// bitDepth of each sample.
const bitDepth = 8

// WavWriter implements the bench.Probe interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	ww := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}

	return ww, nil
}

func level(b bool) int {
	if b {
		return hi
	}
	return lo
}

// Sample implements the bench.Probe interface.
func (ww *WavWriter) Sample(b *hardware.Bridge) error {
	host := b.Host.Pins
	fab := b.Fabric.Pins

	// the value on the host data bus is whichever side is driving it. the
	// bus floats to the midpoint when nobody is driving
	hostData := 0x80
	if b.Host.BusDir() {
		hostData = int(b.Host.Data.Value)
	} else if !host.WriteStrobeB {
		hostData = int(host.DataIn)
	}

	fabricData := 0x00
	if b.Fabric.Ack {
		fabricData = int(b.Fabric.DatRd & 0xff)
	} else if fab.Cyc && fab.Stb && fab.We {
		fabricData = int(fab.DatWr & 0xff)
	}

	ww.buffer = append(ww.buffer,
		level(!host.WriteStrobeB),
		level(!host.ReadStrobeB),
		level(b.Host.BusDir()),
		hostData,
		level(fab.Cyc && fab.Stb),
		level(b.Fabric.Ack),
		fabricData,
	)

	return nil
}

// Len returns the number of clocks recorded so far.
func (ww *WavWriter) Len() int {
	return len(ww.buffer) / NumChannels
}

// Close writes the buffered trace to disk.
func (ww *WavWriter) Close() (rerr error) {
	f, err := os.Create(ww.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, NumChannels, 1)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  SampleRate,
		},
		Data:           ww.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d clocks to %s", ww.Len(), ww.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
