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

	"github.com/go-audio/wav"
	"github.com/jetsetilly/zube/curated"
)

// Trace is a decoded recording. Each entry in Clocks is one fast clock with
// one value per channel.
type Trace struct {
	SampleRate int
	Clocks     [][NumChannels]int
}

// ReadTrace loads a trace previously written by a WavWriter.
func ReadTrace(filename string) (*Trace, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if dec == nil {
		return nil, curated.Errorf("wavwriter: %v", "error decoding")
	}

	if !dec.IsValidFile() {
		return nil, curated.Errorf("wavwriter: %v", "not a valid wav file")
	}

	if int(dec.NumChans) != NumChannels {
		return nil, curated.Errorf("wavwriter: %v", "not a bridge trace")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	tr := &Trace{
		SampleRate: int(dec.SampleRate),
		Clocks:     make([][NumChannels]int, 0, len(buf.Data)/NumChannels),
	}
	for i := 0; i+NumChannels <= len(buf.Data); i += NumChannels {
		var c [NumChannels]int
		copy(c[:], buf.Data[i:i+NumChannels])
		tr.Clocks = append(tr.Clocks, c)
	}

	return tr, nil
}
