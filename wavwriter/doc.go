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


// Package wavwriter records the signals of a bridge as a multi-channel WAV
// file. Each channel is one signal and each sample is one fast clock. The
// file can be opened in any logic analyser or audio tool that imports WAV
// files.
//
// Note that the trace is buffered in memory in its entirety and written to
// disk when the WavWriter is closed. It is therefore only suitable for
// short runs.
package wavwriter
