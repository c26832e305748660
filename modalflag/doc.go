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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Unlike flag.FlagSet, arguments are given to NewArgs() and Parse() is called
// without arguments. This allows the same argument list to be parsed in
// stages, one stage per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR", "SOAK", "MEMVIZ")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SOAK":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 10000, "number of transactions")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode is the default mode and is selected if the first
// argument after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper case name.
//
// Non-flag arguments that follow the mode selector are returned by
// RemainingArgs() and GetArg().
package modalflag
