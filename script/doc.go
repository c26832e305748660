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


// Package script implements a line oriented command language that drives a
// bench. Scripts are used to exercise the bridge from the command line and
// by the interactive monitor.
//
// One command per line. Leading and trailing white space is ignored. Lines
// beginning with # are comments.
//
//	reset
//	clock N
//	host write ADDR V
//	host read ADDR [expect V]
//	fabric write ADDR V
//	fabric read ADDR [expect V]
//	fifo push V
//	fifo pop [expect V]
//	log
//
// Numbers are written with Go literal syntax (0x10, 0b1010, 16). The $ prefix
// is also accepted for hexadecimal.
//
// There is no flow control except basic loops.
//
//	do loopCt [loopName]
//		...
//	loop
//
// The 'loopName' parameter is optional. When a loop is named the current
// counter value can be used in place of a value with the % symbol. For
// example:
//
//	do 4 i
//		fifo push %i
//	loop
//
// Loops can be nested.
//
// A read with an expect clause that does not match ends the script with an
// error naming the line. All other errors also end the script.
package script
