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

// Package test contains helper functions for the testing package. The Expect
// functions report failure with t.Errorf() and allow the test to continue.
// The Demand functions report failure with t.Fatalf() and stop the test
// immediately.
//
// All functions take an optional list of tags which are prepended to any
// failure message. Tags are useful when testing in a loop:
//
//	for i := range values {
//		test.ExpectEquality(t, fifo.Pop(), values[i], i)
//	}
package test
