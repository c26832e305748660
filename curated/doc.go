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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and a list of values in the same way as fmt.Errorf(). Formatting of
// the message is deferred until Error() is called, meaning that the pattern
// can be used to identify the error later on.
//
// Patterns should be declared as exported constants in the package that
// raises the error. For example, the bench package declares:
//
//	const AckTimeout = "bench: fabric ack not seen after %d clocks"
//
// and callers can test for that specific error with:
//
//	if curated.Is(err, bench.AckTimeout) {
//		...
//	}
//
// The Has() function will look for the pattern anywhere in a chain of curated
// errors. Wrapped errors can be retrieved with errors.Unwrap() as long as the
// wrapped error is one of the values.
//
// Repeated prefixes in a message are removed by Error(). So an error created
// with:
//
//	curated.Errorf("script: %v", curated.Errorf("script: line %d", 10))
//
// will read "script: line 10" rather than "script: script: line 10".
package curated
