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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %d"

func TestDuplicatePrefix(t *testing.T) {
	e := curated.Errorf("script: %v", curated.Errorf("script: line %d", 10))
	test.ExpectEquality(t, e.Error(), "script: line 10")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, curated.Errorf(otherPattern, 10))
	test.ExpectSuccess(t, curated.Has(e, otherPattern))
	test.ExpectSuccess(t, curated.Has(e, testPattern))
	test.ExpectFailure(t, curated.Has(e, "missing"))
	test.ExpectEquality(t, e.Error(), "test: other: 10")
}

func TestUnwrap(t *testing.T) {
	base := errors.New("base")
	e := curated.Errorf("wrapped: %w", base)
	test.ExpectSuccess(t, errors.Is(e, base))
	test.ExpectEquality(t, e.Error(), "wrapped: base")
}
