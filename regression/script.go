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


package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/zube/bench"
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/database"
	"github.com/jetsetilly/zube/digest"
	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/script"
)

const scriptEntryType = "script"

const numScriptFields = 5

// ScriptRegression is a regression entry that runs a script and records a
// digest of the bridge activity.
type ScriptRegression struct {
	// the script to run. once the entry has been added to the database this
	// is the path of the copy in the scripts directory
	Script string

	// bridge preferences in the command line format
	Prefs string

	Notes string

	digest string
	clocks uint64
}

// NewScriptRegression is the preferred method of initialisation for the
// ScriptRegression type. The preferences are checked for validity.
func NewScriptRegression(scr string, prefs string, notes string) (*ScriptRegression, error) {
	if strings.Contains(prefs, ",") {
		return nil, curated.Errorf(RegressionError, "preferences cannot contain commas")
	}
	if _, err := preferences.NewPreferencesFromString(prefs); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}

	return &ScriptRegression{
		Script: scr,
		Prefs:  strings.TrimSpace(prefs),
		Notes:  strings.Join(strings.Fields(notes), " "),
	}, nil
}

func deserialiseScriptEntry(fields []string) (database.Entry, error) {
	if len(fields) < numScriptFields {
		return nil, fmt.Errorf("too few fields for script entry")
	}

	clocks, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid clock count (%s)", fields[2])
	}

	return &ScriptRegression{
		Script: fields[0],
		Prefs:  fields[1],
		clocks: clocks,
		digest: fields[3],

		// notes are the last field and can contain commas
		Notes: strings.Join(fields[4:], ","),
	}, nil
}

// EntryType implements the database.Entry interface.
func (reg *ScriptRegression) EntryType() string {
	return scriptEntryType
}

// Serialise implements the database.Entry interface.
func (reg *ScriptRegression) Serialise() ([]string, error) {
	return []string{
		reg.Script,
		reg.Prefs,
		strconv.FormatUint(reg.clocks, 10),
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface. The copy of the script is
// removed.
func (reg *ScriptRegression) CleanUp() error {
	err := os.Remove(reg.Script)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (reg *ScriptRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", scriptEntryType, filepath.Base(reg.Script)))
	if reg.Prefs != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Prefs))
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" (%s)", reg.Notes))
	}
	return s.String()
}

// regress runs the script. For a new regression the digest is recorded,
// otherwise the result is compared with the recorded digest. Returns false if
// the comparison fails along with a short description of the failure.
func (reg *ScriptRegression) regress(newRegression bool) (bool, string, error) {
	prefs, err := preferences.NewPreferencesFromString(reg.Prefs)
	if err != nil {
		return false, "", err
	}

	env, err := environment.NewEnvironment(environment.Regression, nil, prefs)
	if err != nil {
		return false, "", err
	}
	env.Random.ZeroSeed = true
	env.Random.Reseed(0)

	bn := bench.NewBench(env)
	bn.AddProbe(&bench.ContentionProbe{})
	dig := &digest.Trace{}
	bn.AddProbe(dig)

	scr, err := script.LoadScript(reg.Script, bn, io.Discard)
	if err != nil {
		return false, "", err
	}
	if err := scr.Run(); err != nil {
		return false, "", err
	}

	if newRegression {
		reg.digest = dig.Hash()
		reg.clocks = dig.Clocks()
		return true, "", nil
	}

	if dig.Clocks() != reg.clocks {
		return false, fmt.Sprintf("clock count differs (%d instead of %d)", dig.Clocks(), reg.clocks), nil
	}
	if dig.Hash() != reg.digest {
		return false, "digest differs", nil
	}

	return true, "", nil
}
