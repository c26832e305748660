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
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/database"
	"github.com/jetsetilly/zube/logger"
)

// Sentinal error patterns.
const (
	RegressionError = "regression: %v"
	Failures        = "regression: %d tests did not succeed"
)

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the result should be recorded rather than compared.
	// the returned string describes why the comparison failed
	regress(newRegression bool) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(scriptEntryType, deserialiseScriptEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, loc Location) error {
	db, err := database.StartSession(loc.DBFile, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the script regression and adds it to the database. A copy
// of the script is made in the scripts directory.
func RegressAdd(output io.Writer, loc Location, reg *ScriptRegression) error {
	db, err := database.StartSession(loc.DBFile, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(reg.Script)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	cp := loc.uniqueFilename(reg.Script)
	if err := os.WriteFile(cp, b, 0600); err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}
	reg.Script = cp

	if _, _, err := reg.regress(true); err != nil {
		_ = reg.CleanUp()
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = reg.CleanUp()
		db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "added: %03d %s\n", key, reg)
	logger.Logf(logger.Allow, "regression", "added %s", reg)

	return nil
}

// RegressDelete removes an entry from the database after confirmation. The
// confirmation reader should supply a 'y' to confirm.
func RegressDelete(output io.Writer, confirmation io.Reader, loc Location, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", key))
	}

	db, err := database.StartSession(loc.DBFile, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	reg, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", reg)

	confirm := make([]byte, 1)
	if _, err := confirmation.Read(confirm); err != nil && err != io.EOF {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		fmt.Fprintln(output, "not deleted")
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return nil
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty list means that every entry
// should be tested.
//
// Returns the Failures error if any test failed or could not be run.
func RegressRun(output io.Writer, loc Location, verbose bool, failOnError bool, filterKeys []string) error {
	db, err := database.StartSession(loc.DBFile, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", k))
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	numSucceed := 0
	numFail := 0
	numError := 0

	// stops the selection when failOnError is set
	errStop := fmt.Errorf("stop")

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf(RegressionError, fmt.Sprintf("entry %03d is not a regression entry", key))
		}

		ok, reason, err := reg.regress(false)
		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "         %v\n", err)
			}
			if failOnError {
				return errStop
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "         %s\n", reason)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		return nil
	}

	err = db.SelectKeys(onSelect, keys...)
	if err != nil && err != errStop {
		return err
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail))
	if numError > 0 {
		s.WriteString(fmt.Sprintf(" [with %d errors]", numError))
	}
	fmt.Fprintln(output, s.String())

	if numFail+numError > 0 {
		return curated.Errorf(Failures, numFail+numError)
	}

	return nil
}
