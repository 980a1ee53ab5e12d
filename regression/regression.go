// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/database"
	"github.com/kehitt/gopher8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/kehitt/gopher8/paths"
)

// the directory under the resource path where the regression files live.
const regressionPath = "regression"

// the name of the database file.
const regressionDBFile = "db"

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the result of the test should be stored in the
	// entry rather than compared.
	//
	// message is the string to be printed during the regression
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryID, deserialiseDigestEntry)
}

func dbPath() (string, error) {
	p, err := paths.ResourcePath(regressionPath, regressionDBFile)
	if err != nil {
		return "", curated.Errorf("regression: %v", err)
	}
	return p, nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil (use nopWriter)")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes a test from the regression database. The confirmation
// reader is presented with a y/n question before anything is touched (use
// yesReader to answer unconditionally).
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil (use nopWriter)")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.SelectKeys(nil, v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressAdd adds a new test to the regression database. The test is run
// before it is added and the result stored in the new entry.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil (use nopWriter)")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf("regression: add: %s failed", reg)
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressRunTests runs the tests in the regression database. The filterKeys
// list specifies which entries to test. An empty list means that every entry
// should be tested. The keyword "fails" in the list expands to the keys that
// failed on the previous run.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: io.Writer should not be nil (use nopWriter)")
	}

	filterKeys, ok, err := addFailsToKeys(filterKeys)
	if err != nil {
		return err
	}
	if !ok {
		output.Write([]byte("no previous fails to run\n"))
		return nil
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// convert filter keys to sorted, deduplicated ints
	keysV := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)
	n := 0
	for i, v := range keysV {
		if i == 0 || v != keysV[n-1] {
			keysV[n] = v
			n++
		}
	}
	keysV = keysV[:n]

	keyList := keysV
	if len(keyList) == 0 {
		keyList = db.SortedKeyList()
	}

	numSucceed := 0
	numFail := 0
	numError := 0
	numSkipped := db.NumEntries() - len(keyList)
	failedKeys := make([]int, 0)

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	idx := -1
	onSelect := func(ent database.Entry) error {
		idx++
		key := keyList[idx]

		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy the Regressor interface")
		}

		msg := fmt.Sprintf("running: %03d %s", key, reg)
		passed, err := reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		output.Write([]byte(ansi.ClearLine))

		if err != nil {
			numError++
			failedKeys = append(failedKeys, key)
			output.Write([]byte(fmt.Sprintf("\r ERROR: %03d %s\n", key, reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}
			if failOnError {
				return curated.Errorf(database.SelectAbort)
			}
		} else if !passed {
			numFail++
			failedKeys = append(failedKeys, key)
			output.Write([]byte(fmt.Sprintf("\rfailure: %03d %s\n", key, reg)))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %03d %s\n", key, reg)))
		}

		return nil
	}

	_, err = db.SelectKeys(onSelect, keyList...)
	if err != nil {
		return err
	}

	return saveFails(failedKeys)
}
