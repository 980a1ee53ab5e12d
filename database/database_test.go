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

package database_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/database"
	"github.com/kehitt/gopher8/test"
)

// simple entry type used for testing.
type testEntry struct {
	name    string
	cleaned bool
}

func (ent testEntry) ID() string {
	return "test"
}

func (ent testEntry) String() string {
	return ent.name
}

func (ent testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name}, nil
}

func (ent *testEntry) CleanUp() error {
	ent.cleaned = true
	return nil
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	return &testEntry{name: fields[0]}, nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func startTestSession(t *testing.T, path string, activity database.Activity) *database.Session {
	t.Helper()
	db, err := database.StartSession(path, activity, initTestSession)
	test.ExpectedSuccess(t, err)
	return db
}

func TestRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db := startTestSession(t, pth, database.ActivityCreating)
	test.Equate(t, db.NumEntries(), 0)

	err := db.Add(&testEntry{name: "foo"})
	test.ExpectedSuccess(t, err)
	err = db.Add(&testEntry{name: "bar"})
	test.ExpectedSuccess(t, err)
	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)

	// reopen and check the entries survived
	db = startTestSession(t, pth, database.ActivityReading)
	test.Equate(t, db.NumEntries(), 2)

	ent, err := db.SelectKeys(nil, 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "bar")

	err = db.EndSession(false)
	test.ExpectedSuccess(t, err)
}

func TestReadOnlySession(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db := startTestSession(t, pth, database.ActivityCreating)
	err := db.EndSession(true)
	test.ExpectedSuccess(t, err)

	db = startTestSession(t, pth, database.ActivityReading)
	err = db.EndSession(true)
	test.ExpectedFailure(t, err)
}

func TestDelete(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db := startTestSession(t, pth, database.ActivityCreating)

	ent := &testEntry{name: "foo"}
	err := db.Add(ent)
	test.ExpectedSuccess(t, err)

	err = db.Delete(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.cleaned, true)
	test.Equate(t, db.NumEntries(), 0)

	err = db.Delete(99)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, database.KeyNotAvailable))

	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)
}

// deleted keys are reused by the next Add().
func TestSpareKeys(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db := startTestSession(t, pth, database.ActivityCreating)

	for _, n := range []string{"a", "b", "c"} {
		err := db.Add(&testEntry{name: n})
		test.ExpectedSuccess(t, err)
	}

	err := db.Delete(1)
	test.ExpectedSuccess(t, err)

	err = db.Add(&testEntry{name: "d"})
	test.ExpectedSuccess(t, err)

	ent, err := db.SelectKeys(nil, 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "d")

	err = db.EndSession(false)
	test.ExpectedSuccess(t, err)
}

func TestSelectAbort(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db := startTestSession(t, pth, database.ActivityCreating)

	for _, n := range []string{"a", "b", "c"} {
		err := db.Add(&testEntry{name: n})
		test.ExpectedSuccess(t, err)
	}

	seen := 0
	_, err := db.SelectAll(func(ent database.Entry) error {
		seen++
		if seen == 2 {
			return curated.Errorf(database.SelectAbort)
		}
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, seen, 2)

	err = db.EndSession(false)
	test.ExpectedSuccess(t, err)
}

func TestUnrecognisedEntryType(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db := startTestSession(t, pth, database.ActivityCreating)
	err := db.Add(&testEntry{name: "foo"})
	test.ExpectedSuccess(t, err)
	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)

	// open the database without registering any entry types
	_, err = database.StartSession(pth, database.ActivityReading, nil)
	test.ExpectedFailure(t, err)
}

func TestList(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db := startTestSession(t, pth, database.ActivityCreating)

	s := &strings.Builder{}
	err := db.List(s)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "database is empty\n")

	err = db.Add(&testEntry{name: "foo"})
	test.ExpectedSuccess(t, err)

	s.Reset()
	err = db.List(s)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "000 foo\nTotal: 1\n")

	err = db.EndSession(false)
	test.ExpectedSuccess(t, err)
}
