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

package database

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kehitt/gopher8/curated"
)

// Activity is the type of activity a database session is opened with.
type Activity int

// Valid activities. A session opened with ActivityReading will refuse to
// commit on EndSession().
const (
	ActivityReading Activity = iota
	ActivityCreating
	ActivityModifying
)

// Session represents an open database.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession opens the database file at path and reads all entries into
// memory. The init function is called before any entry is read and should
// register every entry type the database might contain. init can be nil.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	case ActivityModifying:
		flags = os.O_RDWR
	}

	var err error
	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	if init != nil {
		if err := init(db); err != nil {
			db.dbfile.Close()
			return nil, err
		}
	}

	if err := db.readEntries(); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. If commit is true the in-memory entries are
// written back to the database file first.
func (db *Session) EndSession(commit bool) error {
	if db.dbfile == nil {
		return curated.Errorf("database: session already ended")
	}

	defer func() {
		db.dbfile.Close()
		db.dbfile = nil
	}()

	if !commit {
		return nil
	}

	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot commit to a read-only session")
	}

	s := strings.Builder{}
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		for _, f := range ser {
			if strings.Contains(f, fieldSep) || strings.Contains(f, entrySep) {
				return curated.Errorf("database: entry field contains a separator (%s)", f)
			}
		}

		s.WriteString(recordHeader(key, ent.ID()))
		if len(ser) > 0 {
			s.WriteString(fieldSep)
			s.WriteString(strings.Join(ser, fieldSep))
		}
		s.WriteString(entrySep)
	}

	if err := db.dbfile.Truncate(0); err != nil {
		return curated.Errorf("database: %v", err)
	}
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}
	if _, err := db.dbfile.WriteString(s.String()); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

// read every entry in the database file, deserialising as we go.
func (db *Session) readEntries() error {
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	for i, line := range strings.Split(string(buffer), entrySep) {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: malformed entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%03d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s) at line %d", fields[leaderFieldID], i+1)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return err
		}

		db.entries[key] = ent
	}

	return nil
}
