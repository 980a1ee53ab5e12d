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

import "github.com/kehitt/gopher8/curated"

// Sentinal errors returned by the select functions.
const (
	KeyNotAvailable = "database: key not available (%03d)"
	SelectAbort     = "database: select abort"
)

// SelectAll entries in the database, in key order. onSelect can be nil.
//
// If onSelect() returns an error the selection stops. A SelectAbort error is
// swallowed, any other error is returned to the caller.
//
// Returns the last entry given to onSelect().
func (db Session) SelectAll(onSelect func(Entry) error) (Entry, error) {
	return db.SelectKeys(onSelect, db.SortedKeyList()...)
}

// SelectKeys matches entries with the specified key(s). keys can be singular.
// If the list of keys is empty then all keys are matched (SelectAll() may be
// more appropriate in that case). onSelect can be nil.
//
// If onSelect() returns an error the selection stops. A SelectAbort error is
// swallowed, any other error is returned to the caller.
//
// Returns the last entry given to onSelect().
func (db Session) SelectKeys(onSelect func(Entry) error, keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := keys
	if len(keyList) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, key := range keyList {
		var ok bool
		entry, ok = db.entries[key]
		if !ok {
			return nil, curated.Errorf(KeyNotAvailable, key)
		}

		err := onSelect(entry)
		if err != nil {
			if curated.Is(err, SelectAbort) {
				return entry, nil
			}
			return entry, err
		}
	}

	return entry, nil
}
