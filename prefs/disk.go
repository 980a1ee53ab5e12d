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

package prefs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/logger"
)

// Sentinal errors returned by the prefs package.
const (
	NotAPrefsFile = "prefs: not a preferences file (%s)"
)

// WarningBoilerPlate is the first line of a saved preferences file. A file
// without it is refused on load, on the assumption that the user has pointed
// us at something else entirely.
const WarningBoilerPlate = "*gopher8* do not edit this file by hand"

// DefaultPrefsFile is the name of the preferences file shared by every part
// of the application. Pass it through paths.ResourcePath() to get the full
// path.
const DefaultPrefsFile = "gopher8.prefs"

// the string that separates a key from its value in the saved file and in
// command line preferences strings.
const entrySeparator = " :: "

// Disk represents preference values as stored on disk. A Disk instance knows
// about the keys that have been added to it and no others. Keys in the file
// that belong to a different Disk instance survive a Save() untouched.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at the given path does not need to exist yet.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add a preference to the Disk instance under the given key. If the disk file
// already contains a value for the key then the preference is set to that
// value immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, entrySeparator) || strings.ContainsAny(key, "\n") {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}

	dsk.entries[key] = p

	// load single value if it already exists on disk
	saved, err := dsk.read()
	if err != nil {
		return err
	}
	if v, ok := saved[key]; ok {
		err = p.Set(v)
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

// Load preference values from disk. Values in the file that have not been
// added to this Disk instance are left alone. It is not an error for the file
// not to exist yet.
func (dsk *Disk) Load(silent bool) error {
	saved, err := dsk.read()
	if err != nil {
		return err
	}

	for key, v := range saved {
		if p, ok := dsk.entries[key]; ok {
			err = p.Set(v)
			if err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	if !silent {
		logger.Logf("prefs", "loaded %s", dsk.path)
	}

	return nil
}

// Save preference values to disk. The existing file content is merged rather
// than replaced, so instances of Disk looking after different keys in the
// same file do not clobber one another. Defunct keys are dropped.
func (dsk *Disk) Save() error {
	saved, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		saved[key] = p.String()
	}

	keys := make([]string, 0, len(saved))
	for key := range saved {
		if isDefunct(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, entrySeparator, saved[key]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0644)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// read the saved file into a key/value map. a missing file is returned as an
// empty map, not an error.
func (dsk *Disk) read() (map[string]string, error) {
	saved := make(map[string]string)

	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return saved, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || lines[0] != WarningBoilerPlate {
		return nil, curated.Errorf(NotAPrefsFile, dsk.path)
	}

	for _, l := range lines[1:] {
		kv := strings.SplitN(l, entrySeparator, 2)
		if len(kv) != 2 {
			// malformed or empty lines are quietly ignored
			continue
		}
		saved[kv[0]] = kv[1]
	}

	return saved, nil
}
