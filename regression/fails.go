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
	"os"
	"sort"
	"strings"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/paths"
)

// the name of the file that remembers which tests failed on the last run.
const failsFile = "fails"

// the keyword accepted in a RegressRunTests() filter list. it expands to the
// keys saved by the previous run.
const failsKeyword = "fails"

func saveFails(keys []int) error {
	sort.Ints(keys)

	p, err := paths.ResourcePath(regressionPath, failsFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	s := strings.Builder{}
	prev := -1
	for _, v := range keys {
		if v == prev {
			continue
		}
		prev = v
		s.WriteString(fmt.Sprintf("%03d\n", v))
	}

	err = os.WriteFile(p, []byte(s.String()), 0644)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	return nil
}

func loadFails() ([]string, error) {
	p, err := paths.ResourcePath(regressionPath, failsFile)
	if err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, curated.Errorf("regression: %v", err)
	}

	keys := make([]string, 0)
	for _, l := range strings.Split(string(data), "\n") {
		l = strings.TrimSpace(l)
		if len(l) > 0 {
			keys = append(keys, l)
		}
	}

	return keys, nil
}

// replace any instance of the fails keyword in the list of filter keys with
// the keys saved by the previous run. the returned bool is false if the
// keyword was used but there are no previous fails to run.
func addFailsToKeys(filterKeys []string) ([]string, bool, error) {
	keys := make([]string, 0, len(filterKeys))
	expanded := false

	for _, k := range filterKeys {
		if strings.EqualFold(k, failsKeyword) {
			if !expanded {
				prev, err := loadFails()
				if err != nil {
					return nil, false, err
				}
				if len(prev) == 0 {
					return nil, false, nil
				}
				keys = append(keys, prev...)
				expanded = true
			}
			continue
		}
		keys = append(keys, k)
	}

	return keys, true, nil
}
