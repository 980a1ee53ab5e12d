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

package disassembly

import (
	"io"
	"strings"
)

// Grep writes the disassembly entries whose formatted line contains the
// search string. The same alignment rules as Write() apply.
func (dsm *Disassembly) Grep(output io.Writer, search string, caseSensitive bool) error {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	attr := WriteAttr{ByteCode: false}

	for addr := dsm.origin; addr < dsm.memtop; addr++ {
		e, ok := dsm.entries[addr]
		if !ok {
			continue
		}
		if addr%2 != 0 && !e.Reachable {
			continue
		}

		s := &strings.Builder{}
		if err := dsm.WriteEntry(s, attr, e); err != nil {
			return err
		}

		m := s.String()
		if !caseSensitive {
			m = strings.ToUpper(m)
		}
		if strings.Contains(m, search) {
			if _, err := io.WriteString(output, s.String()); err != nil {
				return err
			}
		}
	}

	return nil
}
