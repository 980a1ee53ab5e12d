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

package prefs_test

import (
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/prefs"
	"github.com/kehitt/gopher8/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return path.Join(t.TempDir(), "gopher8_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		fmt.Println("expected:")
		fmt.Println(expected)
		fmt.Println("\nin file:")
		fmt.Println(string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testB", &w)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testC", &x)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)
	err = w.Set("foo")
	test.ExpectedSuccess(t, err)
	err = x.Set("true")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.String
	err = dsk.Add("foo", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set("bar")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	err = dsk.Add("number", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("numberB", &w)
	test.ExpectedSuccess(t, err)

	err = v.Set(10)
	test.ExpectedSuccess(t, err)

	// string conversion to int
	err = w.Set("99")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some failure
	// conditions
	err = v.Set("---")
	test.ExpectedFailure(t, err)

	err = v.Set(1.0)
	test.ExpectedFailure(t, err)
}

func TestFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Float
	err = dsk.Add("gain", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set(0.5)
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "gain :: 0.500\n")

	err = v.Set("0.25")
	test.ExpectedSuccess(t, err)
	test.Equate(t, v.Get().(float64), 0.25)
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(v prefs.Value) error {
			_, err := fmt.Sscanf(v.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	err = dsk.Add("generic", v)
	test.ExpectedSuccess(t, err)

	// change values
	w = 1
	h = 2

	// save to disk
	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "generic :: 1,2\n")

	// reset values
	w = 0
	h = 0

	// reload them from disk
	err = dsk.Load(true)
	test.ExpectedSuccess(t, err)

	// check that the values have been restored
	test.Equate(t, w, 1)
	test.Equate(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	// start a new disk instance using the same file. (we haven't deleted it
	// yet)
	dsk, err = prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var s prefs.String
	err = dsk.Add("foo", &s)
	test.ExpectedSuccess(t, err)

	err = s.Set("bar")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

// a key already on disk is loaded as soon as it is added.
func TestAddLoadsSavedValue(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Int
	err = dsk.Add("number", &v)
	test.ExpectedSuccess(t, err)
	err = v.Set(99)
	test.ExpectedSuccess(t, err)
	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	dsk, err = prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var w prefs.Int
	err = dsk.Add("number", &w)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w.Get().(int), 99)
}

func TestMaxStringLength(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var s prefs.String
	err = dsk.Add("test", &s)
	test.ExpectedSuccess(t, err)
	err = s.Set("123456789")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.Equate(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string information reappearing
	s.SetMaxLen(0)
	test.Equate(t, s.String(), "12345")

	// setting a string after setting a maximum length will result in the set
	// string being cropped
	s.SetMaxLen(3)
	err = s.Set("abcdefghi")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "abc")
}

// a file without the header line is refused.
func TestNotAPrefsFile(t *testing.T) {
	fn := tmpPrefFile(t)

	err := os.WriteFile(fn, []byte("definitely not a prefs file\n"), 0644)
	test.ExpectedSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	err = dsk.Load(true)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, prefs.NotAPrefsFile))
}

// defunct keys are dropped on the next save.
func TestDefunct(t *testing.T) {
	fn := tmpPrefFile(t)

	content := fmt.Sprintf("%s\nhardware.ips :: 500\nlive :: true\n", prefs.WarningBoilerPlate)
	err := os.WriteFile(fn, []byte(content), 0644)
	test.ExpectedSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("live", &v)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v.Get().(bool), true)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "live :: true\n")
}

func TestDuplicateKey(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("test", &w)
	test.ExpectedFailure(t, err)
}
