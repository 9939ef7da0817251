// seehuhn.de/go/fontcatalog - a PDF character catalog for installed fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scan

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestRootOrder(t *testing.T) {
	// The same derived name in two roots: the earlier root wins.
	fsys := fstest.MapFS{
		"pro/ESRI Default.ttf":     &fstest.MapFile{},
		"desktop/ESRI Default.ttf": &fstest.MapFile{},
		"desktop/ESRI North.ttf":   &fstest.MapFile{},
	}
	got, err := Fonts(fsys, []string{"pro", "desktop"}, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	want := Result{
		"ESRI Default": "pro/ESRI Default.ttf",
		"ESRI North":   "desktop/ESRI North.ttf",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected fonts (-want +got):\n%s", d)
	}
}

func TestFirstWalkedWins(t *testing.T) {
	// Both extensions derive the name "Foo"; the walk is lexical, so
	// Foo.otf is seen first and Foo.ttf is dropped.
	fsys := fstest.MapFS{
		"fonts/Foo.ttf": &fstest.MapFile{},
		"fonts/Foo.otf": &fstest.MapFile{},
	}
	got, err := Fonts(fsys, []string{"fonts"}, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d fonts, want 1", len(got))
	}
	if got["Foo"] != "fonts/Foo.otf" {
		t.Errorf("got %q, want fonts/Foo.otf", got["Foo"])
	}
}

func TestSelection(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/UPPER.TTF":        &fstest.MapFile{},
		"fonts/sub/dir/deep.otf": &fstest.MapFile{},
		"fonts/readme.txt":       &fstest.MapFile{},
		"fonts/archive.ttf.bak":  &fstest.MapFile{},
	}
	got, err := Fonts(fsys, []string{"fonts"}, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	want := Result{
		"UPPER": "fonts/UPPER.TTF",
		"deep":  "fonts/sub/dir/deep.otf",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected fonts (-want +got):\n%s", d)
	}
}

func TestMissingRoots(t *testing.T) {
	fsys := fstest.MapFS{
		"b/X.ttf": &fstest.MapFile{},
	}
	got, err := Fonts(fsys, []string{"a", "b", "c"}, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["X"] != "b/X.ttf" {
		t.Errorf("unexpected result %v", got)
	}

	// no fonts anywhere is not an error of the locator itself
	got, err = Fonts(fsys, []string{"a", "c"}, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

// lockedDirFS fails to list one of its directories.
type lockedDirFS struct {
	fstest.MapFS
	locked string
}

func (f lockedDirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == f.locked {
		return nil, errors.New("permission denied")
	}
	return f.MapFS.ReadDir(name)
}

func TestUnreadableDir(t *testing.T) {
	fsys := lockedDirFS{
		MapFS: fstest.MapFS{
			"fonts/Good.ttf":          &fstest.MapFile{},
			"fonts/locked/Hidden.ttf": &fstest.MapFile{},
		},
		locked: "fonts/locked",
	}
	got, err := Fonts(fsys, []string{"fonts"}, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	want := Result{
		"Good": "fonts/Good.ttf",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected fonts (-want +got):\n%s", d)
	}
}

func TestIdempotent(t *testing.T) {
	fsys := fstest.MapFS{
		"a/One.ttf":   &fstest.MapFile{},
		"a/Two.otf":   &fstest.MapFile{},
		"b/One.otf":   &fstest.MapFile{},
		"b/Three.ttf": &fstest.MapFile{},
	}
	roots := []string{"a", "b"}
	first, err := Fonts(fsys, roots, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Fonts(fsys, roots, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("locator is not deterministic (-first +second):\n%s", d)
	}
}

func TestNames(t *testing.T) {
	r := Result{"b": "x/b.ttf", "a": "x/a.ttf", "C": "x/C.ttf"}
	got := r.Names()
	want := []string{"C", "a", "b"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected order (-want +got):\n%s", d)
	}
}
