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

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNoFonts(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	err := os.Mkdir(empty, 0o755)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out", "catalog.pdf")
	err = run([]string{empty, filepath.Join(dir, "missing")}, out)
	if err == nil {
		t.Fatal("expected an error when no fonts are found")
	}

	// the error must fire before any output is created
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output file exists: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(out)); !os.IsNotExist(err) {
		t.Errorf("output directory exists: %v", err)
	}
}
