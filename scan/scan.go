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

// Package scan locates font files below a list of candidate directories.
package scan

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/exp/maps"
)

// DefaultPatterns matches the font file types the catalog can embed.
// Patterns are applied to the lower-cased base name of each file.
var DefaultPatterns = []string{"*.ttf", "*.otf"}

// Result maps derived font names to the file each name was first
// found in.  The derived name of a font file is its base name with
// the extension stripped.
type Result map[string]string

// Names returns the font names in alphabetical order.
func (r Result) Names() []string {
	names := maps.Keys(r)
	sort.Strings(names)
	return names
}

// Fonts walks the given roots of fsys, in order, and collects all
// files matching one of the patterns.  Roots which do not exist and
// directory entries which cannot be read are skipped silently.  When
// two files derive the same font name, the first one found wins; the
// order of roots is therefore a priority list, and within one root
// files are visited in lexical order.
func Fonts(fsys fs.FS, roots []string, patterns []string) (Result, error) {
	res := make(Result)
	for _, root := range roots {
		if _, err := fs.Stat(fsys, root); err != nil {
			continue
		}
		err := fs.WalkDir(fsys, root, func(fname string, d fs.DirEntry, err error) error {
			if err != nil {
				// unreadable entries are skipped, like missing roots
				return nil
			}
			if d.IsDir() {
				return nil
			}
			ok, err := matches(d.Name(), patterns)
			if err != nil || !ok {
				return err
			}
			name := strings.TrimSuffix(d.Name(), path.Ext(d.Name()))
			if _, seen := res[name]; seen {
				return nil
			}
			res[name] = fname
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Dirs is the operating-system form of [Fonts]: every root is an
// absolute directory path, and the returned paths are again absolute.
func Dirs(roots []string, patterns []string) (Result, error) {
	res := make(Result)
	for _, root := range roots {
		sub, err := Fonts(os.DirFS(root), []string{"."}, patterns)
		if err != nil {
			return nil, err
		}
		for _, name := range sub.Names() {
			if _, seen := res[name]; seen {
				continue
			}
			res[name] = filepath.Join(root, filepath.FromSlash(sub[name]))
		}
	}
	return res, nil
}

func matches(base string, patterns []string) (bool, error) {
	base = strings.ToLower(base)
	for _, pat := range patterns {
		ok, err := doublestar.Match(pat, base)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}
