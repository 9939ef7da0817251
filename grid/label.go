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

package grid

import "fmt"

// keyNames gives the label for code points which are shown under a
// key name rather than as themselves.
var keyNames = map[int]string{
	32: "Space", 33: "!", 34: `"`, 35: "#", 36: "$", 37: "%", 38: "&", 39: "'",
	40: "(", 41: ")", 42: "*", 43: "+", 44: ",", 45: "-", 46: ".", 47: "/",
	58: ":", 59: ";", 60: "<", 61: "=", 62: ">", 63: "?", 64: "@",
	91: "[", 92: `\`, 93: "]", 94: "^", 95: "_", 96: "`",
	123: "{", 124: "|", 125: "}", 126: "~", 127: "DEL",
}

// KeyLabel returns the label line of a basic-range cell: the key name
// for special code points, the character itself below 127, and the
// Unicode id otherwise.  Labels longer than six characters are
// shortened to five plus a trailing period.
func KeyLabel(code int) string {
	var label string
	switch {
	case keyNames[code] != "":
		label = keyNames[code]
	case code < 127:
		label = string(rune(code))
	default:
		label = UnicodeLabel(code)
	}
	if len(label) > 6 {
		label = label[:5] + "."
	}
	return label
}

// UnicodeLabel returns the "U+XXXX" form of a code point, used as the
// label line on extended-range pages.
func UnicodeLabel(code int) string {
	return fmt.Sprintf("U+%04X", code)
}

// HexLabel returns the hex line of a basic-range cell.
func HexLabel(code int) string {
	return fmt.Sprintf("x%02X", code)
}
