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

// Package grid computes the fixed-layout character grid of a catalog
// page: cell positions, the per-page capacity cap, and the label
// lines shown inside each cell.
package grid

// Inch is one inch in PDF units.
const Inch = 72.0

// Config fixes the page and cell geometry of a catalog grid.
// A Config is constructed once and then treated as read-only.
type Config struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64 // distance of the grid from the left page edge

	CellSize float64
	Cols     int
	Rows     int

	GlyphSize float64 // font size for the glyph itself
	LabelSize float64 // font size for the key-name line
	CodeSize  float64 // font size for the decimal and hex lines
}

// Default returns the catalog geometry: a landscape US Letter page
// with a 16 by 14 grid of half-inch cells.
func Default() *Config {
	return &Config{
		PageWidth:  11 * Inch,
		PageHeight: 8.5 * Inch,
		Margin:     0.3 * Inch,
		CellSize:   0.5 * Inch,
		Cols:       16,
		Rows:       14,
		GlyphSize:  20,
		LabelSize:  6,
		CodeSize:   6,
	}
}

// Capacity is the number of cells on one page.
func (c *Config) Capacity() int {
	return c.Rows * c.Cols
}

// Span clips the code range [lo, hi] to the cells which fit on a
// single page.  The page capacity is a hard cap: no page holds more
// than [Config.Capacity] cells, however wide the requested range is.
func (c *Config) Span(lo, hi int) (int, int) {
	if max := lo + c.Capacity() - 1; hi > max {
		hi = max
	}
	return lo, hi
}

// GridTop is the y coordinate of the top edge of row 0.
func (c *Config) GridTop() float64 {
	return c.PageHeight - 0.9*Inch
}

// CellOrigin returns the top-left corner of the cell for the given
// code point.  lo is the first code point of the page; cells fill the
// grid row by row, with row 0 at the top of the page.
func (c *Config) CellOrigin(lo, code int) (x, y float64) {
	row := (code - lo) / c.Cols
	col := (code - lo) % c.Cols
	x = c.Margin + float64(col)*c.CellSize
	y = c.GridTop() - float64(row)*c.CellSize
	return x, y
}
