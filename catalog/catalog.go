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

// Package catalog renders the character-grid pages of a font catalog.
//
// Every font contributes two pages: the basic range (code points
// 32-255), annotated with key name, decimal and hex code, and the
// extended range (256-511), annotated with Unicode id and decimal
// code.  Code points the font does not cover get a muted placeholder
// dash instead of a glyph.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"

	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/embed"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fontcatalog/grid"
)

// Character ranges shown for every font.
const (
	basicLo, basicHi       = 32, 255
	extendedLo, extendedHi = 256, 511
)

// CellResult records what a single grid cell ended up showing.
type CellResult int

const (
	// CellGlyph means the font's own glyph was drawn.
	CellGlyph CellResult = iota

	// CellFallback means the code point is not covered by the font's
	// character map and the placeholder dash was drawn instead.
	CellFallback
)

// Stats counts the cells of one font which received a real glyph.
type Stats struct {
	BasicGlyphs    int
	ExtendedGlyphs int
}

// Composer writes per-font catalog pages into an open document.
type Composer struct {
	cfg *grid.Config
	doc *document.MultiPage

	title font.Layouter // Helvetica-Bold, headers and key labels
	body  font.Layouter // Helvetica, codes, legends and placeholders

	now time.Time

	registered map[string]*catalogFont

	// pageNo advances only for pages actually composed, while
	// totalPages is fixed at twice the number of discovered fonts.
	// When a font fails to load, the numbering keeps a hole at the
	// end instead of renumbering the remaining pages.
	pageNo     int
	totalPages int
}

// NewComposer prepares a composer writing to doc.  numFonts is the
// number of discovered fonts; header totals are computed from it once
// and are not corrected if some fonts later fail.
func NewComposer(doc *document.MultiPage, cfg *grid.Config, numFonts int) *Composer {
	return &Composer{
		cfg:        cfg,
		doc:        doc,
		title:      standard.HelveticaBold.New(),
		body:       standard.Helvetica.New(),
		now:        time.Now(),
		registered: make(map[string]*catalogFont),
		totalPages: 2 * numFonts,
	}
}

// PagesWritten returns the number of pages composed so far.
func (c *Composer) PagesWritten() int {
	return c.pageNo
}

// AddFont renders the two catalog pages for the font stored in fname.
// On error the font's pages are skipped; the caller decides whether
// to continue with the next font.
func (c *Composer) AddFont(name, fname string) (Stats, error) {
	var stats Stats

	cf, err := c.load(ResourceID(name), fname)
	if err != nil {
		return stats, err
	}

	stats.BasicGlyphs, err = c.writePage(cf, name, basicLo, basicHi, false)
	if err != nil {
		return stats, err
	}
	stats.ExtendedGlyphs, err = c.writePage(cf, name, extendedLo, extendedHi, true)
	if err != nil {
		return stats, err
	}
	return stats, nil
}

// ResourceID derives the registry identifier of a font: the font name
// with spaces, hyphens and dots replaced by underscores.
func ResourceID(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_", ".", "_").Replace(name)
}

// catalogFont is a font file prepared for rendering.
type catalogFont struct {
	F  font.Layouter
	cm cmap.Subtable // best cmap subtable, may be nil
}

func (cf *catalogFont) covers(r rune) bool {
	return cf.cm != nil && cf.cm.Lookup(r) != 0
}

func (c *Composer) load(id, fname string) (*catalogFont, error) {
	if cf, ok := c.registered[id]; ok {
		return cf, nil
	}

	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	F, err := embed.OpenTypeFont(info, &embed.Options{
		Language:  language.Und,
		Composite: true,
	})
	if err != nil {
		return nil, err
	}
	cm, _ := info.CMapTable.GetBest()

	cf := &catalogFont{F: F, cm: cm}
	c.registered[id] = cf
	return cf, nil
}

func (c *Composer) writePage(cf *catalogFont, name string, lo, hi int, extended bool) (int, error) {
	c.pageNo++
	page := c.doc.AddPage()

	c.header(page, name)
	c.legend(page, extended)

	lo, hi = c.cfg.Span(lo, hi)
	count := 0
	for code := lo; code <= hi; code++ {
		if c.drawCell(page, cf, lo, code, extended) == CellGlyph {
			count++
		}
	}

	err := page.Close()
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *Composer) header(page *document.Page, name string) {
	w := c.cfg.PageWidth
	h := c.cfg.PageHeight
	m := c.cfg.Margin

	page.TextBegin()
	page.TextSetFont(c.title, 14)
	page.TextFirstLine(m, h-0.3*grid.Inch)
	page.TextShow("Font: " + name)
	page.TextEnd()

	page.TextBegin()
	page.TextSetFont(c.body, 8)
	page.TextFirstLine(w-2*grid.Inch, h-0.3*grid.Inch)
	page.TextShow(fmt.Sprintf("Page %d of %d", c.pageNo, c.totalPages))
	page.TextSecondLine(m-(w-2*grid.Inch), -0.2*grid.Inch)
	page.TextShow("Generated: " + c.now.Format("2006-01-02 15:04"))
	page.TextEnd()

	page.MoveTo(m, h-0.6*grid.Inch)
	page.LineTo(w-m, h-0.6*grid.Inch)
	page.Stroke()
}

func (c *Composer) legend(page *document.Page, extended bool) {
	text := "Each cell shows: Key name (top), Decimal code, Hex code, Symbol (center)"
	if extended {
		text = "Extended Unicode (256-511) - Each cell shows: Unicode ID (top), Decimal code, Symbol (center)"
	}
	page.TextBegin()
	page.TextSetFont(c.body, 9)
	page.TextFirstLine(c.cfg.Margin, c.cfg.PageHeight-0.75*grid.Inch)
	page.TextShow(text)
	page.TextEnd()
}

func (c *Composer) drawCell(page *document.Page, cf *catalogFont, lo, code int, extended bool) CellResult {
	x, y := c.cfg.CellOrigin(lo, code)
	cell := c.cfg.CellSize

	page.PushGraphicsState()
	page.SetStrokeColor(color.DeviceRGB(0.8, 0.8, 0.8))
	page.Rectangle(x, y-cell, cell, cell)
	page.Stroke()
	page.PopGraphicsState()

	label := grid.UnicodeLabel(code)
	if !extended {
		label = grid.KeyLabel(code)
	}
	page.SetFillColor(color.DeviceGray(0.2))
	page.TextBegin()
	page.TextSetFont(c.title, c.cfg.LabelSize)
	page.TextFirstLine(x+0.03*grid.Inch, y-0.12*grid.Inch)
	page.TextShow(label)
	page.TextEnd()

	page.SetFillColor(color.DeviceGray(0.5))
	page.TextBegin()
	page.TextSetFont(c.body, c.cfg.CodeSize)
	page.TextFirstLine(x+0.03*grid.Inch, y-0.20*grid.Inch)
	page.TextShow(strconv.Itoa(code))
	if !extended {
		page.TextSecondLine(0, -0.07*grid.Inch)
		page.TextShow(grid.HexLabel(code))
	}
	page.TextEnd()

	res := CellFallback
	if cf.covers(rune(code)) {
		page.SetFillColor(color.Black)
		page.TextBegin()
		page.TextSetFont(cf.F, c.cfg.GlyphSize)
		page.TextFirstLine(x, y-cell+0.15*grid.Inch)
		page.TextShowAligned(string(rune(code)), cell, 0.5)
		page.TextEnd()
		res = CellGlyph
	} else {
		page.SetFillColor(color.DeviceGray(0.8))
		page.TextBegin()
		page.TextSetFont(c.body, 8)
		page.TextFirstLine(x, y-cell+0.15*grid.Inch)
		page.TextShowAligned("—", cell, 0.5)
		page.TextEnd()
	}
	page.SetFillColor(color.Black)

	return res
}
