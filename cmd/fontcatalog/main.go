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

// Fontcatalog writes a PDF showing the character grids of all fonts
// installed by ArcGIS.  Every font gets two pages: code points 32-255
// with key-name, decimal and hex annotations, and code points 256-511
// with Unicode-id and decimal annotations.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/fontcatalog/catalog"
	"seehuhn.de/go/fontcatalog/grid"
	"seehuhn.de/go/fontcatalog/scan"
)

var (
	outName = flag.String("o", `C:\Temp\ESRI_Font_Character_Catalog.pdf`,
		"name of the PDF file to write")
	fontDirs = flag.String("d", "",
		"comma-separated list of font directories (default: the ArcGIS install locations)")
)

func main() {
	flag.Parse()

	roots := candidateDirs()
	if *fontDirs != "" {
		roots = strings.Split(*fontDirs, ",")
	}

	err := run(roots, *outName)
	if err != nil {
		log.Fatal(err)
	}
}

// run writes the catalog for the fonts below roots to outName.  When
// no fonts are found, it returns an error before any file is created.
func run(roots []string, outName string) error {
	fmt.Println("scanning for fonts ...")
	for _, root := range roots {
		fmt.Println("  " + root)
	}
	fonts, err := scan.Dirs(roots, scan.DefaultPatterns)
	if err != nil {
		return err
	}
	names := fonts.Names()
	fmt.Printf("found %d fonts\n\n", len(names))
	if len(names) == 0 {
		return fmt.Errorf("no fonts found in %s", strings.Join(roots, ", "))
	}

	if dir := filepath.Dir(outName); dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return err
		}
	}

	cfg := grid.Default()
	paper := &pdf.Rectangle{URx: cfg.PageWidth, URy: cfg.PageHeight}
	doc, err := document.CreateMultiPage(outName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	c := catalog.NewComposer(doc, cfg, len(names))

	done := 0
	for i, name := range names {
		fmt.Printf("processing %d/%d: %s\n", i+1, len(names), name)
		_, err := c.AddFont(name, fonts[name])
		if err != nil {
			log.Printf("%s: %v", name, err)
			continue
		}
		done++
	}

	err = doc.Close()
	if err != nil {
		return err
	}

	fmt.Println("\nwrote", outName)
	fmt.Printf("fonts processed: %d of %d\n", done, len(names))
	fmt.Printf("pages written: %d\n", c.PagesWritten())
	return nil
}

// candidateDirs lists the directories ArcGIS installs fonts into.
// The Pro directory is preferred over the Desktop fallback.
func candidateDirs() []string {
	programFiles := os.Getenv("PROGRAMFILES")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	return []string{
		`C:\Program Files\ArcGIS\Pro\Resources\Fonts`,
		`C:\Program Files (x86)\ArcGIS\Desktop10.8\Fonts`,
		filepath.Join(programFiles, "ArcGIS", "Pro", "Resources", "Fonts"),
	}
}
