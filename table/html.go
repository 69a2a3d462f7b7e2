// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"html"
	"io"
	"log"
	"os"
)

// SaveHTML writes the table to a file as a styled standalone HTML page.
func (dt *Table) SaveHTML(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := dt.WriteHTML(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteHTML writes the table as an HTML page with a single bordered
// table element. Cell text is escaped; empty cells render empty.
func (dt *Table) WriteHTML(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`<!DOCTYPE html>
<html>
<head>
<style>
table { border-collapse: collapse; font-family: sans-serif; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
th { background-color: #eee; }
</style>
</head>
<body>
<table>
<tr>`)
	for _, name := range dt.Names {
		bw.WriteString("<th>")
		bw.WriteString(html.EscapeString(name))
		bw.WriteString("</th>")
	}
	bw.WriteString("</tr>\n")
	nc := dt.NumColumns()
	for _, row := range dt.Rows {
		bw.WriteString("<tr>")
		for ci := 0; ci < nc; ci++ {
			cell := ""
			if ci < len(row) {
				cell = row[ci]
			}
			bw.WriteString("<td>")
			bw.WriteString(html.EscapeString(cell))
			bw.WriteString("</td>")
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table>\n</body>\n</html>\n")
	return bw.Flush()
}
