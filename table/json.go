// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/goccy/go-json"
)

// OpenJSON reads a JSON array of row objects from the given file into
// the table, replacing any existing content.
func (dt *Table) OpenJSON(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	return dt.ReadJSON(bufio.NewReader(fp))
}

// ReadJSON reads a JSON array of row objects into the table, replacing
// any existing content. Columns are the keys of the first object in
// sorted order; later objects may carry any subset of them, with
// missing or null values stored as empty cells. Numbers are kept in
// their literal form so integer versus float typing survives the
// round trip.
func (dt *Table) ReadJSON(r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var recs []map[string]any
	if err := dec.Decode(&recs); err != nil {
		return fmt.Errorf("table: ReadJSON: %w", err)
	}
	*dt = *New()
	if len(recs) == 0 {
		return nil
	}
	// map decoding loses key order, so columns come out sorted
	names := slices.Sorted(maps.Keys(recs[0]))
	ndt := NewWithColumns(names...)
	for _, rec := range recs {
		row := make([]string, len(names))
		for ci, name := range names {
			row[ci] = jsonCell(rec[name])
		}
		if err := ndt.AddRow(row); err != nil {
			return err
		}
	}
	*dt = *ndt
	return nil
}

func jsonCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// SaveJSON writes the table to a file as a JSON array of row objects.
func (dt *Table) SaveJSON(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := dt.WriteJSON(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteJSON writes the table as a JSON array of row objects, one object
// per row keyed by column name. Cells in numeric columns are emitted as
// bare numbers, empty cells as null, and everything else as strings.
// Numeric columns holding an unparseable cell fall back to string form
// for that cell so no data is silently dropped.
func (dt *Table) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	nc := dt.NumColumns()
	for ri, row := range dt.Rows {
		if ri > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString("\n    {")
		for ci := 0; ci < nc; ci++ {
			if ci > 0 {
				bw.WriteString(", ")
			}
			name, err := json.Marshal(dt.Names[ci])
			if err != nil {
				return err
			}
			bw.Write(name)
			bw.WriteString(": ")
			cell := ""
			if ci < len(row) {
				cell = row[ci]
			}
			bw.WriteString(jsonValue(cell, dt.Types[ci]))
		}
		bw.WriteByte('}')
	}
	if len(dt.Rows) > 0 {
		bw.WriteByte('\n')
	}
	bw.WriteByte(']')
	bw.WriteByte('\n')
	return bw.Flush()
}

func jsonValue(cell string, typ DataType) string {
	if cell == "" {
		return "null"
	}
	// a cell can parse as a float yet not be a JSON number ("inf",
	// "NaN", hex floats); such cells fall back to the quoted form
	if typ == Int || typ == Float {
		if _, ok := ParseFloat(cell); ok && json.Valid([]byte(cell)) {
			return cell
		}
	}
	b, err := json.Marshal(cell)
	if err != nil {
		return "null"
	}
	return string(b)
}
