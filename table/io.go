// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Delims are standard delimiter options for reading and writing
// delimited text (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect reads the first line and detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return ','
}

// OpenCSV reads delimited text from the given file into the table,
// replacing any existing content.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads delimited text into the table, replacing any existing
// content. The first record is the header: fields are trimmed, and an
// empty header field keeps its position as an empty-named column so
// later cells stay under their own columns. Data rows are padded or
// truncated to the header arity, so malformed input degrades via the
// ragged-row policy rather than failing. Column types widen and the
// null caches build in the same single pass as the load.
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	br := bufio.NewReader(r)
	if delim == Detect {
		peek, err := br.Peek(1024)
		if err != nil && err != io.EOF {
			return err
		}
		line, _, _ := strings.Cut(string(peek), "\n")
		if strings.ContainsRune(line, '\t') {
			delim = Tab
		} else {
			delim = Comma
		}
	}
	cr := csv.NewReader(br)
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1 // ragged rows are tolerated

	header, err := cr.Read()
	if err == io.EOF {
		*dt = *New()
		return nil
	}
	if err != nil {
		return fmt.Errorf("table: ReadCSV header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}
	*dt = *NewWithColumns(names...)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("table: ReadCSV row %d: %w", len(dt.Rows), err)
		}
		row := make([]string, len(names))
		for i := range row {
			if i < len(rec) {
				row[i] = strings.TrimSpace(rec[i])
			}
		}
		if err := dt.AddRow(row); err != nil {
			return err
		}
	}
	return nil
}

// SaveCSV writes the table to a delimited text file.
func (dt *Table) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := dt.WriteCSV(bw, delim); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes the table as delimited text: a header record of the
// column names, then one record per row with ragged rows padded to full
// width so the output round-trips through [Table.ReadCSV].
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write(dt.Names); err != nil {
		return err
	}
	rec := make([]string, len(dt.Names))
	for _, row := range dt.Rows {
		for ci := range rec {
			if ci < len(row) {
				rec[ci] = row[ci]
			} else {
				rec[ci] = ""
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
