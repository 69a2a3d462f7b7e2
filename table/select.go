// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "fmt"

// At returns the cell at the given row and named column, or "" when
// the row is ragged and shorter than the column index.
func (dt *Table) At(row int, column string) (string, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return "", err
	}
	return dt.IAt(row, ci)
}

// IAt returns the cell at the given row and column positions. The row
// and column index must be within the table's bounds; a ragged row that
// is merely shorter than the column index reads "".
func (dt *Table) IAt(row, col int) (string, error) {
	if row < 0 || row >= len(dt.Rows) {
		return "", fmt.Errorf("table: row %d of %d: %w", row, len(dt.Rows), ErrIndexOutOfRange)
	}
	if col < 0 || col >= len(dt.Names) {
		return "", fmt.Errorf("table: column %d of %d: %w", col, len(dt.Names), ErrIndexOutOfRange)
	}
	if col < len(dt.Rows[row]) {
		return dt.Rows[row][col], nil
	}
	return "", nil
}

// Loc builds a new table containing exactly the requested rows (in the
// requested order, duplicates allowed) and the named columns. Row
// indices beyond the table are skipped; missing cells become "".
// An unknown column name is an error.
func (dt *Table) Loc(rows []int, columns []string) (*Table, error) {
	cis := make([]int, len(columns))
	for i, nm := range columns {
		ci, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, err
		}
		cis[i] = ci
	}
	nt := New()
	for i, nm := range columns {
		nt.Names = append(nt.Names, nm)
		nt.Types = append(nt.Types, dt.Types[cis[i]])
	}
	dt.selectInto(nt, rows, cis)
	return nt, nil
}

// ILoc is the positional form of [Table.Loc]: row and column indices
// out of bounds are silently skipped.
func (dt *Table) ILoc(rows, columns []int) *Table {
	nt := New()
	var cis []int
	for _, ci := range columns {
		if ci >= 0 && ci < len(dt.Names) {
			nt.Names = append(nt.Names, dt.Names[ci])
			nt.Types = append(nt.Types, dt.Types[ci])
			cis = append(cis, ci)
		}
	}
	dt.selectInto(nt, rows, cis)
	return nt
}

func (dt *Table) selectInto(nt *Table, rows, cis []int) {
	for _, ri := range rows {
		if ri < 0 || ri >= len(dt.Rows) {
			continue
		}
		row := make([]string, len(cis))
		for i, ci := range cis {
			if ci < len(dt.Rows[ri]) {
				row[i] = dt.Rows[ri][ci]
			}
		}
		nt.Rows = append(nt.Rows, row)
	}
	nt.UpdateStats()
}
