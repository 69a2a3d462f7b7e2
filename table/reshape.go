// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"slices"
	"strconv"
)

// Transpose returns a new table with rows and columns swapped. The new
// columns are named "row_0".."row_n-1" and typed String, since a
// transposed row mixes the source column types.
func (dt *Table) Transpose() *Table {
	nt := New()
	nt.Names = make([]string, len(dt.Rows))
	for i := range dt.Rows {
		nt.Names[i] = "row_" + strconv.Itoa(i)
	}
	nt.Types = make([]DataType, len(nt.Names))
	for i := range nt.Types {
		nt.Types[i] = String
	}
	for ci := range dt.Names {
		row := make([]string, len(dt.Rows))
		for ri := range dt.Rows {
			if ci < len(dt.Rows[ri]) {
				row[ri] = dt.Rows[ri][ci]
			}
		}
		nt.Rows = append(nt.Rows, row)
	}
	nt.UpdateStats()
	return nt
}

// Stack reshapes the table into long form with one output row per
// (row, column) cell, carrying the row position in "level_0", the
// column name in "level_1", and the cell in "value".
func (dt *Table) Stack() *Table {
	nt := New()
	nt.Names = []string{"level_0", "level_1", "value"}
	nt.Types = []DataType{Int, String, String}
	for ri, row := range dt.Rows {
		for ci, nm := range dt.Names {
			cell := ""
			if ci < len(row) {
				cell = row[ci]
			}
			nt.Rows = append(nt.Rows, []string{strconv.Itoa(ri), nm, cell})
		}
	}
	nt.UpdateStats()
	return nt
}

// Reindex returns a new table with rows drawn by position from the
// given index list; out-of-bounds positions produce all-null rows.
func (dt *Table) Reindex(index []int) *Table {
	nt := dt.newLike()
	for _, ri := range index {
		if ri >= 0 && ri < len(dt.Rows) {
			nt.Rows = append(nt.Rows, slices.Clone(dt.Rows[ri]))
		} else {
			nt.Rows = append(nt.Rows, make([]string, len(dt.Names)))
		}
	}
	nt.UpdateStats()
	return nt
}
