// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
	"strconv"
)

// LabelEncode replaces the values of a string column, in place, with
// integer codes assigned in first-seen order. The column type becomes
// Int; nulls stay null.
func (dt *Table) LabelEncode(column string) error {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return err
	}
	if dt.Types[ci] != String {
		return fmt.Errorf("table: LabelEncode %q on %s column: %w", column, dt.Types[ci], ErrNotNumeric)
	}
	labels := map[string]int{}
	next := 0
	for ri := range dt.Rows {
		row := dt.Rows[ri]
		if ci >= len(row) || row[ci] == "" {
			continue
		}
		code, ok := labels[row[ci]]
		if !ok {
			code = next
			labels[row[ci]] = code
			next++
		}
		row[ci] = strconv.Itoa(code)
	}
	dt.Types[ci] = Int
	dt.UpdateStats()
	return nil
}

// OneHotEncode returns a copy with the string column replaced by one
// "<column>_<value>" indicator column per distinct non-null value, in
// sorted value order, holding "1" where the row had that value else "0".
func (dt *Table) OneHotEncode(column string) (*Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	if dt.Types[ci] != String {
		return nil, fmt.Errorf("table: OneHotEncode %q on %s column: %w", column, dt.Types[ci], ErrNotNumeric)
	}
	seen := map[string]bool{}
	var values []string
	for _, row := range dt.Rows {
		if ci < len(row) && row[ci] != "" && !seen[row[ci]] {
			seen[row[ci]] = true
			values = append(values, row[ci])
		}
	}
	slices.Sort(values)

	nt := dt.Clone()
	for _, val := range values {
		col := make([]string, len(dt.Rows))
		for ri, row := range dt.Rows {
			if ci < len(row) && row[ci] == val {
				col[ri] = "1"
			} else {
				col[ri] = "0"
			}
		}
		if err := nt.AddColumn(column+"_"+val, col); err != nil {
			return nil, err
		}
	}
	if err := nt.DeleteColumn(column); err != nil {
		return nil, err
	}
	return nt, nil
}

// GetDummies one-hot encodes each named column in turn.
func (dt *Table) GetDummies(columns []string) (*Table, error) {
	nt := dt.Clone()
	for _, nm := range columns {
		var err error
		nt, err = nt.OneHotEncode(nm)
		if err != nil {
			return nil, err
		}
	}
	return nt, nil
}

// Apply rewrites every cell of a column, in place, through fn. Ragged
// rows without the cell are left alone. Null cells are passed through
// fn like any other, so fn can also act as a filler.
func (dt *Table) Apply(column string, fn func(string) string) error {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return err
	}
	for ri := range dt.Rows {
		if ci < len(dt.Rows[ri]) {
			dt.Rows[ri][ci] = fn(dt.Rows[ri][ci])
		}
	}
	dt.Types[ci] = inferColumnTypeAt(dt, ci)
	dt.UpdateStats()
	return nil
}

func inferColumnTypeAt(dt *Table, ci int) DataType {
	typ := Int
	for _, row := range dt.Rows {
		if ci >= len(row) || row[ci] == "" {
			continue
		}
		if t := InferType(row[ci]); t > typ {
			typ = t
		}
	}
	return typ
}

// MapValues returns a copy with the column's cells passed through the
// mapping; cells without a mapping entry are unchanged.
func (dt *Table) MapValues(column string, mapping map[string]string) (*Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	nt := dt.Clone()
	for ri := range nt.Rows {
		if ci < len(nt.Rows[ri]) {
			if mapped, ok := mapping[nt.Rows[ri][ci]]; ok {
				nt.Rows[ri][ci] = mapped
			}
		}
	}
	nt.UpdateStats()
	return nt, nil
}

// Where returns a copy in which every cell of each row failing cond is
// replaced with the other value.
func (dt *Table) Where(cond func(row []string) bool, other string) *Table {
	nt := dt.Clone()
	for ri, row := range dt.Rows {
		if cond(row) {
			continue
		}
		for ci := range nt.Rows[ri] {
			nt.Rows[ri][ci] = other
		}
	}
	nt.UpdateStats()
	return nt
}

// AsType overrides the inferred type of a column. The cells themselves
// are untouched; this only changes how consumers such as the JSON
// writer treat the column.
func (dt *Table) AsType(column string, typ DataType) error {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return err
	}
	dt.Types[ci] = typ
	return nil
}

// ResetIndex returns a copy with an "index" column of positional row
// numbers inserted at the front, unless drop is true, in which case the
// copy is returned unchanged.
func (dt *Table) ResetIndex(drop bool) (*Table, error) {
	nt := dt.Clone()
	if drop {
		return nt, nil
	}
	idx := make([]string, len(dt.Rows))
	for i := range idx {
		idx[i] = strconv.Itoa(i)
	}
	if err := nt.InsertColumn(0, "index", idx); err != nil {
		return nil, err
	}
	return nt, nil
}
