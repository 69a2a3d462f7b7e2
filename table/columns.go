// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
)

// Columns returns a copy of the ordered column names.
func (dt *Table) Columns() []string {
	return slices.Clone(dt.Names)
}

// Column returns the cells of the first column with the given name,
// reading "" at positions where a ragged row is shorter than the column.
func (dt *Table) Column(name string) ([]string, error) {
	ci, err := dt.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return dt.ColumnAt(ci)
}

// ColumnAt returns the cells of the column at the given index.
func (dt *Table) ColumnAt(idx int) ([]string, error) {
	if idx < 0 || idx >= len(dt.Names) {
		return nil, fmt.Errorf("table: column index %d: %w", idx, ErrIndexOutOfRange)
	}
	col := make([]string, len(dt.Rows))
	for ri, row := range dt.Rows {
		if idx < len(row) {
			col[ri] = row[idx]
		}
	}
	return col, nil
}

// inferColumnType widens from Int over the non-null values.
func inferColumnType(values []string) DataType {
	typ := Int
	for _, v := range values {
		if v == "" {
			continue
		}
		if t := InferType(v); t > typ {
			typ = t
		}
	}
	return typ
}

// AddColumn appends a new column with the given values, one per
// existing row. The column type is inferred from the values and the
// null caches are extended in the same pass.
func (dt *Table) AddColumn(name string, values []string) error {
	if len(values) != len(dt.Rows) {
		return fmt.Errorf("table: AddColumn %q: %d values for %d rows: %w",
			name, len(values), len(dt.Rows), ErrSchemaMismatch)
	}
	dt.Names = append(dt.Names, name)
	dt.Types = append(dt.Types, inferColumnType(values))
	dt.NonNullCounts = append(dt.NonNullCounts, 0)
	dt.NullPositions = append(dt.NullPositions, nil)

	ci := len(dt.Names) - 1
	padded := false
	for ri := range dt.Rows {
		// pad ragged rows so the new column lands at its index
		for len(dt.Rows[ri]) < ci {
			dt.Rows[ri] = append(dt.Rows[ri], "")
			padded = true
		}
		dt.Rows[ri] = append(dt.Rows[ri], values[ri])
		if values[ri] == "" {
			dt.NullPositions[ci] = append(dt.NullPositions[ci], ri)
		} else {
			dt.NonNullCounts[ci]++
		}
	}
	if padded {
		// padding turned ragged gaps into real null cells in earlier columns
		dt.UpdateStats()
	}
	return nil
}

// InsertColumn inserts a new column at the given position, shifting
// later columns right. Values must have one entry per row.
func (dt *Table) InsertColumn(pos int, name string, values []string) error {
	if pos < 0 || pos > len(dt.Names) {
		return fmt.Errorf("table: InsertColumn at %d of %d: %w", pos, len(dt.Names), ErrIndexOutOfRange)
	}
	if len(values) != len(dt.Rows) {
		return fmt.Errorf("table: InsertColumn %q: %d values for %d rows: %w",
			name, len(values), len(dt.Rows), ErrSchemaMismatch)
	}
	dt.Names = slices.Insert(dt.Names, pos, name)
	dt.Types = slices.Insert(dt.Types, pos, inferColumnType(values))
	for ri := range dt.Rows {
		for len(dt.Rows[ri]) < pos {
			dt.Rows[ri] = append(dt.Rows[ri], "")
		}
		dt.Rows[ri] = slices.Insert(dt.Rows[ri], pos, values[ri])
	}
	dt.UpdateStats()
	return nil
}

// DeleteColumn removes the first column with the given name.
func (dt *Table) DeleteColumn(name string) error {
	ci, err := dt.ColumnIndex(name)
	if err != nil {
		return err
	}
	dt.Names = slices.Delete(dt.Names, ci, ci+1)
	dt.Types = slices.Delete(dt.Types, ci, ci+1)
	for ri := range dt.Rows {
		if ci < len(dt.Rows[ri]) {
			dt.Rows[ri] = slices.Delete(dt.Rows[ri], ci, ci+1)
		}
	}
	dt.UpdateStats()
	return nil
}

// DeleteColumns removes each named column in order.
func (dt *Table) DeleteColumns(names ...string) error {
	for _, nm := range names {
		if err := dt.DeleteColumn(nm); err != nil {
			return err
		}
	}
	return nil
}

// RenameColumn renames the first column with the old name.
func (dt *Table) RenameColumn(old, new string) error {
	ci, err := dt.ColumnIndex(old)
	if err != nil {
		return err
	}
	dt.Names[ci] = new
	return nil
}

// RenameColumns applies a name mapping; unknown old names are an error.
func (dt *Table) RenameColumns(mapping map[string]string) error {
	olds := make([]string, 0, len(mapping))
	for old := range mapping {
		olds = append(olds, old)
	}
	slices.Sort(olds)
	for _, old := range olds {
		if err := dt.RenameColumn(old, mapping[old]); err != nil {
			return err
		}
	}
	return nil
}
