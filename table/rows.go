// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"strings"
)

// AddRow appends a row of cells, widening column types and extending
// the null caches in the same pass. This is the bulk-loader path: type
// inference and null tracking are combined inline here rather than via
// a separate [Table.UpdateStats]. A row may have fewer cells than
// columns (the missing trailing cells read as null) but never more.
func (dt *Table) AddRow(cells []string) error {
	if len(cells) > len(dt.Names) {
		return fmt.Errorf("table: AddRow with %d cells for %d columns: %w",
			len(cells), len(dt.Names), ErrSchemaMismatch)
	}
	ri := len(dt.Rows)
	dt.Rows = append(dt.Rows, slices.Clone(cells))
	for ci, cell := range cells {
		if cell == "" {
			dt.NullPositions[ci] = append(dt.NullPositions[ci], ri)
			continue
		}
		dt.NonNullCounts[ci]++
		if t := InferType(cell); t > dt.Types[ci] {
			dt.Types[ci] = t
		}
	}
	return nil
}

// DropRow removes the row at the given index, in place.
func (dt *Table) DropRow(idx int) error {
	if idx < 0 || idx >= len(dt.Rows) {
		return fmt.Errorf("table: DropRow %d of %d: %w", idx, len(dt.Rows), ErrIndexOutOfRange)
	}
	dt.Rows = slices.Delete(dt.Rows, idx, idx+1)
	dt.UpdateStats()
	return nil
}

// DropRows removes the given rows, in place. Indices are processed in
// descending order so earlier deletions do not shift later ones.
func (dt *Table) DropRows(indices []int) error {
	sorted := slices.Clone(indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		if err := dt.DropRow(idx); err != nil {
			return err
		}
	}
	return nil
}

// Head returns a new table with the first n rows. n is clamped to
// [0, NumRows].
func (dt *Table) Head(n int) *Table {
	n = max(0, min(n, len(dt.Rows)))
	nt := dt.newLike()
	for _, row := range dt.Rows[:n] {
		nt.Rows = append(nt.Rows, slices.Clone(row))
	}
	nt.UpdateStats()
	return nt
}

// Tail returns a new table with the last n rows. n is clamped to
// [0, NumRows].
func (dt *Table) Tail(n int) *Table {
	n = max(0, min(n, len(dt.Rows)))
	nt := dt.newLike()
	for _, row := range dt.Rows[len(dt.Rows)-n:] {
		nt.Rows = append(nt.Rows, slices.Clone(row))
	}
	nt.UpdateStats()
	return nt
}

// Filter returns a new table with schema copied and only the rows for
// which cond returns true, preserving original order.
func (dt *Table) Filter(cond func(row []string) bool) *Table {
	nt := dt.newLike()
	for _, row := range dt.Rows {
		if cond(row) {
			nt.Rows = append(nt.Rows, slices.Clone(row))
		}
	}
	nt.UpdateStats()
	return nt
}

// FilterEqual returns the rows whose cell in the named column equals
// the given value. Ragged rows shorter than the column never match.
func (dt *Table) FilterEqual(column, value string) (*Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	return dt.Filter(func(row []string) bool {
		return ci < len(row) && row[ci] == value
	}), nil
}

// Query evaluates a minimal three-token expression of the form
// "<column> <operator> <value>". Only "==" is supported; expressions
// that cannot be parsed return an unfiltered copy, by contract.
func (dt *Table) Query(expr string) *Table {
	tokens := strings.Fields(expr)
	if len(tokens) >= 3 && tokens[1] == "==" {
		if nt, err := dt.FilterEqual(tokens[0], tokens[2]); err == nil {
			return nt
		}
	}
	return dt.Clone()
}

// Sample returns n rows drawn at random, with or without replacement.
// Without replacement, asking for the whole table or more returns a
// full copy. n below 0 reads as 0, and sampling an empty table with
// replacement returns an empty copy.
func (dt *Table) Sample(n int, replace bool) *Table {
	n = max(0, n)
	if len(dt.Rows) == 0 || (!replace && n >= len(dt.Rows)) {
		return dt.Clone()
	}
	nt := dt.newLike()
	if replace {
		for i := 0; i < n; i++ {
			idx := rand.Intn(len(dt.Rows))
			nt.Rows = append(nt.Rows, slices.Clone(dt.Rows[idx]))
		}
	} else {
		perm := rand.Perm(len(dt.Rows))
		for _, idx := range perm[:n] {
			nt.Rows = append(nt.Rows, slices.Clone(dt.Rows[idx]))
		}
	}
	nt.UpdateStats()
	return nt
}

// topRows returns up to n source rows ordered by the numeric value of
// the given column; rows whose cell is null or unparseable are skipped.
func (dt *Table) topRows(n int, column string, descending bool) (*Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	type valRow struct {
		val float64
		idx int
	}
	var vals []valRow
	for ri, row := range dt.Rows {
		if ci >= len(row) {
			continue
		}
		if v, ok := ParseFloat(row[ci]); ok {
			vals = append(vals, valRow{v, ri})
		}
	}
	slices.SortStableFunc(vals, func(a, b valRow) int {
		switch {
		case a.val < b.val:
			if descending {
				return 1
			}
			return -1
		case a.val > b.val:
			if descending {
				return -1
			}
			return 1
		}
		return 0
	})
	nt := dt.newLike()
	for _, vr := range vals[:min(n, len(vals))] {
		nt.Rows = append(nt.Rows, slices.Clone(dt.Rows[vr.idx]))
	}
	nt.UpdateStats()
	return nt, nil
}

// NLargest returns the n rows with the largest numeric values in the
// given column.
func (dt *Table) NLargest(n int, column string) (*Table, error) {
	return dt.topRows(n, column, true)
}

// NSmallest returns the n rows with the smallest numeric values in the
// given column.
func (dt *Table) NSmallest(n int, column string) (*Table, error) {
	return dt.topRows(n, column, false)
}
