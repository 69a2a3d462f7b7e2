// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SortColumn sorts the rows in place by the raw cell text of one
// column, ascending or descending.
func (dt *Table) SortColumn(column string, ascending bool) error {
	return dt.SortValues([]string{column}, []bool{ascending})
}

// SortValues sorts the rows in place by the raw cell text of the given
// key columns in priority order, with a per-key ascending flag. The
// comparison is lexicographic on the text, not numeric. The sort is
// stable, so rows with equal keys keep their original order; a ragged
// row shorter than a key column compares equal on that key.
func (dt *Table) SortValues(columns []string, ascending []bool) error {
	if len(columns) != len(ascending) {
		return fmt.Errorf("table: SortValues with %d columns and %d flags: %w",
			len(columns), len(ascending), ErrInvalidArgument)
	}
	cis := make([]int, len(columns))
	for i, nm := range columns {
		ci, err := dt.ColumnIndex(nm)
		if err != nil {
			return err
		}
		cis[i] = ci
	}
	slices.SortStableFunc(dt.Rows, func(a, b []string) int {
		for i, ci := range cis {
			if ci >= len(a) || ci >= len(b) {
				continue
			}
			c := strings.Compare(a[ci], b[ci])
			if c == 0 {
				continue
			}
			if !ascending[i] {
				c = -c
			}
			return c
		}
		return 0
	})
	// ordering alone does not change null topology, but the cached null
	// positions are row indices, so they must be rebuilt
	dt.UpdateStats()
	return nil
}

// SortIndex orders rows by position: descending simply reverses.
func (dt *Table) SortIndex(ascending bool) {
	if !ascending {
		slices.Reverse(dt.Rows)
	}
	dt.UpdateStats()
}

// Rank returns a copy of the table with a "<column>_rank" column
// appended. Cells are parsed numerically and ranked ascending 1..n by
// sorted position; tied values receive distinct sequential ranks, and
// null or unparseable cells get a blank rank.
func (dt *Table) Rank(column string) (*Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	if dt.Types[ci] == String {
		return nil, fmt.Errorf("table: Rank %q: %w", column, ErrNotNumeric)
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
			return -1
		case a.val > b.val:
			return 1
		}
		return 0
	})
	ranks := make([]string, len(dt.Rows))
	for i, vr := range vals {
		ranks[vr.idx] = strconv.Itoa(i + 1)
	}
	nt := dt.Clone()
	if err := nt.AddColumn(column+"_rank", ranks); err != nil {
		return nil, err
	}
	return nt, nil
}
