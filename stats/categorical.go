// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// Mode returns the most frequent non-null cell value of a column. It
// operates on raw text, so it works for any column type. Ties break to
// the value whose count reached the maximum first in insertion order.
func Mode(dt *table.Table, column string) (string, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return "", err
	}
	counts := map[string]int{}
	var order []string
	for _, row := range dt.Rows {
		if ci >= len(row) || row[ci] == "" {
			continue
		}
		if _, seen := counts[row[ci]]; !seen {
			order = append(order, row[ci])
		}
		counts[row[ci]]++
	}
	if len(order) == 0 {
		return "", fmt.Errorf("stats: column %q has no values: %w", column, table.ErrEmptyColumn)
	}
	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, nil
}

// Unique returns the distinct non-null cell values of a column,
// sorted.
func Unique(dt *table.Table, column string) ([]string, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var vals []string
	for _, row := range dt.Rows {
		if ci < len(row) && row[ci] != "" && !seen[row[ci]] {
			seen[row[ci]] = true
			vals = append(vals, row[ci])
		}
	}
	slices.Sort(vals)
	return vals, nil
}

// NUnique returns the number of distinct non-null cell values of a
// column.
func NUnique(dt *table.Table, column string) (int, error) {
	vals, err := Unique(dt, column)
	if err != nil {
		return 0, err
	}
	return len(vals), nil
}

// ValueCounts returns a two-column table of the distinct non-null
// values of a column and their frequencies, most frequent first, ties
// in sorted value order.
func ValueCounts(dt *table.Table, column string) (*table.Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, row := range dt.Rows {
		if ci < len(row) && row[ci] != "" {
			counts[row[ci]]++
		}
	}
	vals := make([]string, 0, len(counts))
	for v := range counts {
		vals = append(vals, v)
	}
	slices.SortFunc(vals, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return strings.Compare(a, b)
	})
	nt := table.NewWithColumns(column, "count")
	for _, v := range vals {
		if err := nt.AddRow([]string{v, strconv.Itoa(counts[v])}); err != nil {
			return nil, err
		}
	}
	return nt, nil
}
