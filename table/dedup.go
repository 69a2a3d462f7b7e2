// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"slices"
	"strings"
)

// projectionKey joins the subset cells of a row into a single map key.
// \x1f (unit separator) does not occur in field text, so the join is
// unambiguous.
func projectionKey(row []string, cis []int) string {
	parts := make([]string, len(cis))
	for i, ci := range cis {
		if ci < len(row) {
			parts[i] = row[ci]
		}
	}
	return strings.Join(parts, "\x1f")
}

// Duplicated reports, per row, whether its projection onto the subset
// columns (all columns when the subset is empty) exactly matches an
// earlier-seen projection. With keepFirst false the scan runs in
// reverse, so the last occurrence is the one kept.
func (dt *Table) Duplicated(subset []string, keepFirst bool) ([]bool, error) {
	var cis []int
	if len(subset) == 0 {
		for i := range dt.Names {
			cis = append(cis, i)
		}
	} else {
		for _, nm := range subset {
			ci, err := dt.ColumnIndex(nm)
			if err != nil {
				return nil, err
			}
			cis = append(cis, ci)
		}
	}
	dup := make([]bool, len(dt.Rows))
	seen := map[string]bool{}
	if keepFirst {
		for ri, row := range dt.Rows {
			key := projectionKey(row, cis)
			if seen[key] {
				dup[ri] = true
			} else {
				seen[key] = true
			}
		}
	} else {
		for ri := len(dt.Rows) - 1; ri >= 0; ri-- {
			key := projectionKey(dt.Rows[ri], cis)
			if seen[key] {
				dup[ri] = true
			} else {
				seen[key] = true
			}
		}
	}
	return dup, nil
}

// DropDuplicates returns a new table without the rows [Table.Duplicated]
// marks as duplicates.
func (dt *Table) DropDuplicates(subset []string, keepFirst bool) (*Table, error) {
	dup, err := dt.Duplicated(subset, keepFirst)
	if err != nil {
		return nil, err
	}
	nt := dt.newLike()
	for ri, row := range dt.Rows {
		if !dup[ri] {
			nt.Rows = append(nt.Rows, slices.Clone(row))
		}
	}
	nt.UpdateStats()
	return nt, nil
}
