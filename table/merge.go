// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
)

// Join semantics for [Table.Merge] and [Table.MergeOn].
const (
	// Inner emits one output row per matching key pair; duplicate keys
	// on either side produce a row per pairing (cross-product within
	// equal keys).
	Inner = "inner"

	// Left additionally emits every left row with no match, with the
	// right-side columns filled with "".
	Left = "left"
)

// Merge joins this table with another on a single key column from each
// side. The right-side key column is excluded from the output schema.
// Matching is exact cell-text equality via nested scans, so duplicate
// keys multiply. how is [Inner] or [Left].
func (dt *Table) Merge(other *Table, leftCol, rightCol, how string) (*Table, error) {
	lci, err := dt.ColumnIndex(leftCol)
	if err != nil {
		return nil, err
	}
	rci, err := other.ColumnIndex(rightCol)
	if err != nil {
		return nil, err
	}
	return dt.mergeIndexed(other, []int{lci}, []int{rci}, how)
}

// MergeOn joins on the ordered tuple of key columns named in on, which
// must exist on both sides. Key tuples compare by exact cell equality;
// missing cells in ragged rows compare as "".
func (dt *Table) MergeOn(other *Table, on []string, how string) (*Table, error) {
	var lcis, rcis []int
	for _, nm := range on {
		lci, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, err
		}
		rci, err := other.ColumnIndex(nm)
		if err != nil {
			return nil, err
		}
		lcis = append(lcis, lci)
		rcis = append(rcis, rci)
	}
	return dt.mergeIndexed(other, lcis, rcis, how)
}

func (dt *Table) mergeIndexed(other *Table, lcis, rcis []int, how string) (*Table, error) {
	if how != Inner && how != Left {
		return nil, fmt.Errorf("table: merge how %q: %w", how, ErrInvalidArgument)
	}
	nt := New()
	nt.Names = slices.Clone(dt.Names)
	nt.Types = slices.Clone(dt.Types)
	for ci, nm := range other.Names {
		if !slices.Contains(rcis, ci) {
			nt.Names = append(nt.Names, nm)
			nt.Types = append(nt.Types, other.Types[ci])
		}
	}

	rightWidth := len(other.Names) - len(rcis)
	for _, lrow := range dt.Rows {
		lkey := projectionKey(lrow, lcis)
		matched := false
		for _, rrow := range other.Rows {
			if projectionKey(rrow, rcis) != lkey {
				continue
			}
			matched = true
			merged := make([]string, 0, len(nt.Names))
			merged = append(merged, lrow...)
			for len(merged) < len(dt.Names) {
				merged = append(merged, "")
			}
			for ci := range other.Names {
				if slices.Contains(rcis, ci) {
					continue
				}
				if ci < len(rrow) {
					merged = append(merged, rrow[ci])
				} else {
					merged = append(merged, "")
				}
			}
			nt.Rows = append(nt.Rows, merged)
		}
		if !matched && how == Left {
			merged := make([]string, 0, len(nt.Names))
			merged = append(merged, lrow...)
			for len(merged) < len(dt.Names)+rightWidth {
				merged = append(merged, "")
			}
			nt.Rows = append(nt.Rows, merged)
		}
	}
	nt.UpdateStats()
	return nt, nil
}

// Concat concatenates tables along an axis. Axis 0 stacks rows and
// requires every input to have an identical column-name sequence; axis
// 1 appends columns cell-wise and requires identical row counts.
// ignoreIndex is accepted for signature compatibility; rows are always
// numbered positionally.
func Concat(tables []*Table, axis int, ignoreIndex bool) (*Table, error) {
	if len(tables) == 0 {
		return New(), nil
	}
	nt := tables[0].Clone()
	switch axis {
	case 0:
		for _, dt := range tables[1:] {
			if !slices.Equal(dt.Names, nt.Names) {
				return nil, fmt.Errorf("table: Concat axis 0 column names differ: %w", ErrSchemaMismatch)
			}
			for _, row := range dt.Rows {
				nt.Rows = append(nt.Rows, slices.Clone(row))
			}
		}
	case 1:
		for _, dt := range tables[1:] {
			if len(dt.Rows) != len(nt.Rows) {
				return nil, fmt.Errorf("table: Concat axis 1 row counts %d != %d: %w",
					len(dt.Rows), len(nt.Rows), ErrSchemaMismatch)
			}
			nt.Names = append(nt.Names, dt.Names...)
			nt.Types = append(nt.Types, dt.Types...)
			for ri := range nt.Rows {
				// align to this table's full width before appending so
				// the new cells land under their own columns
				for len(nt.Rows[ri]) < len(nt.Names)-len(dt.Names) {
					nt.Rows[ri] = append(nt.Rows[ri], "")
				}
				nt.Rows[ri] = append(nt.Rows[ri], dt.Rows[ri]...)
			}
		}
	default:
		return nil, fmt.Errorf("table: Concat axis %d: %w", axis, ErrInvalidArgument)
	}
	nt.UpdateStats()
	return nt, nil
}

// Join aligns another table positionally, appending its columns row by
// row. With how [Left], left rows beyond the other table's length are
// padded with ""; otherwise the overlap length is used as is.
func (dt *Table) Join(other *Table, how string) (*Table, error) {
	nt := dt.Clone()
	nt.Names = append(nt.Names, other.Names...)
	nt.Types = append(nt.Types, other.Types...)

	leftWidth := len(dt.Names)
	n := min(len(dt.Rows), len(other.Rows))
	for i := 0; i < n; i++ {
		for len(nt.Rows[i]) < leftWidth {
			nt.Rows[i] = append(nt.Rows[i], "")
		}
		nt.Rows[i] = append(nt.Rows[i], other.Rows[i]...)
	}
	if how == Left {
		for i := n; i < len(dt.Rows); i++ {
			for len(nt.Rows[i]) < leftWidth+len(other.Names) {
				nt.Rows[i] = append(nt.Rows[i], "")
			}
		}
	}
	nt.UpdateStats()
	return nt, nil
}
