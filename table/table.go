// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements an in-memory, column-typed table backed by
// textual cell storage. Every cell is raw text and the empty string
// denotes null; column types are inferred over the non-null cells.
// Producing operations return a new, structurally independent Table;
// the small set of in-place mutators (sort, fill, drop-row, add-column,
// label-encode) end by restoring the per-column null-tracking caches.
package table

import (
	"fmt"
	"slices"
	"strings"
)

// Table is a two-dimensional table of textual cells aligned by a shared
// ordered list of column names. Rows may be ragged: a row with fewer
// cells than columns reads "" (null) at the missing positions, but a
// row never has more cells than columns. Duplicate column names are
// permitted; name lookups return the first match.
type Table struct {
	// Names is the ordered list of column names.
	Names []string

	// Rows holds the cell grid, one inner slice per row.
	Rows [][]string

	// Types holds the inferred [DataType] per column.
	Types []DataType

	// NonNullCounts caches the number of non-null cells per column.
	// It is derived entirely from Rows and rebuilt by [Table.UpdateStats].
	NonNullCounts []int

	// NullPositions caches the ordered row indices of null cells per
	// column. Like NonNullCounts it is a cache, not a source of truth.
	NullPositions [][]int
}

// New returns a new empty Table.
func New() *Table {
	return &Table{}
}

// NewWithColumns returns a new Table with the given column names and no
// rows. Column types start at Int and widen as rows are added through
// [Table.AddRow].
func NewWithColumns(names ...string) *Table {
	return &Table{
		Names:         slices.Clone(names),
		Types:         make([]DataType, len(names)),
		NonNullCounts: make([]int, len(names)),
		NullPositions: make([][]int, len(names)),
	}
}

// newLike returns an empty Table sharing this table's schema (copied
// names and types), the common starting point of derivation operations.
func (dt *Table) newLike() *Table {
	return &Table{
		Names: slices.Clone(dt.Names),
		Types: slices.Clone(dt.Types),
	}
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return len(dt.Rows) }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return len(dt.Names) }

// Shape returns the (rows, columns) dimensions.
func (dt *Table) Shape() (int, int) { return len(dt.Rows), len(dt.Names) }

// IsEmpty reports whether the table has no rows or no columns.
func (dt *Table) IsEmpty() bool {
	return len(dt.Rows) == 0 || len(dt.Names) == 0
}

// ColumnIndex returns the index of the first column with the given
// name, or [ErrColumnNotFound].
func (dt *Table) ColumnIndex(name string) (int, error) {
	for i, nm := range dt.Names {
		if nm == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("table: column %q: %w", name, ErrColumnNotFound)
}

// UpdateStats rebuilds the NonNullCounts and NullPositions caches by
// scanning every row. Every mutating operation and every constructor of
// a derived table calls this before returning; it is idempotent and
// safe to call at any time. Cells beyond a ragged row's length are not
// counted as null.
func (dt *Table) UpdateStats() {
	nc := len(dt.Names)
	dt.NonNullCounts = make([]int, nc)
	dt.NullPositions = make([][]int, nc)
	for ri, row := range dt.Rows {
		for ci := 0; ci < nc && ci < len(row); ci++ {
			if row[ci] == "" {
				dt.NullPositions[ci] = append(dt.NullPositions[ci], ri)
			} else {
				dt.NonNullCounts[ci]++
			}
		}
	}
}

// Validate checks the structural invariants: per-column metadata slices
// all have one entry per column, and no row is longer than the column
// list. Ragged (shorter) rows are valid.
func (dt *Table) Validate() error {
	nc := len(dt.Names)
	if len(dt.Types) != nc {
		return fmt.Errorf("table: %d types for %d columns: %w", len(dt.Types), nc, ErrSchemaMismatch)
	}
	if len(dt.NonNullCounts) != nc || len(dt.NullPositions) != nc {
		return fmt.Errorf("table: cache sizes %d/%d for %d columns: %w",
			len(dt.NonNullCounts), len(dt.NullPositions), nc, ErrSchemaMismatch)
	}
	for ri, row := range dt.Rows {
		if len(row) > nc {
			return fmt.Errorf("table: row %d has %d cells for %d columns: %w", ri, len(row), nc, ErrSchemaMismatch)
		}
	}
	return nil
}

// Clone returns a complete structurally independent copy of the table.
func (dt *Table) Clone() *Table {
	cp := &Table{
		Names:         slices.Clone(dt.Names),
		Types:         slices.Clone(dt.Types),
		NonNullCounts: slices.Clone(dt.NonNullCounts),
		Rows:          make([][]string, len(dt.Rows)),
		NullPositions: make([][]int, len(dt.NullPositions)),
	}
	for i, row := range dt.Rows {
		cp.Rows[i] = slices.Clone(row)
	}
	for i, np := range dt.NullPositions {
		cp.NullPositions[i] = slices.Clone(np)
	}
	return cp
}

// Equals reports whether two tables have identical column names, cell
// values, and column types. The caches are derived and not compared.
func (dt *Table) Equals(other *Table) bool {
	if !slices.Equal(dt.Names, other.Names) || !slices.Equal(dt.Types, other.Types) {
		return false
	}
	if len(dt.Rows) != len(other.Rows) {
		return false
	}
	for i, row := range dt.Rows {
		if !slices.Equal(row, other.Rows[i]) {
			return false
		}
	}
	return true
}

// IsNull returns the number of null cells per column, from the cache.
func (dt *Table) IsNull() []int {
	counts := make([]int, len(dt.NullPositions))
	for i, np := range dt.NullPositions {
		counts[i] = len(np)
	}
	return counts
}

// NotNull returns the number of non-null cells per column, from the cache.
func (dt *Table) NotNull() []int {
	return slices.Clone(dt.NonNullCounts)
}

// CountNulls returns the total number of null cells in the table.
func (dt *Table) CountNulls() int {
	total := 0
	for _, np := range dt.NullPositions {
		total += len(np)
	}
	return total
}

// MemoryUsage returns an estimate of the bytes held by cell text.
func (dt *Table) MemoryUsage() int {
	total := 0
	for _, row := range dt.Rows {
		for _, cell := range row {
			total += len(cell)
		}
	}
	for _, nm := range dt.Names {
		total += len(nm)
	}
	return total
}

// Info returns a per-column summary in the manner of pandas info():
// non-null count, inferred dtype, and null count, then a dtype tally.
func (dt *Table) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "RangeIndex: %d entries\n", len(dt.Rows))
	fmt.Fprintf(&b, "Data columns (total %d columns):\n", len(dt.Names))
	fmt.Fprintf(&b, " #   %-16s %-15s %-8s %s\n", "Column", "Non-Null Count", "Dtype", "Null Count")
	counts := map[DataType]int{}
	for ci, nm := range dt.Names {
		fmt.Fprintf(&b, "%2d   %-16s %-15d %-8s %d\n",
			ci, nm, dt.NonNullCounts[ci], dt.Types[ci].String(), len(dt.NullPositions[ci]))
		counts[dt.Types[ci]]++
	}
	fmt.Fprintf(&b, "dtypes: int(%d), float(%d), string(%d)\n", counts[Int], counts[Float], counts[String])
	return b.String()
}
