// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "fmt"

// binaryOp applies fn cell-wise to numeric columns of two same-shaped
// tables, writing results as text. String-typed columns on either side
// are carried through unchanged; cells that fail to parse become null.
func (dt *Table) binaryOp(other *Table, fn func(a, b float64) string) (*Table, error) {
	r1, c1 := dt.Shape()
	r2, c2 := other.Shape()
	if r1 != r2 || c1 != c2 {
		return nil, fmt.Errorf("table: arithmetic on shapes (%d,%d) and (%d,%d): %w",
			r1, c1, r2, c2, ErrSchemaMismatch)
	}
	nt := dt.Clone()
	for ri := range dt.Rows {
		for ci := range dt.Rows[ri] {
			if ci >= len(other.Rows[ri]) || dt.Types[ci] == String || other.Types[ci] == String {
				continue
			}
			a, okA := ParseFloat(dt.Rows[ri][ci])
			b, okB := ParseFloat(other.Rows[ri][ci])
			if okA && okB {
				nt.Rows[ri][ci] = fn(a, b)
			} else {
				nt.Rows[ri][ci] = ""
			}
		}
	}
	nt.UpdateStats()
	return nt, nil
}

// Add returns the cell-wise sum with a same-shaped table.
func (dt *Table) Add(other *Table) (*Table, error) {
	return dt.binaryOp(other, func(a, b float64) string { return FormatFloat(a + b) })
}

// Subtract returns the cell-wise difference with a same-shaped table.
func (dt *Table) Subtract(other *Table) (*Table, error) {
	return dt.binaryOp(other, func(a, b float64) string { return FormatFloat(a - b) })
}

// Multiply returns the cell-wise product with a same-shaped table.
func (dt *Table) Multiply(other *Table) (*Table, error) {
	return dt.binaryOp(other, func(a, b float64) string { return FormatFloat(a * b) })
}

// Divide returns the cell-wise quotient with a same-shaped table.
// Division by zero yields the literal "inf".
func (dt *Table) Divide(other *Table) (*Table, error) {
	return dt.binaryOp(other, func(a, b float64) string {
		if b == 0 {
			return "inf"
		}
		return FormatFloat(a / b)
	})
}

// scalarOp applies fn to every numeric cell, leaving string columns and
// unparseable cells unchanged.
func (dt *Table) scalarOp(fn func(v float64) float64) *Table {
	nt := dt.Clone()
	for ri := range dt.Rows {
		for ci := range dt.Rows[ri] {
			if dt.Types[ci] == String {
				continue
			}
			if v, ok := ParseFloat(dt.Rows[ri][ci]); ok {
				nt.Rows[ri][ci] = FormatFloat(fn(v))
			}
		}
	}
	nt.UpdateStats()
	return nt
}

// AddScalar returns a copy with value added to every numeric cell.
func (dt *Table) AddScalar(value float64) *Table {
	return dt.scalarOp(func(v float64) float64 { return v + value })
}

// MultiplyScalar returns a copy with every numeric cell scaled.
func (dt *Table) MultiplyScalar(value float64) *Table {
	return dt.scalarOp(func(v float64) float64 { return v * value })
}

// compare builds a cell-wise boolean mask against a same-shaped table.
func (dt *Table) compare(other *Table, fn func(ri, ci int) bool) ([][]bool, error) {
	r1, c1 := dt.Shape()
	r2, c2 := other.Shape()
	if r1 != r2 || c1 != c2 {
		return nil, fmt.Errorf("table: comparison on shapes (%d,%d) and (%d,%d): %w",
			r1, c1, r2, c2, ErrSchemaMismatch)
	}
	mask := make([][]bool, len(dt.Rows))
	for ri := range dt.Rows {
		mask[ri] = make([]bool, len(dt.Rows[ri]))
		for ci := range dt.Rows[ri] {
			if ci < len(other.Rows[ri]) {
				mask[ri][ci] = fn(ri, ci)
			}
		}
	}
	return mask, nil
}

// Eq reports cell-wise text equality with a same-shaped table.
func (dt *Table) Eq(other *Table) ([][]bool, error) {
	return dt.compare(other, func(ri, ci int) bool {
		return dt.Rows[ri][ci] == other.Rows[ri][ci]
	})
}

// Ne reports cell-wise text inequality.
func (dt *Table) Ne(other *Table) ([][]bool, error) {
	return dt.compare(other, func(ri, ci int) bool {
		return dt.Rows[ri][ci] != other.Rows[ri][ci]
	})
}

// lessCell compares one cell pair: numerically when both columns are
// numeric and both cells parse, else lexicographically on the text.
func (dt *Table) lessCell(other *Table, ri, ci int) bool {
	if dt.Types[ci] != String && other.Types[ci] != String {
		a, okA := ParseFloat(dt.Rows[ri][ci])
		b, okB := ParseFloat(other.Rows[ri][ci])
		if okA && okB {
			return a < b
		}
		return false
	}
	return dt.Rows[ri][ci] < other.Rows[ri][ci]
}

// Lt reports cell-wise less-than, numeric where both sides are numeric.
func (dt *Table) Lt(other *Table) ([][]bool, error) {
	return dt.compare(other, func(ri, ci int) bool {
		return dt.lessCell(other, ri, ci)
	})
}

// Le reports cell-wise less-than-or-equal.
func (dt *Table) Le(other *Table) ([][]bool, error) {
	return dt.compare(other, func(ri, ci int) bool {
		return dt.lessCell(other, ri, ci) || dt.Rows[ri][ci] == other.Rows[ri][ci]
	})
}

// Gt reports cell-wise greater-than.
func (dt *Table) Gt(other *Table) ([][]bool, error) {
	return other.Lt(dt)
}

// Ge reports cell-wise greater-than-or-equal.
func (dt *Table) Ge(other *Table) ([][]bool, error) {
	return other.Le(dt)
}
