// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package impute fills or drops the null cells of a table. The Imputer
// strategies rewrite a single column in place; the free functions
// (DropNA, FillValue, FillMethod, Interpolate) return a modified copy.
package impute

import (
	"fmt"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/stats"
	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// Method selects an imputation strategy.
type Method int32

const (
	// Mean fills nulls with the column mean. Numeric columns only.
	Mean Method = iota

	// Median fills nulls with the column median. Numeric columns only.
	Median

	// Mode fills nulls with the most frequent value. Any column type.
	Mode

	// Constant fills nulls with a fixed value. Any column type.
	Constant

	// ForwardFill carries the last non-null value forward. A leading
	// run of nulls with no anchor stays null.
	ForwardFill

	// BackwardFill carries the next non-null value backward. A
	// trailing run of nulls with no anchor stays null.
	BackwardFill

	// LinearInterpolation fills each internal null from its nearest
	// non-null numeric neighbors, weighted by row distance. Boundary
	// nulls stay null. Numeric columns only.
	LinearInterpolation
)

func (m Method) String() string {
	switch m {
	case Mean:
		return "mean"
	case Median:
		return "median"
	case Mode:
		return "mode"
	case Constant:
		return "constant"
	case ForwardFill:
		return "ffill"
	case BackwardFill:
		return "bfill"
	case LinearInterpolation:
		return "interpolate"
	}
	return "unknown"
}

// Imputer fills the null cells of one column according to its Method.
type Imputer struct {
	Method Method

	// Value is the fill text for the Constant method.
	Value string
}

// NewConstant returns an Imputer that fills nulls with the given text.
func NewConstant(value string) *Imputer {
	return &Imputer{Method: Constant, Value: value}
}

// Impute fills the null cells of the named column in place. The
// numeric-only methods (Mean, Median, LinearInterpolation) fail on a
// string-typed column.
func (im *Imputer) Impute(dt *table.Table, column string) error {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return err
	}
	switch im.Method {
	case Mean:
		if err := numericOnly(dt, ci, im.Method); err != nil {
			return err
		}
		v, err := stats.Mean(dt, column)
		if err != nil {
			return err
		}
		fillColumn(dt, ci, table.FormatFloat(v))
	case Median:
		if err := numericOnly(dt, ci, im.Method); err != nil {
			return err
		}
		v, err := stats.Median(dt, column)
		if err != nil {
			return err
		}
		fillColumn(dt, ci, table.FormatFloat(v))
	case Mode:
		v, err := stats.Mode(dt, column)
		if err != nil {
			return err
		}
		fillColumn(dt, ci, v)
	case Constant:
		fillColumn(dt, ci, im.Value)
	case ForwardFill:
		forwardFill(dt, ci)
	case BackwardFill:
		backwardFill(dt, ci)
	case LinearInterpolation:
		if err := numericOnly(dt, ci, im.Method); err != nil {
			return err
		}
		interpolateColumn(dt, ci)
	default:
		return fmt.Errorf("impute: unknown method %d: %w", im.Method, table.ErrInvalidArgument)
	}
	dt.UpdateStats()
	return nil
}

func numericOnly(dt *table.Table, ci int, m Method) error {
	if dt.Types[ci] == table.String {
		return fmt.Errorf("impute: %s on string column %q: %w", m, dt.Names[ci], table.ErrNotNumeric)
	}
	return nil
}

func fillColumn(dt *table.Table, ci int, value string) {
	for _, row := range dt.Rows {
		if ci < len(row) && row[ci] == "" {
			row[ci] = value
		}
	}
}

func forwardFill(dt *table.Table, ci int) {
	last := ""
	for _, row := range dt.Rows {
		if ci >= len(row) {
			continue
		}
		if row[ci] == "" {
			row[ci] = last
		} else {
			last = row[ci]
		}
	}
}

func backwardFill(dt *table.Table, ci int) {
	next := ""
	for ri := len(dt.Rows) - 1; ri >= 0; ri-- {
		row := dt.Rows[ri]
		if ci >= len(row) {
			continue
		}
		if row[ci] == "" {
			row[ci] = next
		} else {
			next = row[ci]
		}
	}
}

func interpolateColumn(dt *table.Table, ci int) {
	for ri := 1; ri < len(dt.Rows)-1; ri++ {
		row := dt.Rows[ri]
		if ci >= len(row) || row[ci] != "" {
			continue
		}
		pi, pv, ok := scanAnchor(dt, ci, ri, -1)
		if !ok {
			continue
		}
		ni, nv, ok := scanAnchor(dt, ci, ri, +1)
		if !ok {
			continue
		}
		frac := float64(ri-pi) / float64(ni-pi)
		row[ci] = table.FormatFloat(pv + (nv-pv)*frac)
	}
}

// scanAnchor walks from ri in the given direction for the nearest
// parseable numeric cell.
func scanAnchor(dt *table.Table, ci, ri, dir int) (int, float64, bool) {
	for i := ri + dir; i >= 0 && i < len(dt.Rows); i += dir {
		row := dt.Rows[i]
		if ci >= len(row) || row[ci] == "" {
			continue
		}
		if v, ok := table.ParseFloat(row[ci]); ok {
			return i, v, true
		}
	}
	return 0, 0, false
}

// DropNA returns a copy without null-bearing rows. How "any" keeps
// only rows with zero null cells; "all" drops only fully-null rows.
func DropNA(dt *table.Table, how string) (*table.Table, error) {
	if how != "any" && how != "all" {
		return nil, fmt.Errorf("impute: dropna how %q: %w", how, table.ErrInvalidArgument)
	}
	nc := dt.NumColumns()
	return dt.Filter(func(row []string) bool {
		nulls := 0
		for ci := 0; ci < nc; ci++ {
			if ci >= len(row) || row[ci] == "" {
				nulls++
			}
		}
		if how == "any" {
			return nulls == 0
		}
		return nulls < nc
	}), nil
}

// FillValue returns a copy with every null cell in every column
// replaced by the given text.
func FillValue(dt *table.Table, value string) *table.Table {
	nt := dt.Clone()
	nc := nt.NumColumns()
	for _, row := range nt.Rows {
		for ci := 0; ci < nc && ci < len(row); ci++ {
			if row[ci] == "" {
				row[ci] = value
			}
		}
	}
	nt.UpdateStats()
	return nt
}

// FillMethod returns a copy with every column's nulls filled by carry:
// "ffill"/"pad" carries the last non-null value forward, and
// "bfill"/"backfill" carries the next one backward. Runs with no valid
// anchor stay null.
func FillMethod(dt *table.Table, method string) (*table.Table, error) {
	nt := dt.Clone()
	switch method {
	case "ffill", "pad":
		for ci := range nt.Names {
			forwardFill(nt, ci)
		}
	case "bfill", "backfill":
		for ci := range nt.Names {
			backwardFill(nt, ci)
		}
	default:
		return nil, fmt.Errorf("impute: fillna method %q: %w", method, table.ErrInvalidArgument)
	}
	nt.UpdateStats()
	return nt, nil
}

// Interpolate returns a copy with the named column's internal nulls
// linearly interpolated from their nearest numeric neighbors. Boundary
// nulls, and nulls missing an anchor on either side, stay null.
func Interpolate(dt *table.Table, column string) (*table.Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	if err := numericOnly(dt, ci, LinearInterpolation); err != nil {
		return nil, err
	}
	nt := dt.Clone()
	interpolateColumn(nt, ci)
	nt.UpdateStats()
	return nt, nil
}
