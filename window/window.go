// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window computes rolling, expanding, and cumulative series
// over a numeric table column. Results are aligned to the table's
// rows, with NaN marking positions that cannot be computed: the warmup
// rows of a rolling window, or cells downstream of missing data in
// pct_change.
package window

import (
	"fmt"
	"math"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// columnValues parses a numeric column into row-aligned float64s with
// NaN for null, ragged, or unparseable cells.
func columnValues(dt *table.Table, column string) ([]float64, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	if dt.Types[ci] == table.String {
		return nil, fmt.Errorf("window: string column %q: %w", column, table.ErrNotNumeric)
	}
	vals := make([]float64, len(dt.Rows))
	for ri, row := range dt.Rows {
		vals[ri] = math.NaN()
		if ci < len(row) && row[ci] != "" {
			if v, ok := table.ParseFloat(row[ci]); ok {
				vals[ri] = v
			}
		}
	}
	return vals, nil
}

func checkWindow(window int) error {
	if window < 1 {
		return fmt.Errorf("window: size %d: %w", window, table.ErrInvalidArgument)
	}
	return nil
}

// RollingMean returns the trailing-window mean of the column, NaN for
// the first window-1 positions. NaN values inside a window are
// excluded from both the sum and the denominator; a window with no
// valid values yields NaN.
func RollingMean(dt *table.Table, column string, window int) ([]float64, error) {
	if err := checkWindow(window); err != nil {
		return nil, err
	}
	vals, err := columnValues(dt, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		n := 0
		for _, v := range vals[i-window+1 : i+1] {
			if !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out, nil
}

// RollingSum returns the trailing-window sum of the column, NaN for
// the first window-1 positions. NaN values inside a window count as 0.
func RollingSum(dt *table.Table, column string, window int) ([]float64, error) {
	if err := checkWindow(window); err != nil {
		return nil, err
	}
	vals, err := columnValues(dt, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for _, v := range vals[i-window+1 : i+1] {
			if !math.IsNaN(v) {
				sum += v
			}
		}
		out[i] = sum
	}
	return out, nil
}

// RollingStd returns the trailing-window sample standard deviation of
// the column, NaN for the first window-1 positions and for windows
// with fewer than 2 valid values.
func RollingStd(dt *table.Table, column string, window int) ([]float64, error) {
	if err := checkWindow(window); err != nil {
		return nil, err
	}
	vals, err := columnValues(dt, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i := range out {
		out[i] = math.NaN()
		if i < window-1 {
			continue
		}
		var wv []float64
		for _, v := range vals[i-window+1 : i+1] {
			if !math.IsNaN(v) {
				wv = append(wv, v)
			}
		}
		if len(wv) < 2 {
			continue
		}
		mean := 0.0
		for _, v := range wv {
			mean += v
		}
		mean /= float64(len(wv))
		ss := 0.0
		for _, v := range wv {
			d := v - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(len(wv)-1))
	}
	return out, nil
}

// ExpandingMean returns the running mean from the first row through
// each position, skipping NaN values; positions before any valid
// value are NaN.
func ExpandingMean(dt *table.Table, column string) ([]float64, error) {
	vals, err := columnValues(dt, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	sum := 0.0
	n := 0
	for i, v := range vals {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out, nil
}

// CumSum returns the running sum of the column, with NaN cells
// counted as 0.
func CumSum(dt *table.Table, column string) ([]float64, error) {
	vals, err := columnValues(dt, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	sum := 0.0
	for i, v := range vals {
		if !math.IsNaN(v) {
			sum += v
		}
		out[i] = sum
	}
	return out, nil
}

// CumProd returns the running product of the column, with NaN cells
// skipped rather than multiplied in.
func CumProd(dt *table.Table, column string) ([]float64, error) {
	vals, err := columnValues(dt, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	prod := 1.0
	for i, v := range vals {
		if !math.IsNaN(v) {
			prod *= v
		}
		out[i] = prod
	}
	return out, nil
}

// PctChange returns (current - previous) / previous, where previous is
// periods rows back. The first periods positions, and any position
// where either value is NaN or previous is 0, are NaN.
func PctChange(dt *table.Table, column string, periods int) ([]float64, error) {
	if periods < 1 {
		return nil, fmt.Errorf("window: periods %d: %w", periods, table.ErrInvalidArgument)
	}
	vals, err := columnValues(dt, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i := range out {
		out[i] = math.NaN()
		if i < periods {
			continue
		}
		cur, prev := vals[i], vals[i-periods]
		if math.IsNaN(cur) || math.IsNaN(prev) || prev == 0 {
			continue
		}
		out[i] = (cur - prev) / prev
	}
	return out, nil
}
