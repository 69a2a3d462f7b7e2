// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes descriptive statistics over table columns.
// Numeric statistics operate on the non-null cells that parse as
// floating point, silently skipping cells that do not parse, so a
// stray text cell in a numeric column degrades the sample rather
// than failing the call.
package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// ColumnFloats returns the parseable numeric values of a column, in
// row order, with null and unparseable cells skipped.
func ColumnFloats(dt *table.Table, column string) ([]float64, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	var vals []float64
	for _, row := range dt.Rows {
		if ci >= len(row) || row[ci] == "" {
			continue
		}
		if v, ok := table.ParseFloat(row[ci]); ok {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

func nonEmptyFloats(dt *table.Table, column string) ([]float64, error) {
	vals, err := ColumnFloats(dt, column)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("stats: column %q has no numeric values: %w", column, table.ErrEmptyColumn)
	}
	return vals, nil
}

// Count returns the number of non-null cells in the column, from the
// table's cache.
func Count(dt *table.Table, column string) (int, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return 0, err
	}
	return dt.NonNullCounts[ci], nil
}

// Sum returns the sum of the column's numeric values.
func Sum(dt *table.Table, column string) (float64, error) {
	vals, err := nonEmptyFloats(dt, column)
	if err != nil {
		return 0, err
	}
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s, nil
}

// Prod returns the product of the column's numeric values.
func Prod(dt *table.Table, column string) (float64, error) {
	vals, err := nonEmptyFloats(dt, column)
	if err != nil {
		return 0, err
	}
	p := 1.0
	for _, v := range vals {
		p *= v
	}
	return p, nil
}

// Mean returns the arithmetic mean of the column's numeric values.
func Mean(dt *table.Table, column string) (float64, error) {
	vals, err := nonEmptyFloats(dt, column)
	if err != nil {
		return 0, err
	}
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals)), nil
}

// Min returns the smallest of the column's numeric values.
func Min(dt *table.Table, column string) (float64, error) {
	vals, err := nonEmptyFloats(dt, column)
	if err != nil {
		return 0, err
	}
	return slices.Min(vals), nil
}

// Max returns the largest of the column's numeric values.
func Max(dt *table.Table, column string) (float64, error) {
	vals, err := nonEmptyFloats(dt, column)
	if err != nil {
		return 0, err
	}
	return slices.Max(vals), nil
}

// Median returns the middle value of the column's numeric values, or
// the mean of the two middle values for an even count.
func Median(dt *table.Table, column string) (float64, error) {
	vals, err := nonEmptyFloats(dt, column)
	if err != nil {
		return 0, err
	}
	slices.Sort(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2], nil
	}
	return (vals[n/2-1] + vals[n/2]) / 2, nil
}

// Variance returns the sample (n-1 denominator) variance of the
// column's numeric values.
func Variance(dt *table.Table, column string) (float64, error) {
	vals, err := ColumnFloats(dt, column)
	if err != nil {
		return 0, err
	}
	return sampleVariance(vals, column)
}

// StdDev returns the sample standard deviation of the column's
// numeric values.
func StdDev(dt *table.Table, column string) (float64, error) {
	v, err := Variance(dt, column)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

func sampleVariance(vals []float64, column string) (float64, error) {
	if len(vals) < 2 {
		return 0, fmt.Errorf("stats: column %q has %d numeric values, need 2: %w",
			column, len(vals), table.ErrInsufficientData)
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	ss := 0.0
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return ss / float64(len(vals)-1), nil
}

// Quantile returns the given quantiles of the column's numeric values,
// using linear interpolation between the floor and ceiling ranks of
// q * (n-1). Each q must lie in [0, 1].
func Quantile(dt *table.Table, column string, qs []float64) ([]float64, error) {
	vals, err := nonEmptyFloats(dt, column)
	if err != nil {
		return nil, err
	}
	slices.Sort(vals)
	out := make([]float64, len(qs))
	for i, q := range qs {
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("stats: quantile %v not in [0, 1]: %w", q, table.ErrInvalidArgument)
		}
		out[i] = quantileSorted(vals, q)
	}
	return out, nil
}

func quantileSorted(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
