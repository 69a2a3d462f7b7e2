// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/stats"
	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// aggFuncs maps aggregate function names to their implementations.
var aggFuncs = map[string]func(dt *table.Table, column string) (string, error){
	"mean": numericAgg(stats.Mean),
	"sum":  numericAgg(stats.Sum),
	"min":  numericAgg(stats.Min),
	"max":  numericAgg(stats.Max),
	"std":  numericAgg(stats.StdDev),
	"count": func(dt *table.Table, column string) (string, error) {
		n, err := stats.Count(dt, column)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	},
}

func numericAgg(fn func(*table.Table, string) (float64, error)) func(*table.Table, string) (string, error) {
	return func(dt *table.Table, column string) (string, error) {
		v, err := fn(dt, column)
		if err != nil {
			return "", err
		}
		return table.FormatFloat(v), nil
	}
}

// Aggregate reduces the table to a single row with one "<col>_<func>"
// column per entry of funcs, in sorted column-name order. A function
// that fails on its column (std over fewer than 2 values, say) yields
// the literal "NaN" for that cell. An unknown function name is an
// error.
func Aggregate(dt *table.Table, funcs map[string]string) (*table.Table, error) {
	cols := make([]string, 0, len(funcs))
	for col := range funcs {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	var names []string
	var row []string
	for _, col := range cols {
		fname := funcs[col]
		fn, ok := aggFuncs[fname]
		if !ok {
			return nil, fmt.Errorf("split: aggregate function %q: %w", fname, table.ErrInvalidArgument)
		}
		if _, err := dt.ColumnIndex(col); err != nil {
			return nil, err
		}
		cell, err := fn(dt, col)
		if err != nil {
			cell = "NaN"
		}
		names = append(names, col+"_"+fname)
		row = append(row, cell)
	}
	nt := table.NewWithColumns(names...)
	if err := nt.AddRow(row); err != nil {
		return nil, err
	}
	return nt, nil
}

// Aggregate reduces every group to one row: the key columns first,
// then one "<col>_<func>" column per entry of funcs, groups in key
// order.
func (gs *Groups) Aggregate(funcs map[string]string) (*table.Table, error) {
	cols := make([]string, 0, len(funcs))
	for col := range funcs {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	names := slices.Clone(gs.Columns)
	for _, col := range cols {
		if _, ok := aggFuncs[funcs[col]]; !ok {
			return nil, fmt.Errorf("split: aggregate function %q: %w", funcs[col], table.ErrInvalidArgument)
		}
		names = append(names, col+"_"+funcs[col])
	}
	nt := table.NewWithColumns(names...)
	for gi, gt := range gs.Tables {
		row := slices.Clone(gs.Keys[gi])
		for _, col := range cols {
			cell, err := aggFuncs[funcs[col]](gt, col)
			if err != nil {
				cell = "NaN"
			}
			row = append(row, cell)
		}
		if err := nt.AddRow(row); err != nil {
			return nil, err
		}
	}
	return nt, nil
}
