// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"strconv"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// Describe returns a summary table of the numeric columns: count,
// mean, std, min, the quartiles, and max, one row per statistic. A
// statistic that cannot be computed for a column (std on fewer than 2
// values, say) reports "NaN" for that cell.
func Describe(dt *table.Table) *table.Table {
	cis := numericColumns(dt)
	names := make([]string, 0, len(cis)+1)
	names = append(names, "statistic")
	for _, ci := range cis {
		names = append(names, dt.Names[ci])
	}
	nt := table.NewWithColumns(names...)

	stats := []struct {
		name string
		fn   func(column string) (float64, bool)
	}{
		{"count", func(col string) (float64, bool) {
			n, err := Count(dt, col)
			return float64(n), err == nil
		}},
		{"mean", describeFn(dt, Mean)},
		{"std", describeFn(dt, StdDev)},
		{"min", describeFn(dt, Min)},
		{"25%", quartileFn(dt, 0.25)},
		{"50%", quartileFn(dt, 0.50)},
		{"75%", quartileFn(dt, 0.75)},
		{"max", describeFn(dt, Max)},
	}
	for _, st := range stats {
		row := make([]string, 0, len(names))
		row = append(row, st.name)
		for _, ci := range cis {
			v, ok := st.fn(dt.Names[ci])
			cell := "NaN"
			if ok {
				if st.name == "count" {
					cell = strconv.Itoa(int(v))
				} else {
					cell = table.FormatFloat(v)
				}
			}
			row = append(row, cell)
		}
		nt.AddRow(row)
	}
	return nt
}

func describeFn(dt *table.Table, fn func(*table.Table, string) (float64, error)) func(string) (float64, bool) {
	return func(col string) (float64, bool) {
		v, err := fn(dt, col)
		return v, err == nil
	}
}

func quartileFn(dt *table.Table, q float64) func(string) (float64, bool) {
	return func(col string) (float64, bool) {
		vs, err := Quantile(dt, col, []float64{q})
		if err != nil {
			return 0, false
		}
		return vs[0], true
	}
}
