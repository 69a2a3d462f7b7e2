// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"github.com/SKurnella/Vega-Data-processing-Frame-Work/stats"
	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// PivotTable builds a wide table from three columns: one output row
// per unique index value, one output column per unique columns value
// (both in sorted order), each cell the mean of the values column over
// the rows matching that (index, columns) pair. Pairs with no matching
// rows produce an empty cell.
func PivotTable(dt *table.Table, values, index, columns string) (*table.Table, error) {
	vci, err := dt.ColumnIndex(values)
	if err != nil {
		return nil, err
	}
	ici, err := dt.ColumnIndex(index)
	if err != nil {
		return nil, err
	}
	cci, err := dt.ColumnIndex(columns)
	if err != nil {
		return nil, err
	}
	idxVals, err := stats.Unique(dt, index)
	if err != nil {
		return nil, err
	}
	colVals, err := stats.Unique(dt, columns)
	if err != nil {
		return nil, err
	}

	names := append([]string{index}, colVals...)
	nt := table.NewWithColumns(names...)
	for _, iv := range idxVals {
		row := make([]string, 0, len(names))
		row = append(row, iv)
		for _, cv := range colVals {
			row = append(row, pivotCell(dt, vci, ici, cci, iv, cv))
		}
		if err := nt.AddRow(row); err != nil {
			return nil, err
		}
	}
	return nt, nil
}

// Pivot is PivotTable with the pandas argument order (index, columns,
// values).
func Pivot(dt *table.Table, index, columns, values string) (*table.Table, error) {
	return PivotTable(dt, values, index, columns)
}

func pivotCell(dt *table.Table, vci, ici, cci int, iv, cv string) string {
	sum := 0.0
	n := 0
	for _, row := range dt.Rows {
		if ici >= len(row) || cci >= len(row) || row[ici] != iv || row[cci] != cv {
			continue
		}
		if vci >= len(row) || row[vci] == "" {
			continue
		}
		if v, ok := table.ParseFloat(row[vci]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return table.FormatFloat(sum / float64(n))
}

// Melt reshapes wide to long: one output row per (input row, melted
// column), carrying the idVars cells plus a "variable"/"value" pair.
// An empty valueVars melts every non-id column.
func Melt(dt *table.Table, idVars, valueVars []string) (*table.Table, error) {
	idcis := make([]int, len(idVars))
	for i, nm := range idVars {
		ci, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, err
		}
		idcis[i] = ci
	}
	if len(valueVars) == 0 {
		for _, nm := range dt.Names {
			isID := false
			for _, id := range idVars {
				if nm == id {
					isID = true
					break
				}
			}
			if !isID {
				valueVars = append(valueVars, nm)
			}
		}
	}
	vcis := make([]int, len(valueVars))
	for i, nm := range valueVars {
		ci, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, err
		}
		vcis[i] = ci
	}

	names := append(append([]string{}, idVars...), "variable", "value")
	nt := table.NewWithColumns(names...)
	for _, row := range dt.Rows {
		for i, vci := range vcis {
			out := make([]string, 0, len(names))
			for _, ici := range idcis {
				cell := ""
				if ici < len(row) {
					cell = row[ici]
				}
				out = append(out, cell)
			}
			value := ""
			if vci < len(row) {
				value = row[vci]
			}
			out = append(out, valueVars[i], value)
			if err := nt.AddRow(out); err != nil {
				return nil, err
			}
		}
	}
	return nt, nil
}
