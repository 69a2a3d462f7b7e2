// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "time"

// dateLayouts are the layouts tried, in order, when parsing date cells.
var dateLayouts = []string{"2006-01-02", "2006/01/02"}

func parseDate(cell string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dtExtract maps each cell of a date column through fn; null or
// unparseable cells yield 0.
func (dt *Table) dtExtract(column string, fn func(t time.Time) int) ([]int, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(dt.Rows))
	for ri, row := range dt.Rows {
		if ci >= len(row) || row[ci] == "" {
			continue
		}
		if t, ok := parseDate(row[ci]); ok {
			out[ri] = fn(t)
		}
	}
	return out, nil
}

// DtYear returns the year of each date cell in the column.
func (dt *Table) DtYear(column string) ([]int, error) {
	return dt.dtExtract(column, func(t time.Time) int { return t.Year() })
}

// DtMonth returns the month (1..12) of each date cell.
func (dt *Table) DtMonth(column string) ([]int, error) {
	return dt.dtExtract(column, func(t time.Time) int { return int(t.Month()) })
}

// DtDay returns the day of month of each date cell.
func (dt *Table) DtDay(column string) ([]int, error) {
	return dt.dtExtract(column, func(t time.Time) int { return t.Day() })
}

// DtWeekday returns the day of week (Sunday = 0) of each date cell.
func (dt *Table) DtWeekday(column string) ([]int, error) {
	return dt.dtExtract(column, func(t time.Time) int { return int(t.Weekday()) })
}
