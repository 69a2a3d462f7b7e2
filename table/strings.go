// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "strings"

// strIndicator appends a "<column><suffix>" True/False column computed
// from a per-cell predicate; ragged rows report False.
func (dt *Table) strIndicator(column, suffix string, pred func(string) bool) (*Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	col := make([]string, len(dt.Rows))
	for ri, row := range dt.Rows {
		if ci < len(row) && pred(row[ci]) {
			col[ri] = "True"
		} else {
			col[ri] = "False"
		}
	}
	nt := dt.Clone()
	if err := nt.AddColumn(column+suffix, col); err != nil {
		return nil, err
	}
	return nt, nil
}

// StrContains appends a "<column>_contains" column reporting whether
// each cell contains the pattern as a substring.
func (dt *Table) StrContains(column, pattern string) (*Table, error) {
	return dt.strIndicator(column, "_contains", func(s string) bool {
		return strings.Contains(s, pattern)
	})
}

// StrStartsWith appends a "<column>_startswith" indicator column.
func (dt *Table) StrStartsWith(column, prefix string) (*Table, error) {
	return dt.strIndicator(column, "_startswith", func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
}

// StrEndsWith appends a "<column>_endswith" indicator column.
func (dt *Table) StrEndsWith(column, suffix string) (*Table, error) {
	return dt.strIndicator(column, "_endswith", func(s string) bool {
		return strings.HasSuffix(s, suffix)
	})
}

// strMap returns a copy with the column's cells rewritten through fn.
func (dt *Table) strMap(column string, fn func(string) string) (*Table, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	nt := dt.Clone()
	for ri := range nt.Rows {
		if ci < len(nt.Rows[ri]) {
			nt.Rows[ri][ci] = fn(nt.Rows[ri][ci])
		}
	}
	nt.UpdateStats()
	return nt, nil
}

// StrReplace returns a copy with every occurrence of pattern replaced.
func (dt *Table) StrReplace(column, pattern, replacement string) (*Table, error) {
	return dt.strMap(column, func(s string) string {
		return strings.ReplaceAll(s, pattern, replacement)
	})
}

// StrUpper returns a copy with the column upper-cased.
func (dt *Table) StrUpper(column string) (*Table, error) {
	return dt.strMap(column, strings.ToUpper)
}

// StrLower returns a copy with the column lower-cased.
func (dt *Table) StrLower(column string) (*Table, error) {
	return dt.strMap(column, strings.ToLower)
}

// StrStrip returns a copy with surrounding whitespace trimmed.
func (dt *Table) StrStrip(column string) (*Table, error) {
	return dt.strMap(column, strings.TrimSpace)
}

// StrLen returns the byte length of each cell in the column; ragged
// rows report 0.
func (dt *Table) StrLen(column string) ([]int, error) {
	ci, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	lengths := make([]int, len(dt.Rows))
	for ri, row := range dt.Rows {
		if ci < len(row) {
			lengths[ri] = len(row[ci])
		}
	}
	return lengths, nil
}
