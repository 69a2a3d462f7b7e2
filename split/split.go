// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split partitions tables into groups and aggregates them.
package split

import (
	"slices"
	"strings"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// Groups holds the result of a group-by: one key tuple and one
// materialized sub-table per group, aligned by index and ordered by
// key tuple.
type Groups struct {
	// Columns are the grouping column names.
	Columns []string

	// Keys holds one key tuple per group.
	Keys [][]string

	// Tables holds one independent table per group, sharing the
	// parent schema.
	Tables []*table.Table
}

// NumGroups returns the number of groups.
func (gs *Groups) NumGroups() int { return len(gs.Keys) }

// Get returns the sub-table for the given key tuple, or nil if no
// such group exists.
func (gs *Groups) Get(key ...string) *table.Table {
	for i, k := range gs.Keys {
		if slices.Equal(k, key) {
			return gs.Tables[i]
		}
	}
	return nil
}

// GroupBy partitions the table's rows by exact equality of their
// cells in the given columns, with missing cells keyed as "". Groups
// come out ordered by key tuple, not by first appearance.
func GroupBy(dt *table.Table, columns ...string) (*Groups, error) {
	cis := make([]int, len(columns))
	for i, nm := range columns {
		ci, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, err
		}
		cis[i] = ci
	}
	byKey := map[string]*table.Table{}
	keyTuples := map[string][]string{}
	for _, row := range dt.Rows {
		key := make([]string, len(cis))
		for i, ci := range cis {
			if ci < len(row) {
				key[i] = row[ci]
			}
		}
		ks := keyString(key)
		gt, ok := byKey[ks]
		if !ok {
			gt = table.NewWithColumns(dt.Names...)
			byKey[ks] = gt
			keyTuples[ks] = key
		}
		if err := gt.AddRow(slices.Clone(row)); err != nil {
			return nil, err
		}
	}
	gs := &Groups{Columns: slices.Clone(columns)}
	ordered := make([]string, 0, len(byKey))
	for ks := range byKey {
		ordered = append(ordered, ks)
	}
	slices.Sort(ordered)
	for _, ks := range ordered {
		gs.Keys = append(gs.Keys, keyTuples[ks])
		gs.Tables = append(gs.Tables, byKey[ks])
	}
	return gs, nil
}

// keyString flattens a key tuple for map lookup. The separator cannot
// appear in cell text read from delimited input, which keeps distinct
// tuples distinct.
func keyString(key []string) string {
	return strings.Join(key, "\x1f")
}
