// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

func salesTable(t *testing.T) *table.Table {
	t.Helper()
	dt := table.NewWithColumns("region", "product", "amount")
	rows := [][]string{
		{"west", "a", "10"},
		{"east", "b", "20"},
		{"west", "b", "30"},
		{"east", "a", "40"},
		{"west", "a", "50"},
	}
	for _, r := range rows {
		assert.NoError(t, dt.AddRow(r))
	}
	return dt
}

func TestGroupBy(t *testing.T) {
	dt := salesTable(t)
	gs, err := GroupBy(dt, "region")
	assert.NoError(t, err)
	assert.Equal(t, 2, gs.NumGroups())
	// key-ordered: east before west despite west appearing first
	assert.Equal(t, [][]string{{"east"}, {"west"}}, gs.Keys)
	assert.Equal(t, 2, gs.Tables[0].NumRows())
	assert.Equal(t, 3, gs.Tables[1].NumRows())
	assert.Equal(t, dt.Names, gs.Tables[0].Names)

	west := gs.Get("west")
	assert.NotNil(t, west)
	assert.Equal(t, 3, west.NumRows())
	assert.Nil(t, gs.Get("north"))
}

func TestGroupByMultiKey(t *testing.T) {
	dt := salesTable(t)
	gs, err := GroupBy(dt, "region", "product")
	assert.NoError(t, err)
	assert.Equal(t, 4, gs.NumGroups())
	assert.Equal(t, []string{"east", "a"}, gs.Keys[0])
	assert.Equal(t, 2, gs.Get("west", "a").NumRows())

	_, err = GroupBy(dt, "nope")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestAggregate(t *testing.T) {
	dt := salesTable(t)
	out, err := Aggregate(dt, map[string]string{"amount": "mean"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"amount_mean"}, out.Names)
	assert.Equal(t, [][]string{{"30"}}, out.Rows)

	_, err = Aggregate(dt, map[string]string{"amount": "harmonic"})
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
}

func TestAggregateNaNOnFailure(t *testing.T) {
	dt := table.NewWithColumns("x")
	dt.AddRow([]string{"5"})
	out, err := Aggregate(dt, map[string]string{"x": "std"})
	assert.NoError(t, err)
	// std over one value cannot be computed
	assert.Equal(t, [][]string{{"NaN"}}, out.Rows)
}

func TestGroupsAggregateUnknownFunc(t *testing.T) {
	dt := salesTable(t)
	gs, err := GroupBy(dt, "region")
	assert.NoError(t, err)
	_, err = gs.Aggregate(map[string]string{"amount": "harmonic"})
	assert.ErrorIs(t, err, table.ErrInvalidArgument)

	// the name is validated even when there are no groups to visit
	none, err := GroupBy(dt.Head(0), "region")
	assert.NoError(t, err)
	assert.Equal(t, 0, none.NumGroups())
	_, err = none.Aggregate(map[string]string{"amount": "harmonic"})
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
}

func TestGroupsAggregate(t *testing.T) {
	dt := salesTable(t)
	gs, err := GroupBy(dt, "region")
	assert.NoError(t, err)
	out, err := gs.Aggregate(map[string]string{"amount": "sum"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"region", "amount_sum"}, out.Names)
	assert.Equal(t, [][]string{{"east", "60"}, {"west", "90"}}, out.Rows)
}

func TestPivotTable(t *testing.T) {
	dt := salesTable(t)
	out, err := PivotTable(dt, "amount", "region", "product")
	assert.NoError(t, err)
	assert.Equal(t, []string{"region", "a", "b"}, out.Names)
	assert.Equal(t, [][]string{
		{"east", "40", "20"},
		{"west", "30", "30"}, // mean of 10 and 50
	}, out.Rows)
}

func TestPivotTableNoMatch(t *testing.T) {
	dt := table.NewWithColumns("k", "c", "v")
	dt.AddRow([]string{"x", "p", "1"})
	dt.AddRow([]string{"y", "q", "2"})
	out, err := PivotTable(dt, "v", "k", "c")
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"x", "1", ""},
		{"y", "", "2"},
	}, out.Rows)
}

func TestMelt(t *testing.T) {
	dt := table.NewWithColumns("id", "h1", "h2")
	dt.AddRow([]string{"r1", "10", "20"})
	dt.AddRow([]string{"r2", "30", "40"})
	out, err := Melt(dt, []string{"id"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "variable", "value"}, out.Names)
	assert.Equal(t, [][]string{
		{"r1", "h1", "10"},
		{"r1", "h2", "20"},
		{"r2", "h1", "30"},
		{"r2", "h2", "40"},
	}, out.Rows)
}
