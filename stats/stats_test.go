// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

func numTable(t *testing.T, column string, vals ...string) *table.Table {
	t.Helper()
	dt := table.NewWithColumns(column)
	for _, v := range vals {
		assert.NoError(t, dt.AddRow([]string{v}))
	}
	return dt
}

func TestMeanSumMinMax(t *testing.T) {
	dt := numTable(t, "x", "1", "2", "", "4")
	m, err := Mean(dt, "x")
	assert.NoError(t, err)
	assert.InDelta(t, 7.0/3.0, m, 1e-9)

	s, err := Sum(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, 7.0, s)

	mn, err := Min(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, mn)

	mx, err := Max(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, 4.0, mx)
}

func TestEmptyColumn(t *testing.T) {
	dt := numTable(t, "x", "", "")
	_, err := Mean(dt, "x")
	assert.ErrorIs(t, err, table.ErrEmptyColumn)
	_, err = Sum(dt, "x")
	assert.ErrorIs(t, err, table.ErrEmptyColumn)
	_, err = Mean(dt, "nope")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestSkipsUnparseable(t *testing.T) {
	dt := numTable(t, "x", "1", "oops", "3")
	m, err := Mean(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, m)
}

func TestMedian(t *testing.T) {
	odd := numTable(t, "x", "3", "1", "2")
	m, err := Median(odd, "x")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, m)

	even := numTable(t, "x", "4", "1", "3", "2")
	m, err = Median(even, "x")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, m)
}

func TestVarianceStdDev(t *testing.T) {
	dt := numTable(t, "x", "2", "4", "4", "4", "5", "5", "7", "9")
	v, err := Variance(dt, "x")
	assert.NoError(t, err)
	assert.InDelta(t, 32.0/7.0, v, 1e-9)

	sd, err := StdDev(dt, "x")
	assert.NoError(t, err)
	assert.InDelta(t, 2.13808993, sd, 1e-6)

	one := numTable(t, "x", "5")
	_, err = StdDev(one, "x")
	assert.ErrorIs(t, err, table.ErrInsufficientData)
}

func TestProd(t *testing.T) {
	dt := numTable(t, "x", "2", "3", "4")
	p, err := Prod(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, 24.0, p)
}

func TestQuantile(t *testing.T) {
	dt := numTable(t, "x", "1", "2", "3", "4")
	qs, err := Quantile(dt, "x", []float64{0, 0.5, 1})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 4}, qs)

	qs, err = Quantile(dt, "x", []float64{0.25})
	assert.NoError(t, err)
	assert.InDelta(t, 1.75, qs[0], 1e-9)

	_, err = Quantile(dt, "x", []float64{1.5})
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
}

func TestQuantileEndpoints(t *testing.T) {
	dt := numTable(t, "x", "9", "3", "7", "1")
	qs, err := Quantile(dt, "x", []float64{0, 0.5, 1})
	assert.NoError(t, err)
	mn, _ := Min(dt, "x")
	mx, _ := Max(dt, "x")
	md, _ := Median(dt, "x")
	assert.Equal(t, mn, qs[0])
	assert.Equal(t, md, qs[1])
	assert.Equal(t, mx, qs[2])
}

func TestMode(t *testing.T) {
	dt := numTable(t, "c", "a", "b", "b", "a", "c")
	m, err := Mode(dt, "c")
	assert.NoError(t, err)
	// a and b tie at 2; a reached the max first
	assert.Equal(t, "a", m)

	dt = numTable(t, "c", "x", "y", "y")
	m, err = Mode(dt, "c")
	assert.NoError(t, err)
	assert.Equal(t, "y", m)

	empty := numTable(t, "c", "", "")
	_, err = Mode(empty, "c")
	assert.ErrorIs(t, err, table.ErrEmptyColumn)
}

func TestUniqueNUnique(t *testing.T) {
	dt := numTable(t, "c", "b", "a", "b", "", "c")
	u, err := Unique(dt, "c")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, u)
	n, err := NUnique(dt, "c")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestValueCounts(t *testing.T) {
	dt := numTable(t, "c", "a", "b", "b", "a", "b")
	vc, err := ValueCounts(dt, "c")
	assert.NoError(t, err)
	assert.Equal(t, []string{"c", "count"}, vc.Names)
	assert.Equal(t, [][]string{{"b", "3"}, {"a", "2"}}, vc.Rows)
}

func TestCorrCov(t *testing.T) {
	dt := table.NewWithColumns("a", "b")
	pairs := [][]string{{"1", "2"}, {"2", "4"}, {"3", "6"}}
	for _, p := range pairs {
		assert.NoError(t, dt.AddRow(p))
	}
	corr := Corr(dt)
	assert.Equal(t, 1.0, corr["a_a"])
	assert.Equal(t, 1.0, corr["b_b"])
	assert.InDelta(t, 1.0, corr["a_b"], 1e-9)

	cov := Cov(dt)
	assert.InDelta(t, 1.0, cov["a_a"], 1e-9) // variance of 1,2,3
	assert.InDelta(t, 2.0, cov["a_b"], 1e-9)
	assert.InDelta(t, 4.0, cov["b_b"], 1e-9)
}

func TestCorrInsufficientPairs(t *testing.T) {
	dt := table.NewWithColumns("a", "b")
	dt.AddRow([]string{"1", ""})
	dt.AddRow([]string{"2", "5"})
	corr := Corr(dt)
	assert.Equal(t, 0.0, corr["a_b"])
}

func TestDescribe(t *testing.T) {
	dt := table.NewWithColumns("x", "name")
	for _, v := range []string{"1", "2", "3", "4"} {
		assert.NoError(t, dt.AddRow([]string{v, "n" + v}))
	}
	ds := Describe(dt)
	assert.Equal(t, []string{"statistic", "x"}, ds.Names) // string column excluded
	assert.Equal(t, 8, ds.NumRows())
	assert.Equal(t, []string{"count", "4"}, ds.Rows[0])
	assert.Equal(t, []string{"mean", "2.5"}, ds.Rows[1])
	assert.Equal(t, []string{"min", "1"}, ds.Rows[3])
	assert.Equal(t, []string{"50%", "2.5"}, ds.Rows[5])
	assert.Equal(t, []string{"max", "4"}, ds.Rows[7])
}
