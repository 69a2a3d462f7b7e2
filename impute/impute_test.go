// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package impute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

func column(t *testing.T, name string, vals ...string) *table.Table {
	t.Helper()
	dt := table.NewWithColumns(name)
	for _, v := range vals {
		assert.NoError(t, dt.AddRow([]string{v}))
	}
	return dt
}

func cells(t *testing.T, dt *table.Table, name string) []string {
	t.Helper()
	col, err := dt.Column(name)
	assert.NoError(t, err)
	return col
}

func TestMeanImputer(t *testing.T) {
	dt := column(t, "x", "1", "", "3")
	im := &Imputer{Method: Mean}
	assert.NoError(t, im.Impute(dt, "x"))
	assert.Equal(t, []string{"1", "2", "3"}, cells(t, dt, "x"))
	assert.Equal(t, 3, dt.NonNullCounts[0])
	assert.Empty(t, dt.NullPositions[0])
}

func TestMedianImputer(t *testing.T) {
	dt := column(t, "x", "1", "", "9", "5")
	im := &Imputer{Method: Median}
	assert.NoError(t, im.Impute(dt, "x"))
	assert.Equal(t, "5", dt.Rows[1][0])
}

func TestNumericOnlyGuard(t *testing.T) {
	dt := column(t, "name", "a", "", "b")
	for _, m := range []Method{Mean, Median, LinearInterpolation} {
		im := &Imputer{Method: m}
		assert.ErrorIs(t, im.Impute(dt, "name"), table.ErrNotNumeric)
	}
}

func TestModeImputer(t *testing.T) {
	dt := column(t, "c", "a", "b", "", "b")
	im := &Imputer{Method: Mode}
	assert.NoError(t, im.Impute(dt, "c"))
	assert.Equal(t, "b", dt.Rows[2][0])
}

func TestConstantImputer(t *testing.T) {
	dt := column(t, "c", "", "x", "")
	assert.NoError(t, NewConstant("?").Impute(dt, "c"))
	assert.Equal(t, []string{"?", "x", "?"}, cells(t, dt, "c"))
}

func TestForwardBackwardFill(t *testing.T) {
	dt := column(t, "x", "", "1", "", "", "4", "")
	ff := dt.Clone()
	assert.NoError(t, (&Imputer{Method: ForwardFill}).Impute(ff, "x"))
	assert.Equal(t, []string{"", "1", "1", "1", "4", "4"}, cells(t, ff, "x"))

	bf := dt.Clone()
	assert.NoError(t, (&Imputer{Method: BackwardFill}).Impute(bf, "x"))
	assert.Equal(t, []string{"1", "1", "4", "4", "4", ""}, cells(t, bf, "x"))
}

func TestLinearInterpolation(t *testing.T) {
	dt := column(t, "x", "1", "", "", "4", "", "")
	assert.NoError(t, (&Imputer{Method: LinearInterpolation}).Impute(dt, "x"))
	// internal run interpolates by row distance; the trailing run has
	// no forward anchor and stays null
	assert.Equal(t, []string{"1", "2", "3", "4", "", ""}, cells(t, dt, "x"))
}

func TestDropNA(t *testing.T) {
	dt := table.NewWithColumns("a", "b")
	dt.AddRow([]string{"1", "2"})
	dt.AddRow([]string{"", "2"})
	dt.AddRow([]string{"", ""})

	anyDrop, err := DropNA(dt, "any")
	assert.NoError(t, err)
	assert.Equal(t, 1, anyDrop.NumRows())

	allDrop, err := DropNA(dt, "all")
	assert.NoError(t, err)
	assert.Equal(t, 2, allDrop.NumRows())

	_, err = DropNA(dt, "some")
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
}

func TestFillValue(t *testing.T) {
	dt := table.NewWithColumns("a", "b")
	dt.AddRow([]string{"", "x"})
	nt := FillValue(dt, "0")
	assert.Equal(t, []string{"0", "x"}, nt.Rows[0])
	assert.Equal(t, "", dt.Rows[0][0]) // source untouched
	assert.Equal(t, 0, nt.CountNulls())
}

func TestFillMethod(t *testing.T) {
	dt := column(t, "x", "1", "", "3")
	nt, err := FillMethod(dt, "ffill")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "3"}, cells(t, nt, "x"))

	nt, err = FillMethod(dt, "backfill")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "3"}, cells(t, nt, "x"))

	_, err = FillMethod(dt, "sideways")
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
}

func TestInterpolate(t *testing.T) {
	dt := column(t, "x", "", "2", "", "6")
	nt, err := Interpolate(dt, "x")
	assert.NoError(t, err)
	// the leading null is a boundary cell and stays null
	assert.Equal(t, []string{"", "2", "4", "6"}, cells(t, nt, "x"))
}
