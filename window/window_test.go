// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

func column(t *testing.T, vals ...string) *table.Table {
	t.Helper()
	dt := table.NewWithColumns("x")
	for _, v := range vals {
		assert.NoError(t, dt.AddRow([]string{v}))
	}
	return dt
}

func TestRollingMean(t *testing.T) {
	dt := column(t, "1", "2", "3", "4")
	out, err := RollingMean(dt, "x", 2)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, out[1:])
}

func TestRollingMeanSkipsNaN(t *testing.T) {
	dt := column(t, "1", "", "3")
	out, err := RollingMean(dt, "x", 2)
	assert.NoError(t, err)
	// null cells drop out of both sum and denominator
	assert.Equal(t, 1.0, out[1])
	assert.Equal(t, 3.0, out[2])
}

func TestRollingSum(t *testing.T) {
	dt := column(t, "1", "", "3", "4")
	out, err := RollingSum(dt, "x", 2)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
	// null cells count as 0 for sums
	assert.Equal(t, []float64{1, 3, 7}, out[1:])
}

func TestRollingStd(t *testing.T) {
	dt := column(t, "1", "3", "5")
	out, err := RollingStd(dt, "x", 2)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
	assert.InDelta(t, math.Sqrt2, out[1], 1e-9)
	assert.InDelta(t, math.Sqrt2, out[2], 1e-9)

	gap := column(t, "1", "", "5")
	out, err = RollingStd(gap, "x", 2)
	assert.NoError(t, err)
	// one valid value is not enough for a sample std
	assert.True(t, math.IsNaN(out[1]))
}

func TestWindowValidation(t *testing.T) {
	dt := column(t, "1", "2")
	_, err := RollingMean(dt, "x", 0)
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
	_, err = RollingMean(dt, "nope", 2)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)

	names := table.NewWithColumns("s")
	names.AddRow([]string{"abc"})
	_, err = RollingMean(names, "s", 1)
	assert.ErrorIs(t, err, table.ErrNotNumeric)
}

func TestExpandingMean(t *testing.T) {
	dt := column(t, "2", "4", "", "6")
	out, err := ExpandingMean(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 3, 4}, out)
}

func TestCumSumProd(t *testing.T) {
	dt := column(t, "1", "2", "", "4")
	sum, err := CumSum(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 3, 7}, sum)

	prod, err := CumProd(dt, "x")
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 8}, prod)
}

func TestPctChange(t *testing.T) {
	dt := column(t, "100", "110", "99")
	out, err := PctChange(dt, "x", 1)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
	assert.InDelta(t, 0.1, out[1], 1e-9)
	assert.InDelta(t, -0.1, out[2], 1e-9)

	_, err = PctChange(dt, "x", 0)
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
}

func TestPctChangeZeroAndNull(t *testing.T) {
	dt := column(t, "0", "5", "", "7")
	out, err := PctChange(dt, "x", 1)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(out[1])) // previous is 0
	assert.True(t, math.IsNaN(out[2])) // current is null
	assert.True(t, math.IsNaN(out[3])) // previous is null
}
