// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// pairedValues collects the rows where both columns hold a parseable
// numeric cell, returning the two aligned samples.
func pairedValues(dt *table.Table, ci, cj int) (xs, ys []float64) {
	for _, row := range dt.Rows {
		if ci >= len(row) || cj >= len(row) || row[ci] == "" || row[cj] == "" {
			continue
		}
		x, okx := table.ParseFloat(row[ci])
		y, oky := table.ParseFloat(row[cj])
		if okx && oky {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// pairStats returns the sample covariance and the Pearson correlation
// of two aligned samples. Fewer than 2 pairs, or a zero-variance side,
// yields 0.0 rather than an error.
func pairStats(xs, ys []float64) (cov, corr float64) {
	n := len(xs)
	if n < 2 {
		return 0, 0
	}
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(n)
	my /= float64(n)
	var sxy, sxx, syy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	cov = sxy / float64(n-1)
	if sxx == 0 || syy == 0 {
		return cov, 0
	}
	return cov, sxy / math.Sqrt(sxx*syy)
}

func numericColumns(dt *table.Table) []int {
	var cis []int
	for ci, typ := range dt.Types {
		if typ == table.Int || typ == table.Float {
			cis = append(cis, ci)
		}
	}
	return cis
}

// Corr returns the pairwise Pearson correlation of every unordered
// pair of numeric columns, keyed "<colA>_<colB>" in column order.
// Self-pairs are always 1.0. Rows where either cell is null or
// unparseable are skipped per pair.
func Corr(dt *table.Table) map[string]float64 {
	out := map[string]float64{}
	cis := numericColumns(dt)
	for i, ci := range cis {
		for _, cj := range cis[i:] {
			key := dt.Names[ci] + "_" + dt.Names[cj]
			if ci == cj {
				out[key] = 1.0
				continue
			}
			_, corr := pairStats(pairedValues(dt, ci, cj))
			out[key] = corr
		}
	}
	return out
}

// Cov returns the pairwise sample covariance of every unordered pair
// of numeric columns, keyed "<colA>_<colB>" in column order.
// Self-pairs hold the column's variance. Rows where either cell is
// null or unparseable are skipped per pair.
func Cov(dt *table.Table) map[string]float64 {
	out := map[string]float64{}
	cis := numericColumns(dt)
	for i, ci := range cis {
		for _, cj := range cis[i:] {
			key := dt.Names[ci] + "_" + dt.Names[cj]
			cov, _ := pairStats(pairedValues(dt, ci, cj))
			out[key] = cov
		}
	}
	return out
}
