// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "errors"

// Sentinel errors reported by table operations and by the packages
// layered on top (stats, impute, split, window). Wrap with %w so that
// callers can test with [errors.Is].
var (
	// ErrColumnNotFound indicates an unknown column name.
	ErrColumnNotFound = errors.New("column not found")

	// ErrIndexOutOfRange indicates a row or column position beyond the
	// table's bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotNumeric indicates a numeric operation requested on a
	// string-typed column.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrEmptyColumn indicates a statistic that is undefined because the
	// column has no parseable non-null values.
	ErrEmptyColumn = errors.New("no valid values in column")

	// ErrInsufficientData indicates a statistic that needs more non-null
	// values than the column provides (e.g. sample std dev needs 2).
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidArgument indicates a malformed parameter, such as a
	// quantile outside [0, 1] or an unknown method name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSchemaMismatch indicates concat or arithmetic inputs whose
	// shapes or column names do not line up.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
