// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "strconv"

// DataType is the inferred type of a column. The ordering Int < Float <
// String forms a widening lattice: a column's type is the maximum over
// the inferences of its non-null cells, so a single float in an
// otherwise-integer column promotes the column to Float, and a single
// unparseable value promotes it to String.
type DataType int32

const (
	// Int is a column whose non-null cells all parse fully as integers.
	Int DataType = iota

	// Float is a column whose non-null cells all parse as floating
	// point, at least one of them not as an integer.
	Float

	// String is a column with at least one non-null cell that does not
	// parse as a number. Empty cells denote null and never contribute.
	String
)

func (dt DataType) String() string {
	switch dt {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return "unknown"
}

// InferType infers the [DataType] of a single cell. Empty text infers
// String: nulls never widen a column. A value is Int only if integer
// parsing consumes the entire text, Float only if float parsing does.
func InferType(value string) DataType {
	if value == "" {
		return String
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Int
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return Float
	}
	return String
}

// ParseFloat parses a cell as float64, reporting whether the entire
// text was consumed. Null (empty) cells do not parse.
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether the cell parses fully as a number.
func IsNumeric(value string) bool {
	_, ok := ParseFloat(value)
	return ok
}

// FormatFloat renders a computed value back into cell text. All
// operations that write numbers into cells use this one formatting so
// that derived columns re-infer consistently.
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
