// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const csvData = `name,age,score
alice,30,91.5
bob,25,
carol,,88.25
`

func TestReadCSV(t *testing.T) {
	dt := New()
	err := dt.ReadCSV(strings.NewReader(csvData), Comma)
	assert.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "score"}, dt.Names)
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, String, dt.Types[0])
	assert.Equal(t, Int, dt.Types[1])
	assert.Equal(t, Float, dt.Types[2])
	assert.Equal(t, 2, dt.NonNullCounts[1])
	assert.Equal(t, []int{2}, dt.NullPositions[1])
	assert.Equal(t, []int{1}, dt.NullPositions[2])
}

func TestCSVRoundTrip(t *testing.T) {
	dt := New()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(csvData), Comma))

	var buf bytes.Buffer
	assert.NoError(t, dt.WriteCSV(&buf, Comma))

	rt := New()
	assert.NoError(t, rt.ReadCSV(&buf, Comma))
	assert.True(t, dt.Equals(rt))
}

func TestReadCSVRagged(t *testing.T) {
	data := "a,b,c\n1,2\n3,4,5,6\n"
	dt := New()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(data), Comma))
	assert.Equal(t, 2, dt.NumRows())
	// short rows pad to null, long rows truncate
	assert.Equal(t, []string{"1", "2", ""}, dt.Rows[0])
	assert.Equal(t, []string{"3", "4", "5"}, dt.Rows[1])
	assert.Equal(t, []int{0}, dt.NullPositions[2])
}

func TestReadCSVEmptyHeaderField(t *testing.T) {
	data := "a,,c\n1,2,3\n"
	dt := New()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(data), Comma))
	// the unnamed column keeps its position so later cells stay aligned
	assert.Equal(t, []string{"a", "", "c"}, dt.Names)
	assert.Equal(t, [][]string{{"1", "2", "3"}}, dt.Rows)
	v, err := dt.At(0, "c")
	assert.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestReadCSVDetect(t *testing.T) {
	data := "a\tb\n1\t2\n"
	dt := New()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(data), Detect))
	assert.Equal(t, []string{"a", "b"}, dt.Names)
	assert.Equal(t, []string{"1", "2"}, dt.Rows[0])
}

func TestReadCSVEmpty(t *testing.T) {
	dt := New()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(""), Comma))
	assert.True(t, dt.IsEmpty())
}

func TestJSONRoundTrip(t *testing.T) {
	dt := NewWithColumns("age", "name")
	dt.AddRow([]string{"30", "alice"})
	dt.AddRow([]string{"", "bob"})

	var buf bytes.Buffer
	assert.NoError(t, dt.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"age": 30`)
	assert.Contains(t, buf.String(), `"age": null`)

	rt := New()
	assert.NoError(t, rt.ReadJSON(&buf))
	assert.True(t, dt.Equals(rt))
}

func TestWriteJSONNonFiniteCell(t *testing.T) {
	a := NewWithColumns("x")
	a.AddRow([]string{"1"})
	z := NewWithColumns("x")
	z.AddRow([]string{"0"})
	q, err := a.Divide(z)
	assert.NoError(t, err)
	assert.Equal(t, "inf", q.Rows[0][0])

	var buf bytes.Buffer
	assert.NoError(t, q.WriteJSON(&buf))
	// "inf" parses as a float but is not a JSON number, so it must be
	// emitted quoted and the document must stay decodable
	assert.Contains(t, buf.String(), `"x": "inf"`)
	rt := New()
	assert.NoError(t, rt.ReadJSON(&buf))
	assert.Equal(t, "inf", rt.Rows[0][0])
}

func TestReadJSONMissingKeys(t *testing.T) {
	data := `[{"a": 1, "b": "x"}, {"a": 2}]`
	dt := New()
	assert.NoError(t, dt.ReadJSON(strings.NewReader(data)))
	assert.Equal(t, []string{"a", "b"}, dt.Names)
	assert.Equal(t, [][]string{{"1", "x"}, {"2", ""}}, dt.Rows)
	assert.Equal(t, []int{1}, dt.NullPositions[1])
}

func TestWriteHTML(t *testing.T) {
	dt := NewWithColumns("name")
	dt.AddRow([]string{"a<b"})
	var buf bytes.Buffer
	assert.NoError(t, dt.WriteHTML(&buf))
	out := buf.String()
	assert.Contains(t, out, "<th>name</th>")
	assert.Contains(t, out, "<td>a&lt;b</td>")
}
