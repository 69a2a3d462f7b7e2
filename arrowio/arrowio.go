// Copyright (c) 2026, The Vega Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrowio converts tables to and from Apache Arrow records,
// and reads and writes Parquet files through them. Int columns map to
// arrow int64, Float to float64, String to utf8; null cells and cells
// that fail to parse under their column type become Arrow nulls.
package arrowio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/SKurnella/Vega-Data-processing-Frame-Work/table"
)

// Schema returns the Arrow schema for the table's columns. Every
// field is nullable.
func Schema(dt *table.Table) *arrow.Schema {
	fields := make([]arrow.Field, dt.NumColumns())
	for ci, nm := range dt.Names {
		var typ arrow.DataType
		switch dt.Types[ci] {
		case table.Int:
			typ = arrow.PrimitiveTypes.Int64
		case table.Float:
			typ = arrow.PrimitiveTypes.Float64
		default:
			typ = arrow.BinaryTypes.String
		}
		fields[ci] = arrow.Field{Name: nm, Type: typ, Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// Record converts the table to an Arrow record. The caller owns the
// record and must Release it.
func Record(dt *table.Table) (arrow.Record, error) {
	mem := memory.DefaultAllocator
	schema := Schema(dt)
	cols := make([]arrow.Array, dt.NumColumns())
	defer func() {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
	}()
	for ci := range dt.Names {
		switch dt.Types[ci] {
		case table.Int:
			b := array.NewInt64Builder(mem)
			for _, row := range dt.Rows {
				if v, ok := intCell(row, ci); ok {
					b.Append(v)
				} else {
					b.AppendNull()
				}
			}
			cols[ci] = b.NewArray()
			b.Release()
		case table.Float:
			b := array.NewFloat64Builder(mem)
			for _, row := range dt.Rows {
				if v, ok := floatCell(row, ci); ok {
					b.Append(v)
				} else {
					b.AppendNull()
				}
			}
			cols[ci] = b.NewArray()
			b.Release()
		default:
			b := array.NewStringBuilder(mem)
			for _, row := range dt.Rows {
				if ci < len(row) && row[ci] != "" {
					b.Append(row[ci])
				} else {
					b.AppendNull()
				}
			}
			cols[ci] = b.NewArray()
			b.Release()
		}
	}
	rec := array.NewRecord(schema, cols, int64(dt.NumRows()))
	for i := range cols {
		cols[i] = nil // ownership moved to the record
	}
	return rec, nil
}

func intCell(row []string, ci int) (int64, bool) {
	if ci >= len(row) || row[ci] == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(row[ci], 10, 64)
	return v, err == nil
}

func floatCell(row []string, ci int) (float64, bool) {
	if ci >= len(row) || row[ci] == "" {
		return 0, false
	}
	return table.ParseFloat(row[ci])
}

// FromRecord converts an Arrow record back to a table, with nulls
// stored as empty cells.
func FromRecord(rec arrow.Record) (*table.Table, error) {
	schema := rec.Schema()
	names := make([]string, schema.NumFields())
	for i, f := range schema.Fields() {
		names[i] = f.Name
	}
	dt := table.NewWithColumns(names...)
	nr := int(rec.NumRows())
	for ri := 0; ri < nr; ri++ {
		row := make([]string, len(names))
		for ci, col := range rec.Columns() {
			cell, err := cellText(col, ri)
			if err != nil {
				return nil, err
			}
			row[ci] = cell
		}
		if err := dt.AddRow(row); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

func cellText(col arrow.Array, pos int) (string, error) {
	if col.IsNull(pos) {
		return "", nil
	}
	switch col.DataType().ID() {
	case arrow.INT64:
		return strconv.FormatInt(col.(*array.Int64).Value(pos), 10), nil
	case arrow.FLOAT64:
		return table.FormatFloat(col.(*array.Float64).Value(pos)), nil
	case arrow.STRING:
		return col.(*array.String).Value(pos), nil
	default:
		return "", fmt.Errorf("arrowio: unsupported column type %s: %w",
			col.DataType(), table.ErrInvalidArgument)
	}
}

// SaveParquet writes the table to a Parquet file with snappy
// compression.
func SaveParquet(dt *table.Table, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("arrowio: create parquet file: %w", err)
	}
	defer fp.Close()
	return WriteParquet(dt, fp)
}

// WriteParquet writes the table as snappy-compressed Parquet.
func WriteParquet(dt *table.Table, w io.Writer) error {
	rec, err := Record(dt)
	if err != nil {
		return err
	}
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())
	writer, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("arrowio: create parquet writer: %w", err)
	}
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("arrowio: write parquet: %w", err)
	}
	return writer.Close()
}

// OpenParquet reads a Parquet file into a table, with Arrow nulls
// stored as empty cells.
func OpenParquet(filename string) (*table.Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("arrowio: open parquet file: %w", err)
	}
	defer fp.Close()

	rdr, err := file.NewParquetReader(fp)
	if err != nil {
		return nil, fmt.Errorf("arrowio: read parquet: %w", err)
	}
	defer rdr.Close()

	fr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, fmt.Errorf("arrowio: arrow reader: %w", err)
	}
	at, err := fr.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("arrowio: read table: %w", err)
	}
	defer at.Release()
	return fromArrowTable(at)
}

// fromArrowTable drains an arrow.Table through a record reader.
func fromArrowTable(at arrow.Table) (*table.Table, error) {
	schema := at.Schema()
	names := make([]string, schema.NumFields())
	for i, f := range schema.Fields() {
		names[i] = f.Name
	}
	dt := table.NewWithColumns(names...)

	tr := array.NewTableReader(at, at.NumRows())
	defer tr.Release()
	for tr.Next() {
		rec := tr.Record()
		nr := int(rec.NumRows())
		for ri := 0; ri < nr; ri++ {
			row := make([]string, len(names))
			for ci, col := range rec.Columns() {
				cell, err := cellText(col, ri)
				if err != nil {
					return nil, err
				}
				row[ci] = cell
			}
			if err := dt.AddRow(row); err != nil {
				return nil, err
			}
		}
	}
	if tr.Err() != nil {
		return nil, fmt.Errorf("arrowio: read records: %w", tr.Err())
	}
	return dt, nil
}
