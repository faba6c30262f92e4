// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package sweep

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
	"github.com/olekukonko/tablewriter"
)

// Sink receives the rows of a sweep.
type Sink interface {
	// Begin is called once before the first row.
	Begin(ctx context.Context, plan Plan) error
	// Write receives one complete row.
	Write(ctx context.Context, row Row) error
	// Close flushes buffered output.
	Close() error
}

// CSVSink writes the reference format: one record per row, no header.
// Records are flushed as they are written so partial sweeps are usable.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink returns a CSVSink writing to w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func (s *CSVSink) Begin(context.Context, Plan) error { return nil }

func (s *CSVSink) Write(_ context.Context, row Row) error {
	if err := s.w.Write(row.Record()); err != nil {
		return trace.ConvertSystemError(err)
	}
	s.w.Flush()
	return trace.ConvertSystemError(s.w.Error())
}

func (s *CSVSink) Close() error {
	s.w.Flush()
	return trace.ConvertSystemError(s.w.Error())
}

// TableSink renders an aligned text table with a header when closed.
type TableSink struct {
	out  io.Writer
	plan Plan
	rows [][]string
}

// NewTableSink returns a TableSink writing to out.
func NewTableSink(out io.Writer) *TableSink {
	return &TableSink{out: out}
}

func (s *TableSink) Begin(_ context.Context, plan Plan) error {
	s.plan = plan
	s.rows = nil
	return nil
}

func (s *TableSink) Write(_ context.Context, row Row) error {
	rec := row.Record()
	rec[0] = humanize.Comma(int64(row.N))
	s.rows = append(s.rows, rec)
	return nil
}

// Close renders the table. tablewriter does not report write errors, so
// the table is rendered into memory and copied to out.
func (s *TableSink) Close() error {
	var buf bytes.Buffer
	t := tablewriter.NewWriter(&buf)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	t.SetHeader(s.plan.Columns())
	t.AppendBulk(s.rows)
	t.Render()
	_, err := buf.WriteTo(s.out)
	return trace.ConvertSystemError(err)
}

// MultiSink fans rows out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Begin(ctx context.Context, plan Plan) error {
	for _, s := range m {
		if err := s.Begin(ctx, plan); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}

func (m MultiSink) Write(ctx context.Context, row Row) error {
	for _, s := range m {
		if err := s.Write(ctx, row); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}

// Close closes every sink, even after a failure, and aggregates errors.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return trace.NewAggregate(errs...)
}
