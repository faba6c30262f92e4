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
	"context"
	"database/sql"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gravitational/trace"
	"github.com/samber/lo"
	_ "modernc.org/sqlite"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/bench"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	seed        INTEGER NOT NULL,
	max_n       INTEGER NOT NULL,
	value_lo    INTEGER NOT NULL,
	value_hi    INTEGER NOT NULL,
	repeats     INTEGER NOT NULL,
	averaging   TEXT NOT NULL,
	platform    TEXT NOT NULL,
	min_n       INTEGER NOT NULL DEFAULT 0,
	sweep_max_n INTEGER NOT NULL DEFAULT 0,
	step        INTEGER NOT NULL DEFAULT 0,
	thresholds  TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS measurements (
	run_id    TEXT NOT NULL REFERENCES runs(id),
	n         INTEGER NOT NULL,
	shape     TEXT NOT NULL,
	algorithm TEXT NOT NULL,
	threshold INTEGER NOT NULL,
	nanos     INTEGER NOT NULL,
	PRIMARY KEY (run_id, n, shape, algorithm, threshold)
);
`

// RunInfo describes the configuration a sweep ran under. It is stored with
// every run so historic results stay attributable.
type RunInfo struct {
	Seed      uint64
	MaxN      int
	ValueLo   int64
	ValueHi   int64
	Repeats   int
	Averaging string
	Platform  string
}

// SQLiteSink records runs and measurements in a SQLite database.
type SQLiteSink struct {
	db         *sql.DB
	info       RunInfo
	runID      string
	thresholds []int
}

// OpenSQLiteSink opens (creating if needed) the database at path. ctx
// bounds schema creation only. The sink owns the database handle and
// closes it on Close.
func OpenSQLiteSink(ctx context.Context, path string, info RunInfo) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, trace.Wrap(err, "opening results database %v", path)
	}
	// SQLite allows one writer; a single connection also keeps an
	// in-memory database alive across statements.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, trace.Wrap(err, "creating results schema")
	}
	return &SQLiteSink{db: db, info: info}, nil
}

// RunID returns the id of the current run, empty before Begin.
func (s *SQLiteSink) RunID() string {
	return s.runID
}

// DB returns the underlying handle.
func (s *SQLiteSink) DB() *sql.DB {
	return s.db
}

func (s *SQLiteSink) Begin(ctx context.Context, plan Plan) error {
	s.runID = uuid.NewString()
	thresholds := strings.Join(lo.Map(plan.Thresholds, func(th int, _ int) string {
		return strconv.Itoa(th)
	}), ",")
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, seed, max_n, value_lo, value_hi, repeats, averaging, platform,
			min_n, sweep_max_n, step, thresholds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, time.Now().UTC().Format(time.RFC3339), int64(s.info.Seed), s.info.MaxN,
		s.info.ValueLo, s.info.ValueHi, s.info.Repeats, s.info.Averaging, s.info.Platform,
		plan.MinN, plan.MaxN, plan.Step, thresholds)
	if err != nil {
		return trace.Wrap(err, "recording run")
	}
	s.thresholds = slices.Clone(plan.Thresholds)
	return nil
}

// Write stores one row in a single transaction.
func (s *SQLiteSink) Write(ctx context.Context, row Row) error {
	if s.runID == "" {
		return trace.BadParameter("Write called before Begin")
	}
	for _, cell := range row.Cells {
		if len(cell.Hybrid) != len(s.thresholds) {
			return trace.BadParameter("row n=%d has %d hybrid timings for %v, plan has %d thresholds",
				row.N, len(cell.Hybrid), cell.Shape, len(s.thresholds))
		}
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return trace.Wrap(err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO measurements (run_id, n, shape, algorithm, threshold, nanos) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return trace.Wrap(err)
	}
	defer stmt.Close()

	insert := func(shape, algo string, threshold int, d time.Duration) error {
		_, err := stmt.ExecContext(ctx, s.runID, row.N, shape, algo, threshold, int64(d))
		return trace.Wrap(err)
	}
	for _, cell := range row.Cells {
		if err := insert(cell.Shape.String(), string(bench.Merge), 0, cell.Merge); err != nil {
			tx.Rollback()
			return trace.Wrap(err)
		}
		for i, d := range cell.Hybrid {
			if err := insert(cell.Shape.String(), string(bench.Hybrid), s.thresholds[i], d); err != nil {
				tx.Rollback()
				return trace.Wrap(err)
			}
		}
	}
	return trace.Wrap(tx.Commit())
}

func (s *SQLiteSink) Close() error {
	return trace.Wrap(s.db.Close())
}

// Measurement is one stored timing.
type Measurement struct {
	N         int
	Shape     string
	Algorithm string
	Threshold int
	Duration  time.Duration
}

// Measurements returns the stored timings of a run ordered by size, shape,
// algorithm and threshold.
func (s *SQLiteSink) Measurements(ctx context.Context, runID string) ([]Measurement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT n, shape, algorithm, threshold, nanos FROM measurements
		WHERE run_id = ? ORDER BY n, shape, algorithm, threshold`, runID)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	defer rows.Close()

	var out []Measurement
	for rows.Next() {
		var (
			m     Measurement
			nanos int64
		)
		if err := rows.Scan(&m.N, &m.Shape, &m.Algorithm, &m.Threshold, &nanos); err != nil {
			return nil, trace.Wrap(err)
		}
		m.Duration = time.Duration(nanos)
		out = append(out, m)
	}
	return out, trace.Wrap(rows.Err())
}
