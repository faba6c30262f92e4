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
package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	cfg := filepath.Join(t.TempDir(), "absent.yaml")
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

var smallGrid = []string{"--min-n", "500", "--max-n", "1000", "--step", "500", "--repeats", "1"}

func TestSweepCSV(t *testing.T) {
	out, err := execute(t, append([]string{"sweep", "--thresholds", "5,10", "--shapes", "random"}, smallGrid...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for i, want := range []string{"500", "1000"} {
		fields := strings.Split(lines[i], ",")
		require.Len(t, fields, 4, "n, merge, hybrid5, hybrid10")
		assert.Equal(t, want, fields[0])
	}
}

func TestSweepTable(t *testing.T) {
	out, err := execute(t, append([]string{"sweep", "--format", "table", "--thresholds", "5"}, smallGrid...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "merge_random")
	assert.Contains(t, out, "hybrid5_almost")
	assert.Contains(t, out, "1,000")
}

func TestSweepDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	_, err := execute(t, append([]string{"sweep", "--db", path, "--thresholds", "5,10", "--shapes", "reverse", "--check"}, smallGrid...)...)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var runs, measurements int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM measurements").Scan(&measurements))
	assert.Equal(t, 1, runs)
	// Two sizes, one shape, merge plus two thresholds.
	assert.Equal(t, 6, measurements)
}

func TestSweepRejectsBadFlags(t *testing.T) {
	tests := [][]string{
		{"sweep", "--thresholds", "0"},
		{"sweep", "--shapes", "sorted"},
		{"sweep", "--repeats", "0"},
		{"sweep", "--averaging", "median"},
		{"sweep", "--format", "xml"},
		{"sweep", "--min-n", "2000", "--max-n", "1000"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			out, err := execute(t, args...)
			require.Error(t, err)
			assert.True(t, trace.IsBadParameter(err), "got %v", err)
			assert.Empty(t, out)
		})
	}
}

func TestVerify(t *testing.T) {
	out, err := execute(t, "verify", "--min-n", "100", "--max-n", "600", "--step", "250", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestArea(t *testing.T) {
	out, err := execute(t, "area", "--from", "100", "--to", "1100", "--step", "500")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for i, want := range []string{"100", "600", "1100"} {
		fields := strings.Fields(lines[i])
		require.Len(t, fields, 2, "samples and area separated by a space")
		assert.Equal(t, want, fields[0])
		assert.Regexp(t, `^\d+\.\d{15}$`, fields[1])
	}

	again, err := execute(t, "area", "--from", "100", "--to", "1100", "--step", "500")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same estimates")
}

func TestAreaRejectsInvertedRange(t *testing.T) {
	_, err := execute(t, "area", "--from", "1000", "--to", "100")
	require.Error(t, err)
	assert.True(t, trace.IsBadParameter(err))
}

func TestEnv(t *testing.T) {
	out, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "gomaxprocs")
	assert.Contains(t, out, "100,000")
	assert.Contains(t, out, "2.4 MB")
}
