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

package sortbench

import (
	"os"
	"runtime"
	"strconv"
)

// Level represents the widest vector instruction set detected on this CPU.
// The sorts are scalar; the level is reported alongside timings so results
// from different machines can be told apart.
type Level int

const (
	// LevelScalar indicates no vector extension was detected (or detection
	// was disabled).
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512F (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON / ASIMD (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE (scalable vector).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentFeatures lists the CPU feature names detected at init.
var currentFeatures []string

// CurrentLevel returns the widest vector extension detected.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns the name of the current level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// Features returns a copy of the detected CPU feature names.
func Features() []string {
	out := make([]string, len(currentFeatures))
	copy(out, currentFeatures)
	return out
}

// NoSimdEnv checks if the SORTBENCH_NO_SIMD environment variable is set.
// When set, detection is skipped and the level reported is scalar.
func NoSimdEnv() bool {
	val := os.Getenv("SORTBENCH_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Platform describes the machine and runtime a benchmark executes on.
type Platform struct {
	GOOS       string   `json:"goos" yaml:"goos"`
	GOARCH     string   `json:"goarch" yaml:"goarch"`
	GoVersion  string   `json:"go_version" yaml:"go_version"`
	NumCPU     int      `json:"num_cpu" yaml:"num_cpu"`
	GOMAXPROCS int      `json:"gomaxprocs" yaml:"gomaxprocs"`
	Level      string   `json:"level" yaml:"level"`
	Features   []string `json:"features" yaml:"features"`
}

// Describe returns the current platform description.
func Describe() Platform {
	return Platform{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Level:      CurrentName(),
		Features:   Features(),
	}
}

// String formats the platform on one line, suitable for log fields and
// database columns.
func (p Platform) String() string {
	s := p.GOOS + "/" + p.GOARCH + " " + p.GoVersion +
		" cpus=" + strconv.Itoa(p.NumCPU) +
		" procs=" + strconv.Itoa(p.GOMAXPROCS) +
		" level=" + p.Level
	return s
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentFeatures = nil
}
