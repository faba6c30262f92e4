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

//go:build arm64

package sortbench

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture; it is still checked so
	// an odd emulator reports scalar instead of lying.
	if !cpu.ARM64.HasASIMD {
		setScalarMode()
		return
	}
	currentLevel = LevelNEON
	currentFeatures = []string{"asimd"}

	if cpu.ARM64.HasATOMICS {
		currentFeatures = append(currentFeatures, "atomics")
	}
	if cpu.ARM64.HasSVE {
		currentLevel = LevelSVE
		currentFeatures = append(currentFeatures, "sve")
	}
	if cpu.ARM64.HasSVE2 {
		currentFeatures = append(currentFeatures, "sve2")
	}
}
