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

//go:build amd64

package sortbench

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

func detectCPUFeatures() {
	// SSE2 is part of the x86-64 baseline.
	currentLevel = LevelSSE2
	currentFeatures = []string{"sse2"}

	if cpu.X86.HasSSE41 {
		currentFeatures = append(currentFeatures, "sse4.1")
	}
	if cpu.X86.HasPOPCNT {
		currentFeatures = append(currentFeatures, "popcnt")
	}
	if cpu.X86.HasAVX2 {
		currentLevel = LevelAVX2
		currentFeatures = append(currentFeatures, "avx2")
	}
	if cpu.X86.HasBMI2 {
		currentFeatures = append(currentFeatures, "bmi2")
	}
	if cpu.X86.HasAVX512F {
		currentLevel = LevelAVX512
		currentFeatures = append(currentFeatures, "avx512f")
	}
}
