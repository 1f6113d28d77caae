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

package morton

import "golang.org/x/sys/cpu"

// AMD64 dispatch for bit interleaving.
//
// PDEP/PEXT are part of BMI2 (Haswell+, Zen+). The z_ prefix keeps this
// init() after the package-level defaults in dispatch.go.

func init() {
	// Respect SWIZZLE_NO_ASM to allow fallback testing
	if NoAsmEnv() {
		return
	}
	if !cpu.X86.HasBMI2 {
		return
	}

	Deposit = depositBMI2
	Extract = extractBMI2
	currentLevel = LevelBMI2
}

// hasBMI2 reports whether the BMI2 functions can be called directly.
// Tests use it to cross-check against the base path even when
// SWIZZLE_NO_ASM is set.
func hasBMI2() bool {
	return cpu.X86.HasBMI2
}
