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

package morton

import (
	"os"
	"strconv"
)

// Level identifies the bit interleaving strategy in use.
type Level int

const (
	// LevelBase is the portable pure Go loop.
	LevelBase Level = iota

	// LevelBMI2 uses the x86 BMI2 PDEP and PEXT instructions.
	LevelBMI2
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelBase:
		return "base"
	case LevelBMI2:
		return "bmi2"
	default:
		return "unknown"
	}
}

// Dispatch function variables.
// These are initialized to the base implementations and may be overridden by
// architecture-specific init() functions in z_*.go files.
var (
	// Deposit scatters the low-order bits of value into the set bit
	// positions of mask, lowest first. All other result bits are zero.
	Deposit = DepositBase

	// Extract gathers the bits of value at the set positions of mask into
	// the low-order bits of the result. It is the inverse of Deposit.
	Extract = ExtractBase
)

// currentLevel is the active strategy. Set by init() in z_*.go files.
var currentLevel = LevelBase

// CurrentLevel returns the bit interleaving strategy being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the current strategy,
// for example "bmi2" or "base".
func CurrentName() string {
	return currentLevel.String()
}

// NoAsmEnvVar names the environment variable that disables the BMI2 path.
const NoAsmEnvVar = "SWIZZLE_NO_ASM"

// NoAsmEnv checks if the SWIZZLE_NO_ASM environment variable is set.
// When set, the portable implementations are used regardless of CPU
// capabilities.
func NoAsmEnv() bool {
	val := os.Getenv(NoAsmEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
