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
	"math/bits"
	"math/rand"
	"testing"
)

var allMasks = []struct {
	name string
	mask uint32
}{
	{"x2d", MaskX2D},
	{"y2d", MaskY2D},
	{"x3d", MaskX3D},
	{"y3d", MaskY3D},
	{"z3d", MaskZ3D},
}

func TestDepositBase(t *testing.T) {
	tests := []struct {
		value, mask, want uint32
	}{
		{0, 0, 0},
		{0xFFFFFFFF, 0, 0},
		{0b101, 0b11010, 0b10010},
		{0xFFFFFFFF, MaskX2D, MaskX2D},
		{0xFFFFFFFF, MaskZ3D, MaskZ3D},
		{1, 0x80000000, 0x80000000},
		{2, 0x80000001, 0x80000000},
		{3, MaskX2D, 0b1010},
		{3, MaskY2D, 0b0101},
		{5, MaskX3D, 0b1000001},
	}
	for _, tt := range tests {
		if got := DepositBase(tt.value, tt.mask); got != tt.want {
			t.Errorf("DepositBase(%#x, %#x) = %#x, want %#x", tt.value, tt.mask, got, tt.want)
		}
	}
}

func TestExtractBase(t *testing.T) {
	tests := []struct {
		value, mask, want uint32
	}{
		{0, 0, 0},
		{0xFFFFFFFF, 0, 0},
		{0b10010, 0b11010, 0b101},
		{MaskX2D, MaskX2D, 0xFFFF},
		{MaskY2D, MaskX2D, 0},
		{0x80000000, 0x80000001, 2},
		{0b1000001, MaskX3D, 5},
	}
	for _, tt := range tests {
		if got := ExtractBase(tt.value, tt.mask); got != tt.want {
			t.Errorf("ExtractBase(%#x, %#x) = %#x, want %#x", tt.value, tt.mask, got, tt.want)
		}
	}
}

func TestExtractInvertsDeposit(t *testing.T) {
	impls := []struct {
		name             string
		deposit, extract func(uint32, uint32) uint32
	}{
		{"base", DepositBase, ExtractBase},
		{"dispatch", Deposit, Extract},
	}
	for _, impl := range impls {
		for _, m := range allMasks {
			keep := uint32(1)<<bits.OnesCount32(m.mask) - 1
			for v := uint32(0); v < 1<<16; v++ {
				d := impl.deposit(v, m.mask)
				if d&^m.mask != 0 {
					t.Fatalf("%s: Deposit(%#x, %s) = %#x sets bits outside the mask", impl.name, v, m.name, d)
				}
				if got, want := impl.extract(d, m.mask), v&keep; got != want {
					t.Fatalf("%s: Extract(Deposit(%#x, %s)) = %#x, want %#x", impl.name, v, m.name, got, want)
				}
			}
		}
	}
}

func TestBMI2MatchesBase(t *testing.T) {
	if !hasBMI2() {
		t.Skip("BMI2 not available")
	}

	check := func(v, m uint32) {
		if got, want := depositBMI2(v, m), DepositBase(v, m); got != want {
			t.Fatalf("depositBMI2(%#x, %#x) = %#x, base = %#x", v, m, got, want)
		}
		if got, want := extractBMI2(v, m), ExtractBase(v, m); got != want {
			t.Fatalf("extractBMI2(%#x, %#x) = %#x, base = %#x", v, m, got, want)
		}
	}

	edges := []uint32{0, 1, 0x80000000, 0xFFFFFFFF, 0x55555555, 0xAAAAAAAA, 0x0000FFFF, 0xFFFF0000}
	for _, v := range edges {
		for _, m := range edges {
			check(v, m)
		}
		for _, m := range allMasks {
			check(v, m.mask)
		}
	}

	rng := rand.New(rand.NewSource(42))
	for range 200000 {
		check(rng.Uint32(), rng.Uint32())
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelBase, "base"},
		{LevelBMI2, "bmi2"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
}

func TestNoAsmEnv(t *testing.T) {
	t.Setenv("SWIZZLE_NO_ASM", "")
	if NoAsmEnv() {
		t.Error("NoAsmEnv() = true with empty value")
	}
	t.Setenv("SWIZZLE_NO_ASM", "false")
	if NoAsmEnv() {
		t.Error("NoAsmEnv() = true with \"false\"")
	}
	t.Setenv("SWIZZLE_NO_ASM", "1")
	if !NoAsmEnv() {
		t.Error("NoAsmEnv() = false with \"1\"")
	}
	t.Setenv("SWIZZLE_NO_ASM", "yes")
	if !NoAsmEnv() {
		t.Error("NoAsmEnv() = false with \"yes\"")
	}
}

func BenchmarkDeposit(b *testing.B) {
	impls := []struct {
		name string
		fn   func(uint32, uint32) uint32
	}{
		{"base", DepositBase},
		{"dispatch/" + CurrentName(), Deposit},
	}
	for _, impl := range impls {
		b.Run(impl.name, func(b *testing.B) {
			var sink uint32
			for i := 0; b.Loop(); i++ {
				sink += impl.fn(uint32(i), MaskX2D)
			}
			_ = sink
		})
	}
}
