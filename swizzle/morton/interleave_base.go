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

// DepositBase is the portable implementation of Deposit.
//
// Walks the set bits of mask from lowest to highest, consuming one bit of
// value per set bit.
func DepositBase(value, mask uint32) uint32 {
	var res uint32
	for bb := uint32(1); mask != 0; bb += bb {
		if value&bb != 0 {
			res |= mask & -mask
		}
		mask &= mask - 1
	}
	return res
}

// ExtractBase is the portable implementation of Extract.
func ExtractBase(value, mask uint32) uint32 {
	var res uint32
	for bb := uint32(1); mask != 0; bb += bb {
		if value&mask&-mask != 0 {
			res |= bb
		}
		mask &= mask - 1
	}
	return res
}
