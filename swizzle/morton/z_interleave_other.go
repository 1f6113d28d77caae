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

//go:build !amd64

package morton

func hasBMI2() bool {
	return false
}

// depositBMI2 and extractBMI2 are never selected off amd64; they exist so
// tests compile on every architecture.
func depositBMI2(value, mask uint32) uint32 { return DepositBase(value, mask) }

func extractBMI2(value, mask uint32) uint32 { return ExtractBase(value, mask) }
