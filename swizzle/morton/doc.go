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

// Package morton maps 2D and 3D texel coordinates to and from Z-order
// (Morton) indices.
//
// # Bit Interleaving
//
// The two primitives are bit deposit and bit extract:
//
//	Deposit(value, mask) // scatter low bits of value into the set bits of mask
//	Extract(value, mask) // gather the bits of value selected by mask
//
// Both are package-level function variables. They start out pointing at the
// portable implementations (DepositBase, ExtractBase) and are replaced at
// init time by the BMI2 PDEP/PEXT instructions on amd64 CPUs that support
// them. Set SWIZZLE_NO_ASM=1 to keep the portable path.
//
// # Address Mapping
//
// The 2D standard swizzle gives x the odd bits and y the even bits of the
// index:
//
//	i := morton.Index2D(x, y)
//	x, y = morton.Coords2D(i)
//
// The 3D variant interleaves with a period of three, x starting at bit 0, y
// at bit 1 and z at bit 2:
//
//	i := morton.Index3D(x, y, z)
//	x, y, z = morton.Coords3D(i)
//
// Indices are 32 bits wide, which limits 2D extents to 1<<16 per axis and 3D
// extents to 1<<11 (x, y) and 1<<10 (z). Use Fits2D and Fits3D to check.
package morton
