// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mesh

// Partition determines which contiguous block of a global axis a given
// process owns when that axis is distributed over a mesh dimension.  All
// processes must agree on the resulting block boundaries: allocation and
// transposition both derive their counts from the same partition, so an
// inconsistent rule silently corrupts data rather than failing loudly.
//
// The rule is an explicit policy rather than a constant so that it can be
// swapped (and tested) independently of everything built on top of it.
type Partition func(global, extent, coord int) (start, size int)

// BlockPartition is the default partition rule: blocks of ceil(global/extent)
// contiguous entries, with the final blocks truncated (possibly to empty)
// when the split is uneven.
func BlockPartition(global, extent, coord int) (int, int) {
	if extent < 1 || coord < 0 || coord >= extent {
		panic("invalid partition query")
	}
	// Ceiling division.
	block := (global + extent - 1) / extent
	start := coord * block
	//
	if start >= global {
		return global, 0
	}
	//
	return start, min(block, global-start)
}
