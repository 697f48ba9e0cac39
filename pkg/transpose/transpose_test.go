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
package transpose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/wordsworthgroup/dedalus/pkg/mesh"
)

func Test_Blocks_01(t *testing.T) {
	// Slicing the middle column pair of a 2x4 array.
	buf := []complex128{0, 1, 2, 3, 10, 11, 12, 13}
	b := sliceAxis(buf, []int{2, 4}, 1, 1, 2)
	//
	assert.Equal(t, []int{2, 2}, b.shape)
	assert.Equal(t, []complex128{1, 2, 11, 12}, b.data)
}

func Test_Blocks_02(t *testing.T) {
	// Slicing along the leading axis is a contiguous copy.
	buf := []complex128{0, 1, 2, 3, 10, 11, 12, 13}
	b := sliceAxis(buf, []int{4, 2}, 0, 2, 2)
	//
	assert.Equal(t, []int{2, 2}, b.shape)
	assert.Equal(t, []complex128{10, 11, 12, 13}, b.data)
}

func Test_Blocks_03(t *testing.T) {
	// Concatenation inverts slicing.
	buf := []complex128{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23}
	shape := []int{3, 4}
	//
	for axis := 0; axis < 2; axis++ {
		var parts []block
		//
		for i := 0; i < shape[axis]; i++ {
			parts = append(parts, sliceAxis(buf, shape, axis, i, 1))
		}
		//
		joined := concatAxis(parts, axis)
		assert.Equal(t, shape, joined.shape)
		assert.Equal(t, buf, joined.data)
	}
}

func Test_Cluster_01(t *testing.T) {
	checkGlobalExchange(t, 3, 9, 6)
}

func Test_Cluster_02(t *testing.T) {
	// Uneven split of the localising axis.
	checkGlobalExchange(t, 3, 8, 5)
}

func Test_Cluster_03(t *testing.T) {
	// More processes than rows on the redistributed axis.
	checkGlobalExchange(t, 4, 3, 7)
}

func Test_Cluster_04(t *testing.T) {
	// A forward transpose followed by its backward twin restores every
	// process's original block.
	const extent, globalA, globalB = 3, 7, 5
	//
	cluster := NewCluster([]int{extent})
	fwd := Plan{0, 0, 1, globalA, globalB, true}
	bwd := Plan{0, 0, 1, globalA, globalB, false}
	//
	var group errgroup.Group
	//
	for rank := 0; rank < extent; rank++ {
		rank := rank
		group.Go(func() error {
			engine, err := cluster.Engine([]int{rank})
			if err != nil {
				return err
			}
			//
			_, size := mesh.BlockPartition(globalA, extent, rank)
			original := rankBuffer(rank, size*globalB)
			//
			mid, midShape, err := engine.Transpose(original, []int{size, globalB}, fwd)
			if err != nil {
				return err
			}
			//
			back, backShape, err := engine.Transpose(mid, midShape, bwd)
			if err != nil {
				return err
			}
			//
			assert.Equal(t, []int{size, globalB}, backShape)
			assert.Equal(t, original, back)
			//
			return nil
		})
	}
	//
	require.NoError(t, group.Wait())
}

func Test_Cluster_05(t *testing.T) {
	// Participants disagreeing on the step fault the whole exchange.
	cluster := NewCluster([]int{2})
	//
	var group errgroup.Group
	errs := make([]error, 2)
	//
	group.Go(func() error {
		engine, _ := cluster.Engine([]int{0})
		_, _, errs[0] = engine.Transpose(make([]complex128, 8), []int{2, 4},
			Plan{0, 0, 1, 4, 4, true})
		return nil
	})
	//
	group.Go(func() error {
		engine, _ := cluster.Engine([]int{1})
		// Same step number, opposite direction: a torn collective.
		_, _, errs[1] = engine.Transpose(make([]complex128, 8), []int{4, 2},
			Plan{0, 0, 1, 4, 4, false})
		return nil
	})
	//
	require.NoError(t, group.Wait())
	//
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrCollectiveFailure)
	}
}

func Test_Cluster_06(t *testing.T) {
	// Local shape inconsistent with the plan is rejected before blocking.
	cluster := NewCluster([]int{2})
	engine, err := cluster.Engine([]int{0})
	require.NoError(t, err)
	//
	_, _, err = engine.Transpose(make([]complex128, 6), []int{3, 2}, Plan{0, 0, 1, 4, 4, true})
	assert.ErrorIs(t, err, ErrCollectiveFailure)
}

func Test_Cluster_07(t *testing.T) {
	// A faulted step stays poisoned: a participant arriving after the fault
	// observes the failure rather than blocking on a fresh exchange.
	cluster := NewCluster([]int{3})
	fwd := Plan{0, 0, 1, 6, 6, true}
	//
	var group errgroup.Group
	errs := make([]error, 2)
	//
	group.Go(func() error {
		engine, _ := cluster.Engine([]int{0})
		_, _, errs[0] = engine.Transpose(make([]complex128, 12), []int{2, 6}, fwd)
		return nil
	})
	//
	group.Go(func() error {
		engine, _ := cluster.Engine([]int{1})
		// Same step number, opposite direction: a torn collective.
		_, _, errs[1] = engine.Transpose(make([]complex128, 12), []int{6, 2},
			Plan{0, 0, 1, 6, 6, false})
		return nil
	})
	//
	require.NoError(t, group.Wait())
	//
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrCollectiveFailure)
	}
	// The straggler issues the agreed plan, too late: the step is dead.
	engine, err := cluster.Engine([]int{2})
	require.NoError(t, err)
	//
	_, _, err = engine.Transpose(make([]complex128, 12), []int{2, 6}, fwd)
	assert.ErrorIs(t, err, ErrCollectiveFailure)
}

func Test_Serial_01(t *testing.T) {
	_, _, err := Serial{}.Transpose(nil, nil, Plan{})
	assert.ErrorIs(t, err, ErrCollectiveFailure)
}

// ===================================================================
// Test Helpers
// ===================================================================

// rankBuffer fills a buffer with values unique to one rank.
func rankBuffer(rank, n int) []complex128 {
	buf := make([]complex128, n)
	//
	for i := range buf {
		buf[i] = complex(float64(rank*10000+i), float64(rank))
	}
	//
	return buf
}

// checkGlobalExchange scatters a global 2d array over a one dimensional mesh
// along axis 0, transposes so axis 1 becomes distributed, and checks the
// re-assembled global array is untouched.
func checkGlobalExchange(t *testing.T, extent, globalA, globalB int) {
	t.Helper()
	//
	global := make([]complex128, globalA*globalB)
	for i := range global {
		global[i] = complex(float64(i), -float64(i))
	}
	//
	cluster := NewCluster([]int{extent})
	plan := Plan{0, 0, 1, globalA, globalB, true}
	//
	var (
		group   errgroup.Group
		results = make([]block, extent)
	)
	//
	for rank := 0; rank < extent; rank++ {
		rank := rank
		group.Go(func() error {
			engine, err := cluster.Engine([]int{rank})
			if err != nil {
				return err
			}
			//
			start, size := mesh.BlockPartition(globalA, extent, rank)
			local := sliceAxis(global, []int{globalA, globalB}, 0, start, size)
			//
			data, shape, err := engine.Transpose(local.data, local.shape, plan)
			if err != nil {
				return err
			}
			//
			results[rank] = block{data, shape}
			//
			return nil
		})
	}
	//
	require.NoError(t, group.Wait())
	// Every process now owns all of axis 0 and a block of axis 1.
	for rank := 0; rank < extent; rank++ {
		_, size := mesh.BlockPartition(globalB, extent, rank)
		require.Equal(t, []int{globalA, size}, results[rank].shape)
	}
	// Re-assembly along axis 1 recovers the global array exactly.
	joined := concatAxis(results, 1)
	assert.Equal(t, global, joined.data)
}
