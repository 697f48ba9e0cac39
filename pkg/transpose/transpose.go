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

// Package transpose performs the global redistributions invoked at transpose
// edges of a layout walk: collective, blocking exchanges across one mesh
// dimension which swap the locality of two axes.  The Engine interface is the
// seam to the communication layer; the Cluster engine provided here runs the
// collective between goroutines of one process, standing in for an MPI
// alltoall in tests and serial tooling.
package transpose

import (
	"errors"
	"fmt"
)

// ErrCollectiveFailure indicates that the participants of a collective
// exchange disagreed about the step being performed.  The process group is
// considered faulted: no local recovery is possible, since a torn distributed
// state cannot be repaired from one process.
var ErrCollectiveFailure = errors.New("collective exchange failed")

// Plan describes one transpose step.  Read forward, AxisA is currently
// distributed across MeshDim and becomes local, while AxisB gives up its
// locality; read backward, the roles swap.  All participants sharing the mesh
// dimension must issue identical plans for the same step, or the collective
// faults.
type Plan struct {
	// MeshDim is the mesh dimension data moves across.
	MeshDim int
	// AxisA is the axis distributed before (forward reading).
	AxisA int
	// AxisB is the axis distributed after (forward reading).
	AxisB int
	// GlobalA and GlobalB are the global sizes of the two axes.  Grid-space
	// flags do not change across a transpose, so both are fixed for the
	// step.
	GlobalA int
	// GlobalB -- see GlobalA.
	GlobalB int
	// Forward selects the reading direction.
	Forward bool
}

func (p Plan) String() string {
	dir := "forward"
	if !p.Forward {
		dir = "backward"
	}
	//
	return fmt.Sprintf("transpose(%d, %d<->%d, %s)", p.MeshDim, p.AxisA, p.AxisB, dir)
}

// normalise returns the plan with Forward true, swapping the axis roles if
// necessary, so that engines only ever see one direction.
func (p Plan) normalise() Plan {
	if p.Forward {
		return p
	}
	//
	return Plan{p.MeshDim, p.AxisB, p.AxisA, p.GlobalB, p.GlobalA, true}
}

// Engine performs the global redistribution of a local buffer for one
// transpose step, returning the new local buffer and its shape.  Transposes
// are collective and blocking: every process sharing the mesh dimension must
// call Transpose with the same plan for the same step, or the group
// deadlocks or faults.  Engines never retry; retry policy belongs to the
// transport below them.
type Engine interface {
	Transpose(buf []complex128, shape []int, plan Plan) ([]complex128, []int, error)
}

// Serial is the engine of a rank-zero mesh.  Chains built for such meshes
// contain no transpose edges, so any call is a walk bookkeeping bug.
type Serial struct{}

// Transpose always fails: a serial mesh has nothing to redistribute.
func (Serial) Transpose(buf []complex128, shape []int, plan Plan) ([]complex128, []int, error) {
	return nil, nil, fmt.Errorf("%w: transpose on a serial mesh", ErrCollectiveFailure)
}
