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
package layout

import "fmt"

// EdgeKind distinguishes the two operations connecting consecutive layouts.
type EdgeKind int

const (
	// TRANSFORM is a purely local basis transform along one axis.
	TRANSFORM EdgeKind = iota
	// TRANSPOSE is a collective redistribution across one mesh dimension,
	// exchanging which of two axes is locally owned.
	TRANSPOSE
)

// Edge describes the operation connecting layout i to layout i+1, read in the
// coefficient-to-grid direction.  Walking the other way applies the inverse
// operation.
type Edge struct {
	// Kind of this edge.
	Kind EdgeKind
	// Axis acted upon.  For a TRANSFORM edge, the axis transformed from
	// coefficient to grid space.  For a TRANSPOSE edge, the axis which
	// becomes locally owned (AxisFrom).
	Axis int
	// MeshDim is the mesh dimension a TRANSPOSE redistributes across.
	// Unused for TRANSFORM edges.
	MeshDim int
	// AxisTo is the axis which gives up locality to a TRANSPOSE, becoming
	// distributed across MeshDim.  Unused for TRANSFORM edges.
	AxisTo int
}

func (e Edge) String() string {
	if e.Kind == TRANSFORM {
		return fmt.Sprintf("Transform(%d)", e.Axis)
	}
	//
	return fmt.Sprintf("Transpose(%d, %d<->%d)", e.MeshDim, e.Axis, e.AxisTo)
}
