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

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// Build errors.  These are fatal configuration errors: no chain is produced.
var (
	// ErrMeshRankMismatch indicates a mesh of higher rank than the number of
	// separable axes available to distribute.
	ErrMeshRankMismatch = errors.New("mesh rank exceeds separable axes")
	// ErrTrivialExtent indicates a mesh extent below two.  Extent-one
	// dimensions distribute nothing and must be squeezed out before the
	// chain is built (see mesh.Squeeze).
	ErrTrivialExtent = errors.New("trivial mesh extent")
)

// Build enumerates the full layout chain for a domain of the given dimension
// distributed over a mesh with the given extents, together with the edges
// connecting consecutive layouts.  Edge i connects layouts i and i+1.
//
// The chain starts at full coefficient space, with the last M separable axes
// distributed over the M mesh dimensions in order and the trailing axis
// local, ready for its transform.  Axes are then transformed from last to
// first.  An axis already local is transformed directly; an axis split
// across mesh dimension d is first localised by a transpose which hands d
// over to its successor axis (always local at that point, having just been
// transformed).  Consequently distributed axes, in increasing axis order,
// correspond to mesh dimensions in increasing order in every layout, and the
// chain is a simple linear walk of N transform edges plus one transpose edge
// per initially distributed axis.
//
// The walk is deterministic: the same dimension and extents always produce an
// identical chain on every process.
func Build(dim int, extents []int) ([]Layout, []Edge, error) {
	if dim < 1 {
		return nil, nil, fmt.Errorf("invalid domain dimension %d", dim)
	} else if len(extents) > dim-1 {
		return nil, nil, fmt.Errorf("%w: mesh rank %d with %d axes",
			ErrMeshRankMismatch, len(extents), dim)
	}
	//
	for _, e := range extents {
		if e < 2 {
			return nil, nil, fmt.Errorf("%w: extent %d", ErrTrivialExtent, e)
		}
	}
	//
	var (
		m       = len(extents)
		grid    = bitset.New(uint(dim))
		owners  = make([]int, m)
		layouts []Layout
		edges   []Edge
	)
	// Initially the last m separable axes hold the mesh dimensions, in order.
	for d := range owners {
		owners[d] = (dim - 1 - m) + d
	}
	//
	layouts = append(layouts, snapshot(0, dim, grid, owners))
	// Transform axes from last to first, localising each as required.
	for axis := dim - 1; axis >= 0; axis-- {
		if d := slices.Index(owners, axis); d >= 0 {
			// Localise axis by handing mesh dimension d to its successor,
			// which was transformed in the previous step and is local.
			owners[d] = axis + 1
			edges = append(edges, Edge{TRANSPOSE, axis, d, axis + 1})
			layouts = append(layouts, snapshot(len(layouts), dim, grid, owners))
		}
		//
		grid.Set(uint(axis))
		edges = append(edges, Edge{TRANSFORM, axis, 0, 0})
		layouts = append(layouts, snapshot(len(layouts), dim, grid, owners))
	}
	//
	log.Debugf("built layout chain: %d layouts, %d transposes for dim %d over mesh %v",
		len(layouts), len(edges)-dim, dim, extents)
	//
	return layouts, edges, nil
}

// snapshot freezes the current walk state into an immutable layout record.
func snapshot(index, dim int, grid *bitset.BitSet, owners []int) Layout {
	return Layout{index, dim, grid.Clone(), slices.Clone(owners)}
}
