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

// Package layout enumerates the representational states a distributed
// spectral field passes through on its way between full coefficient space and
// full grid space, and the transform / transpose edges connecting them.  The
// chain is a pure function of the domain dimension and the mesh extents; it
// carries no reference to any particular process.
package layout

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Layout is an immutable snapshot of one representational state: for every
// axis, whether that axis currently holds grid-space samples or
// coefficient-space modes, and whether it is wholly owned by each process or
// split across a mesh dimension.  Layouts are plain data records, built once
// per chain and referenced by index thereafter.
type Layout struct {
	// Position of this layout within its chain.  Index zero is full
	// coefficient space; the final index is full grid space.
	index int
	// Number of axes.
	dim int
	// Per-axis grid-space flags.  Bits fill in from the last axis towards the
	// first as the index increases, and never clear again.
	grid *bitset.BitSet
	// owners[d] gives the axis distributed over mesh dimension d.  Every axis
	// not present here is locally owned.  Distributed axes, in increasing
	// axis order, always correspond to mesh dimensions in increasing order.
	owners []int
}

// Index returns the position of this layout within its chain.
func (p *Layout) Index() int { return p.index }

// Dim returns the number of axes.
func (p *Layout) Dim() int { return p.dim }

// GridSpace reports whether the given axis holds grid-space samples in this
// layout (as opposed to coefficient-space modes).
func (p *Layout) GridSpace(axis int) bool {
	p.boundsCheck(axis)
	return p.grid.Test(uint(axis))
}

// Local reports whether the given axis is wholly owned by each process in
// this layout (as opposed to split across a mesh dimension).
func (p *Layout) Local(axis int) bool {
	p.boundsCheck(axis)
	//
	_, ok := p.OwnerDim(axis)
	//
	return !ok
}

// OwnerDim returns the mesh dimension across which the given axis is split,
// if any.
func (p *Layout) OwnerDim(axis int) (int, bool) {
	p.boundsCheck(axis)
	//
	for d, a := range p.owners {
		if a == axis {
			return d, true
		}
	}
	//
	return -1, false
}

// Owner returns the axis split across the given mesh dimension.
func (p *Layout) Owner(meshDim int) int {
	if meshDim < 0 || meshDim >= len(p.owners) {
		panic("mesh dimension out of bounds")
	}
	//
	return p.owners[meshDim]
}

// GridFlags returns the per-axis grid-space flags as a fresh slice.
func (p *Layout) GridFlags() []bool {
	flags := make([]bool, p.dim)
	//
	for i := range flags {
		flags[i] = p.grid.Test(uint(i))
	}
	//
	return flags
}

// LocalFlags returns the per-axis locality flags as a fresh slice.
func (p *Layout) LocalFlags() []bool {
	flags := make([]bool, p.dim)
	//
	for i := range flags {
		flags[i] = true
	}
	//
	for _, a := range p.owners {
		flags[a] = false
	}
	//
	return flags
}

func (p *Layout) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "L%d{grid=", p.index)
	writeFlags(&builder, p.GridFlags())
	builder.WriteString(", local=")
	writeFlags(&builder, p.LocalFlags())
	builder.WriteString("}")
	//
	return builder.String()
}

func (p *Layout) boundsCheck(axis int) {
	if axis < 0 || axis >= p.dim {
		panic("axis out of bounds")
	}
}

func writeFlags(builder *strings.Builder, flags []bool) {
	builder.WriteString("[")
	//
	for i, f := range flags {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		if f {
			builder.WriteString("T")
		} else {
			builder.WriteString("F")
		}
	}
	//
	builder.WriteString("]")
}
