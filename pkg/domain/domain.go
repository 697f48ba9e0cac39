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

// Package domain ties an ordered tuple of bases to a process mesh, forming
// the N-dimensional physical domain a field lives on.  A domain answers shape
// questions: how big is each axis globally in a given layout, and which slice
// of it does this process own.
package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/wordsworthgroup/dedalus/pkg/basis"
	"github.com/wordsworthgroup/dedalus/pkg/layout"
	"github.com/wordsworthgroup/dedalus/pkg/mesh"
)

// Query errors.
var (
	// ErrAxisOutOfRange indicates an axis index at or beyond the domain
	// dimension.
	ErrAxisOutOfRange = errors.New("axis out of range")
	// ErrBadScales indicates a scale vector of the wrong length.
	ErrBadScales = errors.New("malformed scale vector")
	// ErrNonSeparableAxis indicates a mesh shape which would distribute an
	// axis whose basis does not separate.
	ErrNonSeparableAxis = errors.New("non-separable axis cannot be distributed")
)

// Dtype identifies the element type of grid-space data.  Coefficient-space
// data is always complex; real fields halve their redundant negative modes in
// the field layer, which is outside this core.
type Dtype int

const (
	// COMPLEX128 grid data.
	COMPLEX128 Dtype = iota
	// FLOAT64 grid data.
	FLOAT64
)

func (d Dtype) String() string {
	switch d {
	case COMPLEX128:
		return "complex128"
	case FLOAT64:
		return "float64"
	}
	//
	return "???"
}

// Domain is an immutable N-dimensional physical domain: an ordered tuple of
// bases, a grid-space element type, and the (squeezed) process mesh over
// which the leading axes may be distributed.  A domain owns its bases; the
// mesh group is shared with the communication layer.
type Domain struct {
	bases     []basis.Basis
	dtype     Dtype
	group     mesh.Group
	partition mesh.Partition
	// Terminal (full grid space) layout, used to slice local grids.
	final layout.Layout
}

// New constructs a domain from validated bases and a mesh group, using the
// default block partition rule.
func New(bases []basis.Basis, dtype Dtype, group mesh.Group) (*Domain, error) {
	return NewWithPartition(bases, dtype, group, mesh.BlockPartition)
}

// NewWithPartition constructs a domain with an explicit partition policy.
// The group is validated against its own extent product and squeezed of
// trivial extents; its squeezed rank must not exceed N-1, since the trailing
// axis must remain local for its transform.
func NewWithPartition(bases []basis.Basis, dtype Dtype, group mesh.Group,
	partition mesh.Partition) (*Domain, error) {
	if len(bases) == 0 {
		return nil, errors.New("domain requires at least one basis")
	}
	//
	squeezed, err := mesh.Squeeze(group)
	if err != nil {
		return nil, err
	}
	// The layout chain exists for any valid domain; building it here both
	// checks the mesh rank and pins down the terminal layout.
	layouts, _, err := layout.Build(len(bases), squeezed.Shape())
	if err != nil {
		return nil, err
	}
	// In coefficient space the mesh distributes the last M axes before the
	// trailing one; each of those bases must separate.
	var (
		dim = len(bases)
		m   = len(squeezed.Shape())
	)
	//
	for axis := dim - 1 - m; axis < dim-1; axis++ {
		if !bases[axis].Separable() {
			return nil, fmt.Errorf("%w: axis %d (%s)", ErrNonSeparableAxis,
				axis, bases[axis].Name())
		}
	}
	//
	return &Domain{
		bases:     slices.Clone(bases),
		dtype:     dtype,
		group:     squeezed,
		partition: partition,
		final:     layouts[len(layouts)-1],
	}, nil
}

// Dim returns the dimensionality of this domain.
func (p *Domain) Dim() int { return len(p.bases) }

// Dtype returns the grid-space element type.
func (p *Domain) Dtype() Dtype { return p.dtype }

// Bases returns the ordered bases of this domain.
func (p *Domain) Bases() []basis.Basis { return slices.Clone(p.bases) }

// Basis returns the basis for a given axis.
func (p *Domain) Basis(axis int) (basis.Basis, error) {
	if axis < 0 || axis >= len(p.bases) {
		return nil, fmt.Errorf("%w: axis %d of %d", ErrAxisOutOfRange, axis, len(p.bases))
	}
	//
	return p.bases[axis], nil
}

// Mesh returns the squeezed process mesh group.
func (p *Domain) Mesh() mesh.Group { return p.group }

// Partition returns the partition policy in force.
func (p *Domain) Partition() mesh.Partition { return p.partition }

// Scales resolves a caller-supplied scale vector against this domain: nil
// selects each basis's dealias scale, a single entry broadcasts to every
// axis, and a full-length vector is used as given.  Every entry must be
// strictly positive.
func (p *Domain) Scales(scales []float64) ([]float64, error) {
	n := len(p.bases)
	resolved := make([]float64, n)
	//
	switch len(scales) {
	case 0:
		for i, b := range p.bases {
			resolved[i] = b.DealiasScale()
		}
	case 1:
		for i := range resolved {
			resolved[i] = scales[0]
		}
	case n:
		copy(resolved, scales)
	default:
		return nil, fmt.Errorf("%w: %d entries for %d axes", ErrBadScales, len(scales), n)
	}
	//
	for _, s := range resolved {
		if err := basis.CheckScale(s); err != nil {
			return nil, err
		}
	}
	//
	return resolved, nil
}

// GlobalShape returns the global size of every axis in the given layout:
// the scaled grid size for grid-space axes and the raw mode count for
// coefficient-space axes.
func (p *Domain) GlobalShape(l layout.Layout, scales []float64) ([]int, error) {
	resolved, err := p.Scales(scales)
	if err != nil {
		return nil, err
	}
	//
	shape := make([]int, len(p.bases))
	//
	for axis, b := range p.bases {
		if shape[axis], err = globalSize(b, l.GridSpace(axis), resolved[axis]); err != nil {
			return nil, err
		}
	}
	//
	return shape, nil
}

// LocalShape returns the number of entries of every axis owned by this
// process in the given layout.  Locally owned axes carry their full global
// size; distributed axes carry this process's partition block, which may be
// empty.
func (p *Domain) LocalShape(l layout.Layout, scales []float64) ([]int, error) {
	shape, err := p.GlobalShape(l, scales)
	if err != nil {
		return nil, err
	}
	//
	coords := p.group.Coords()
	extents := p.group.Shape()
	//
	for axis := range shape {
		if d, split := l.OwnerDim(axis); split {
			_, size := p.partition(shape[axis], extents[d], coords[d])
			shape[axis] = size
		}
	}
	//
	return shape, nil
}

// Grid returns this process's slice of the physical grid for the given axis,
// at the given scales, in the terminal (full grid space) layout.  For locally
// owned axes this is the complete basis grid.
func (p *Domain) Grid(axis int, scales []float64) ([]float64, error) {
	b, err := p.Basis(axis)
	if err != nil {
		return nil, err
	}
	//
	resolved, err := p.Scales(scales)
	if err != nil {
		return nil, err
	}
	//
	grid, err := b.Grid(resolved[axis])
	if err != nil {
		return nil, err
	}
	//
	if d, split := p.final.OwnerDim(axis); split {
		start, size := p.partition(len(grid), p.group.Shape()[d], p.group.Coords()[d])
		grid = grid[start : start+size]
	}
	//
	return grid, nil
}

// globalSize determines the global extent of one axis, given whether it is
// currently in grid space.
func globalSize(b basis.Basis, gridSpace bool, scale float64) (int, error) {
	if gridSpace {
		return b.GridSize(scale)
	}
	//
	return b.Modes(), nil
}
