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

// Package mesh describes the cartesian process mesh over which the separable
// axes of a domain are distributed, and the view a single process has of its
// own position within that mesh.  The actual communication fabric (MPI or
// otherwise) lives behind this interface; the core only ever asks for shapes,
// coordinates and sizes.
package mesh

import (
	"errors"
	"fmt"
	"slices"
)

// Configuration errors raised when a mesh description is inconsistent.
var (
	// ErrMeshSize indicates that the product of mesh extents disagrees with
	// the size of the process group.
	ErrMeshSize = errors.New("mesh extents do not match process count")
	// ErrMeshCoords indicates coordinates outside the mesh extents.
	ErrMeshCoords = errors.New("mesh coordinates out of range")
)

// Group is the view one process has of the cooperating process group: the
// mesh extents, this process's coordinates within them, and the total process
// count.  A serial run is a group of size one with an empty (rank zero) mesh.
type Group interface {
	// Shape returns the mesh extents, one per mesh dimension.
	Shape() []int
	// Coords returns this process's coordinates, one per mesh dimension,
	// each in [0, extent).
	Coords() []int
	// Size returns the total number of processes in the group.
	Size() int
}

// Cartesian is a plain-data realisation of Group, suitable for serial runs,
// tests and tooling.  A distributed runtime would supply its own Group backed
// by the communication layer.
type Cartesian struct {
	shape  []int
	coords []int
	size   int
}

// Serial returns the group of a single process with no mesh.
func Serial() *Cartesian {
	return &Cartesian{nil, nil, 1}
}

// NewCartesian constructs a validated cartesian group view for the process at
// the given coordinates of a mesh with the given extents.
func NewCartesian(shape []int, coords []int) (*Cartesian, error) {
	size := 1
	//
	for _, e := range shape {
		if e < 1 {
			return nil, fmt.Errorf("%w: extent %d", ErrMeshSize, e)
		}
		//
		size *= e
	}
	//
	if len(coords) != len(shape) {
		return nil, fmt.Errorf("%w: %d coordinates for %d mesh dimensions",
			ErrMeshCoords, len(coords), len(shape))
	}
	//
	for d, c := range coords {
		if c < 0 || c >= shape[d] {
			return nil, fmt.Errorf("%w: coordinate %d of mesh dimension %d (extent %d)",
				ErrMeshCoords, c, d, shape[d])
		}
	}
	//
	return &Cartesian{slices.Clone(shape), slices.Clone(coords), size}, nil
}

// Shape returns the mesh extents.
func (p *Cartesian) Shape() []int { return slices.Clone(p.shape) }

// Coords returns this process's mesh coordinates.
func (p *Cartesian) Coords() []int { return slices.Clone(p.coords) }

// Size returns the total process count.
func (p *Cartesian) Size() int { return p.size }

// Validate checks a group for internal consistency: extents positive,
// coordinates in range, and the extent product equal to the group size.  This
// must pass before any layout construction; a violation is a fatal
// configuration error.
func Validate(g Group) error {
	shape, coords := g.Shape(), g.Coords()
	//
	if len(coords) != len(shape) {
		return fmt.Errorf("%w: %d coordinates for %d mesh dimensions",
			ErrMeshCoords, len(coords), len(shape))
	}
	//
	size := 1
	//
	for d, e := range shape {
		if e < 1 {
			return fmt.Errorf("%w: extent %d of mesh dimension %d", ErrMeshSize, e, d)
		} else if coords[d] < 0 || coords[d] >= e {
			return fmt.Errorf("%w: coordinate %d of mesh dimension %d (extent %d)",
				ErrMeshCoords, coords[d], d, e)
		}
		//
		size *= e
	}
	//
	if size != g.Size() {
		return fmt.Errorf("%w: product %d vs %d processes", ErrMeshSize, size, g.Size())
	}
	//
	return nil
}

// Squeeze drops extent-one mesh dimensions from a group, since they
// distribute nothing: data on such a dimension is wholly local to every
// process.  The result is an equivalent group whose every extent is at least
// two (possibly of rank zero).  Layout construction always operates on the
// squeezed mesh.
func Squeeze(g Group) (*Cartesian, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}
	//
	var (
		shape  []int
		coords []int
	)
	//
	for d, e := range g.Shape() {
		if e > 1 {
			shape = append(shape, e)
			coords = append(coords, g.Coords()[d])
		}
	}
	//
	return &Cartesian{shape, coords, g.Size()}, nil
}
