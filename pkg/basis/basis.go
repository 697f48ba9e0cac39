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
package basis

import (
	"errors"
	"math"
)

// Construction and query errors for bases.  These are configuration errors:
// callers are expected to treat them as fatal rather than retry.
var (
	// ErrInvalidInterval indicates an interval whose left endpoint is not
	// strictly below its right endpoint.
	ErrInvalidInterval = errors.New("invalid basis interval")
	// ErrInvalidModeCount indicates a non-positive number of modes.
	ErrInvalidModeCount = errors.New("invalid basis mode count")
	// ErrInvalidScale indicates a non-positive grid scale factor.
	ErrInvalidScale = errors.New("invalid grid scale")
	// ErrNonContiguousIntervals indicates compound sub-bases whose intervals
	// do not abut in strictly increasing order.
	ErrNonContiguousIntervals = errors.New("non-contiguous compound intervals")
)

// Kind identifies one of the supported basis variants.  The set is closed:
// callers may switch exhaustively over it, and anything operating generically
// on bases (e.g. transform kernel selection) is expected to handle every kind.
type Kind int

const (
	// FOURIER is a complex-exponential basis on a periodic interval.
	FOURIER Kind = iota
	// SIN_COS is a parity-pair (sine / cosine) basis on a periodic interval.
	SIN_COS
	// CHEBYSHEV is a Chebyshev polynomial basis on a bounded interval.
	CHEBYSHEV
	// COMPOUND is an ordered stack of sub-bases over abutting sub-intervals.
	COMPOUND
)

func (k Kind) String() string {
	switch k {
	case FOURIER:
		return "Fourier"
	case SIN_COS:
		return "SinCos"
	case CHEBYSHEV:
		return "Chebyshev"
	case COMPOUND:
		return "Compound"
	}
	//
	return "???"
}

// Basis describes the discretisation of a single axis of a domain: how many
// modes it carries, the physical interval those modes span, and which family
// of basis functions is in play.  Bases are immutable once constructed, and
// each is owned by exactly one domain axis (or nested inside a compound basis
// which is).
//
// A basis says nothing about how its transform is evaluated numerically; that
// is the transform kernel's concern.  It does, however, fix the geometry: the
// global grid returned by Grid is the set of sample points every collaborator
// must agree on.
type Basis interface {
	// Name returns the identifying name of this axis (e.g. "x").
	Name() string
	// Kind returns the variant tag for this basis.
	Kind() Kind
	// Modes returns the number of coefficient-space modes.
	Modes() int
	// Interval returns the physical interval spanned by this basis.
	Interval() (float64, float64)
	// DealiasScale returns the default scale factor applied when sampling
	// onto a grid for nonlinear (dealiased) evaluation.  Always >= 1.
	DealiasScale() float64
	// GridSize returns the number of grid points produced at a given scale
	// factor, or an error if the scale is not strictly positive.
	GridSize(scale float64) (int, error)
	// Grid returns the global physical sample points at a given scale
	// factor, ordered by increasing coordinate (for compound bases, by
	// sub-interval order).  Fails if the scale is not strictly positive.
	Grid(scale float64) ([]float64, error)
	// Separable reports whether linear operators decouple between modes of
	// this basis.  Only separable axes are eligible for mesh distribution in
	// coefficient space.
	Separable() bool
}

// GridSize determines the number of grid points obtained when sampling a
// given number of modes at a given scale factor.
func GridSize(modes int, scale float64) (int, error) {
	if err := CheckScale(scale); err != nil {
		return 0, err
	}
	//
	return int(math.Ceil(float64(modes) * scale)), nil
}

// CheckScale validates a grid scale factor.  Scales must be strictly
// positive; fractional scales below one are permitted (e.g. for coarsened
// output grids).
func CheckScale(scale float64) error {
	if scale <= 0 || math.IsNaN(scale) {
		return ErrInvalidScale
	}
	//
	return nil
}

// base carries the attributes shared by all primitive basis variants.
type base struct {
	name    string
	modes   int
	lo, hi  float64
	dealias float64
}

func newBase(name string, modes int, lo, hi, dealias float64) (base, error) {
	if modes <= 0 {
		return base{}, ErrInvalidModeCount
	} else if lo >= hi || math.IsNaN(lo) || math.IsNaN(hi) {
		return base{}, ErrInvalidInterval
	} else if dealias < 1 || math.IsNaN(dealias) {
		return base{}, ErrInvalidScale
	}
	//
	return base{name, modes, lo, hi, dealias}, nil
}

func (p *base) Name() string { return p.name }

func (p *base) Modes() int { return p.modes }

func (p *base) Interval() (float64, float64) { return p.lo, p.hi }

func (p *base) DealiasScale() float64 { return p.dealias }

func (p *base) GridSize(scale float64) (int, error) {
	return GridSize(p.modes, scale)
}
