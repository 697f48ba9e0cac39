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

import "math"

// Chebyshev is a Chebyshev polynomial basis over a bounded interval.  Its
// grid is the interior (Gauss) point set, clustered towards both endpoints
// but containing neither, mapped affinely from the native [-1, 1] interval.
type Chebyshev struct {
	base
}

// NewChebyshev constructs a Chebyshev basis with a unit dealias scale.
func NewChebyshev(name string, modes int, lo, hi float64) (*Chebyshev, error) {
	return NewChebyshevDealiased(name, modes, lo, hi, 1)
}

// NewChebyshevDealiased constructs a Chebyshev basis with an explicit dealias
// scale (which must be at least one).
func NewChebyshevDealiased(name string, modes int, lo, hi, dealias float64) (*Chebyshev, error) {
	b, err := newBase(name, modes, lo, hi, dealias)
	if err != nil {
		return nil, err
	}
	//
	return &Chebyshev{b}, nil
}

// Kind returns CHEBYSHEV.
func (p *Chebyshev) Kind() Kind { return CHEBYSHEV }

// Separable returns false: Chebyshev differentiation couples modes, so a
// Chebyshev axis cannot be mesh-distributed in coefficient space.
func (p *Chebyshev) Separable() bool { return false }

// Grid returns the n Gauss points mapped to (lo, hi), in increasing order.
func (p *Chebyshev) Grid(scale float64) ([]float64, error) {
	n, err := p.GridSize(scale)
	if err != nil {
		return nil, err
	}
	//
	grid := make([]float64, n)
	//
	for i := range grid {
		// Native point in (-1, 1), increasing with i.
		x := -math.Cos(math.Pi * (float64(i) + 0.5) / float64(n))
		grid[i] = p.lo + (p.hi-p.lo)*(x+1)/2
	}
	//
	return grid, nil
}
