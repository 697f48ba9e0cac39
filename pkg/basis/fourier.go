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

// Fourier is a complex-exponential basis over a periodic interval.  Its grid
// is evenly spaced and excludes the right endpoint, which aliases onto the
// left.
type Fourier struct {
	base
}

// NewFourier constructs a Fourier basis with a unit dealias scale.
func NewFourier(name string, modes int, lo, hi float64) (*Fourier, error) {
	return NewFourierDealiased(name, modes, lo, hi, 1)
}

// NewFourierDealiased constructs a Fourier basis with an explicit dealias
// scale (which must be at least one).
func NewFourierDealiased(name string, modes int, lo, hi, dealias float64) (*Fourier, error) {
	b, err := newBase(name, modes, lo, hi, dealias)
	if err != nil {
		return nil, err
	}
	//
	return &Fourier{b}, nil
}

// Kind returns FOURIER.
func (p *Fourier) Kind() Kind { return FOURIER }

// Separable returns true, since complex exponentials diagonalise
// differentiation.
func (p *Fourier) Separable() bool { return true }

// Grid returns n evenly spaced points on [lo, hi), where n is the scaled grid
// size.
func (p *Fourier) Grid(scale float64) ([]float64, error) {
	n, err := p.GridSize(scale)
	if err != nil {
		return nil, err
	}
	//
	grid := make([]float64, n)
	span := p.hi - p.lo
	//
	for i := range grid {
		grid[i] = p.lo + span*float64(i)/float64(n)
	}
	//
	return grid, nil
}
