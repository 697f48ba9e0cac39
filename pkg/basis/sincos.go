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

// SinCos is a parity-pair basis: fields expanded in it are either pure sine
// or pure cosine series, according to their parity under reflection about the
// interval endpoints.  Which parity applies to a given field is a property of
// that field, not of the basis; the grid is shared by both.
type SinCos struct {
	base
}

// NewSinCos constructs a parity-pair basis with a unit dealias scale.
func NewSinCos(name string, modes int, lo, hi float64) (*SinCos, error) {
	return NewSinCosDealiased(name, modes, lo, hi, 1)
}

// NewSinCosDealiased constructs a parity-pair basis with an explicit dealias
// scale (which must be at least one).
func NewSinCosDealiased(name string, modes int, lo, hi, dealias float64) (*SinCos, error) {
	b, err := newBase(name, modes, lo, hi, dealias)
	if err != nil {
		return nil, err
	}
	//
	return &SinCos{b}, nil
}

// Kind returns SIN_COS.
func (p *SinCos) Kind() Kind { return SIN_COS }

// Separable returns true, since sine / cosine modes decouple under
// even-order differentiation.
func (p *SinCos) Separable() bool { return true }

// Grid returns n half-offset points interior to [lo, hi].  Offsetting keeps
// the endpoints (where sine modes vanish identically) off the grid.
func (p *SinCos) Grid(scale float64) ([]float64, error) {
	n, err := p.GridSize(scale)
	if err != nil {
		return nil, err
	}
	//
	grid := make([]float64, n)
	span := p.hi - p.lo
	//
	for i := range grid {
		grid[i] = p.lo + span*(float64(i)+0.5)/float64(n)
	}
	//
	return grid, nil
}
