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

// Compound stacks two or more sub-bases over abutting sub-intervals of a
// larger interval, presenting them as a single axis.  Sub-intervals must be
// strictly increasing and contiguous: each sub-basis must begin exactly where
// the previous one ends.  Continuity of fields across the interior interfaces
// is enforced by the equation layer, not here; the compound basis itself is
// only responsible for reporting the merged geometry.
type Compound struct {
	name  string
	parts []Basis
}

// NewCompound constructs a compound basis from the given sub-bases, checking
// that their intervals partition a single larger interval.
func NewCompound(name string, parts ...Basis) (*Compound, error) {
	if len(parts) == 0 {
		return nil, ErrInvalidModeCount
	}
	// Check sub-intervals abut in increasing order.
	for i := 1; i < len(parts); i++ {
		_, prevHi := parts[i-1].Interval()
		lo, _ := parts[i].Interval()
		//
		if prevHi != lo {
			return nil, ErrNonContiguousIntervals
		}
	}
	//
	return &Compound{name, parts}, nil
}

// Name returns the identifying name of this axis.
func (p *Compound) Name() string { return p.name }

// Kind returns COMPOUND.
func (p *Compound) Kind() Kind { return COMPOUND }

// Parts returns the ordered sub-bases of this compound basis.
func (p *Compound) Parts() []Basis { return p.parts }

// Modes returns the total mode count across all sub-bases.
func (p *Compound) Modes() int {
	var sum int
	//
	for _, b := range p.parts {
		sum += b.Modes()
	}
	//
	return sum
}

// Interval returns the merged interval, from the first sub-basis's left
// endpoint to the last sub-basis's right endpoint.
func (p *Compound) Interval() (float64, float64) {
	lo, _ := p.parts[0].Interval()
	_, hi := p.parts[len(p.parts)-1].Interval()
	//
	return lo, hi
}

// DealiasScale returns the maximum dealias scale over the sub-bases, since
// the whole axis must be padded enough for its worst sub-interval.
func (p *Compound) DealiasScale() float64 {
	scale := 1.0
	//
	for _, b := range p.parts {
		scale = max(scale, b.DealiasScale())
	}
	//
	return scale
}

// GridSize returns the sum of sub-basis grid sizes at the given scale.  Note
// that, for fractional scales, this can differ from scaling the total mode
// count directly, since each sub-basis rounds up independently.
func (p *Compound) GridSize(scale float64) (int, error) {
	var sum int
	//
	for _, b := range p.parts {
		n, err := b.GridSize(scale)
		if err != nil {
			return 0, err
		}
		//
		sum += n
	}
	//
	return sum, nil
}

// Grid returns the concatenation of sub-basis grids at the given scale, in
// sub-interval order.
func (p *Compound) Grid(scale float64) ([]float64, error) {
	var grid []float64
	//
	for _, b := range p.parts {
		g, err := b.Grid(scale)
		if err != nil {
			return nil, err
		}
		//
		grid = append(grid, g...)
	}
	//
	return grid, nil
}

// Separable returns false: interface matching conditions couple modes across
// sub-bases regardless of their individual separability.
func (p *Compound) Separable() bool { return false }
