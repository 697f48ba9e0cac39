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
package transform

import (
	"github.com/wordsworthgroup/dedalus/pkg/basis"
)

// compound applies each sub-basis kernel to its own contiguous block of the
// coefficient and grid buffers.  Blocks follow sub-interval order, matching
// the compound basis's merged grid.
type compound struct {
	parts   []Kernel
	modes   int
	gridLen int
}

func newCompound(b *basis.Compound, scale float64) (*compound, error) {
	var (
		parts = make([]Kernel, len(b.Parts()))
		k     compound
	)
	//
	for i, sub := range b.Parts() {
		kernel, err := New(sub, scale)
		if err != nil {
			return nil, err
		}
		//
		parts[i] = kernel
		k.modes += kernel.Modes()
		k.gridLen += kernel.GridLen()
	}
	//
	k.parts = parts
	//
	return &k, nil
}

func (p *compound) Modes() int { return p.modes }

func (p *compound) GridLen() int { return p.gridLen }

func (p *compound) Forward(coeff []complex128, grid []complex128) error {
	if err := checkSizes(coeff, grid, p.modes, p.gridLen); err != nil {
		return err
	}
	//
	var moff, goff int
	//
	for _, k := range p.parts {
		m, n := k.Modes(), k.GridLen()
		//
		if err := k.Forward(coeff[moff:moff+m], grid[goff:goff+n]); err != nil {
			return err
		}
		//
		moff, goff = moff+m, goff+n
	}
	//
	return nil
}

func (p *compound) Backward(grid []complex128, coeff []complex128) error {
	if err := checkSizes(coeff, grid, p.modes, p.gridLen); err != nil {
		return err
	}
	//
	var moff, goff int
	//
	for _, k := range p.parts {
		m, n := k.Modes(), k.GridLen()
		//
		if err := k.Backward(grid[goff:goff+n], coeff[moff:moff+m]); err != nil {
			return err
		}
		//
		moff, goff = moff+m, goff+n
	}
	//
	return nil
}
