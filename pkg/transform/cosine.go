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

import "math"

// cosine evaluates cosine series on half-offset angles, covering both the
// parity-pair (cosine branch) and Chebyshev bases: a Chebyshev series in x is
// a cosine series in the angle acos(x), with the angle order reversed so the
// physical grid runs left to right.  Direct summation keeps the kernel
// transparent; discrete orthogonality of the half-offset angles makes
// Backward an exact inverse whenever the grid resolves every mode.
type cosine struct {
	modes   int
	gridLen int
	// reversed selects the Chebyshev angle convention.
	reversed bool
}

func (p *cosine) Modes() int { return p.modes }

func (p *cosine) GridLen() int { return p.gridLen }

func (p *cosine) Forward(coeff []complex128, grid []complex128) error {
	if err := checkSizes(coeff, grid, p.modes, p.gridLen); err != nil {
		return err
	}
	//
	for i := range grid {
		var sum complex128
		//
		for k, c := range coeff {
			sum += c * complex(math.Cos(float64(k)*p.angle(i)), 0)
		}
		//
		grid[i] = sum
	}
	//
	return nil
}

func (p *cosine) Backward(grid []complex128, coeff []complex128) error {
	if err := checkSizes(coeff, grid, p.modes, p.gridLen); err != nil {
		return err
	}
	//
	n := float64(p.gridLen)
	//
	for k := range coeff {
		var sum complex128
		//
		for i, g := range grid {
			sum += g * complex(math.Cos(float64(k)*p.angle(i)), 0)
		}
		// Quadrature weights: 1/n for the constant mode, 2/n otherwise.
		if k == 0 {
			coeff[k] = sum / complex(n, 0)
		} else {
			coeff[k] = sum * complex(2/n, 0)
		}
	}
	//
	return nil
}

// angle returns the half-offset angle of grid point i.
func (p *cosine) angle(i int) float64 {
	n := float64(p.gridLen)
	//
	if p.reversed {
		return math.Pi * (n - float64(i) - 0.5) / n
	}
	//
	return math.Pi * (float64(i) + 0.5) / n
}
