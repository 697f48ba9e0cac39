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
	"gonum.org/v1/gonum/dsp/fourier"
)

// fourierKernel transforms between Fourier modes and an evenly spaced
// periodic grid.  Modes are held in FFT ordering: non-negative frequencies
// first, then negative frequencies in increasing order.  Grids larger than
// the mode count are produced by zero padding in frequency; smaller grids
// drop the modes that no longer fit.
type fourierKernel struct {
	modes   int
	gridLen int
	fft     *fourier.CmplxFFT
	scratch []complex128
}

func newFourier(modes, gridLen int) *fourierKernel {
	return &fourierKernel{
		modes:   modes,
		gridLen: gridLen,
		fft:     fourier.NewCmplxFFT(gridLen),
		scratch: make([]complex128, gridLen),
	}
}

func (p *fourierKernel) Modes() int { return p.modes }

func (p *fourierKernel) GridLen() int { return p.gridLen }

func (p *fourierKernel) Forward(coeff []complex128, grid []complex128) error {
	if err := checkSizes(coeff, grid, p.modes, p.gridLen); err != nil {
		return err
	}
	//
	n := p.gridLen
	//
	for i := range p.scratch {
		p.scratch[i] = 0
	}
	//
	for k, c := range coeff {
		if f := modeFreq(k, p.modes); freqFits(f, n) {
			p.scratch[freqIndex(f, n)] = c
		}
	}
	// Unnormalised inverse DFT: grid_j = sum_k c_k exp(+i k theta_j).
	p.fft.Sequence(grid, p.scratch)
	//
	return nil
}

func (p *fourierKernel) Backward(grid []complex128, coeff []complex128) error {
	if err := checkSizes(coeff, grid, p.modes, p.gridLen); err != nil {
		return err
	}
	//
	n := p.gridLen
	p.fft.Coefficients(p.scratch, grid)
	//
	for k := range coeff {
		if f := modeFreq(k, p.modes); freqFits(f, n) {
			coeff[k] = p.scratch[freqIndex(f, n)] / complex(float64(n), 0)
		} else {
			coeff[k] = 0
		}
	}
	//
	return nil
}

// modeFreq maps a mode index in [0, m) to its signed frequency: indices below
// (m+1)/2 are non-negative frequencies, the remainder wrap to negative.
func modeFreq(k, m int) int {
	if k < (m+1)/2 {
		return k
	}
	//
	return k - m
}

// freqFits reports whether a signed frequency is representable on an n point
// grid.
func freqFits(f, n int) bool {
	return f >= -(n/2) && f <= (n-1)/2
}

// freqIndex maps a signed frequency to its FFT bin on an n point grid.
func freqIndex(f, n int) int {
	if f < 0 {
		return n + f
	}
	//
	return f
}
