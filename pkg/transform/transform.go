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

// Package transform provides the one-dimensional basis transform kernels
// invoked at transform edges of a layout walk, and the machinery for mapping
// a kernel over every pencil of a multi-dimensional local buffer.  Kernels
// here are straightforward reference implementations; a production solver
// would substitute tuned kernels behind the same interface.
package transform

import (
	"errors"
	"fmt"

	"github.com/wordsworthgroup/dedalus/pkg/basis"
)

// Kernel errors.
var (
	// ErrBadBufferSize indicates a buffer whose length disagrees with the
	// kernel or shape in play.
	ErrBadBufferSize = errors.New("buffer size mismatch")
)

// Kernel is a one-dimensional transform between coefficient space and grid
// space along a single axis, at a fixed scale.  Forward and Backward are pure
// functions of their input buffers; for grids at least as large as the mode
// count, Backward exactly inverts Forward up to floating point roundoff.
type Kernel interface {
	// Modes returns the coefficient-space length of this kernel.
	Modes() int
	// GridLen returns the grid-space length of this kernel.
	GridLen() int
	// Forward evaluates grid samples from coefficients.
	Forward(coeff []complex128, grid []complex128) error
	// Backward recovers coefficients from grid samples.
	Backward(grid []complex128, coeff []complex128) error
}

// New constructs the reference kernel for a given basis at a given scale.
// The basis variant set is closed, so this dispatch is exhaustive.
func New(b basis.Basis, scale float64) (Kernel, error) {
	n, err := b.GridSize(scale)
	if err != nil {
		return nil, err
	}
	//
	switch b.Kind() {
	case basis.FOURIER:
		return newFourier(b.Modes(), n), nil
	case basis.SIN_COS:
		return &cosine{b.Modes(), n, false}, nil
	case basis.CHEBYSHEV:
		return &cosine{b.Modes(), n, true}, nil
	case basis.COMPOUND:
		return newCompound(b.(*basis.Compound), scale)
	}
	//
	return nil, fmt.Errorf("unknown basis kind %s", b.Kind())
}

// Apply maps a kernel over every pencil along the given axis of a flat,
// row-major buffer with the given local shape, producing a fresh buffer and
// its shape.  Moving forward the axis length goes from modes to grid length;
// moving backward, the reverse.
func Apply(k Kernel, buf []complex128, shape []int, axis int, forward bool) ([]complex128, []int, error) {
	if axis < 0 || axis >= len(shape) {
		return nil, nil, fmt.Errorf("axis %d out of range", axis)
	}
	//
	inLen, outLen := k.Modes(), k.GridLen()
	if !forward {
		inLen, outLen = outLen, inLen
	}
	//
	if shape[axis] != inLen {
		return nil, nil, fmt.Errorf("%w: axis %d has %d entries, kernel expects %d",
			ErrBadBufferSize, axis, shape[axis], inLen)
	} else if len(buf) != product(shape) {
		return nil, nil, fmt.Errorf("%w: %d entries for shape %v", ErrBadBufferSize, len(buf), shape)
	}
	//
	outShape := make([]int, len(shape))
	copy(outShape, shape)
	outShape[axis] = outLen
	//
	var (
		out   = make([]complex128, product(outShape))
		inner = product(shape[axis+1:])
		outer = product(shape[:axis])
		src   = make([]complex128, inLen)
		dst   = make([]complex128, outLen)
	)
	//
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			// Gather the pencil.
			for j := 0; j < inLen; j++ {
				src[j] = buf[(o*inLen+j)*inner+i]
			}
			//
			var err error
			if forward {
				err = k.Forward(src, dst)
			} else {
				err = k.Backward(src, dst)
			}
			//
			if err != nil {
				return nil, nil, err
			}
			// Scatter the pencil.
			for j := 0; j < outLen; j++ {
				out[(o*outLen+j)*inner+i] = dst[j]
			}
		}
	}
	//
	return out, outShape, nil
}

func product(shape []int) int {
	n := 1
	//
	for _, s := range shape {
		n *= s
	}
	//
	return n
}

// checkSizes validates kernel buffer lengths.
func checkSizes(coeff, grid []complex128, m, n int) error {
	if len(coeff) != m || len(grid) != n {
		return fmt.Errorf("%w: %d modes / %d points, kernel expects %d / %d",
			ErrBadBufferSize, len(coeff), len(grid), m, n)
	}
	//
	return nil
}
