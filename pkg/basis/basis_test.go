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
	"testing"

	"gonum.org/v1/gonum/floats"
)

func Test_Basis_01(t *testing.T) {
	checkGridSize(t, mustFourier(t, 8, 0, 1), 1, 8)
}

func Test_Basis_02(t *testing.T) {
	checkGridSize(t, mustFourier(t, 8, 0, 1), 1.5, 12)
}

func Test_Basis_03(t *testing.T) {
	// 3/2 rule on an odd mode count rounds up.
	checkGridSize(t, mustFourier(t, 9, 0, 1), 1.5, 14)
}

func Test_Basis_04(t *testing.T) {
	checkGridSize(t, mustChebyshev(t, 17, -1, 1), 2, 34)
}

func Test_Basis_05(t *testing.T) {
	// Fourier grid excludes the right endpoint.
	grid := mustGrid(t, mustFourier(t, 4, 0, 2), 1)
	checkGridEquals(t, grid, []float64{0, 0.5, 1, 1.5})
}

func Test_Basis_06(t *testing.T) {
	// SinCos grid is half-offset and endpoint free.
	grid := mustGrid(t, mustSinCos(t, 4, 0, 4), 1)
	checkGridEquals(t, grid, []float64{0.5, 1.5, 2.5, 3.5})
}

func Test_Basis_07(t *testing.T) {
	// Chebyshev grid is increasing, interior and symmetric.
	grid := mustGrid(t, mustChebyshev(t, 16, -1, 1), 1)
	//
	checkIncreasing(t, grid)
	//
	for i := range grid {
		if grid[i] <= -1 || grid[i] >= 1 {
			t.Errorf("grid point %f outside open interval", grid[i])
		}
		//
		if d := grid[i] + grid[len(grid)-1-i]; math.Abs(d) > 1e-14 {
			t.Errorf("grid not symmetric: %f", d)
		}
	}
}

func Test_Basis_08(t *testing.T) {
	// Chebyshev grid maps affinely onto a shifted interval.
	native := mustGrid(t, mustChebyshev(t, 8, -1, 1), 1)
	shifted := mustGrid(t, mustChebyshev(t, 8, 2, 6), 1)
	//
	for i := range native {
		checkClose(t, shifted[i], 4+2*(native[i]+1))
	}
}

func Test_Basis_09(t *testing.T) {
	checkConstructionFails(t, ErrInvalidModeCount, func() error {
		_, err := NewFourier("x", 0, 0, 1)
		return err
	})
}

func Test_Basis_10(t *testing.T) {
	checkConstructionFails(t, ErrInvalidInterval, func() error {
		_, err := NewChebyshev("z", 8, 1, 1)
		return err
	})
}

func Test_Basis_11(t *testing.T) {
	checkConstructionFails(t, ErrInvalidInterval, func() error {
		_, err := NewSinCos("y", 8, 2, -2)
		return err
	})
}

func Test_Basis_12(t *testing.T) {
	checkConstructionFails(t, ErrInvalidScale, func() error {
		_, err := NewFourierDealiased("x", 8, 0, 1, 0.5)
		return err
	})
}

func Test_Basis_13(t *testing.T) {
	b := mustFourier(t, 8, 0, 1)
	//
	if _, err := b.Grid(0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected invalid scale, got %v", err)
	}
	//
	if _, err := b.Grid(-1.5); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected invalid scale, got %v", err)
	}
}

func Test_Compound_01(t *testing.T) {
	c := mustCompound(t, mustChebyshev(t, 8, -1, 0), mustChebyshev(t, 8, 0, 1))
	//
	if c.Modes() != 16 {
		t.Errorf("expected 16 modes, got %d", c.Modes())
	}
	//
	lo, hi := c.Interval()
	if lo != -1 || hi != 1 {
		t.Errorf("unexpected merged interval [%f, %f]", lo, hi)
	}
}

func Test_Compound_02(t *testing.T) {
	// Compound grid is the in-order concatenation of sub-grids.
	left := mustChebyshev(t, 8, -1, 0)
	right := mustChebyshev(t, 12, 0, 2)
	c := mustCompound(t, left, right)
	//
	for _, scale := range []float64{1, 1.5, 2} {
		grid := mustGrid(t, c, scale)
		expected := append(mustGrid(t, left, scale), mustGrid(t, right, scale)...)
		//
		checkGridEquals(t, grid, expected)
		checkIncreasing(t, grid)
	}
}

func Test_Compound_03(t *testing.T) {
	// Gap between sub-intervals.
	checkConstructionFails(t, ErrNonContiguousIntervals, func() error {
		_, err := NewCompound("z", mustChebyshev(t, 8, -1, 0), mustChebyshev(t, 8, 0.5, 1))
		return err
	})
}

func Test_Compound_04(t *testing.T) {
	// Overlapping sub-intervals.
	checkConstructionFails(t, ErrNonContiguousIntervals, func() error {
		_, err := NewCompound("z", mustChebyshev(t, 8, -1, 0.5), mustChebyshev(t, 8, 0, 1))
		return err
	})
}

func Test_Compound_05(t *testing.T) {
	// Out-of-order sub-intervals.
	checkConstructionFails(t, ErrNonContiguousIntervals, func() error {
		_, err := NewCompound("z", mustChebyshev(t, 8, 0, 1), mustChebyshev(t, 8, -1, 0))
		return err
	})
}

func Test_Compound_06(t *testing.T) {
	// Grid size sums sub-basis rounding, rather than rounding the total.
	c := mustCompound(t, mustChebyshev(t, 9, -1, 0), mustChebyshev(t, 9, 0, 1))
	checkGridSize(t, c, 1.5, 28)
}

// ===================================================================
// Test Helpers
// ===================================================================

func mustFourier(t *testing.T, modes int, lo, hi float64) *Fourier {
	t.Helper()
	//
	b, err := NewFourier("x", modes, lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	//
	return b
}

func mustSinCos(t *testing.T, modes int, lo, hi float64) *SinCos {
	t.Helper()
	//
	b, err := NewSinCos("y", modes, lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	//
	return b
}

func mustChebyshev(t *testing.T, modes int, lo, hi float64) *Chebyshev {
	t.Helper()
	//
	b, err := NewChebyshev("z", modes, lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	//
	return b
}

func mustCompound(t *testing.T, parts ...Basis) *Compound {
	t.Helper()
	//
	b, err := NewCompound("z", parts...)
	if err != nil {
		t.Fatal(err)
	}
	//
	return b
}

func mustGrid(t *testing.T, b Basis, scale float64) []float64 {
	t.Helper()
	//
	grid, err := b.Grid(scale)
	if err != nil {
		t.Fatal(err)
	}
	//
	return grid
}

func checkGridSize(t *testing.T, b Basis, scale float64, expected int) {
	t.Helper()
	//
	n, err := b.GridSize(scale)
	if err != nil {
		t.Fatal(err)
	} else if n != expected {
		t.Errorf("expected grid size %d, got %d", expected, n)
	}
	// Grid must agree with GridSize.
	if grid := mustGrid(t, b, scale); len(grid) != n {
		t.Errorf("grid has %d points, expected %d", len(grid), n)
	}
}

func checkClose(t *testing.T, got, expected float64) {
	t.Helper()
	//
	if math.Abs(got-expected) > 1e-14 {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func checkGridEquals(t *testing.T, grid []float64, expected []float64) {
	t.Helper()
	//
	if !floats.EqualApprox(grid, expected, 1e-14) {
		t.Errorf("expected grid %v, got %v", expected, grid)
	}
}

func checkIncreasing(t *testing.T, grid []float64) {
	t.Helper()
	//
	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			t.Errorf("grid not strictly increasing at %d: %f <= %f", i, grid[i], grid[i-1])
		}
	}
}

func checkConstructionFails(t *testing.T, expected error, build func() error) {
	t.Helper()
	//
	if err := build(); !errors.Is(err, expected) {
		t.Errorf("expected %v, got %v", expected, err)
	}
}
