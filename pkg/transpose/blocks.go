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
package transpose

// block is a flat row-major sub-array tagged with its shape, as deposited at
// and collected from an exchange.
type block struct {
	data  []complex128
	shape []int
}

// sliceAxis copies out the sub-array covering [start, start+size) along one
// axis of a flat row-major buffer.
func sliceAxis(buf []complex128, shape []int, axis, start, size int) block {
	outShape := make([]int, len(shape))
	copy(outShape, shape)
	outShape[axis] = size
	//
	var (
		inner = product(shape[axis+1:])
		outer = product(shape[:axis])
		out   = make([]complex128, product(outShape))
	)
	//
	for o := 0; o < outer; o++ {
		for j := 0; j < size; j++ {
			srcOff := (o*shape[axis] + start + j) * inner
			dstOff := (o*size + j) * inner
			copy(out[dstOff:dstOff+inner], buf[srcOff:srcOff+inner])
		}
	}
	//
	return block{out, outShape}
}

// concatAxis joins blocks along one axis.  All blocks must agree on every
// other axis extent.
func concatAxis(parts []block, axis int) block {
	outShape := make([]int, len(parts[0].shape))
	copy(outShape, parts[0].shape)
	outShape[axis] = 0
	//
	for _, p := range parts {
		outShape[axis] += p.shape[axis]
	}
	//
	var (
		inner = product(outShape[axis+1:])
		outer = product(outShape[:axis])
		out   = make([]complex128, product(outShape))
		off   = 0
	)
	//
	for _, p := range parts {
		size := p.shape[axis]
		//
		for o := 0; o < outer; o++ {
			for j := 0; j < size; j++ {
				srcOff := (o*size + j) * inner
				dstOff := (o*outShape[axis] + off + j) * inner
				copy(out[dstOff:dstOff+inner], p.data[srcOff:srcOff+inner])
			}
		}
		//
		off += size
	}
	//
	return block{out, outShape}
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
