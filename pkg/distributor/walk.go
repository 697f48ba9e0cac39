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
package distributor

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/wordsworthgroup/dedalus/pkg/layout"
	"github.com/wordsworthgroup/dedalus/pkg/transform"
	"github.com/wordsworthgroup/dedalus/pkg/transpose"
)

// Goto walks a local buffer from one layout to another, applying each edge
// operation along the (totally ordered) chain between them: basis transforms
// for transform edges, collective exchanges for transpose edges.  Walking
// towards higher indices moves coefficient data towards grid space; walking
// back inverts every step.  The returned buffer replaces the input, which
// must not be reused.
//
// Every process of the mesh must issue walks crossing the same transpose
// edges in the same order, or the collective deadlocks; transform edges are
// purely local.
func (p *Distributor) Goto(buf []complex128, from, to int, scales []float64) ([]complex128, error) {
	if _, err := p.Layout(from); err != nil {
		return nil, err
	} else if _, err := p.Layout(to); err != nil {
		return nil, err
	}
	//
	resolved, err := p.dom.Scales(scales)
	if err != nil {
		return nil, err
	}
	//
	shape, err := p.dom.LocalShape(p.layouts[from], resolved)
	if err != nil {
		return nil, err
	}
	//
	if len(buf) != product(shape) {
		return nil, fmt.Errorf("buffer has %d entries, layout %d requires shape %v",
			len(buf), from, shape)
	}
	//
	for cur := from; cur != to; {
		var (
			next    int
			edge    layout.Edge
			forward = to > cur
		)
		//
		if forward {
			next, edge = cur+1, p.edges[cur]
		} else {
			next, edge = cur-1, p.edges[cur-1]
		}
		//
		log.Debugf("walk %d -> %d: %s", cur, next, edge)
		//
		if buf, shape, err = p.apply(edge, p.layouts[cur], buf, shape, resolved, forward); err != nil {
			return nil, fmt.Errorf("edge %d -> %d: %w", cur, next, err)
		}
		//
		log.Tracef("layout %d: local shape %v", next, shape)
		//
		cur = next
	}
	//
	return buf, nil
}

// apply performs a single edge operation on a local buffer at the given
// layout.
func (p *Distributor) apply(edge layout.Edge, at layout.Layout, buf []complex128,
	shape []int, scales []float64, forward bool) ([]complex128, []int, error) {
	if edge.Kind == layout.TRANSFORM {
		b, err := p.dom.Basis(edge.Axis)
		if err != nil {
			return nil, nil, err
		}
		//
		kernel, err := transform.New(b, scales[edge.Axis])
		if err != nil {
			return nil, nil, err
		}
		//
		return transform.Apply(kernel, buf, shape, edge.Axis, forward)
	}
	// Transpose edge.  Grid flags agree on both sides of the exchange, so
	// the layout at either endpoint pins down the global axis sizes.
	globals, err := p.dom.GlobalShape(at, scales)
	if err != nil {
		return nil, nil, err
	}
	//
	plan := transpose.Plan{
		MeshDim: edge.MeshDim,
		AxisA:   edge.Axis,
		AxisB:   edge.AxisTo,
		GlobalA: globals[edge.Axis],
		GlobalB: globals[edge.AxisTo],
		Forward: forward,
	}
	//
	return p.engine.Transpose(buf, shape, plan)
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
