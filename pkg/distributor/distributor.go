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

// Package distributor orchestrates the movement of field data between
// coefficient space and grid space over a distributed domain.  A distributor
// precomputes the layout chain for its domain once, then walks buffers along
// it on demand, invoking local basis transforms and collective transposes as
// the edges direct.
package distributor

import (
	"errors"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/wordsworthgroup/dedalus/pkg/domain"
	"github.com/wordsworthgroup/dedalus/pkg/layout"
	"github.com/wordsworthgroup/dedalus/pkg/mesh"
	"github.com/wordsworthgroup/dedalus/pkg/transpose"
)

// ErrLayoutIndexOutOfRange indicates a layout index outside the chain.  This
// is a programmer error, surfaced immediately.
var ErrLayoutIndexOutOfRange = errors.New("layout index out of range")

// Distributor owns one process's view of a domain's layout chain: the mesh
// coordinates of the process, the ordered layouts, and the edges between
// them.  All fields are immutable after construction except through Rebuild,
// which rederives everything atomically.  Consumers share the distributor
// read-only; the buffers passed through Goto are exclusively owned by the
// caller for the duration of the walk.
type Distributor struct {
	dom     *domain.Domain
	engine  transpose.Engine
	layouts []layout.Layout
	edges   []layout.Edge
}

// New builds a distributor for the given domain, using the given engine for
// transpose edges.  Serial domains may pass transpose.Serial.
func New(dom *domain.Domain, engine transpose.Engine) (*Distributor, error) {
	layouts, edges, err := layout.Build(dom.Dim(), dom.Mesh().Shape())
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("distributor for %d-d domain at coords %v: %d layouts",
		dom.Dim(), dom.Mesh().Coords(), len(layouts))
	//
	return &Distributor{dom, engine, layouts, edges}, nil
}

// Domain returns the domain this distributor serves.
func (p *Distributor) Domain() *domain.Domain { return p.dom }

// Coords returns this process's mesh coordinates.
func (p *Distributor) Coords() []int { return p.dom.Mesh().Coords() }

// Size returns the number of layouts in the chain.
func (p *Distributor) Size() int { return len(p.layouts) }

// Layouts returns the ordered layout chain.
func (p *Distributor) Layouts() []layout.Layout { return slices.Clone(p.layouts) }

// Layout returns the layout at a given index.
func (p *Distributor) Layout(index int) (layout.Layout, error) {
	if index < 0 || index >= len(p.layouts) {
		return layout.Layout{}, fmt.Errorf("%w: %d of %d", ErrLayoutIndexOutOfRange,
			index, len(p.layouts))
	}
	//
	return p.layouts[index], nil
}

// Edges returns the ordered edge list; edge i connects layouts i and i+1.
func (p *Distributor) Edges() []layout.Edge { return slices.Clone(p.edges) }

// Rebuild rederives the distributor for a new mesh group, atomically: either
// every derived structure is replaced, or none is.  The domain's bases and
// partition policy carry over.  Callers must ensure no walk is in flight, as
// layout indices from the old chain do not transfer.
func (p *Distributor) Rebuild(group mesh.Group, engine transpose.Engine) error {
	dom, err := domain.NewWithPartition(p.dom.Bases(), p.dom.Dtype(), group, p.dom.Partition())
	if err != nil {
		return err
	}
	//
	layouts, edges, err := layout.Build(dom.Dim(), dom.Mesh().Shape())
	if err != nil {
		return err
	}
	//
	log.Debugf("rebuilt distributor onto mesh %v at coords %v",
		dom.Mesh().Shape(), dom.Mesh().Coords())
	//
	p.dom, p.engine, p.layouts, p.edges = dom, engine, layouts, edges
	//
	return nil
}
