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

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/wordsworthgroup/dedalus/pkg/mesh"
)

// Cluster hosts an in-process mesh: every simulated process obtains an
// Engine from it, and transposes rendezvous inside the cluster instead of
// crossing a network.  A cluster and its engines are safe for use from one
// goroutine per simulated process.
type Cluster struct {
	shape     []int
	partition mesh.Partition
	//
	mu      sync.Mutex
	pending map[string]*exchange
}

// NewCluster builds an in-process mesh with the given extents and the
// default block partition rule.
func NewCluster(shape []int) *Cluster {
	return NewClusterWithPartition(shape, mesh.BlockPartition)
}

// NewClusterWithPartition builds an in-process mesh with an explicit
// partition rule, which must match the rule of the domain being walked.
func NewClusterWithPartition(shape []int, partition mesh.Partition) *Cluster {
	cloned := make([]int, len(shape))
	copy(cloned, shape)
	//
	return &Cluster{
		shape:     cloned,
		partition: partition,
		pending:   make(map[string]*exchange),
	}
}

// Engine returns the transpose engine of the simulated process at the given
// mesh coordinates.
func (c *Cluster) Engine(coords []int) (*ClusterEngine, error) {
	if _, err := mesh.NewCartesian(c.shape, coords); err != nil {
		return nil, err
	}
	//
	cloned := make([]int, len(coords))
	copy(cloned, coords)
	//
	return &ClusterEngine{c, cloned, make(map[int]int)}, nil
}

// ClusterEngine is one simulated process's handle on its cluster.  Engines
// are bound to fixed mesh coordinates and keep a per-dimension step counter
// so that successive collectives on the same subgroup pair up correctly.
type ClusterEngine struct {
	cluster *Cluster
	coords  []int
	seq     map[int]int
}

// Transpose redistributes the local buffer across one mesh dimension,
// blocking until every process in the subgroup has contributed its share.
func (p *ClusterEngine) Transpose(buf []complex128, shape []int, plan Plan) ([]complex128, []int, error) {
	norm := plan.normalise()
	//
	if norm.MeshDim < 0 || norm.MeshDim >= len(p.cluster.shape) {
		return nil, nil, fmt.Errorf("mesh dimension %d out of range", norm.MeshDim)
	}
	//
	var (
		extent = p.cluster.shape[norm.MeshDim]
		rank   = p.coords[norm.MeshDim]
	)
	// The local buffer must hold this process's block of the distributed
	// axis and the whole of the localising axis.
	_, mySize := p.cluster.partition(norm.GlobalA, extent, rank)
	//
	if shape[norm.AxisA] != mySize || shape[norm.AxisB] != norm.GlobalB {
		return nil, nil, fmt.Errorf("%w: local shape %v inconsistent with %s",
			ErrCollectiveFailure, shape, norm)
	} else if len(buf) != product(shape) {
		return nil, nil, fmt.Errorf("%w: %d entries for shape %v",
			ErrCollectiveFailure, len(buf), shape)
	}
	// Carve the outgoing buffer into one block per peer, sliced along the
	// axis about to be distributed.
	sends := make([]block, extent)
	//
	for peer := 0; peer < extent; peer++ {
		start, size := p.cluster.partition(norm.GlobalB, extent, peer)
		sends[peer] = sliceAxis(buf, shape, norm.AxisB, start, size)
	}
	//
	seq := p.seq[norm.MeshDim]
	p.seq[norm.MeshDim]++
	//
	log.Debugf("process %v: %s step %d", p.coords, norm, seq)
	//
	received, err := p.cluster.rendezvous(p.subgroupKey(norm.MeshDim, seq),
		norm.String(), extent, rank, sends)
	if err != nil {
		return nil, nil, err
	}
	// Reassemble the newly local axis from every peer's contribution, in
	// rank order.
	result := concatAxis(received, norm.AxisA)
	//
	return result.data, result.shape, nil
}

// subgroupKey identifies the subgroup this engine belongs to along one mesh
// dimension, together with the collective's sequence number.
func (p *ClusterEngine) subgroupKey(meshDim, seq int) string {
	key := fmt.Sprintf("dim%d/step%d@", meshDim, seq)
	//
	for d, c := range p.coords {
		if d == meshDim {
			key += "*,"
		} else {
			key += fmt.Sprintf("%d,", c)
		}
	}
	//
	return key
}

// exchange is the rendezvous point for one collective step: a slot per
// participant, closed once full (or faulted).
type exchange struct {
	sig     string
	sends   [][]block // indexed [source rank][destination rank]
	arrived int
	failed  bool
	done    chan struct{}
}

// rendezvous deposits one participant's outgoing blocks and blocks until the
// whole subgroup has arrived, returning the blocks destined for this rank.
// Participants disagreeing on the step signature fault the exchange for
// everyone present.
func (c *Cluster) rendezvous(key, sig string, extent, rank int, sends []block) ([]block, error) {
	c.mu.Lock()
	//
	ex := c.pending[key]
	if ex == nil {
		ex = &exchange{sig, make([][]block, extent), 0, false, make(chan struct{})}
		c.pending[key] = ex
	}
	//
	if ex.failed {
		// A peer already faulted this step; the group is dead and every
		// participant must hear about it, however late it arrives.
		c.mu.Unlock()
		//
		return nil, fmt.Errorf("%w: exchange faulted by a peer", ErrCollectiveFailure)
	}
	//
	if ex.sig != sig || ex.sends[rank] != nil {
		// Disagreement (or duplicate participant): fault everyone present.
		// The poisoned exchange stays in the map so stragglers of the same
		// step observe the fault rather than opening a fresh rendezvous.
		ex.failed = true
		close(ex.done)
		c.mu.Unlock()
		//
		return nil, fmt.Errorf("%w: step %q vs %q", ErrCollectiveFailure, sig, ex.sig)
	}
	//
	ex.sends[rank] = sends
	ex.arrived++
	//
	if ex.arrived == extent {
		delete(c.pending, key)
		close(ex.done)
	}
	//
	c.mu.Unlock()
	<-ex.done
	//
	if ex.failed {
		return nil, fmt.Errorf("%w: exchange faulted by a peer", ErrCollectiveFailure)
	}
	// Collect the column destined for this rank.
	column := make([]block, extent)
	//
	for src := 0; src < extent; src++ {
		column[src] = ex.sends[src][rank]
	}
	//
	return column, nil
}
