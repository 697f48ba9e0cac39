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
package problem

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wordsworthgroup/dedalus/pkg/basis"
	"github.com/wordsworthgroup/dedalus/pkg/domain"
	"github.com/wordsworthgroup/dedalus/pkg/mesh"
)

var (
	// ErrUnknownBasisKind signals a basis kind string the loader does not
	// recognise.
	ErrUnknownBasisKind = errors.New("unknown basis kind")
	// ErrUnknownDtype signals a dtype string other than complex128 / float64.
	ErrUnknownDtype = errors.New("unknown dtype")
	// ErrBadInterval signals an interval which is not a [lo, hi] pair.
	ErrBadInterval = errors.New("interval must be a [lo, hi] pair")
	// ErrNoBases signals a problem file declaring no bases at all.
	ErrNoBases = errors.New("problem declares no bases")
)

// Problem is a parsed problem file: everything needed to construct a Domain
// on a given process.
type Problem struct {
	// Name identifies the problem (informational only).
	Name string `yaml:"name"`
	// Dtype names the field data type ("complex128" or "float64").
	Dtype string `yaml:"dtype"`
	// Mesh gives the process mesh shape; empty means serial.
	Mesh []int `yaml:"mesh"`
	// Bases declares the domain bases, first axis first.
	Bases []BasisSpec `yaml:"bases"`
}

// BasisSpec declares one basis (or one part of a compound basis).
type BasisSpec struct {
	Name     string      `yaml:"name"`
	Kind     string      `yaml:"kind"`
	Modes    int         `yaml:"modes"`
	Interval []float64   `yaml:"interval"`
	Dealias  float64     `yaml:"dealias"`
	Parts    []BasisSpec `yaml:"parts"`
}

// Load reads and parses a problem file.
func Load(filename string) (*Problem, error) {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	return Parse(bytes)
}

// Parse parses problem file contents.
func Parse(bytes []byte) (*Problem, error) {
	var p Problem
	//
	if err := yaml.Unmarshal(bytes, &p); err != nil {
		return nil, fmt.Errorf("malformed problem file: %w", err)
	} else if len(p.Bases) == 0 {
		return nil, ErrNoBases
	}
	//
	return &p, nil
}

// BasisSet constructs the declared bases in axis order.
func (p *Problem) BasisSet() ([]basis.Basis, error) {
	bases := make([]basis.Basis, len(p.Bases))
	//
	for i, spec := range p.Bases {
		b, err := spec.build()
		//
		if err != nil {
			return nil, err
		}
		//
		bases[i] = b
	}
	//
	return bases, nil
}

// Group constructs the mesh group for the process at the given coordinates.
// An empty mesh yields the serial group and ignores coords.
func (p *Problem) Group(coords []int) (mesh.Group, error) {
	if len(p.Mesh) == 0 {
		return mesh.Serial(), nil
	}
	//
	return mesh.NewCartesian(p.Mesh, coords)
}

// Build constructs the domain for the process at the given coordinates.
func (p *Problem) Build(coords []int) (*domain.Domain, error) {
	bases, err := p.BasisSet()
	//
	if err != nil {
		return nil, err
	}
	//
	group, err := p.Group(coords)
	//
	if err != nil {
		return nil, err
	}
	//
	dtype, err := parseDtype(p.Dtype)
	//
	if err != nil {
		return nil, err
	}
	//
	return domain.New(bases, dtype, group)
}

func (spec BasisSpec) build() (basis.Basis, error) {
	if spec.Kind == "compound" {
		return spec.buildCompound()
	}
	//
	lo, hi, err := spec.interval()
	//
	if err != nil {
		return nil, err
	}
	//
	switch spec.Kind {
	case "fourier":
		if spec.Dealias != 0 {
			return basis.NewFourierDealiased(spec.Name, spec.Modes, lo, hi, spec.Dealias)
		}
		//
		return basis.NewFourier(spec.Name, spec.Modes, lo, hi)
	case "sincos":
		if spec.Dealias != 0 {
			return basis.NewSinCosDealiased(spec.Name, spec.Modes, lo, hi, spec.Dealias)
		}
		//
		return basis.NewSinCos(spec.Name, spec.Modes, lo, hi)
	case "chebyshev":
		if spec.Dealias != 0 {
			return basis.NewChebyshevDealiased(spec.Name, spec.Modes, lo, hi, spec.Dealias)
		}
		//
		return basis.NewChebyshev(spec.Name, spec.Modes, lo, hi)
	default:
		return nil, fmt.Errorf("basis %q: %w %q", spec.Name, ErrUnknownBasisKind, spec.Kind)
	}
}

func (spec BasisSpec) buildCompound() (basis.Basis, error) {
	parts := make([]basis.Basis, len(spec.Parts))
	//
	for i, part := range spec.Parts {
		// Parts inherit the compound's name when unnamed.
		if part.Name == "" {
			part.Name = fmt.Sprintf("%s/%d", spec.Name, i)
		}
		//
		b, err := part.build()
		//
		if err != nil {
			return nil, err
		}
		//
		parts[i] = b
	}
	//
	return basis.NewCompound(spec.Name, parts...)
}

func (spec BasisSpec) interval() (float64, float64, error) {
	if len(spec.Interval) != 2 {
		return 0, 0, fmt.Errorf("basis %q: %w", spec.Name, ErrBadInterval)
	}
	//
	return spec.Interval[0], spec.Interval[1], nil
}

func parseDtype(name string) (domain.Dtype, error) {
	switch name {
	case "complex128", "":
		return domain.COMPLEX128, nil
	case "float64":
		return domain.FLOAT64, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownDtype, name)
	}
}
