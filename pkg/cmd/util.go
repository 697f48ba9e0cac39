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
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wordsworthgroup/dedalus/pkg/distributor"
	"github.com/wordsworthgroup/dedalus/pkg/problem"
	"github.com/wordsworthgroup/dedalus/pkg/transpose"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetFloat64 gets an expected float, or panic if an error arises.
func GetFloat64(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetCount gets an expected count flag, or panic if an error arises.
func GetCount(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetCount(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetIntSlice gets an expected int slice, or panic if an error arises.
func GetIntSlice(cmd *cobra.Command, flag string) []int {
	r, err := cmd.Flags().GetIntSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a problem file and construct the distributor for the process named by
// the --coords flag (serial when the problem declares no mesh).
func readProblemFile(cmd *cobra.Command, filename string) *distributor.Distributor {
	// Configure log level
	switch GetCount(cmd, "verbose") {
	case 0:
		// default level
	case 1:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.TraceLevel)
	}
	//
	p, err := problem.Load(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	coords := GetIntSlice(cmd, "coords")
	//
	dom, err := p.Build(coords)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Inspection never moves data, hence no collective engine is needed.
	d, err := distributor.New(dom, transpose.Serial{})
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return d
}
