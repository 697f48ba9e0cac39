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
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordsworthgroup/dedalus/pkg/layout"
	"github.com/wordsworthgroup/dedalus/pkg/util/termio"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [flags] problem_file",
	Short: "print the layout chain of a problem.",
	Long: `Print every layout in the transform chain of a given problem,
	along with the edge (transform or transpose) leading into it.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		d := readProblemFile(cmd, args[0])
		edges := d.Edges()
		// Construct table of the chain
		table := termio.NewTablePrinter(4)
		table.Header("layout", "space", "owners", "edge in")
		//
		for i := 0; i < d.Size(); i++ {
			l, _ := d.Layout(i)
			edge := ""
			//
			if i > 0 {
				edge = edges[i-1].String()
			}
			//
			table.AddRow(fmt.Sprintf("%d", i), spaceFlags(l), ownerFlags(l), edge)
		}
		//
		table.FitTerminal()
		table.Print(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

// spaceFlags renders the per-axis space of a layout, one character per axis
// ('c' for coefficient, 'g' for grid).
func spaceFlags(l layout.Layout) string {
	var builder strings.Builder
	//
	for axis := 0; axis < l.Dim(); axis++ {
		if l.GridSpace(axis) {
			builder.WriteByte('g')
		} else {
			builder.WriteByte('c')
		}
	}
	//
	return builder.String()
}

// ownerFlags renders the per-axis locality of a layout: '*' for a locally
// owned axis, otherwise the mesh dimension it is distributed over.
func ownerFlags(l layout.Layout) string {
	var builder strings.Builder
	//
	for axis := 0; axis < l.Dim(); axis++ {
		if dim, ok := l.OwnerDim(axis); ok {
			fmt.Fprintf(&builder, "%d", dim)
		} else {
			builder.WriteByte('*')
		}
	}
	//
	return builder.String()
}
