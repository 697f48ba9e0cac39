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

	"github.com/spf13/cobra"

	"github.com/wordsworthgroup/dedalus/pkg/util/termio"
)

var gridCmd = &cobra.Command{
	Use:   "grid [flags] problem_file",
	Short: "print the local grid points of an axis.",
	Long: `Print the grid points of a given axis which are local to the
	process named by --coords, in the fully transformed layout.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			d     = readProblemFile(cmd, args[0])
			axis  = GetInt(cmd, "axis")
			scale = GetFloat64(cmd, "scale")
		)
		//
		basis, err := d.Domain().Basis(axis)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		points, err := d.Domain().Grid(axis, []float64{scale})
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Construct table of grid points
		table := termio.NewTablePrinter(2)
		table.Header("i", basis.Name())
		//
		for i, x := range points {
			table.AddRow(fmt.Sprintf("%d", i), fmt.Sprintf("%.12g", x))
		}
		//
		table.FitTerminal()
		table.Print(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.Flags().Int("axis", 0, "axis whose grid to print")
	gridCmd.Flags().Float64("scale", 1, "transform scale factor")
}
