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
)

var shapeCmd = &cobra.Command{
	Use:   "shape [flags] problem_file",
	Short: "print global and local data shapes at a layout.",
	Long: `Print the global and local data shapes of a problem at a given
	layout index, for the process named by --coords.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			d     = readProblemFile(cmd, args[0])
			index = GetInt(cmd, "layout")
			scale = GetFloat64(cmd, "scale")
		)
		//
		l, err := d.Layout(index)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		global, err := d.Domain().GlobalShape(l, []float64{scale})
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		local, err := d.Domain().LocalShape(l, []float64{scale})
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Printf("global: %v\n", global)
		fmt.Printf("local:  %v\n", local)
	},
}

func init() {
	rootCmd.AddCommand(shapeCmd)
	shapeCmd.Flags().Int("layout", 0, "layout index to inspect")
	shapeCmd.Flags().Float64("scale", 1, "transform scale factor")
}
