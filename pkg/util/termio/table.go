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
package termio

import (
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths []uint
	rows   [][]string
	// Number of leading rows treated as a header and underlined.
	header uint
}

// NewTablePrinter constructs an empty table with the given number of columns.
func NewTablePrinter(ncols uint) *TablePrinter {
	return &TablePrinter{widths: make([]uint, ncols)}
}

// Header appends a header row, which is underlined when printed.  Headers
// must be added before any data rows.
func (p *TablePrinter) Header(vals ...string) *TablePrinter {
	if uint(len(p.rows)) != p.header {
		panic("header added after data rows")
	}
	//
	p.AddRow(vals...)
	p.header++
	//
	return p
}

// AddRow appends a row of cells to this table.
func (p *TablePrinter) AddRow(vals ...string) *TablePrinter {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := range p.widths {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	//
	p.rows = append(p.rows, vals)
	//
	return p
}

// Height returns the number of rows in this table, headers included.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetMaxWidth puts an upper bound on the width of every column.
func (p *TablePrinter) SetMaxWidth(width uint) {
	for i := range p.widths {
		p.widths[i] = min(p.widths[i], width)
	}
}

// FitTerminal clamps column widths so a full row fits the terminal attached
// to stdout (if any).
func (p *TablePrinter) FitTerminal() {
	var (
		width  = TerminalWidth()
		ncols  = uint(len(p.widths))
		padded uint
	)
	//
	if ncols == 0 {
		return
	}
	// 3 characters of padding per column
	for _, w := range p.widths {
		padded += w + 3
	}
	//
	if padded > width {
		p.SetMaxWidth(max(width/ncols, 4) - 3)
	}
}

// Print writes the table to the given writer.
func (p *TablePrinter) Print(out io.Writer) {
	for i, row := range p.rows {
		for j, col := range row {
			width := p.widths[j]
			// Truncate overly wide cells
			if uint(len(col)) > width && width > 2 {
				col = col[0:width-2] + ".."
			} else if uint(len(col)) > width {
				col = col[0:width]
			}
			//
			fmt.Fprintf(out, " %-*s |", width, col)
		}
		//
		fmt.Fprintln(out)
		// Underline the final header row
		if uint(i)+1 == p.header {
			for _, w := range p.widths {
				fmt.Fprintf(out, "-%s-+", strings.Repeat("-", int(w)))
			}
			//
			fmt.Fprintln(out)
		}
	}
}
