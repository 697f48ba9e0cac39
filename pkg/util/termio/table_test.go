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
	"strings"
	"testing"
)

func Test_Table_01(t *testing.T) {
	p := NewTablePrinter(2)
	p.Header("id", "name")
	p.AddRow("0", "fourier")
	p.AddRow("1", "chebyshev")
	//
	checkTable(t, p, []string{
		" id | name      |",
		"----+-----------+",
		" 0  | fourier   |",
		" 1  | chebyshev |",
	})
}

func Test_Table_02(t *testing.T) {
	// Wide cells are truncated at the column cap.
	p := NewTablePrinter(1)
	p.AddRow("abcdefghij")
	p.SetMaxWidth(6)
	//
	checkTable(t, p, []string{" abcd.. |"})
}

func Test_Table_03(t *testing.T) {
	// Columns narrower than the ellipsis are cut hard rather than panicking.
	p := NewTablePrinter(2)
	p.AddRow("abcdefghij", "xy")
	p.SetMaxWidth(1)
	//
	checkTable(t, p, []string{" a | x |"})
}

func Test_Table_04(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on ragged row")
		}
	}()
	//
	NewTablePrinter(2).AddRow("only one")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkTable(t *testing.T, p *TablePrinter, expected []string) {
	t.Helper()
	//
	var builder strings.Builder
	//
	p.Print(&builder)
	//
	lines := strings.Split(strings.TrimRight(builder.String(), "\n"), "\n")
	//
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	//
	for i := range lines {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}
