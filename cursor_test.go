// Copyright 2026 The blockdoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package blockdoc

import "testing"

func newCursor(line string) *LineCursor {
	c := new(LineCursor)
	c.reset([]byte(line))
	return c
}

func TestLineCursorAdvance(t *testing.T) {
	c := newCursor("abc")
	if b, ok := c.Byte(); !ok || b != 'a' {
		t.Fatalf("Byte() = %q, %v; want 'a', true", b, ok)
	}
	c.Advance()
	if c.Pos() != 1 || c.Column() != 1 {
		t.Fatalf("Pos/Column = %d/%d; want 1/1", c.Pos(), c.Column())
	}
	c.AdvanceBytes(2)
	if !c.AtEOL() {
		t.Fatal("expected AtEOL after consuming entire line")
	}
}

func TestLineCursorTabExpandsColumn(t *testing.T) {
	c := newCursor("\tx")
	c.Advance()
	if c.Column() != tabStopSize {
		t.Errorf("Column() after tab = %d; want %d", c.Column(), tabStopSize)
	}
	if c.Pos() != 1 {
		t.Errorf("Pos() after tab = %d; want 1 (tabs are one byte)", c.Pos())
	}
}

func TestLineCursorSaveRestore(t *testing.T) {
	c := newCursor("abcd")
	c.AdvanceBytes(2)
	c.Save()
	c.AdvanceBytes(2)
	if !c.AtEOL() {
		t.Fatal("expected AtEOL before Restore")
	}
	c.Restore()
	if c.Pos() != 2 {
		t.Errorf("Pos() after Restore = %d; want 2", c.Pos())
	}
}

func TestLineCursorDiscardCommits(t *testing.T) {
	c := newCursor("abcd")
	c.Save()
	c.AdvanceBytes(3)
	c.Discard()
	if c.Pos() != 3 {
		t.Errorf("Pos() after Discard = %d; want 3", c.Pos())
	}
}

func TestLineCursorAdvanceIndentConsumesWholeTab(t *testing.T) {
	// A tab is a single byte, so AdvanceIndent cannot stop mid-tab: asking
	// for 2 columns of a line starting with one tab still consumes the
	// whole tab (4 columns, since it starts at column 0).
	c := newCursor("\tx")
	consumed := c.AdvanceIndent(2)
	if consumed != tabStopSize {
		t.Errorf("AdvanceIndent(2) consumed = %d; want %d", consumed, tabStopSize)
	}
	if c.Pos() != 1 {
		t.Errorf("Pos() = %d; want 1", c.Pos())
	}
	if c.Column() != tabStopSize {
		t.Errorf("Column() = %d; want %d", c.Column(), tabStopSize)
	}
}

func TestLineCursorRestBlank(t *testing.T) {
	c := newCursor("ab   \t")
	c.AdvanceBytes(2)
	if !c.RestBlank() {
		t.Error("RestBlank() = false; want true for trailing whitespace")
	}
}

func TestIndentLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   x", 3},
		{"x", 0},
		{"    ", 4},
	}
	for _, test := range tests {
		if got := indentLength([]byte(test.in)); got != test.want {
			t.Errorf("indentLength(%q) = %d; want %d", test.in, got, test.want)
		}
	}
}

func TestIsBlankLine(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   \t\r\n", true},
		{"  x ", false},
	}
	for _, test := range tests {
		if got := isBlankLine([]byte(test.in)); got != test.want {
			t.Errorf("isBlankLine(%q) = %v; want %v", test.in, got, test.want)
		}
	}
}
