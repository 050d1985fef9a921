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

package blocks

import "testing"

func TestParseListMarkerLine(t *testing.T) {
	tests := []struct {
		in        string
		wantOK    bool
		wantDelim byte
		wantN     int
		wantEnd   int
	}{
		{"- item", true, '-', 0, 1},
		{"* item", true, '*', 0, 1},
		{"-item", false, 0, 0, 0},
		{"1. item", true, '.', 1, 2},
		{"12) item", true, ')', 12, 3},
		{"1x item", false, 0, 0, 0},
		{"", false, 0, 0, 0},
	}
	for _, test := range tests {
		m, ok := parseListMarkerLine([]byte(test.in))
		if ok != test.wantOK {
			t.Errorf("parseListMarkerLine(%q) ok = %v; want %v", test.in, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if m.delim != test.wantDelim || m.n != test.wantN || m.end != test.wantEnd {
			t.Errorf("parseListMarkerLine(%q) = %+v; want delim=%q n=%d end=%d", test.in, m, test.wantDelim, test.wantN, test.wantEnd)
		}
	}
}

func TestListMarkerIsOrdered(t *testing.T) {
	if (listMarker{delim: '-'}).isOrdered() {
		t.Error("'-' marker reported ordered")
	}
	if !(listMarker{delim: '.'}).isOrdered() {
		t.Error("'.' marker reported unordered")
	}
	if !(listMarker{delim: ')'}).isOrdered() {
		t.Error("')' marker reported unordered")
	}
}
