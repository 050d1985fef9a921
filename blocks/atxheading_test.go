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

func TestParseATXHeadingLine(t *testing.T) {
	tests := []struct {
		in          string
		wantLevel   int
		wantContent string
		wantOK      bool
	}{
		{"# Title\n", 1, "Title", true},
		{"### Title ###\n", 3, "Title", true},
		{"##Title\n", 0, "", false},
		{"#######\n", 0, "", false},
		{"#\n", 1, "", true},
		{"# foo \\###\n", 1, `foo \###`, true},
	}
	for _, test := range tests {
		level, content, ok := parseATXHeadingLine([]byte(test.in))
		if ok != test.wantOK {
			t.Errorf("parseATXHeadingLine(%q) ok = %v; want %v", test.in, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if level != test.wantLevel || string(content) != test.wantContent {
			t.Errorf("parseATXHeadingLine(%q) = %d, %q; want %d, %q", test.in, level, content, test.wantLevel, test.wantContent)
		}
	}
}
