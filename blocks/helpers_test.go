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

func TestIsBlankLine(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"  \t\r\n", true},
		{"x", false},
		{"  x", false},
	}
	for _, test := range tests {
		if got := isBlankLine([]byte(test.in)); got != test.want {
			t.Errorf("isBlankLine(%q) = %v; want %v", test.in, got, test.want)
		}
	}
}

func TestIndentLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   x", 3},
		{"\tx", 1},
		{"x   ", 0},
	}
	for _, test := range tests {
		if got := indentLength([]byte(test.in)); got != test.want {
			t.Errorf("indentLength(%q) = %d; want %d", test.in, got, test.want)
		}
	}
}

func TestIsEndEscaped(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a", false},
		{`a\`, true},
		{`a\\`, false},
		{`a\\\`, true},
	}
	for _, test := range tests {
		if got := isEndEscaped([]byte(test.in)); got != test.want {
			t.Errorf("isEndEscaped(%q) = %v; want %v", test.in, got, test.want)
		}
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"abc  ", 3},
		{"abc\r\n", 3},
		{"   ", 0},
	}
	for _, test := range tests {
		if got := trimTrailingWhitespace([]byte(test.in)); got != test.want {
			t.Errorf("trimTrailingWhitespace(%q) = %d; want %d", test.in, got, test.want)
		}
	}
}

func TestIsASCIIDigit(t *testing.T) {
	if !isASCIIDigit('5') {
		t.Error("isASCIIDigit('5') = false; want true")
	}
	if isASCIIDigit('a') {
		t.Error("isASCIIDigit('a') = true; want false")
	}
}
