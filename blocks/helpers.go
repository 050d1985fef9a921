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

// isBlankLine reports whether every byte is whitespace or a line ending.
func isBlankLine(line []byte) bool {
	for _, b := range line {
		if b != '\r' && b != '\n' && b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}

// indentLength returns the number of leading space/tab bytes in line.
func indentLength(line []byte) int {
	for i, b := range line {
		if b != ' ' && b != '\t' {
			return i
		}
	}
	return len(line)
}

func isSpaceTabOrLineEnding(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func hasTabOrSpacePrefixOrEOL(line []byte) bool {
	return len(line) == 0 ||
		line[0] == ' ' || line[0] == '\t' ||
		line[0] == '\n' || line[0] == '\r'
}

// isEndEscaped reports whether s ends with an odd number of backslashes,
// meaning the final byte of s is itself backslash-escaped.
func isEndEscaped(s []byte) bool {
	n := 0
	for ; n < len(s); n++ {
		if s[len(s)-n-1] != '\\' {
			break
		}
	}
	return n%2 == 1
}

// trimTrailingWhitespace trims trailing spaces, tabs, and line endings
// from line, returning the new length.
func trimTrailingWhitespace(line []byte) int {
	end := len(line)
	for end > 0 && isSpaceTabOrLineEnding(line[end-1]) {
		end--
	}
	return end
}
