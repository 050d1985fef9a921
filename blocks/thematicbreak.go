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

import "github.com/crazyants/blockdoc"

type thematicBreakParser struct{}

// ThematicBreak recognizes a [thematic break]: a line of three or more
// matching '-', '_', or '*' characters, optionally interleaved with
// spaces or tabs.
//
// [thematic break]: https://spec.commonmark.org/0.30/#thematic-breaks
var ThematicBreak blockdoc.BlockParser = thematicBreakParser{}

func (thematicBreakParser) CanInterruptParagraph() bool { return true }

func (p thematicBreakParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	rest := state.Cursor().Rest()
	if !isThematicBreakLine(rest) {
		return blockdoc.NoMatch
	}
	state.Cursor().AdvanceBytes(len(rest))
	leaf := state.OpenLeaf(p, nil)
	leaf.SetNoInline(true)
	return blockdoc.LastDiscard
}

func isThematicBreakLine(line []byte) bool {
	n := 0
	var want byte
	for _, b := range line {
		switch b {
		case '-', '_', '*':
			if n == 0 {
				want = b
			} else if b != want {
				return false
			}
			n++
		case ' ', '\t', '\r', '\n':
			// Ignore.
		default:
			return false
		}
	}
	return n >= 3
}
