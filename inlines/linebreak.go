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

package inlines

import "github.com/crazyants/blockdoc"

// LineBreakData is the payload [LineBreak] attaches to the leaves it
// produces.
type LineBreakData struct {
	Hard bool
}

type lineBreakParser struct{}

// LineBreak recognizes the join between two accumulated source lines
// (the synthetic '\n' [blockdoc.LineGroup] inserts) as either a [hard
// line break] -- two or more trailing spaces, or a trailing backslash --
// or an ordinary [soft line break] otherwise.
//
// [hard line break]: https://spec.commonmark.org/0.30/#hard-line-breaks
// [soft line break]: https://spec.commonmark.org/0.30/#soft-line-breaks
var LineBreak blockdoc.InlineParser = lineBreakParser{}

func (lineBreakParser) FirstChars() []byte { return []byte{'\n'} }

func (p lineBreakParser) Match(state *blockdoc.InlineState) bool {
	if !state.Cursor().AtLineBreak() {
		return false
	}
	hard := state.Cursor().TrailingSpaces() >= 2
	if !hard {
		if b, ok := state.Cursor().ByteAt(-1); ok && b == '\\' {
			hard = true
		}
	}
	state.Cursor().Advance()
	n := state.NewLeaf(p, blockdoc.NullSpan(), &LineBreakData{Hard: hard})
	state.SetInline(n)
	return true
}
