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

type htmlBlockParser struct{}

// HTMLBlock recognizes a line beginning with '<' (after up to three
// columns of indentation) as the start of a raw HTML block, continuing
// until a blank line. CommonMark distinguishes seven HTML block start
// conditions with different closing rules; this parser collapses them
// all to "starts with '<', ends at the next blank line or end of
// input", which covers the common case (block-level tags, comments,
// processing instructions) but not every precise CommonMark corner, such
// as a type-6 block closing on a construct other than a blank line.
var HTMLBlock blockdoc.BlockParser = htmlBlockParser{}

func (htmlBlockParser) CanInterruptParagraph() bool { return true }

func (p htmlBlockParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	c := state.Cursor()
	if top := state.Pending(); top.Parser() == p {
		if isBlankLine(c.Rest()) {
			return blockdoc.NoMatch
		}
		return blockdoc.Continue
	}
	if c.Indent() > 3 {
		return blockdoc.NoMatch
	}
	rest := c.Rest()
	body := rest[indentLength(rest):]
	if len(body) == 0 || body[0] != '<' {
		return blockdoc.NoMatch
	}
	leaf := state.OpenLeaf(p, nil)
	leaf.SetNoInline(true)
	return blockdoc.Continue
}
