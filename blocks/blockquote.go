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

type blockQuoteParser struct{}

// BlockQuote recognizes a ['>' block quote marker], indented up to three
// columns, optionally followed by a single space or tab before the
// quote's content begins. The same Match call handles both starting a
// new block quote and continuing an already-open one, distinguished by
// whether [blockdoc.BlockState.Pending] already belongs to this parser.
//
// ['>' block quote marker]: https://spec.commonmark.org/0.30/#block-quotes
var BlockQuote blockdoc.BlockParser = blockQuoteParser{}

func (blockQuoteParser) CanInterruptParagraph() bool { return true }

func (p blockQuoteParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	c := state.Cursor()
	if c.Indent() > 3 {
		return blockdoc.NoMatch
	}
	c.AdvanceIndent(c.Indent())
	b, ok := c.Byte()
	if !ok || b != '>' {
		return blockdoc.NoMatch
	}
	c.Advance()
	if b2, ok2 := c.Byte(); ok2 && (b2 == ' ' || b2 == '\t') {
		c.Advance()
	}
	if top := state.Pending(); top.Parser() != p {
		state.OpenContainer(p, nil)
	}
	return blockdoc.Continue
}
