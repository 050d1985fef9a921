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

type paragraphParser struct{}

// Paragraph recognizes the fallback block: any non-blank line that no
// higher-priority parser claimed. It must be registered last.
//
// Paragraph also implements [blockdoc.LazyContinuationParser]: once open,
// it absorbs any further non-blank line that no other block-starting
// parser is willing to interrupt it with, per CommonMark's [lazy
// continuation line] rule. Its CanInterruptParagraph reports true not
// because one paragraph can interrupt another (it can't: two adjacent
// non-blank lines are the same paragraph), but because the engine's
// new-blocks loop would otherwise filter Paragraph itself out of
// consideration whenever the pending block is already a paragraph --
// exactly the case Paragraph itself has to handle.
//
// [lazy continuation line]: https://spec.commonmark.org/0.30/#lazy-continuation-line
var Paragraph blockdoc.BlockParser = paragraphParser{}

func (paragraphParser) CanInterruptParagraph() bool { return true }

func (p paragraphParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	if isBlankLine(state.Cursor().Rest()) {
		return blockdoc.NoMatch
	}
	if top := state.Pending(); top.Parser() == p && top.Data() == nil {
		// Lazy continuation of the open paragraph; the engine special-
		// cases this result (see appendLazyContinuation) rather than
		// reading state's staged blocks. A non-nil Data means top has
		// been promoted (e.g. to a setext heading) and is sealed: it
		// cannot absorb further lines as an ordinary paragraph would.
		return blockdoc.Continue
	}
	state.OpenLeaf(p, nil)
	return blockdoc.Continue
}

// IsLazyContinuable reports whether b is still an ordinary, unpromoted
// paragraph. A setext heading shares b's Parser() identity but carries
// non-nil Data, and must not be treated as eligible for further lazy
// continuation lines.
func (p paragraphParser) IsLazyContinuable(b *blockdoc.Block) bool {
	return b.Parser() == p && b.Data() == nil
}
