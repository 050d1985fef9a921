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

// specialBytes is the set of bytes that stop a run of plain literal
// text: every byte some other stock parser claims as a first character,
// plus the synthetic line-join byte.
var specialBytes = [256]bool{
	'\\': true, '`': true, '<': true, '*': true, '_': true,
	'[': true, ']': true, '!': true, '\n': true,
}

type textParser struct{}

// Text is the fallback [blockdoc.InlineParser]: it has no declared first
// characters, so the engine only tries it once every other parser has
// declined. It consumes a maximal run of bytes that no other stock
// parser would have claimed and produces one leaf node for the run,
// rather than leaning on the engine's single-byte forced-advance safety
// net (which exists for misbehaving parser lists, not as Text's
// strategy).
var Text blockdoc.InlineParser = textParser{}

func (textParser) Match(state *blockdoc.InlineState) bool {
	start := state.Cursor().Pos()
	b, ok := state.Cursor().Byte()
	if !ok {
		return false
	}
	if specialBytes[b] {
		// Reached here because the byte's own parser declined; consume
		// it as one literal byte so the scan still makes progress.
		state.Cursor().Advance()
	} else {
		for {
			b, ok := state.Cursor().Byte()
			if !ok || specialBytes[b] {
				break
			}
			state.Cursor().Advance()
		}
	}
	n := state.NewLeaf(Text, blockdoc.Span{Start: start, End: state.Cursor().Pos()}, nil)
	state.SetInline(n)
	return true
}
