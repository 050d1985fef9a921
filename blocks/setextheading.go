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

// SetextHeadingData replaces a promoted paragraph's [blockdoc.Block.Data]
// payload; its presence (rather than nil) is what distinguishes a
// setext-promoted leaf from an ordinary paragraph sharing the same
// [blockdoc.Block.Parser] identity.
type SetextHeadingData struct {
	Level int // 1 or 2
}

// setextHeadingParser has no state of its own: it promotes whatever
// paragraph the engine hands it as [blockdoc.BlockState.Pending] rather
// than staging a block, so it never needs to know which Paragraph
// instance it is paired with beyond identity comparison.
type setextHeadingParser struct {
	paragraph blockdoc.BlockParser
}

// NewSetextHeading returns a parser that turns an open paragraph into a
// [setext heading] when the next line is a valid underline ('=' for
// level 1, '-' for level 2). paragraph must be the same instance passed
// to [blockdoc.NewEngine] as the registered [Paragraph] parser: promotion
// works by Block.Parser identity, not by type.
//
// The core engine has no API for replacing a Block's governing parser in
// place, so this does not attempt to "become" the paragraph's parser;
// instead it leaves Parser() as Paragraph and repurposes Data() (see
// [SetextHeadingData]) as the discriminator. Renderers that care about
// setext vs. ATX headings type-switch on Data(), not Parser().
//
// [setext heading]: https://spec.commonmark.org/0.30/#setext-heading
func NewSetextHeading(paragraph blockdoc.BlockParser) blockdoc.BlockParser {
	return &setextHeadingParser{paragraph: paragraph}
}

// CanInterruptParagraph reports true so the new-blocks loop does not
// filter this parser out while the pending block is an open paragraph --
// the only context in which it ever matches anything.
func (p *setextHeadingParser) CanInterruptParagraph() bool { return true }

func (p *setextHeadingParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	top := state.Pending()
	if top.Parser() != p.paragraph || top.Data() != nil {
		return blockdoc.NoMatch
	}
	rest := state.Cursor().Rest()
	level, ok := parseSetextUnderline(rest)
	if !ok {
		return blockdoc.NoMatch
	}
	top.SetData(&SetextHeadingData{Level: level})
	state.Cursor().AdvanceBytes(len(rest))
	return blockdoc.LastDiscard
}

func parseSetextUnderline(line []byte) (level int, ok bool) {
	if len(line) == 0 {
		return 0, false
	}
	var want byte
	switch line[0] {
	case '=':
		level, want = 1, '='
	case '-':
		level, want = 2, '-'
	default:
		return 0, false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != want {
			if !isBlankLine(line[i:]) {
				return 0, false
			}
			return level, true
		}
	}
	return level, true
}
