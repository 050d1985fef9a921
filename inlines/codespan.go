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

// CodeSpanData is the payload [CodeSpan] attaches to the leaves it
// produces. Content is the span's literal text, already stripped of one
// leading and trailing space (if both were present and the content isn't
// all whitespace) and with internal line endings folded to single spaces.
type CodeSpanData struct {
	Content []byte
}

type codeSpanParser struct{}

// CodeSpan recognizes a backtick-delimited [code span]: a run of N
// backticks, content, and the next run of exactly N backticks. Unlike
// emphasis, a code span's extent is fully determined at the opening
// delimiter, so Match consumes the whole thing -- opener, content, and
// closer -- in one call rather than leaving a closable container behind.
// A run with no matching closer of the same length is not a code span at
// all; CodeSpan then declines and leaves the backticks for [Text].
//
// [code span]: https://spec.commonmark.org/0.30/#code-spans
var CodeSpan blockdoc.InlineParser = codeSpanParser{}

func (codeSpanParser) FirstChars() []byte { return []byte{'`'} }

func (p codeSpanParser) Match(state *blockdoc.InlineState) bool {
	c := state.Cursor()
	start := c.Pos()
	openLen := runLength(c, '`')
	c.AdvanceBytes(openLen)
	contentStart := c.Pos()

	for {
		b, ok := c.Byte()
		if !ok {
			return false // no closer; not a code span
		}
		if b != '`' {
			c.Advance()
			continue
		}
		closeStart := c.Pos()
		closeLen := runLength(c, '`')
		if closeLen == openLen {
			content := normalizeCodeSpanContent(state.Group().Text()[contentStart:closeStart])
			c.AdvanceBytes(closeLen)
			n := state.NewLeaf(p, blockdoc.Span{Start: start, End: c.Pos()}, &CodeSpanData{Content: content})
			state.SetInline(n)
			return true
		}
		c.AdvanceBytes(closeLen)
	}
}

// runLength returns the number of consecutive bytes equal to b starting
// at the cursor's current position, without advancing it.
func runLength(c *blockdoc.LineGroupCursor, b byte) int {
	n := 0
	for {
		got, ok := c.ByteAt(n)
		if !ok || got != b {
			return n
		}
		n++
	}
}

// normalizeCodeSpanContent folds each line break in raw to a single space
// and, if the result starts and ends with a space and isn't all spaces,
// strips one space from each end.
func normalizeCodeSpanContent(raw []byte) []byte {
	out := make([]byte, len(raw))
	allSpace := true
	for i, b := range raw {
		if b == '\n' {
			out[i] = ' '
		} else {
			out[i] = b
			if b != ' ' {
				allSpace = false
			}
		}
	}
	if !allSpace && len(out) >= 2 && out[0] == ' ' && out[len(out)-1] == ' ' {
		out = out[1 : len(out)-1]
	}
	return out
}
