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

type indentedCodeParser struct{}

// IndentedCode recognizes an [indented code block]: lines indented at
// least four columns, outside any other construct. It never interrupts
// a paragraph.
//
// Trailing blank lines inside the block are kept verbatim rather than
// trimmed at close time, since [blockdoc.LineGroup] has no line-removal
// API; a renderer that cares trims them itself.
//
// [indented code block]: https://spec.commonmark.org/0.30/#indented-code-blocks
var IndentedCode blockdoc.BlockParser = indentedCodeParser{}

func (indentedCodeParser) CanInterruptParagraph() bool { return false }

func (p indentedCodeParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	c := state.Cursor()
	if top := state.Pending(); top.Parser() == p {
		if isBlankLine(c.Rest()) {
			return blockdoc.Continue
		}
		if c.Indent() < 4 {
			return blockdoc.NoMatch
		}
		c.AdvanceIndent(4)
		return blockdoc.Continue
	}
	if isBlankLine(c.Rest()) || c.Indent() < 4 {
		return blockdoc.NoMatch
	}
	c.AdvanceIndent(4)
	leaf := state.OpenLeaf(p, nil)
	leaf.SetNoInline(true)
	return blockdoc.Continue
}

// FencedCodeData is the payload [FencedCode] attaches to the leaves it
// produces.
type FencedCodeData struct {
	Info string

	fenceChar byte
	fenceLen  int
	indent    int
}

type fencedCodeParser struct{}

// FencedCode recognizes a [fenced code block]: a line of three or more
// backticks or tildes, optionally followed by an info string, closed by
// a fence of the same character at least as long, indented no more than
// three columns.
//
// [fenced code block]: https://spec.commonmark.org/0.30/#fenced-code-blocks
var FencedCode blockdoc.BlockParser = fencedCodeParser{}

func (fencedCodeParser) CanInterruptParagraph() bool { return true }

func (p fencedCodeParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	c := state.Cursor()
	if top := state.Pending(); top.Parser() == p {
		data := top.Data().(*FencedCodeData)
		rest := c.Rest()
		if c.Indent() <= 3 {
			trimmed := rest[indentLength(rest):]
			if n, ok := closingFenceLen(trimmed, data.fenceChar); ok && n >= data.fenceLen {
				c.AdvanceBytes(len(rest))
				return blockdoc.LastDiscard
			}
		}
		stripped := stripIndent(rest, data.indent)
		c.AdvanceBytes(len(rest))
		top.Lines().AppendLine(stripped)
		return blockdoc.ContinueDiscard
	}

	indent := c.Indent()
	if indent > 3 {
		return blockdoc.NoMatch
	}
	rest := c.Rest()
	body := rest[indentLength(rest):]
	fenceChar, fenceLen, info, ok := parseOpeningFence(body)
	if !ok {
		return blockdoc.NoMatch
	}
	c.AdvanceBytes(len(rest))
	leaf := state.OpenLeaf(p, &FencedCodeData{
		Info:      string(info),
		fenceChar: fenceChar,
		fenceLen:  fenceLen,
		indent:    indent,
	})
	leaf.SetNoInline(true)
	return blockdoc.ContinueDiscard
}

func (fencedCodeParser) CloseBlock(b *blockdoc.Block) {
	// Nothing to finalize: Info was captured at open time and the raw
	// line text is already stripped of its shared indentation.
	_ = b
}

// parseOpeningFence recognizes a fence line with its leading indentation
// already stripped, returning the fence character, its run length, and
// the trimmed info string.
func parseOpeningFence(line []byte) (char byte, n int, info []byte, ok bool) {
	const minConsecutive = 3
	if len(line) < minConsecutive || (line[0] != '`' && line[0] != '~') {
		return 0, 0, nil, false
	}
	char = line[0]
	n = 1
	for n < len(line) && line[n] == char {
		n++
	}
	if n < minConsecutive {
		return 0, 0, nil, false
	}
	rest := line[n:]
	start := 0
	for start < len(rest) && isSpaceTabOrLineEnding(rest[start]) {
		start++
	}
	end := trimTrailingWhitespace(rest)
	if start >= end {
		return char, n, nil, true
	}
	if char == '`' {
		for i := start; i < end; i++ {
			if rest[i] == '`' {
				return 0, 0, nil, false
			}
		}
	}
	return char, n, rest[start:end], true
}

// closingFenceLen reports the run length of a closing fence matching
// char at the start of line (with indentation already stripped), or
// false if line is not a bare fence of that character.
func closingFenceLen(line []byte, char byte) (n int, ok bool) {
	for n < len(line) && line[n] == char {
		n++
	}
	if n < 3 {
		return 0, false
	}
	if !isBlankLine(line[n:]) {
		return 0, false
	}
	return n, true
}

// stripIndent removes up to n columns of leading space/tab from line,
// matching the opening fence's indentation (partial tabs are dropped
// entirely rather than split, a simplification versus full column math).
func stripIndent(line []byte, n int) []byte {
	col := 0
	for i, b := range line {
		if col >= n {
			return line[i:]
		}
		switch b {
		case ' ':
			col++
		case '\t':
			col += 4
		default:
			return line[i:]
		}
	}
	return nil
}
