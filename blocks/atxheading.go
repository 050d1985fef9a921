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

// ATXHeadingData is the [blockdoc.Block.Data] payload [ATXHeading]
// attaches to the leaves it produces.
type ATXHeadingData struct {
	Level int // 1-6
}

type atxHeadingParser struct{}

// ATXHeading recognizes an [ATX heading]: one to six '#' characters,
// optional content, and an optional closing run of '#' characters.
//
// [ATX heading]: https://spec.commonmark.org/0.30/#atx-headings
var ATXHeading blockdoc.BlockParser = atxHeadingParser{}

func (atxHeadingParser) CanInterruptParagraph() bool { return true }

func (p atxHeadingParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	rest := state.Cursor().Rest()
	level, content, ok := parseATXHeadingLine(rest)
	if !ok {
		return blockdoc.NoMatch
	}
	state.Cursor().AdvanceBytes(len(rest))
	leaf := state.OpenLeaf(p, &ATXHeadingData{Level: level})
	leaf.Lines().AppendLine(content)
	return blockdoc.LastDiscard
}

// parseATXHeadingLine reports the heading level and trimmed content of
// line, if line is an ATX heading line.
func parseATXHeadingLine(line []byte) (level int, content []byte, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, nil, false
	}

	i := level
	if i >= len(line) || line[i] == '\n' || line[i] == '\r' {
		return level, nil, true
	}
	if line[i] != ' ' && line[i] != '\t' {
		return 0, nil, false
	}
	i++
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	contentStart := i

	contentEnd := len(line)
	hitHash := false
scanBack:
	for ; contentEnd > contentStart; contentEnd-- {
		switch line[contentEnd-1] {
		case '\r', '\n':
			// Skip past EOL.
		case ' ', '\t':
			if isEndEscaped(line[:contentEnd-1]) {
				break scanBack
			}
		case '#':
			hitHash = true
			break scanBack
		default:
			break scanBack
		}
	}
	if !hitHash {
		return level, line[contentStart:contentEnd], true
	}

scanTrailingHashes:
	for i := contentEnd - 1; ; i-- {
		if i <= contentStart {
			contentEnd = contentStart
			break
		}
		switch line[i] {
		case '#':
			// Keep going.
		case ' ', '\t':
			contentEnd = i + 1
			break scanTrailingHashes
		default:
			return level, line[contentStart:contentEnd], true
		}
	}
	for ; contentEnd > contentStart; contentEnd-- {
		if b := line[contentEnd-1]; !(b == ' ' || b == '\t') || isEndEscaped(line[:contentEnd-1]) {
			break
		}
	}
	return level, line[contentStart:contentEnd], true
}
