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

import (
	"unicode"
	"unicode/utf8"

	"github.com/crazyants/blockdoc"
)

type emphasisParser struct{}

// Emphasis recognizes a maximal run of '*' or '_' as a delimiter run and
// attaches a [blockdoc.EmphasisDelimiter] describing it; the engine's
// post-pass over the finished tree does the actual opener/closer pairing
// (§ rule of 3), so Match's only job is to classify the run as
// left-flanking, right-flanking, and, for '_', whether it also satisfies
// the stricter intraword rule.
var Emphasis blockdoc.InlineParser = emphasisParser{}

func (emphasisParser) FirstChars() []byte { return []byte{'*', '_'} }

func (p emphasisParser) Match(state *blockdoc.InlineState) bool {
	c := state.Cursor()
	start := c.Pos()
	b, _ := c.Byte()
	n := runLength(c, b)

	before, beforeOK := c.ByteAt(-1)
	after, afterOK := c.ByteAt(n)
	leftFlank, rightFlank := computeFlanking(before, beforeOK, after, afterOK)

	var canOpen, canClose bool
	if b == '*' {
		canOpen = leftFlank
		canClose = rightFlank
	} else {
		beforePunct := !beforeOK || isRunePunct(before)
		afterPunct := !afterOK || isRunePunct(after)
		canOpen = leftFlank && (!rightFlank || beforePunct)
		canClose = rightFlank && (!leftFlank || afterPunct)
	}
	if !canOpen && !canClose {
		return false
	}

	c.AdvanceBytes(n)
	data := &blockdoc.EmphasisDelimiter{
		Char:     b,
		Count:    n,
		CanOpen:  canOpen,
		CanClose: canClose,
		MakeSingle: func(children []*blockdoc.Inline) *blockdoc.Inline {
			return blockdoc.NewEmphasisNode(EmphasisMark, &EmphasisData{Strong: false})
		},
		MakeDouble: func(children []*blockdoc.Inline) *blockdoc.Inline {
			return blockdoc.NewEmphasisNode(EmphasisMark, &EmphasisData{Strong: true})
		},
	}
	leaf := state.NewLeaf(p, blockdoc.Span{Start: start, End: c.Pos()}, data)
	state.SetInline(leaf)
	return true
}

// EmphasisData is the payload [EmphasisMark] attaches to the wrapper
// node a resolved emphasis or strong-emphasis run produces.
type EmphasisData struct {
	Strong bool
}

type emphasisMarkParser struct{}

// EmphasisMark is the [blockdoc.InlineParser] identifying a resolved
// emphasis/strong-emphasis wrapper container. It never runs during the
// scan: [Emphasis]'s MakeSingle/MakeDouble callbacks are the only place
// that constructs an EmphasisMark node, via [blockdoc.NewEmphasisNode].
var EmphasisMark blockdoc.InlineParser = emphasisMarkParser{}

func (emphasisMarkParser) Match(*blockdoc.InlineState) bool { return false }

// computeFlanking implements CommonMark's left-flanking/right-flanking
// delimiter-run rules in terms of the single rune immediately before and
// after the run.
func computeFlanking(before byte, beforeOK bool, after byte, afterOK bool) (left, right bool) {
	beforeWS := !beforeOK || isRuneSpace(before)
	afterWS := !afterOK || isRuneSpace(after)
	beforePunct := beforeOK && isRunePunct(before)
	afterPunct := afterOK && isRunePunct(after)

	left = !afterWS && (!afterPunct || beforeWS || beforePunct)
	right = !beforeWS && (!beforePunct || afterWS || afterPunct)
	return left, right
}

// isRuneSpace and isRunePunct classify a single byte as if it were a
// standalone rune; non-ASCII lead bytes are treated as ordinary word
// characters, which is a deliberate simplification for multi-byte UTF-8
// sequences (full support would decode the rune on each side of the
// run rather than looking at one byte).
func isRuneSpace(b byte) bool {
	if b < utf8.RuneSelf {
		return unicode.IsSpace(rune(b))
	}
	return false
}

func isRunePunct(b byte) bool {
	if b < utf8.RuneSelf {
		return unicode.IsPunct(rune(b)) || unicode.IsSymbol(rune(b))
	}
	return false
}
