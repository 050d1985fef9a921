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

// escapablePunctuation is the fixed ASCII punctuation set CommonMark
// allows a backslash to escape.
const escapablePunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isEscapable(b byte) bool {
	for i := 0; i < len(escapablePunctuation); i++ {
		if escapablePunctuation[i] == b {
			return true
		}
	}
	return false
}

type escapeParser struct{}

// Escape recognizes a backslash followed by ASCII punctuation as a
// [backslash escape]: the punctuation renders literally, with the
// backslash itself dropped. A backslash not followed by punctuation is
// left for [Text] to consume as-is.
//
// [backslash escape]: https://spec.commonmark.org/0.30/#backslash-escapes
var Escape blockdoc.InlineParser = escapeParser{}

func (escapeParser) FirstChars() []byte { return []byte{'\\'} }

func (p escapeParser) Match(state *blockdoc.InlineState) bool {
	state.Cursor().Advance() // consume '\\'
	b, ok := state.Cursor().Byte()
	if !ok || !isEscapable(b) {
		return false
	}
	start := state.Cursor().Pos()
	state.Cursor().Advance()
	n := state.NewLeaf(p, blockdoc.Span{Start: start, End: state.Cursor().Pos()}, nil)
	state.SetInline(n)
	return true
}
