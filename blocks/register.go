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

// Default returns the stock block parsers in priority order, ready to
// pass to [blockdoc.NewEngine]. Paragraph must stay last: it is the
// catch-all every other parser gets first refusal ahead of.
//
// SetextHeading is tried first so that, when a paragraph is the pending
// block, a line of "---" resolves to a heading underline rather than to
// ThematicBreak; CommonMark gives the underline reading priority in that
// ambiguous case.
func Default() []blockdoc.BlockParser {
	return []blockdoc.BlockParser{
		NewSetextHeading(Paragraph),
		BlockQuote,
		ATXHeading,
		FencedCode,
		HTMLBlock,
		ThematicBreak,
		ListItem,
		IndentedCode,
		LinkReferenceDefinition,
		Paragraph,
	}
}
