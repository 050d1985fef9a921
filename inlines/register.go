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

// Default returns the stock inline parsers, ready to pass to
// [blockdoc.NewEngine]. Every entry but [Text] declares [blockdoc.InlineFirstChars],
// so dispatch order among them only matters for the handful that share a
// byte: [Escape] and [LinkOpen]/[LinkClose] each own their character
// outright, while [Angle] tries autolink grammar before falling back to
// raw HTML so that only one parser needs to claim '<'. [Text] has no
// first characters and so is always the fallback of last resort; it must
// stay last so every other parser gets first refusal on its own bytes.
//
// [EmphasisMark] is deliberately absent: it is never dispatched during
// the scan, only constructed by [Emphasis]'s resolution callbacks.
func Default() []blockdoc.InlineParser {
	return []blockdoc.InlineParser{
		Escape,
		CodeSpan,
		Angle,
		LinkOpen,
		LinkClose,
		Emphasis,
		LineBreak,
		Text,
	}
}
