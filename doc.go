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

// Package blockdoc provides a two-phase document parsing engine modeled on
// [CommonMark]'s recommended parsing strategy: a block phase recognizes
// container and leaf structure line by line against a stack of open blocks,
// and an inline phase walks the resulting tree to resolve emphasis, code
// spans, links, and other span-level structure inside each leaf.
//
// The engine itself knows nothing about any particular syntax. Block and
// inline recognizers are supplied as ordered lists of [BlockParser] and
// [InlineParser] implementations at construction time; the subpackages
// blocks and inlines provide a CommonMark-flavored default set.
//
// [CommonMark]: https://commonmark.org/
package blockdoc
