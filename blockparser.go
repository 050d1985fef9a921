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

package blockdoc

// MatchResult is the outcome a [BlockParser] reports from [BlockParser.Match].
type MatchResult int

const (
	// NoMatch means the parser did not recognize the line. The block
	// state's cursor must be left exactly where it was on entry, or
	// restorable to that position; the driver is responsible for the
	// restore.
	NoMatch MatchResult = iota

	// Continue means the parser recognized the line and the block
	// remains open. The rest of the line, if any, may still be offered
	// to deeper blocks or to the new-blocks phase.
	Continue

	// ContinueDiscard is like Continue, but the parser has consumed the
	// remainder of the line; it must not be appended to a leaf or
	// offered to any other parser.
	ContinueDiscard

	// Last means the parser recognized the line but the block closes
	// itself immediately after this line. The line may still be
	// appended or passed on, as with Continue.
	Last

	// LastDiscard is Last with the remainder of the line discarded.
	LastDiscard

	// Skip is only meaningful during the continuation phase
	// ([Engine]'s ProcessPendingBlocks): the pending block makes no
	// claim on this line and yields to the next block down the stack
	// without itself closing. Returning Skip from the new-blocks phase
	// is treated as NoMatch.
	Skip
)

// BlockParser recognizes one kind of block-level structure. An Engine is
// constructed with an ordered list of BlockParsers; the order is the
// priority order in which [Engine.ParseLines] tries them against a line
// that did not continue any currently open block.
//
// Implementations must be stateless (or hold only configuration, never
// per-document state): all mutable state belongs to the [BlockState]
// passed to Match, or to the Block payload the parser attaches via
// [BlockState.OpenContainer] / [BlockState.OpenLeaf].
type BlockParser interface {
	// Match inspects state.Cursor() starting at the current column and
	// either recognizes the line, advancing the cursor past what it
	// consumed and returning a result other than NoMatch, or declines
	// and returns NoMatch, in which case it must not have left any
	// observable change to state besides cursor movement (which the
	// caller will restore).
	//
	// Match may stage newly created child blocks via state.OpenContainer
	// or state.OpenLeaf. A parser that stages a leaf must not stage any
	// further blocks in the same call: the leaf must be the last staged
	// block.
	Match(state *BlockState) MatchResult

	// CanInterruptParagraph reports whether this parser is allowed to
	// start a new block in the middle of an unclosed paragraph. Parsers
	// that return false are skipped by the new-blocks phase whenever
	// the current deepest open block is a paragraph still awaiting lazy
	// continuation text.
	CanInterruptParagraph() bool
}

// BlockFinalizer is an optional capability a [BlockParser] may implement
// to run cleanup when one of its blocks is closed, such as computing a
// derived property (list tightness) now that no more children will
// arrive.
type BlockFinalizer interface {
	// CloseBlock is invoked exactly once, when b transitions from open
	// to closed. No further line content will be appended to b
	// afterward.
	CloseBlock(b *Block)
}
