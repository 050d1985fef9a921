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

// BlockState is the mutable context threaded through every [BlockParser]
// call during the block phase. It is never shared across goroutines: the
// block phase is strictly single-threaded (§5 of the design).
type BlockState struct {
	engine    *Engine
	cursor    LineCursor
	lineIndex int
	stack     []*Block
	newBlocks []*Block
	pending   *Block
	builders  *builderPool
}

// Cursor returns the cursor over the current line, positioned wherever
// the previous parser in the pipeline left it.
func (s *BlockState) Cursor() *LineCursor {
	return &s.cursor
}

// LineIndex returns the 0-based index of the line currently being
// processed.
func (s *BlockState) LineIndex() int {
	return s.lineIndex
}

// Pending returns the block whose continuation is being probed
// (continuation phase), or the deepest currently open block (new-blocks
// phase). A [BlockParser] reads this to find the specific Block instance
// it should mutate (e.g. to update an existing list item's data).
func (s *BlockState) Pending() *Block {
	return s.pending
}

// Document returns the root container of the tree being built.
func (s *BlockState) Document() *Block {
	return s.stack[0]
}

// OpenBlocks returns the current open-block stack, shallowest first.
// Callers must not retain or mutate the returned slice past the current
// Match call.
func (s *BlockState) OpenBlocks() []*Block {
	return s.stack
}

// Builders returns the engine's shared scratch-builder pool.
func (s *BlockState) Builders() *builderPool {
	return s.builders
}

// OpenContainer stages a new container block, owned by parser, to be
// attached once the current Match call returns. data is the parser's
// kind-specific payload, later retrievable via [Block.Data].
func (s *BlockState) OpenContainer(parser BlockParser, data any) *Block {
	b := &Block{parser: parser, data: data}
	s.newBlocks = append(s.newBlocks, b)
	return b
}

// OpenLeaf stages a new leaf block. Per the [BlockParser.Match] contract,
// a leaf must be the last block staged in a given call.
func (s *BlockState) OpenLeaf(parser BlockParser, data any) *Block {
	b := &Block{parser: parser, data: data, lines: &LineGroup{}}
	s.newBlocks = append(s.newBlocks, b)
	return b
}

// InlineState is the mutable context threaded through every
// [InlineParser] call during the inline phase. Each leaf's inline phase
// gets its own InlineState, so these are safe to run concurrently across
// leaves (§5 of the design); only the [builderPool] referenced by
// builders is actually shared, and it is itself concurrency-safe.
type InlineState struct {
	engine   *Engine
	leaf     *Block
	group    *LineGroup
	cursor   LineGroupCursor
	root     *Inline
	inline   *Inline // insertion anchor set by the most recent Match
	toClose  []*Inline
	builders *builderPool
	refs     ReferenceMatcher
}

// Cursor returns the cursor over the leaf's joined line-group text.
func (s *InlineState) Cursor() *LineGroupCursor {
	return &s.cursor
}

// Leaf returns the block being inline-parsed.
func (s *InlineState) Leaf() *Block {
	return s.leaf
}

// Group returns the leaf's [LineGroup].
func (s *InlineState) Group() *LineGroup {
	return s.group
}

// Root returns the inline tree's synthetic root container.
func (s *InlineState) Root() *Inline {
	return s.root
}

// Builders returns the engine's shared scratch-builder pool.
func (s *InlineState) Builders() *builderPool {
	return s.builders
}

// References returns the document-wide link reference matcher configured
// on the engine, or nil if none was set.
func (s *InlineState) References() ReferenceMatcher {
	return s.refs
}

// Inline returns the current insertion anchor: either the node the most
// recent successful Match produced, or, if that Match mutated existing
// state instead, the node the engine recomputed as a valid anchor for
// the next parser.
func (s *InlineState) Inline() *Inline {
	return s.inline
}

// SetInline records the node a successful Match produced, or nil if the
// parser mutated already-open inlines instead of creating a new node.
func (s *InlineState) SetInline(in *Inline) {
	s.inline = in
}

// NewLeaf creates a new leaf [Inline] spanning [start, end) of the
// group's joined text. It does not attach the node to the tree; callers
// return it via SetInline and let the engine attach it.
func (s *InlineState) NewLeaf(parser InlineParser, span Span, data any) *Inline {
	return &Inline{parser: parser, span: span, data: data}
}

// NewContainer creates a new, open [Inline] container. If closable is
// true, the engine enqueues it on the to-close queue once attached.
func (s *InlineState) NewContainer(parser InlineParser, span Span, closable bool, data any) *Inline {
	return &Inline{parser: parser, span: span, container: true, closable: closable, data: data}
}

// Enqueue adds an already-attached closable inline to the to-close queue,
// if it is not already the tail. Most parsers don't need to call this
// directly: the engine enqueues newly attached closable containers
// automatically (§4.4.2). It exists for parsers that close an existing
// opener out of LIFO order and need to requeue a replacement.
func (s *InlineState) Enqueue(in *Inline) {
	if in == nil || in.closed || (len(s.toClose) > 0 && s.toClose[len(s.toClose)-1] == in) {
		return
	}
	s.toClose = append(s.toClose, in)
}

// Close marks in closed immediately, running its [InlineCloser] hook if
// it has one. Most closable containers are left for the engine to close
// during the end-of-leaf drain (§4.4.3), but a parser that determines a
// container's span is fully resolved partway through the scan -- a ']'
// completing a link, say -- needs it closed right away, so that
// subsequent content attaches as the container's sibling rather than
// nesting inside it. Closing twice is harmless: the drain's later call
// is a no-op once closed is already true.
func (s *InlineState) Close(in *Inline) {
	in.close()
}
