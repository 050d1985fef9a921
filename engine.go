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

// Package blockdoc's Engine implements the two-phase driver described in
// the package doc: ParseLines runs the block phase, ProcessInlines runs
// the inline phase over the resulting tree.
package blockdoc

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LineReader yields one logical line at a time, with line endings
// stripped, terminating with ok == false. It is the engine's only input
// collaborator; see [NewSliceReader] and [NewTextReader] for the two
// stock implementations.
type LineReader interface {
	ReadLine() (line []byte, ok bool)
}

// LazyContinuationParser is an optional capability exactly one
// registered [BlockParser] may implement: the one responsible for
// CommonMark-style paragraphs. The engine detects it at construction and
// gives it the two special behaviors [§4.3] of the design calls for:
// during the continuation phase its blocks are never probed directly
// (they wait for the new-blocks phase to decide whether something
// interrupts them), and a successful match against an already-open block
// of this kind triggers lazy continuation instead of nesting a new block.
//
// [§4.3]: (see package documentation)
type LazyContinuationParser interface {
	BlockParser
	// IsLazyContinuable reports whether b, specifically, is still
	// eligible to lazily absorb an otherwise-unmatched line. Most
	// paragraph implementations return true unconditionally.
	IsLazyContinuable(b *Block) bool
}

// EngineOption configures a [NewEngine] call.
type EngineOption func(*Engine)

// WithTracer attaches a line-oriented trace sink to the engine.
func WithTracer(t Tracer) EngineOption {
	return func(e *Engine) { e.tracer = t }
}

// WithInlineWorkers bounds how many leaves the inline phase processes
// concurrently. n <= 0 means [runtime.GOMAXPROCS](0).
func WithInlineWorkers(n int) EngineOption {
	return func(e *Engine) { e.inlineWorkers = n }
}

// WithReferences attaches a [ReferenceMatcher] that link-style inline
// parsers can consult while resolving "[label][ref]" syntax.
func WithReferences(refs ReferenceMatcher) EngineOption {
	return func(e *Engine) { e.refs = refs }
}

// Engine owns an ordered set of block and inline parsers and drives the
// two-phase parse. An Engine is immutable after [NewEngine] returns and
// is safe to reuse (and to call [Engine.ParseLines] from) concurrently,
// provided each call gets its own [LineReader].
type Engine struct {
	blockParsers  []BlockParser
	lazyParser    BlockParser
	dispatch      *inlineDispatch
	tracer        Tracer
	metrics       Metrics
	inlineWorkers int
	refs          ReferenceMatcher
}

// NewEngine constructs an Engine from ordered block and inline parser
// lists. Registration order is priority order: for block parsers, the
// order [Engine.ParseLines] tries them against an unmatched line; for
// inline parsers without declared first characters, the order they're
// tried as a fallback after the dispatch table misses.
//
// NewEngine returns an error if two inline parsers claim the same first
// character, or if one declares a non-ASCII first character; the error
// aggregates one *[ConfigError] per problem found.
func NewEngine(blockParsers []BlockParser, inlineParsers []InlineParser, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		blockParsers: append([]BlockParser(nil), blockParsers...),
	}
	for _, p := range blockParsers {
		if lp, ok := p.(LazyContinuationParser); ok && e.lazyParser == nil {
			e.lazyParser = lp
		}
	}
	dispatch, err := buildInlineDispatch(inlineParsers)
	if err != nil {
		return nil, err
	}
	e.dispatch = dispatch
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// ParseLines runs the block phase over r, returning the document root.
// The returned root's [Block.Parser] is nil and [Block.IsContainer]
// reports true; it is open only while ParseLines is running.
func (e *Engine) ParseLines(r LineReader) *Block {
	doc := &Block{open: true}
	state := &BlockState{
		engine:   e,
		stack:    []*Block{doc},
		builders: newBuilderPool(),
	}
	for lineIndex := 0; ; lineIndex++ {
		line, ok := r.ReadLine()
		if !ok {
			break
		}
		e.processLine(state, line, lineIndex)
	}
	e.closeRemaining(state)
	return doc
}

func (e *Engine) processLine(state *BlockState, line []byte, lineIndex int) {
	state.cursor.reset(line)
	state.lineIndex = lineIndex
	e.tracef("line %d: %q", lineIndex, line)
	e.recordLine()
	// Blocks the previous line left tentatively closed (a paragraph
	// ended by a blank line, a leaf sealed by a Last result) are closed
	// before the continuation phase could probe them again.
	e.closeStaleOpenBlocks(state)
	if e.processPendingBlocks(state) {
		e.parseNewBlocks(state)
	}
}

// processPendingBlocks is the continuation phase (§4.3.1): it asks every
// open block but the document root whether the new line continues it,
// shallowest first, and reports whether the line still has content left
// to offer the new-blocks phase.
func (e *Engine) processPendingBlocks(state *BlockState) (continueLine bool) {
	for i := 1; i < len(state.stack); i++ {
		state.stack[i].open = false
	}

	for i := 1; i < len(state.stack); i++ {
		b := state.stack[i]
		if e.isLazyEligible(b) {
			break
		}

		state.pending = b
		state.newBlocks = state.newBlocks[:0]
		state.cursor.Save()
		result := b.parser.Match(state)

		switch result {
		case Skip:
			state.cursor.Restore()
			continue
		case NoMatch:
			state.cursor.Restore()
			return true
		default:
			state.cursor.Discard()
			b.open = result == Continue || result == ContinueDiscard

			if len(state.newBlocks) > 0 {
				e.attachNewBlocks(state, result, false)
				return false
			}
			if b.IsLeaf() {
				if result != ContinueDiscard && result != LastDiscard {
					b.lines.AppendLine(state.cursor.Rest())
				}
				state.cursor.AdvanceBytes(len(state.cursor.Rest()))
				return false
			}
			if result == LastDiscard {
				return false
			}
		}
	}
	return true
}

// parseNewBlocks is the new-blocks phase (§4.3.2): while the line still
// has content, it tries each registered [BlockParser] in priority order
// against the deepest open block's remaining text, opening nested
// containers (restarting the scan from the top each time one opens) until
// a leaf claims the rest of the line, lazy continuation kicks in, or
// nothing matches, in which case the remaining bytes are left unclaimed.
func (e *Engine) parseNewBlocks(state *BlockState) {
	for {
		if state.cursor.AtEOL() {
			return
		}

		top := state.stack[len(state.stack)-1]
		lazy := e.isLazyEligible(top)
		if !lazy {
			// Blocks the continuation phase left tentatively closed take
			// no new children: close them, so parsers see the deepest
			// still-open block as Pending.
			e.closeStaleOpenBlocks(state)
			top = state.stack[len(state.stack)-1]
		}
		if !lazy && top.IsLeaf() {
			// A non-lazy leaf already claimed this line during the
			// continuation phase; there is nothing left to do.
			return
		}

		matched := false
		for _, p := range e.blockParsers {
			if lazy && !p.CanInterruptParagraph() {
				continue
			}

			entryPos := state.cursor.Pos()
			state.pending = top
			state.newBlocks = state.newBlocks[:0]
			state.cursor.Save()
			result := p.Match(state)

			switch result {
			case NoMatch, Skip:
				if p == e.lazyParser && state.cursor.RestBlank() {
					state.cursor.Discard()
					return
				}
				state.cursor.Restore()
				continue
			default:
				state.cursor.Discard()
				if lazy && p == e.lazyParser {
					e.appendLazyContinuation(state, top, entryPos)
					return
				}
				if e.attachNewBlocks(state, result, true) {
					return
				}
				matched = true
			}
			break
		}
		if !matched {
			return
		}
	}
}

// appendLazyContinuation implements CommonMark's lazy paragraph
// continuation: the paragraph parser matched again, but rather than
// nesting a new paragraph inside the existing one, the whole line (as it
// stood before this attempt, so with any container prefixes that did
// match already stripped) is appended to the existing paragraph, and
// every block on the stack is reopened, since an unindented continuation
// line reaches back through containers that would otherwise have closed.
func (e *Engine) appendLazyContinuation(state *BlockState, top *Block, entryPos int) {
	state.newBlocks = state.newBlocks[:0]
	top.lines.AppendLine(state.cursor.From(entryPos))
	for _, b := range state.stack {
		b.open = true
	}
}

// attachNewBlocks is ProcessNewBlocks (§4.3.3): it stamps, appends lines
// to, closes stale siblings ahead of, and attaches each block staged
// during the most recent Match call, pushing it onto the open stack.
// allowClose is false while still inside the continuation phase, where
// closing decisions are deferred to the new-blocks phase.
func (e *Engine) attachNewBlocks(state *BlockState, result MatchResult, allowClose bool) (leafAtTop bool) {
	discard := result == ContinueDiscard || result == LastDiscard
	open := result == Continue || result == ContinueDiscard

	if len(state.newBlocks) == 0 {
		// The match mutated the pending block in place (e.g. a setext
		// underline promoting an open paragraph) rather than staging a
		// replacement; nothing to push, but the pending block itself
		// still needs sealing if this line didn't reconfirm it open.
		if allowClose {
			e.closeStaleOpenBlocks(state)
		}
		return false
	}

	for _, b := range state.newBlocks {
		b.startLine = state.lineIndex
		if b.IsLeaf() {
			if !discard {
				b.lines.AppendLine(state.cursor.Rest())
			}
			state.cursor.AdvanceBytes(len(state.cursor.Rest()))
		}
		if allowClose {
			e.closeStaleOpenBlocks(state)
		}
		parent := state.stack[len(state.stack)-1]
		parent.appendChild(b)
		b.open = open
		state.stack = append(state.stack, b)
		e.recordBlockOpened()
		if b.IsLeaf() {
			leafAtTop = true
			break
		}
	}
	state.newBlocks = state.newBlocks[:0]
	return leafAtTop
}

// closeStaleOpenBlocks pops and closes every block at the top of the
// stack that the continuation phase marked tentatively closed.
func (e *Engine) closeStaleOpenBlocks(state *BlockState) {
	for len(state.stack) > 1 {
		top := state.stack[len(state.stack)-1]
		if top.open {
			return
		}
		e.closeBlock(top)
		state.stack = state.stack[:len(state.stack)-1]
	}
}

// closeRemaining closes every block left on the stack at end of input,
// bottom-up, except the document root, then closes the root itself.
func (e *Engine) closeRemaining(state *BlockState) {
	for i := len(state.stack) - 1; i >= 1; i-- {
		e.closeBlock(state.stack[i])
	}
	state.stack[0].open = false
}

// closeBlock seals b, invoking its parser's [BlockFinalizer] hook if any,
// and cascades to any descendant that is still (tentatively) open.
func (e *Engine) closeBlock(b *Block) {
	b.open = false
	e.recordBlockClosed()
	if fin, ok := b.parser.(BlockFinalizer); ok {
		fin.CloseBlock(b)
	}
	for _, c := range b.children {
		if c.open {
			e.closeBlock(c)
		}
	}
}

func (e *Engine) isLazyEligible(b *Block) bool {
	if e.lazyParser == nil || b.parser != e.lazyParser {
		return false
	}
	return e.lazyParser.(LazyContinuationParser).IsLazyContinuable(b)
}

// ProcessInlines walks the document tree rooted at doc and runs the
// inline phase (§4.4) over every leaf whose [Block.NoInline] is false.
// Leaves are processed concurrently (bounded by [WithInlineWorkers]),
// each against disjoint state, but the final tree is identical regardless
// of scheduling order: per-leaf inline parsing is pure relative to that
// leaf's own lines.
func (e *Engine) ProcessInlines(doc *Block) {
	leaves := collectLeaves(doc)
	if len(leaves) == 0 {
		return
	}
	workers := e.inlineWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(leaves) {
		workers = len(leaves)
	}

	sessionID := uuid.NewString()
	e.tracef("inline phase %s: %d leaves, %d workers", sessionID, len(leaves), workers)

	builders := newBuilderPool()
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for _, leaf := range leaves {
		leaf := leaf
		g.Go(func() error {
			e.processLeafInlines(leaf, builders)
			return nil
		})
	}
	// Per-leaf inline parsing never fails (malformed Markdown always
	// parses to some tree), so the only possible error here is a panic
	// recovered by errgroup, which it re-panics after Wait; nothing to
	// inspect.
	_ = g.Wait()
}

// collectLeaves performs the pre-order walk that fixes the document
// order of leaves; that order is preserved regardless of how the inline
// phase schedules the actual work.
func collectLeaves(doc *Block) []*Block {
	var leaves []*Block
	var walk func(b *Block)
	walk = func(b *Block) {
		if b.IsLeaf() {
			if !b.NoInline() {
				leaves = append(leaves, b)
			}
			return
		}
		for _, c := range b.children {
			walk(c)
		}
	}
	walk(doc)
	return leaves
}

func (e *Engine) processLeafInlines(leaf *Block, builders *builderPool) {
	root := &Inline{container: true}
	leaf.inline = root

	state := &InlineState{
		engine:   e,
		leaf:     leaf,
		group:    leaf.lines,
		root:     root,
		inline:   root,
		builders: builders,
		refs:     e.refs,
	}
	state.cursor = *newLineGroupCursor(leaf.lines)

	for !state.cursor.AtEnd() {
		e.dispatchInline(state)
	}
	e.drainToClose(state)
	resolveEmphasis(root)
	e.recordLeafProcessed()
}

// dispatchInline runs the dispatch table lookup for the current byte
// (§4.4.1), falling back to the regular parser list, and attaches
// whatever the winning parser produced (§4.4.2).
func (e *Engine) dispatchInline(state *InlineState) {
	startPos := state.cursor.Pos()
	c, _ := state.cursor.Byte()

	state.inline = nil
	if c < 128 {
		if p := e.dispatch.byFirstChar[c]; p != nil {
			state.cursor.Save()
			if p.Match(state) {
				state.cursor.Discard()
				e.attachInline(state)
				return
			}
			state.cursor.Restore()
		}
	}

	for _, p := range e.dispatch.regular {
		state.cursor.Save()
		if p.Match(state) {
			state.cursor.Discard()
			e.attachInline(state)
			return
		}
		state.cursor.Restore()
	}

	// Total failure: no parser, including the trailing literal handler,
	// matched. This should not happen with a well-formed parser list
	// (a literal parser should always consume at least one byte), but
	// guard against an infinite loop by forcing progress.
	if state.cursor.Pos() == startPos {
		state.cursor.Advance()
	}
}

// attachInline implements §4.4.2: a produced node is anchored under the
// deepest open container and enqueued if closable; a nil result means
// the parser mutated existing state and the engine must recompute a
// valid anchor for whatever comes next.
func (e *Engine) attachInline(state *InlineState) {
	n := state.inline
	if n == nil {
		anchor := deepestOpen(state.root)
		if last := anchor.LastChild(); last != nil && !last.container {
			state.inline = last
		} else {
			state.inline = anchor
		}
		return
	}
	if n.parent == nil {
		deepestOpen(state.root).appendChild(n)
	}
	if n.closable && !n.closed {
		state.Enqueue(n)
	}
}

// drainToClose runs §4.4.3: every closable inline enqueued during the
// scan gets its close hook invoked, in the order it was enqueued.
func (e *Engine) drainToClose(state *InlineState) {
	for _, in := range state.toClose {
		in.close()
	}
	state.toClose = nil
}
