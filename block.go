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

import "unsafe"

// Block is a node in the document's block tree. A Block is either a
// container, which holds an ordered sequence of child blocks, or a leaf,
// which owns a [LineGroup] of raw source lines and, after the inline phase
// has run, an [Inline] tree rooted at Inline().
//
// Block values are always reached through a pointer obtained from the
// [Document] tree or from a [BlockState] during parsing; the zero value is
// not meaningful on its own; nil Blocks behave like empty containers so that
// callers can walk a tree without nil-checking every step.
type Block struct {
	parser    BlockParser
	parent    *Block
	startLine int
	open      bool
	noInline  bool
	data      any

	// Exactly one of children or lines is set, fixing whether this Block
	// is a container or a leaf for its entire lifetime.
	children []*Block
	lines    *LineGroup
	inline   *Inline
}

// Parser returns the [BlockParser] that produced b, or nil for the
// document root, which has no governing parser.
func (b *Block) Parser() BlockParser {
	if b == nil {
		return nil
	}
	return b.parser
}

// Parent returns b's parent container, or nil if b is the document root
// or is not yet attached to a tree. The returned pointer is a relation,
// not an ownership edge: the tree owns children, never parents.
func (b *Block) Parent() *Block {
	if b == nil {
		return nil
	}
	return b.parent
}

// IsOpen reports whether b is still open for continuation. The document
// root is always open until [Engine.ParseLines] returns.
func (b *Block) IsOpen() bool {
	return b != nil && b.open
}

// IsContainer reports whether b holds child blocks rather than a
// [LineGroup]. A nil Block is treated as an (empty) container so that
// tree-walking code can query the document root uniformly.
func (b *Block) IsContainer() bool {
	return b == nil || b.lines == nil
}

// IsLeaf reports whether b owns a [LineGroup] of source lines.
func (b *Block) IsLeaf() bool {
	return b != nil && b.lines != nil
}

// StartLine returns the 0-based index of the source line on which b began,
// or -1 for a nil Block.
func (b *Block) StartLine() int {
	if b == nil {
		return -1
	}
	return b.startLine
}

// NoInline reports whether the inline phase should skip this leaf.
func (b *Block) NoInline() bool {
	return b != nil && b.noInline
}

// SetNoInline suppresses (or re-enables) phase two for a leaf block.
// BlockParser implementations call this for leaves whose content is never
// inline-parsed, such as code blocks.
func (b *Block) SetNoInline(v bool) {
	if b != nil {
		b.noInline = v
	}
}

// Data returns the kind-specific payload a [BlockParser] attached to b,
// or nil. Concrete parsers define their own payload type and use it, along
// with identity of [Block.Parser], to discriminate block kinds; the engine
// itself never inspects Data.
func (b *Block) Data() any {
	if b == nil {
		return nil
	}
	return b.data
}

// SetData replaces b's parser-specific payload. Parsers call this from
// continuation matches to update state they recorded at creation (for
// example, whether a list has become loose).
func (b *Block) SetData(v any) {
	if b != nil {
		b.data = v
	}
}

// Children returns b's child blocks. Calling Children on a leaf or a nil
// Block returns nil.
func (b *Block) Children() []*Block {
	if b == nil {
		return nil
	}
	return b.children
}

// ChildCount returns the number of child blocks b has. A leaf or a nil
// Block has none; a leaf's inline children are counted on its Inline root.
func (b *Block) ChildCount() int {
	if b == nil {
		return 0
	}
	return len(b.children)
}

// Child returns the i'th child block.
func (b *Block) Child(i int) Node {
	return b.children[i].AsNode()
}

// LastChild returns the last child block, or nil if b has none.
func (b *Block) LastChild() *Block {
	if b == nil || len(b.children) == 0 {
		return nil
	}
	return b.children[len(b.children)-1]
}

// Lines returns the [LineGroup] owned by a leaf block, or nil for a
// container or nil Block.
func (b *Block) Lines() *LineGroup {
	if b == nil {
		return nil
	}
	return b.lines
}

// Inline returns the root [ContainerInline] the inline phase attached to
// this leaf, or nil if the inline phase has not yet run (or NoInline is
// set).
func (b *Block) Inline() *Inline {
	if b == nil {
		return nil
	}
	return b.inline
}

// AsNode converts b to a [Node].
func (b *Block) AsNode() Node {
	if b == nil {
		return Node{}
	}
	return Node{typ: nodeTypeBlock, ptr: unsafe.Pointer(b)}
}

// appendChild attaches child as the last child of the container b,
// stamping its parent back-reference.
func (b *Block) appendChild(child *Block) {
	child.parent = b
	b.children = append(b.children, child)
}
