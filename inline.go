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

// Inline is a node in a leaf block's inline tree. Like [Block], an Inline
// is either a container, grouping other inlines (emphasis, a link's text),
// or a leaf (literal text, a code span, an autolink, a hard break).
//
// A container Inline additionally tracks whether it is closable: a span
// that was opened speculatively (e.g. on seeing a '[') and must be
// closed, either explicitly by a later matching delimiter or implicitly
// at the end of the leaf's lines.
type Inline struct {
	parser     InlineParser
	parent     *Inline
	container  bool
	closable   bool
	closed     bool
	span       Span
	data       any
	children   []*Inline
}

// Parser returns the [InlineParser] that produced in, or nil for the
// synthetic root container created at the start of the inline phase.
func (in *Inline) Parser() InlineParser {
	if in == nil {
		return nil
	}
	return in.parser
}

// Parent returns in's parent container, or nil for the root or a
// not-yet-attached node.
func (in *Inline) Parent() *Inline {
	if in == nil {
		return nil
	}
	return in.parent
}

// IsContainer reports whether in groups other inlines.
func (in *Inline) IsContainer() bool {
	return in != nil && in.container
}

// IsClosable reports whether in is a container awaiting closure.
func (in *Inline) IsClosable() bool {
	return in != nil && in.closable
}

// IsClosed reports whether a closable in has been closed.
func (in *Inline) IsClosed() bool {
	return in == nil || in.closed
}

// Span returns the byte range in occupies within its leaf's [LineGroup]
// text, or [NullSpan] if unset.
func (in *Inline) Span() Span {
	if in == nil {
		return NullSpan()
	}
	return in.span
}

// Data returns the kind-specific payload an [InlineParser] attached to in.
func (in *Inline) Data() any {
	if in == nil {
		return nil
	}
	return in.data
}

// SetData replaces in's payload.
func (in *Inline) SetData(v any) {
	if in != nil {
		in.data = v
	}
}

// Children returns in's child inlines, or nil for a leaf.
func (in *Inline) Children() []*Inline {
	if in == nil {
		return nil
	}
	return in.children
}

// ChildCount returns the number of children in has.
func (in *Inline) ChildCount() int {
	if in == nil {
		return 0
	}
	return len(in.children)
}

// Child returns the i'th child of in.
func (in *Inline) Child(i int) *Inline {
	return in.children[i]
}

// LastChild returns the last child of in, or nil if it has none.
func (in *Inline) LastChild() *Inline {
	if in == nil || len(in.children) == 0 {
		return nil
	}
	return in.children[len(in.children)-1]
}

// NewEmphasisNode creates a detached container Inline, for use as the
// node an [EmphasisDelimiter]'s MakeSingle/MakeDouble callback returns.
// Emphasis resolution runs once per leaf after the per-byte scan
// completes, with no [InlineState] in scope to call NewContainer on, so
// this is a narrow, state-free alternative restricted to that one
// caller. The engine fills in Span, Children, and parent links itself
// once the callback returns.
func NewEmphasisNode(parser InlineParser, data any) *Inline {
	return &Inline{parser: parser, container: true, data: data}
}

// AsNode converts in to a [Node].
func (in *Inline) AsNode() Node {
	if in == nil {
		return Node{}
	}
	return Node{typ: nodeTypeInline, ptr: unsafe.Pointer(in)}
}

// close runs the parser's close hook, if any, and marks in closed.
func (in *Inline) close() {
	if in == nil || in.closed {
		return
	}
	in.closed = true
	if closer, ok := in.parser.(InlineCloser); ok {
		closer.CloseInline(in)
	}
}

// appendChild attaches child as the last child of the container in.
func (in *Inline) appendChild(child *Inline) {
	child.parent = in
	in.children = append(in.children, child)
}

// deepestOpen descends through last children while they are open
// closable containers (or the root, which is always a valid anchor),
// returning the container new inlines should be attached to.
func deepestOpen(root *Inline) *Inline {
	cur := root
	for {
		last := cur.LastChild()
		if last == nil || !last.container || last.closed {
			return cur
		}
		cur = last
	}
}
