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

package html

import (
	stdhtml "html"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
)

// A Renderer converts a fully parsed [blockdoc.Block] tree into HTML.
//
// # Security considerations
//
// CommonMark permits raw HTML, which can introduce Cross-Site Scripting
// (XSS) vulnerabilities and HTML parse errors when used with untrusted
// input. Mitigations, in order of preference:
//
//   - Pass the resulting HTML through a sanitizer. Recommended whenever
//     the source is untrusted.
//   - Set IgnoreRaw to drop all raw HTML blocks and inline tags.
//   - Set FilterTag (see [FilterTagGFM]) to escape specific dangerous
//     tags while keeping the rest of the raw HTML.
type Renderer struct {
	// SoftBreakBehavior determines how soft line breaks are rendered.
	SoftBreakBehavior SoftBreakBehavior
	// IgnoreRaw drops HTML blocks and raw inline HTML entirely.
	IgnoreRaw bool
	// FilterTag reports whether an element with the given lowercased tag
	// name should have its leading angle bracket escaped instead of
	// passed through. A nil FilterTag disables filtering.
	FilterTag func(tag []byte) bool

	lowerBuf []byte
}

// SoftBreakBehavior controls how a [soft line break] is rendered.
//
// [soft line breaks]: https://spec.commonmark.org/0.30/#soft-line-breaks
type SoftBreakBehavior int

const (
	// SoftBreakPreserve renders a soft line break as a literal newline.
	SoftBreakPreserve SoftBreakBehavior = iota
	// SoftBreakSpace renders a soft line break as a single space.
	SoftBreakSpace
	// SoftBreakHarden renders a soft line break as a hard line break.
	SoftBreakHarden
)

// Render writes doc's rendered HTML to w.
func (r *Renderer) Render(w io.Writer, doc *blockdoc.Block) error {
	_, err := w.Write(r.AppendBlock(nil, doc))
	return err
}

// AppendBlock appends the rendered HTML of a fully parsed block tree to
// dst and returns the resulting slice. doc is typically a document root
// (a container block), but any block may be rendered standalone.
func (r *Renderer) AppendBlock(dst []byte, doc *blockdoc.Block) []byte {
	dst = r.block(dst, doc)
	return dst
}

func (r *Renderer) openTagAttr(dst []byte, name atom.Atom) []byte {
	start := len(dst)
	dst = append(dst, '<')
	dst = append(dst, name.String()...)
	if r.FilterTag != nil && r.FilterTag(dst[start+1:]) {
		dst = dst[:start]
		dst = append(dst, "&lt;"...)
		dst = append(dst, name.String()...)
	}
	return dst
}

func (r *Renderer) openTag(dst []byte, name atom.Atom) []byte {
	dst = r.openTagAttr(dst, name)
	return append(dst, '>')
}

// openVoidTag closes a tag with no content or matching end tag (hr, br, img)
// in the self-closing form CommonMark's reference HTML output uses.
func (r *Renderer) openVoidTag(dst []byte, name atom.Atom) []byte {
	dst = r.openTagAttr(dst, name)
	return append(dst, " />"...)
}

func (r *Renderer) closeTag(dst []byte, name atom.Atom) []byte {
	start := len(dst)
	dst = append(dst, "</"...)
	dst = append(dst, name.String()...)
	if r.FilterTag != nil && r.FilterTag(dst[start+1:]) {
		dst = dst[:start]
		dst = append(dst, "&lt;/"...)
		dst = append(dst, name.String()...)
	}
	return append(dst, '>')
}

func headingTag(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func (r *Renderer) block(dst []byte, b *blockdoc.Block) []byte {
	if b.IsContainer() {
		return r.children(dst, b, false)
	}

	switch p := b.Parser(); {
	case p == blocks.Paragraph:
		if sh, ok := b.Data().(*blocks.SetextHeadingData); ok {
			tag := headingTag(sh.Level)
			dst = r.openTag(dst, tag)
			dst = r.inlines(dst, b)
			dst = r.closeTag(dst, tag)
			return dst
		}
		dst = r.openTag(dst, atom.P)
		dst = r.inlines(dst, b)
		dst = r.closeTag(dst, atom.P)
	case p == blocks.ATXHeading:
		tag := headingTag(b.Data().(*blocks.ATXHeadingData).Level)
		dst = r.openTag(dst, tag)
		dst = r.inlines(dst, b)
		dst = r.closeTag(dst, tag)
	case p == blocks.ThematicBreak:
		dst = r.openVoidTag(dst, atom.Hr)
	case p == blocks.FencedCode, p == blocks.IndentedCode:
		dst = r.openTag(dst, atom.Pre)
		dst = r.openTagAttr(dst, atom.Code)
		if fc, ok := b.Data().(*blocks.FencedCodeData); ok && fc.Info != "" {
			if words := strings.Fields(fc.Info); len(words) > 0 {
				dst = append(dst, ` class="language-`...)
				dst = append(dst, stdhtml.EscapeString(words[0])...)
				dst = append(dst, `"`...)
			}
		}
		dst = append(dst, '>')
		dst = escapeHTML(dst, codeBlockText(b))
		dst = r.closeTag(dst, atom.Code)
		dst = r.closeTag(dst, atom.Pre)
	case p == blocks.BlockQuote:
		dst = r.openTag(dst, atom.Blockquote)
		dst = r.children(dst, b, false)
		dst = r.closeTag(dst, atom.Blockquote)
	case p == blocks.List:
		data := b.Data().(*blocks.ListData)
		var tag atom.Atom
		if data.Ordered {
			tag = atom.Ol
			dst = r.openTagAttr(dst, tag)
			if data.Start != 1 {
				dst = append(dst, ` start="`...)
				dst = strconv.AppendInt(dst, int64(data.Start), 10)
				dst = append(dst, `"`...)
			}
			dst = append(dst, '>')
		} else {
			tag = atom.Ul
			dst = r.openTag(dst, tag)
		}
		dst = r.children(dst, b, data.Tight)
		dst = r.closeTag(dst, tag)
	case p == blocks.ListItem:
		dst = r.openTag(dst, atom.Li)
		dst = r.children(dst, b, isTightParent(b))
		dst = r.closeTag(dst, atom.Li)
	case p == blocks.HTMLBlock:
		if !r.IgnoreRaw {
			dst = r.appendFilteredRaw(dst, codeBlockText(b))
		}
	case p == blocks.LinkReferenceDefinition:
		// No visible output: the definition was already extracted into
		// a [blockdoc.ReferenceMap] before rendering began.
	}
	return dst
}

// isTightParent reports whether item's enclosing list is tight, used
// when rendering a list item's own children.
func isTightParent(item *blockdoc.Block) bool {
	parent := item.Parent()
	if parent == nil || parent.Parser() != blocks.List {
		return false
	}
	data, _ := parent.Data().(*blocks.ListData)
	return data != nil && data.Tight
}

func codeBlockText(b *blockdoc.Block) []byte {
	lines := b.Lines()
	if lines == nil {
		return nil
	}
	text := lines.Text()
	out := make([]byte, len(text), len(text)+1)
	copy(out, text)
	return append(out, '\n')
}

func (r *Renderer) children(dst []byte, parent *blockdoc.Block, tight bool) []byte {
	for _, c := range parent.Children() {
		if tight && c.Parser() == blocks.Paragraph && c.Data() == nil {
			dst = r.inlines(dst, c)
			continue
		}
		dst = r.block(dst, c)
	}
	return dst
}

func (r *Renderer) inlines(dst []byte, leaf *blockdoc.Block) []byte {
	root := leaf.Inline()
	if root == nil {
		return dst
	}
	source := leaf.Lines().Text()
	for _, c := range root.Children() {
		dst = r.inline(dst, source, c)
	}
	return dst
}
