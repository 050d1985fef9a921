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
	"bytes"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/inlines"
)

func spanText(source []byte, in *blockdoc.Inline) []byte {
	sp := in.Span()
	if !sp.IsValid() {
		return nil
	}
	return source[sp.Start:sp.End]
}

func (r *Renderer) inline(dst []byte, source []byte, in *blockdoc.Inline) []byte {
	switch p := in.Parser(); {
	case p == inlines.Text, p == inlines.Escape:
		dst = escapeHTML(dst, spanText(source, in))
	case p == inlines.LineBreak:
		if in.Data().(*inlines.LineBreakData).Hard {
			dst = r.openVoidTag(dst, atom.Br)
			dst = append(dst, '\n')
		} else {
			dst = r.softBreak(dst)
		}
	case p == inlines.CodeSpan:
		dst = r.openTag(dst, atom.Code)
		dst = escapeHTML(dst, in.Data().(*inlines.CodeSpanData).Content)
		dst = r.closeTag(dst, atom.Code)
	case p == inlines.Angle:
		dst = r.autolinkOrRaw(dst, in)
	case p == inlines.LinkOpen:
		dst = r.linkOrImage(dst, source, in)
	case p == inlines.EmphasisMark:
		tag := atom.Em
		if in.Data().(*inlines.EmphasisData).Strong {
			tag = atom.Strong
		}
		dst = r.openTag(dst, tag)
		for _, c := range in.Children() {
			dst = r.inline(dst, source, c)
		}
		dst = r.closeTag(dst, tag)
	case p == inlines.Emphasis:
		if d, ok := in.Data().(*blockdoc.EmphasisDelimiter); ok && d.Count > 0 {
			dst = escapeHTML(dst, bytes.Repeat([]byte{d.Char}, d.Count))
		}
	default:
		// Any container the engine left unresolved (a bracket with no
		// matching delimiter) still carries its own source span and
		// children; fall back to rendering both literally.
		dst = escapeHTML(dst, spanText(source, in))
		for _, c := range in.Children() {
			dst = r.inline(dst, source, c)
		}
	}
	return dst
}

func (r *Renderer) softBreak(dst []byte) []byte {
	switch r.SoftBreakBehavior {
	case SoftBreakSpace:
		return append(dst, ' ')
	case SoftBreakHarden:
		dst = r.openVoidTag(dst, atom.Br)
		return append(dst, '\n')
	default:
		return append(dst, '\n')
	}
}

func (r *Renderer) autolinkOrRaw(dst []byte, in *blockdoc.Inline) []byte {
	switch data := in.Data().(type) {
	case *inlines.AutolinkData:
		dest := data.Destination
		if data.IsEmail {
			dest = "mailto:" + dest
		}
		dst = r.openTagAttr(dst, atom.A)
		dst = append(dst, ` href="`...)
		dst = append(dst, stdhtmlEscapeAttr(NormalizeURI(dest))...)
		dst = append(dst, `">`...)
		dst = escapeHTML(dst, []byte(data.Destination))
		dst = r.closeTag(dst, atom.A)
	case *inlines.RawHTMLData:
		if !r.IgnoreRaw {
			dst = r.appendFilteredRaw(dst, []byte(data.Text))
		}
	}
	return dst
}

func (r *Renderer) linkOrImage(dst []byte, source []byte, in *blockdoc.Inline) []byte {
	data := in.Data().(*inlines.LinkData)
	if !data.Matched {
		dst = escapeHTML(dst, spanText(source, in))
		for _, c := range in.Children() {
			dst = r.inline(dst, source, c)
		}
		return dst
	}

	href := NormalizeURI(data.Destination)
	if data.IsImage {
		dst = r.openTagAttr(dst, atom.Img)
		dst = append(dst, ` src="`...)
		dst = append(dst, stdhtmlEscapeAttr(href)...)
		dst = append(dst, `"`...)
		dst = appendAltText(dst, source, in)
		if data.TitlePresent {
			dst = append(dst, ` title="`...)
			dst = escapeHTML(dst, []byte(data.Title))
			dst = append(dst, `"`...)
		}
		dst = append(dst, " />"...)
		return dst
	}

	dst = r.openTagAttr(dst, atom.A)
	dst = append(dst, ` href="`...)
	dst = append(dst, stdhtmlEscapeAttr(href)...)
	dst = append(dst, `"`...)
	if data.TitlePresent {
		dst = append(dst, ` title="`...)
		dst = escapeHTML(dst, []byte(data.Title))
		dst = append(dst, `"`...)
	}
	dst = append(dst, '>')
	for _, c := range in.Children() {
		dst = r.inline(dst, source, c)
	}
	dst = r.closeTag(dst, atom.A)
	return dst
}

// appendAltText walks parent's children collecting the flattened plain
// text CommonMark uses for an image's alt attribute: literal text and
// code span content pass through, line breaks fold to a space, and
// every other node is descended into for its own text.
func appendAltText(dst []byte, source []byte, parent *blockdoc.Inline) []byte {
	dst = append(dst, ` alt="`...)
	dst = appendAltTextChildren(dst, source, parent)
	return append(dst, '"')
}

func appendAltTextChildren(dst []byte, source []byte, parent *blockdoc.Inline) []byte {
	for _, c := range parent.Children() {
		switch p := c.Parser(); {
		case p == inlines.Text, p == inlines.Escape:
			dst = escapeHTML(dst, spanText(source, c))
		case p == inlines.CodeSpan:
			dst = escapeHTML(dst, c.Data().(*inlines.CodeSpanData).Content)
		case p == inlines.LineBreak:
			dst = append(dst, ' ')
		default:
			dst = appendAltTextChildren(dst, source, c)
		}
	}
	return dst
}

// stdhtmlEscapeAttr escapes the handful of bytes unsafe inside a
// double-quoted attribute value; href/src values have already been
// percent-encoded by [NormalizeURI], so only the quote delimiter itself
// and '&' need handling here.
func stdhtmlEscapeAttr(s string) string {
	if !strings.ContainsAny(s, `&"`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			sb.WriteString("&amp;")
		case '"':
			sb.WriteString("&quot;")
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
