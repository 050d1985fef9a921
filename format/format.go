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

// Package format writes a parsed [blockdoc.Block] tree back out as
// CommonMark text equivalent to (though not necessarily byte-identical
// to) the document it was parsed from.
package format

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
	"github.com/crazyants/blockdoc/render/html"
)

// Format writes doc as CommonMark source to w. doc must already have had
// its inline phase run (see [blockdoc.Engine.ProcessInlines]) for its
// leaves to format correctly.
func Format(w io.Writer, doc *blockdoc.Block) error {
	ww := &errWriter{w: w}
	wroteAny := false
	for _, c := range doc.Children() {
		wroteAny = formatBlock(ww, c, wroteAny)
	}
	return ww.err
}

// formatBlock writes b (and, for containers, its descendants) to w,
// returning whether anything has now been written to w at all -- used
// to decide whether a blank line needs to precede the next block.
//
// Blocks nested under a list item or blockquote are formatted into a
// scratch buffer and reindented as a whole (see [formatQuotedBlock] and
// [writeListItem]) rather than having every one of formatBlock's own
// line-emitting helpers carry an indent column through recursively.
func formatBlock(w *errWriter, b *blockdoc.Block, wroteAny bool) bool {
	switch p := b.Parser(); {
	case p == blocks.Paragraph:
		if sh, ok := b.Data().(*blocks.SetextHeadingData); ok {
			if wroteAny {
				w.WriteString("\n")
			}
			writeHeadingMarker(w, sh.Level)
			formatInlines(w, b)
			return true
		}
		if wroteAny {
			w.WriteString("\n")
		}
		formatInlines(w, b)
	case p == blocks.ATXHeading:
		if wroteAny {
			w.WriteString("\n")
		}
		writeHeadingMarker(w, b.Data().(*blocks.ATXHeadingData).Level)
		formatInlines(w, b)
	case p == blocks.ThematicBreak:
		if wroteAny {
			w.WriteString("\n")
		}
		w.WriteString("---\n")
	case p == blocks.FencedCode:
		if wroteAny {
			w.WriteString("\n")
		}
		fc := b.Data().(*blocks.FencedCodeData)
		w.WriteString("```")
		w.WriteString(fc.Info)
		w.WriteString("\n")
		w.Write(leafText(b))
		w.WriteString("```\n")
	case p == blocks.IndentedCode:
		if wroteAny {
			w.WriteString("\n")
		}
		writeIndentedCode(w, leafText(b))
	case p == blocks.HTMLBlock:
		if wroteAny {
			w.WriteString("\n")
		}
		t := leafText(b)
		w.Write(t)
		if len(t) == 0 || t[len(t)-1] != '\n' {
			w.WriteString("\n")
		}
	case p == blocks.BlockQuote:
		if wroteAny {
			w.WriteString("\n")
		}
		quoted := false
		for _, c := range b.Children() {
			quoted = formatQuotedBlock(w, c, quoted)
		}
	case p == blocks.List:
		data := b.Data().(*blocks.ListData)
		any := false
		for i, item := range b.Children() {
			if any && !data.Tight {
				w.WriteString("\n")
			}
			any = true
			writeListItem(w, item, data, i)
		}
	case p == blocks.LinkReferenceDefinition:
		if wroteAny {
			w.WriteString("\n")
		}
		d := b.Data().(*blocks.LinkReferenceData)
		w.WriteString("[")
		w.WriteString(d.ReferenceLabel())
		w.WriteString("]: ")
		w.WriteString(d.ReferenceDestination())
		if title, ok := d.ReferenceTitle(); ok {
			w.WriteString(` "`)
			w.WriteString(title)
			w.WriteString(`"`)
		}
		w.WriteString("\n")
	default:
		w.err = fmt.Errorf("format blockdoc: unhandled block parser %T", p)
		return wroteAny
	}
	return true
}

func writeHeadingMarker(w *errWriter, level int) {
	for i := 0; i < level; i++ {
		w.WriteString("#")
	}
	w.WriteString(" ")
}

// formatQuotedBlock writes c prefixed with "> " on every line it
// produces, by formatting it into a scratch buffer first -- simpler
// than threading a line-prefix writer through every block case, at the
// cost of one extra buffer per blockquote child.
func formatQuotedBlock(w *errWriter, c *blockdoc.Block, wroteAny bool) bool {
	var buf bytes.Buffer
	inner := &errWriter{w: &buf}
	result := formatBlock(inner, c, wroteAny)
	if inner.err != nil {
		w.err = inner.err
		return result
	}
	lines := bytes.SplitAfter(buf.Bytes(), []byte("\n"))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		w.WriteString("> ")
		w.Write(line)
	}
	return result
}

func writeListItem(w *errWriter, item *blockdoc.Block, list *blocks.ListData, index int) {
	marker := listMarker(list, index)
	w.WriteString(marker)

	children := item.Children()
	if list.Tight && len(children) == 1 && children[0].Parser() == blocks.Paragraph {
		if _, ok := children[0].Data().(*blocks.SetextHeadingData); !ok {
			formatInlines(w, children[0])
			return
		}
	}
	w.WriteString("\n")
	prefix := strings.Repeat(" ", len(marker))
	for i, c := range children {
		var buf bytes.Buffer
		inner := &errWriter{w: &buf}
		formatBlock(inner, c, i > 0)
		if inner.err != nil {
			w.err = inner.err
			return
		}
		for _, line := range bytes.SplitAfter(buf.Bytes(), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			w.WriteString(prefix)
			w.Write(line)
		}
	}
}

func listMarker(list *blocks.ListData, index int) string {
	if list.Ordered {
		return strconv.Itoa(list.Start+index) + string(list.Delim) + " "
	}
	return string(list.Delim) + " "
}

func leafText(b *blockdoc.Block) []byte {
	lines := b.Lines()
	if lines == nil {
		return nil
	}
	return lines.Text()
}

func writeIndentedCode(w *errWriter, text []byte) {
	lines := bytes.SplitAfter(text, []byte("\n"))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		w.WriteString("    ")
		w.Write(line)
	}
}

// formatInlines writes leaf's inline content as CommonMark source,
// reconstructing syntax (emphasis markers, link brackets, code span
// backticks) around nodes the inline phase resolved rather than
// replaying their original byte spans, since those nodes' spans cover
// only the delimiters, not the syntax the renderer needs to regenerate.
func formatInlines(w *errWriter, leaf *blockdoc.Block) {
	root := leaf.Inline()
	if root != nil {
		source := leaf.Lines().Text()
		for _, c := range root.Children() {
			formatInline(w, source, c)
		}
	}
	w.WriteString("\n")
}

func formatInline(w *errWriter, source []byte, in *blockdoc.Inline) {
	switch p := in.Parser(); {
	case p == inlines.Text:
		w.Write(spanText(source, in))
	case p == inlines.Escape:
		w.WriteString("\\")
		w.Write(spanText(source, in))
	case p == inlines.LineBreak:
		if in.Data().(*inlines.LineBreakData).Hard {
			w.WriteString("\\\n")
		} else {
			w.WriteString("\n")
		}
	case p == inlines.CodeSpan:
		content := in.Data().(*inlines.CodeSpanData).Content
		fence := codeSpanFence(content)
		w.WriteString(fence)
		w.Write(content)
		w.WriteString(fence)
	case p == inlines.Angle:
		formatAngle(w, in)
	case p == inlines.EmphasisMark:
		marker := "*"
		if data := in.Data().(*inlines.EmphasisData); data.Strong {
			marker = "**"
		}
		w.WriteString(marker)
		for _, c := range in.Children() {
			formatInline(w, source, c)
		}
		w.WriteString(marker)
	case p == inlines.Emphasis:
		if d, ok := in.Data().(*blockdoc.EmphasisDelimiter); ok && d.Count > 0 {
			w.Write(bytes.Repeat([]byte{d.Char}, d.Count))
		}
	case p == inlines.LinkOpen:
		formatLinkOrImage(w, source, in)
	default:
		w.Write(spanText(source, in))
		for _, c := range in.Children() {
			formatInline(w, source, c)
		}
	}
}

func spanText(source []byte, in *blockdoc.Inline) []byte {
	sp := in.Span()
	if !sp.IsValid() {
		return nil
	}
	return source[sp.Start:sp.End]
}

// codeSpanFence picks a backtick run one longer than the longest run
// already inside content, so re-delimiting the span can't be confused
// with its own content.
func codeSpanFence(content []byte) string {
	longest, run := 0, 0
	for _, b := range content {
		if b == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return string(bytes.Repeat([]byte{'`'}, longest+1))
}

func formatAngle(w *errWriter, in *blockdoc.Inline) {
	switch data := in.Data().(type) {
	case *inlines.AutolinkData:
		w.WriteString("<")
		w.WriteString(data.Destination)
		w.WriteString(">")
	case *inlines.RawHTMLData:
		w.WriteString(data.Text)
	}
}

// formatLinkOrImage re-emits a resolved link or image as the inline
// form "[text](dest \"title\")"; [inlines.LinkData] doesn't preserve
// which of CommonMark's four syntaxes (inline, full/collapsed/shortcut
// reference) produced the match, so every resolved link or image is
// normalized to the inline form on format, the same way
// [html.NormalizeURI]-driven rendering never attempts to recover a
// reference form either. An unmatched bracket is re-emitted literally.
func formatLinkOrImage(w *errWriter, source []byte, in *blockdoc.Inline) {
	data := in.Data().(*inlines.LinkData)
	if !data.Matched {
		w.Write(spanText(source, in))
		for _, c := range in.Children() {
			formatInline(w, source, c)
		}
		return
	}

	if data.IsImage {
		w.WriteString("![")
	} else {
		w.WriteString("[")
	}
	for _, c := range in.Children() {
		formatInline(w, source, c)
	}
	w.WriteString("](")
	w.WriteString(html.NormalizeURI(data.Destination))
	if data.TitlePresent {
		w.WriteString(` "`)
		w.WriteString(data.Title)
		w.WriteString(`"`)
	}
	w.WriteString(")")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
