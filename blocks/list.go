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

package blocks

import "github.com/crazyants/blockdoc"

// ListData is the [blockdoc.Block.Data] payload [List] attaches to the
// container it produces.
type ListData struct {
	Ordered bool
	Delim   byte // '-', '+', '*', '.', or ')'
	Start   int  // first item's number, ordered lists only
	Tight   bool // computed by CloseBlock
}

type listParser struct{}

// List is the container a run of [ListItem]s shares. It never starts a
// block itself: [ListItem.Match] stages a List alongside itself the first
// time a marker starts a new run, and reuses the existing one for
// subsequent items of the same kind. In the continuation phase a List
// stays open for a blank line, a line indented into its last item, or a
// marker of its own kind, leaving the item to decide the rest.
var List blockdoc.BlockParser = listParser{}

func (listParser) CanInterruptParagraph() bool { return true }

func (listParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	list := state.Pending()
	data, _ := list.Data().(*ListData)
	item, _ := list.LastChild().Data().(*ListItemData)
	if data == nil || item == nil {
		return blockdoc.NoMatch
	}
	c := state.Cursor()
	if c.RestBlank() || c.Indent() >= item.width {
		return blockdoc.Continue
	}
	rest := c.Rest()
	if m, ok := parseListMarkerLine(rest[indentLength(rest):]); ok && c.Indent() <= 3 && sameListKind(data, m) {
		return blockdoc.Continue
	}
	return blockdoc.NoMatch
}

// CloseBlock computes the list's tightness: loose if any item saw a
// blank line while still accumulating content, tight otherwise. The
// number of block-level children an item holds is not consulted;
// CommonMark's "two block-level elements separated by a blank line" case
// collapses to the same blank-line signal here, approximated rather than
// tracked exactly.
func (listParser) CloseBlock(b *blockdoc.Block) {
	data, _ := b.Data().(*ListData)
	if data == nil {
		return
	}
	data.Tight = true
	for _, item := range b.Children() {
		id, _ := item.Data().(*ListItemData)
		if id != nil && id.sawBlank {
			data.Tight = false
			break
		}
	}
}

// ListItemData is the payload [ListItem] attaches to the containers it
// produces.
type ListItemData struct {
	width int // columns of marker+following space content is indented past

	sawBlank bool
}

type listItemParser struct{}

// ListItem recognizes a bullet ('-', '+', '*') or ordered ('N.' / 'N)')
// [list item] marker and the content indented relative to it. It stages
// a sibling [List] container the first time a marker of a new kind is
// seen; later items of the same kind nest directly under the existing
// List.
//
// [list item]: https://spec.commonmark.org/0.30/#list-items
var ListItem blockdoc.BlockParser = listItemParser{}

func (listItemParser) CanInterruptParagraph() bool { return true }

func (p listItemParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	c := state.Cursor()
	top := state.Pending()

	if top.Parser() == p {
		data := top.Data().(*ListItemData)
		if isBlankLine(c.Rest()) {
			data.sawBlank = true
			return blockdoc.Continue
		}
		if c.Indent() < data.width {
			return blockdoc.NoMatch
		}
		c.AdvanceIndent(data.width)
		return blockdoc.Continue
	}

	if c.Indent() > 3 {
		return blockdoc.NoMatch
	}
	indentBefore := c.Indent()
	c.AdvanceIndent(indentBefore)
	marker, ok := parseListMarkerLine(c.Rest())
	if !ok {
		return blockdoc.NoMatch
	}

	if top.Parser() == Paragraph {
		// An ordered list can only interrupt a paragraph when it starts
		// at 1; a bullet list interrupting a paragraph must not begin
		// with a blank line.
		if marker.isOrdered() && marker.n != 1 {
			return blockdoc.NoMatch
		}
		if isBlankLine(c.Rest()[marker.end:]) {
			return blockdoc.NoMatch
		}
	}

	c.AdvanceBytes(marker.end)
	spaces := 0
	for spaces < 4 {
		b, ok2 := c.Byte()
		if !ok2 || (b != ' ' && b != '\t') {
			break
		}
		c.Advance()
		spaces++
	}
	_, hasMore := c.Byte()
	width := indentBefore + marker.end + spaces
	if spaces == 0 && hasMore {
		return blockdoc.NoMatch
	}
	if !hasMore {
		width = indentBefore + marker.end + 1
	}

	list := top
	for list != nil && (list.Parser() != List || !list.IsOpen()) {
		list = list.Parent()
	}
	sameList := list != nil && !list.LastChild().IsOpen() && sameListKind(list.Data().(*ListData), marker)
	if !sameList {
		state.OpenContainer(List, &ListData{
			Ordered: marker.isOrdered(),
			Delim:   marker.delim,
			Start:   marker.n,
		})
	}
	state.OpenContainer(p, &ListItemData{width: width})
	return blockdoc.Continue
}

func sameListKind(d *ListData, m listMarker) bool {
	if d.Ordered != m.isOrdered() {
		return false
	}
	if !d.Ordered {
		return true // any bullet char may differ in CommonMark-strict mode; kept permissive here
	}
	return d.Delim == m.delim
}

type listMarker struct {
	delim byte // one of '-', '+', '*', '.', or ')'
	n     int
	end   int // byte length of the marker, cursor-relative
}

func (m listMarker) isOrdered() bool {
	return m.delim == '.' || m.delim == ')'
}

// parseListMarkerLine attempts to parse a list marker at the start of
// line.
func parseListMarkerLine(line []byte) (listMarker, bool) {
	if len(line) == 0 {
		return listMarker{}, false
	}
	var n int
	switch c := line[0]; {
	case c == '-' || c == '+' || c == '*':
		if !hasTabOrSpacePrefixOrEOL(line[1:]) {
			return listMarker{}, false
		}
		return listMarker{delim: line[0], end: 1}, true
	case isASCIIDigit(c):
		n = int(c - '0')
	default:
		return listMarker{}, false
	}
	const maxDigits = 9
	for i := 1; i < maxDigits+1 && i < len(line); i++ {
		switch c := line[i]; {
		case isASCIIDigit(c):
			n = n*10 + int(c-'0')
		case c == '.' || c == ')':
			if !hasTabOrSpacePrefixOrEOL(line[i+1:]) {
				return listMarker{}, false
			}
			return listMarker{delim: c, n: n, end: i + 1}, true
		default:
			return listMarker{}, false
		}
	}
	return listMarker{}, false
}
