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

package inlines

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/crazyants/blockdoc"
)

// LinkData is the payload a bracket container carries once [LinkClose]
// has inspected it. Matched is false for a bracket that never resolved
// to a link or image -- either because nothing valid followed its ']',
// or because the leaf ended before any ']' arrived -- in which case a
// renderer should emit the bracket's own text (including its children)
// literally instead of wrapping it.
type LinkData struct {
	IsImage      bool
	Matched      bool
	Destination  string
	Title        string
	TitlePresent bool

	// contentStart is the byte offset, into the leaf's joined text,
	// immediately after the opening '[' or '![', used to recover the raw
	// bracket text for shortcut/collapsed reference lookups.
	contentStart int
}

type linkOpenParser struct{}

// LinkOpen recognizes '[' or '![' as the start of a link or image's text
// span, opening a closable container that stays open (accumulating
// whatever inline content the scan produces inside it, same as any other
// container) until [LinkClose] either resolves it or the leaf ends.
//
// CommonMark also requires that a successfully matched link deactivate
// every '[' opener still open outside it, so that a link's own text
// cannot itself contain another link. This implementation does not track
// that deactivation; a pathological nested-bracket document can end up
// with a link nested inside another link's span where the reference
// implementation would produce literal brackets.
var LinkOpen blockdoc.InlineParser = linkOpenParser{}

func (linkOpenParser) FirstChars() []byte { return []byte{'[', '!'} }

func (p linkOpenParser) Match(state *blockdoc.InlineState) bool {
	c := state.Cursor()
	start := c.Pos()
	b, _ := c.Byte()

	isImage := false
	if b == '!' {
		nb, ok := c.ByteAt(1)
		if !ok || nb != '[' {
			return false
		}
		isImage = true
		c.AdvanceBytes(2)
	} else {
		c.Advance()
	}

	n := state.NewContainer(p, blockdoc.Span{Start: start, End: c.Pos()}, true, &LinkData{
		IsImage:      isImage,
		contentStart: c.Pos(),
	})
	state.SetInline(n)
	return true
}

type linkCloseParser struct{}

// LinkClose recognizes ']' as the potential end of the nearest still-open
// [LinkOpen] bracket, trying in turn an inline destination "(dest
// \"title\")", a full reference "[label]", a collapsed reference "[]",
// and finally the shortcut reference (the bracket's own text as the
// label). The first one that resolves against [blockdoc.InlineState.References]
// wins; if none do, the bracket is left open exactly as [LinkOpen] made
// it, to be rendered as literal text once the leaf ends unresolved.
var LinkClose blockdoc.InlineParser = linkCloseParser{}

func (linkCloseParser) FirstChars() []byte { return []byte{']'} }

func (p linkCloseParser) Match(state *blockdoc.InlineState) bool {
	opener := findNearestOpenBracket(state.Root())
	if opener == nil {
		return false
	}
	c := state.Cursor()
	closeBracketPos := c.Pos()
	data := opener.Data().(*LinkData)
	text := state.Group().Text()[data.contentStart:closeBracketPos]

	c.Advance() // ']'

	if dest, title, present, ok := tryInlineTail(c, state.Group().Text()); ok {
		data.Destination, data.Title, data.TitlePresent = dest, title, present
		data.Matched = true
		state.Close(opener)
		state.SetInline(nil)
		return true
	}
	if def, ok := tryReferenceTail(c, state.Group().Text(), text, state.References()); ok {
		data.Destination, data.Title, data.TitlePresent = def.Destination, def.Title, def.TitlePresent
		data.Matched = true
		state.Close(opener)
		state.SetInline(nil)
		return true
	}
	if def, ok := resolveLabel(state.References(), text); ok {
		data.Destination, data.Title, data.TitlePresent = def.Destination, def.Title, def.TitlePresent
		data.Matched = true
		state.Close(opener)
		state.SetInline(nil)
		return true
	}

	return false
}

// findNearestOpenBracket walks the chain of open containers from root,
// the same chain the engine's attach step descends to find an insertion
// point, and returns the deepest one still carrying unresolved
// [LinkData] -- the innermost, most-recently-opened bracket.
func findNearestOpenBracket(root *blockdoc.Inline) *blockdoc.Inline {
	cur := root
	var found *blockdoc.Inline
	for {
		if d, ok := cur.Data().(*LinkData); ok && !d.Matched {
			found = cur
		}
		last := cur.LastChild()
		if last == nil || !last.IsContainer() || last.IsClosed() {
			break
		}
		cur = last
	}
	return found
}

// tryInlineTail parses "(" [whitespace] destination [whitespace title]
// [whitespace] ")" starting at c's current position, restoring c on
// failure.
func tryInlineTail(c *blockdoc.LineGroupCursor, text []byte) (dest, title string, titlePresent bool, ok bool) {
	c.Save()
	if b, ok2 := c.Byte(); !ok2 || b != '(' {
		c.Restore()
		return "", "", false, false
	}
	c.Advance()
	skipInlineSpace(c)

	dest, ok = parseLinkDestination(c, text)
	if !ok {
		c.Restore()
		return "", "", false, false
	}

	hadSpace := skipInlineSpace(c)
	if b, ok2 := c.Byte(); ok2 && b != ')' && hadSpace {
		title, titlePresent, ok = parseLinkTitle(c, text)
		if !ok {
			c.Restore()
			return "", "", false, false
		}
		skipInlineSpace(c)
	}

	if b, ok2 := c.Byte(); !ok2 || b != ')' {
		c.Restore()
		return "", "", false, false
	}
	c.Advance()
	c.Discard()
	return dest, title, titlePresent, true
}

func skipInlineSpace(c *blockdoc.LineGroupCursor) bool {
	moved := false
	for {
		b, ok := c.Byte()
		if !ok || (b != ' ' && b != '\t' && b != '\n') {
			return moved
		}
		c.Advance()
		moved = true
	}
}

// parseLinkDestination accepts either a "<...>" pointy-bracket form or a
// bare run of non-space, non-control bytes with balanced parentheses.
func parseLinkDestination(c *blockdoc.LineGroupCursor, text []byte) (string, bool) {
	b, ok := c.Byte()
	if !ok {
		return "", false
	}
	if b == '<' {
		start := c.Pos() + 1
		c.Advance()
		for {
			b, ok := c.Byte()
			if !ok || b == '\n' {
				return "", false
			}
			if b == '>' {
				dest := string(text[start:c.Pos()])
				c.Advance()
				return dest, true
			}
			if b == '<' {
				return "", false
			}
			c.Advance()
		}
	}

	start := c.Pos()
	depth := 0
	for {
		b, ok := c.Byte()
		if !ok || b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			break
		}
		switch {
		case b == '\\':
			c.Advance()
			if _, ok := c.Byte(); ok {
				c.Advance()
			}
			continue
		case b == '(':
			depth++
		case b == ')':
			if depth == 0 {
				// An unmatched close paren ends a bare destination
				// without being consumed by it.
				return string(text[start:c.Pos()]), c.Pos() > start
			}
			depth--
		}
		c.Advance()
	}
	if c.Pos() == start || depth != 0 {
		return "", false
	}
	return string(text[start:c.Pos()]), true
}

// parseLinkTitle accepts a '"..."', '\'...\'', or '(...)' delimited
// title, with backslash-escaped delimiters inside.
func parseLinkTitle(c *blockdoc.LineGroupCursor, text []byte) (string, bool, bool) {
	open, ok := c.Byte()
	if !ok || (open != '"' && open != '\'' && open != '(') {
		return "", false, false
	}
	closeDelim := open
	if open == '(' {
		closeDelim = ')'
	}
	c.Advance()
	start := c.Pos()
	for {
		b, ok := c.Byte()
		if !ok {
			return "", false, false
		}
		if b == '\\' {
			c.Advance()
			if _, ok := c.Byte(); ok {
				c.Advance()
			}
			continue
		}
		if b == closeDelim {
			title := string(text[start:c.Pos()])
			c.Advance()
			return title, true, true
		}
		c.Advance()
	}
}

// tryReferenceTail parses "[label]" immediately following the first
// ']'. An empty label is the collapsed reference form "[]", resolved
// against bracketText (the already-parsed text of the link's own
// brackets) rather than against itself. Either way, the bytes are only
// consumed if the label actually resolves; a non-resolving "[label]" or
// "[]" is left for the caller's shortcut fallback, matching CommonMark's
// rule that a failed reference tail doesn't commit to consuming it.
func tryReferenceTail(c *blockdoc.LineGroupCursor, text, bracketText []byte, refs blockdoc.ReferenceMatcher) (blockdoc.LinkDefinition, bool) {
	c.Save()
	if b, ok := c.Byte(); !ok || b != '[' {
		c.Restore()
		return blockdoc.LinkDefinition{}, false
	}
	c.Advance()
	start := c.Pos()
	for {
		b, ok := c.Byte()
		if !ok || b == '\n' {
			c.Restore()
			return blockdoc.LinkDefinition{}, false
		}
		if b == ']' {
			break
		}
		if b == '[' {
			c.Restore()
			return blockdoc.LinkDefinition{}, false
		}
		c.Advance()
	}
	label := text[start:c.Pos()]
	if len(label) == 0 {
		label = bracketText
	}

	def, ok := resolveLabel(refs, label)
	if !ok {
		c.Restore()
		return blockdoc.LinkDefinition{}, false
	}
	c.Advance() // ']'
	c.Discard()
	return def, true
}

// resolveLabel normalizes label and looks it up against refs, which must
// additionally implement a Resolve method -- [blockdoc.ReferenceMap]
// does -- since [blockdoc.ReferenceMatcher] itself only promises a
// yes/no match.
func resolveLabel(refs blockdoc.ReferenceMatcher, label []byte) (blockdoc.LinkDefinition, bool) {
	resolver, ok := refs.(interface {
		Resolve(string) (blockdoc.LinkDefinition, bool)
	})
	if !ok {
		return blockdoc.LinkDefinition{}, false
	}
	return resolver.Resolve(normalizeLabel(string(label)))
}

// normalizeLabel case-folds and collapses internal whitespace, matching
// the normalization [blocks.LinkReferenceDefinition] applies to defined
// labels so the two sides compare equal.
func normalizeLabel(label string) string {
	return labelFold.String(strings.Join(strings.Fields(label), " "))
}

var labelFold = cases.Fold()
