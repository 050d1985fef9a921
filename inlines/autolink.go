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

import "github.com/crazyants/blockdoc"

// AutolinkData is the payload [Angle] attaches to an autolink leaf.
type AutolinkData struct {
	Destination string
	IsEmail     bool
}

// RawHTMLData is the payload [Angle] attaches to a raw inline HTML leaf.
type RawHTMLData struct {
	Text string
}

type angleParser struct{}

// Angle is the combined recognizer for everything CommonMark starts with
// an unescaped '<': an absolute-URI or email [autolink], or, failing
// that, a raw inline HTML tag. Both productions share the same first
// character, and an [blockdoc.InlineParser] may only claim one entry in
// the dispatch table, so one parser tries autolink grammar first and
// falls back to a simplified HTML tag grammar rather than two competing
// for '<'. A tag that matches neither production is left for [Text] to
// consume the '<' literally.
//
// [autolink]: https://spec.commonmark.org/0.30/#autolinks
var Angle blockdoc.InlineParser = angleParser{}

func (angleParser) FirstChars() []byte { return []byte{'<'} }

func (p angleParser) Match(state *blockdoc.InlineState) bool {
	if n, ok := tryAutolink(p, state); ok {
		state.SetInline(n)
		return true
	}
	if n, ok := tryRawHTMLTag(p, state); ok {
		state.SetInline(n)
		return true
	}
	return false
}

func tryAutolink(p angleParser, state *blockdoc.InlineState) (*blockdoc.Inline, bool) {
	c := state.Cursor()
	start := c.Pos()
	c.Save()
	c.Advance() // '<'

	bodyStart := c.Pos()
	for {
		b, ok := c.Byte()
		if !ok || b == '>' || b == ' ' || b == '\n' || b == '<' {
			break
		}
		c.Advance()
	}
	b, ok := c.Byte()
	body := state.Group().Text()[bodyStart:c.Pos()]
	if !ok || b != '>' || len(body) == 0 {
		c.Restore()
		return nil, false
	}

	var data *AutolinkData
	if isEmailAddress(body) {
		data = &AutolinkData{Destination: string(body), IsEmail: true}
	} else if uri, ok := parseAbsoluteURI(body); ok {
		data = &AutolinkData{Destination: uri}
	} else {
		c.Restore()
		return nil, false
	}
	c.Advance() // '>'
	c.Discard()
	return state.NewLeaf(p, blockdoc.Span{Start: start, End: c.Pos()}, data), true
}

// parseAbsoluteURI checks body against CommonMark's autolink URI
// grammar: scheme, ":", then any run of non-space, non-control,
// non-'<'/'>' bytes.
func parseAbsoluteURI(body []byte) (string, bool) {
	i := 0
	if i >= len(body) || !isASCIILetter(body[i]) {
		return "", false
	}
	i++
	for i < len(body) && (isASCIILetter(body[i]) || isASCIIDigit(body[i]) || body[i] == '+' || body[i] == '-' || body[i] == '.') {
		i++
	}
	const minSchemeLen, maxSchemeLen = 2, 32
	if i < minSchemeLen || i > maxSchemeLen || i >= len(body) || body[i] != ':' {
		return "", false
	}
	for _, b := range body {
		if b <= ' ' || b == '<' || b == '>' {
			return "", false
		}
	}
	return string(body), true
}

func isEmailAddress(body []byte) bool {
	at := -1
	for i, b := range body {
		if b == '@' {
			at = i
			break
		}
	}
	if at <= 0 || at == len(body)-1 {
		return false
	}
	local, domain := body[:at], body[at+1:]
	for _, b := range local {
		if b <= ' ' || b == '<' || b == '>' {
			return false
		}
	}
	return isEmailDomain(domain)
}

// isEmailDomain reports whether domain is a dot-separated run of
// label(-hyphen-label)* segments, approximating the autolink spec's
// domain grammar.
func isEmailDomain(domain []byte) bool {
	labels := splitBytes(domain, '.')
	if len(labels) == 0 {
		return false
	}
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if !isASCIILetterOrDigit(label[0]) || !isASCIILetterOrDigit(label[len(label)-1]) {
			return false
		}
		for _, b := range label {
			if !isASCIILetterOrDigit(b) && b != '-' {
				return false
			}
		}
	}
	return true
}

func splitBytes(b []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == sep {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}

func isASCIILetter(b byte) bool      { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isASCIIDigit(b byte) bool       { return b >= '0' && b <= '9' }
func isASCIILetterOrDigit(b byte) bool { return isASCIILetter(b) || isASCIIDigit(b) }

// tryRawHTMLTag recognizes a single open tag, closing tag, comment, or
// processing instruction, per a simplified version of CommonMark's raw
// HTML tag grammar: it does not validate attribute value quoting rules
// or comment/CDATA content restrictions as strictly as the full spec.
func tryRawHTMLTag(p angleParser, state *blockdoc.InlineState) (*blockdoc.Inline, bool) {
	c := state.Cursor()
	start := c.Pos()
	c.Save()
	c.Advance() // '<'

	if b, ok := c.Byte(); ok && b == '!' {
		if ok := tryHTMLDeclLike(c); ok {
			c.Discard()
			return state.NewLeaf(p, blockdoc.Span{Start: start, End: c.Pos()}, &RawHTMLData{
				Text: string(state.Group().Text()[start:c.Pos()]),
			}), true
		}
		c.Restore()
		return nil, false
	}
	if b, ok := c.Byte(); ok && b == '?' {
		for {
			if b, ok := c.Byte(); !ok {
				c.Restore()
				return nil, false
			} else if b == '?' {
				if nb, ok := c.ByteAt(1); ok && nb == '>' {
					c.AdvanceBytes(2)
					break
				}
			}
			c.Advance()
		}
		c.Discard()
		return state.NewLeaf(p, blockdoc.Span{Start: start, End: c.Pos()}, &RawHTMLData{
			Text: string(state.Group().Text()[start:c.Pos()]),
		}), true
	}

	closing := false
	if b, ok := c.Byte(); ok && b == '/' {
		closing = true
		c.Advance()
	}
	nameStart := c.Pos()
	for {
		b, ok := c.Byte()
		if !ok || !(isASCIILetterOrDigit(b) || b == '-') {
			break
		}
		c.Advance()
	}
	if c.Pos() == nameStart {
		c.Restore()
		return nil, false
	}
	if !closing {
		for {
			for {
				b, ok := c.Byte()
				if !ok || (b != ' ' && b != '\t' && b != '\n') {
					break
				}
				c.Advance()
			}
			b, ok := c.Byte()
			if !ok {
				c.Restore()
				return nil, false
			}
			if b == '/' || b == '>' {
				break
			}
			if !isASCIILetter(b) && b != '_' && b != ':' {
				c.Restore()
				return nil, false
			}
			for {
				b, ok := c.Byte()
				if !ok || !(isASCIILetterOrDigit(b) || b == '-' || b == '_' || b == '.' || b == ':') {
					break
				}
				c.Advance()
			}
			for {
				b, ok := c.Byte()
				if !ok || (b != ' ' && b != '\t' && b != '\n') {
					break
				}
				c.Advance()
			}
			if b, ok := c.Byte(); ok && b == '=' {
				c.Advance()
				for {
					b, ok := c.Byte()
					if !ok || (b != ' ' && b != '\t' && b != '\n') {
						break
					}
					c.Advance()
				}
				b, ok := c.Byte()
				if !ok {
					c.Restore()
					return nil, false
				}
				if b == '"' || b == '\'' {
					quote := b
					c.Advance()
					for {
						b, ok := c.Byte()
						if !ok {
							c.Restore()
							return nil, false
						}
						c.Advance()
						if b == quote {
							break
						}
					}
				} else {
					for {
						b, ok := c.Byte()
						if !ok || b == ' ' || b == '\t' || b == '\n' || b == '>' {
							break
						}
						c.Advance()
					}
				}
			}
		}
	}
	for {
		b, ok := c.Byte()
		if !ok || (b != ' ' && b != '\t' && b != '\n') {
			break
		}
		c.Advance()
	}
	if b, ok := c.Byte(); ok && b == '/' {
		c.Advance()
	}
	b, ok := c.Byte()
	if !ok || b != '>' {
		c.Restore()
		return nil, false
	}
	c.Advance()
	c.Discard()
	return state.NewLeaf(p, blockdoc.Span{Start: start, End: c.Pos()}, &RawHTMLData{
		Text: string(state.Group().Text()[start:c.Pos()]),
	}), true
}

// tryHTMLDeclLike consumes a "<!--comment-->", "<![CDATA[...]]>", or
// "<!NAME ...>" declaration after the leading "<!" has already been
// consumed by the caller's cursor position check (the '!' itself is
// still unconsumed here).
func tryHTMLDeclLike(c *blockdoc.LineGroupCursor) bool {
	c.Advance() // '!'
	if b, ok := c.Byte(); ok && b == '-' {
		if nb, ok := c.ByteAt(1); ok && nb == '-' {
			c.AdvanceBytes(2)
			for {
				b, ok := c.Byte()
				if !ok {
					return false
				}
				if b == '-' {
					if nb, ok := c.ByteAt(1); ok && nb == '-' {
						if tb, ok := c.ByteAt(2); ok && tb == '>' {
							c.AdvanceBytes(3)
							return true
						}
					}
				}
				c.Advance()
			}
		}
	}
	if b, ok := c.Byte(); ok && b == '[' {
		const cdata = "[CDATA["
		matched := true
		for i := 0; i < len(cdata); i++ {
			bb, ok := c.ByteAt(i)
			if !ok || bb != cdata[i] {
				matched = false
				break
			}
		}
		if matched {
			c.AdvanceBytes(len(cdata))
			for {
				b, ok := c.Byte()
				if !ok {
					return false
				}
				if b == ']' {
					if nb, ok := c.ByteAt(1); ok && nb == ']' {
						if tb, ok := c.ByteAt(2); ok && tb == '>' {
							c.AdvanceBytes(3)
							return true
						}
					}
				}
				c.Advance()
			}
		}
	}
	for {
		b, ok := c.Byte()
		if !ok || !isASCIILetter(b) {
			break
		}
		c.Advance()
	}
	for {
		b, ok := c.Byte()
		if !ok {
			return false
		}
		c.Advance()
		if b == '>' {
			return true
		}
	}
}
