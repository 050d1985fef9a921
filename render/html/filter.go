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

	"golang.org/x/net/html/atom"
)

// FilterTagGFM performs the same tag filtering as the GitHub Flavored
// Markdown [tagfilter extension]. It is suitable for use as a
// [Renderer]'s FilterTag field.
//
// [tagfilter extension]: https://github.github.com/gfm/#disallowed-raw-html-extension-
func FilterTagGFM(tag []byte) bool {
	switch atom.Lookup(tag) {
	case atom.Title, atom.Textarea, atom.Style, atom.Xmp, atom.Iframe,
		atom.Noembed, atom.Noframes, atom.Script, atom.Plaintext:
		return true
	default:
		return false
	}
}

const (
	cdataPrefix                 = "<![CDATA["
	cdataSuffix                 = "]]>"
	htmlCommentPrefix           = "<!--"
	htmlCommentSuffix           = "-->"
	processingInstructionSuffix = "?>"
)

// appendFilteredRaw appends rawHTML to dst, escaping the leading '<' of
// any tag whose name r.FilterTag rejects. It cannot use a conventional
// HTML parser, since raw HTML in Markdown may be incomplete or start in
// the middle of a tag; instead it tracks just enough state to skip over
// comments, processing instructions, declarations, and CDATA sections
// without misreading a disallowed tag name inside one of them.
func (r *Renderer) appendFilteredRaw(dst, rawHTML []byte) []byte {
	if r.FilterTag == nil {
		return append(dst, rawHTML...)
	}

	const (
		copyState = iota
		commentState
		piState
		declState
		cdataState
	)
	state := copyState
	copyStart := 0
	for i := 0; i < len(rawHTML); {
		switch state {
		case copyState:
			if rawHTML[i] == '<' {
				switch {
				case hasBytePrefix(rawHTML[i:], cdataPrefix):
					state = cdataState
					i += len(cdataPrefix)
				case hasBytePrefix(rawHTML[i:], htmlCommentPrefix):
					state = commentState
					i += len(htmlCommentPrefix)
				case hasHTMLDeclarationPrefix(rawHTML[i:]):
					state = declState
					i += len("<!x")
				case hasBytePrefix(rawHTML[i:], "<?"):
					state = piState
					i += len("<?")
				default:
					tagNameStart := i + 1
					if tagNameStart < len(rawHTML) && rawHTML[tagNameStart] == '/' {
						tagNameStart++
					}
					tagEnd := len(rawHTML)
					if j := bytes.IndexByte(rawHTML[tagNameStart:], '>'); j >= 0 {
						tagEnd = tagNameStart + j + len(">")
					}
					tagNameEnd := tagNameStart + htmlTagNameEnd(rawHTML[tagNameStart:tagEnd])
					tagName := maybeLower(rawHTML[tagNameStart:tagNameEnd], &r.lowerBuf)
					if r.FilterTag(tagName) {
						dst = append(dst, rawHTML[copyStart:i]...)
						dst = append(dst, "&lt;"...)
						dst = append(dst, rawHTML[i+1:tagEnd]...)
						copyStart = tagEnd
					}
					i = tagEnd
				}
			} else {
				i++
			}
		case commentState:
			if hasBytePrefix(rawHTML[i:], htmlCommentSuffix) {
				state = copyState
				i += len(htmlCommentSuffix)
			} else {
				i++
			}
		case piState:
			if hasBytePrefix(rawHTML[i:], processingInstructionSuffix) {
				state = copyState
				i += len(processingInstructionSuffix)
			} else {
				i++
			}
		case declState:
			if rawHTML[i] == '>' {
				state = copyState
			}
			i++
		case cdataState:
			if hasBytePrefix(rawHTML[i:], cdataSuffix) {
				state = copyState
				i += len(cdataSuffix)
			} else {
				i++
			}
		}
	}
	return append(dst, rawHTML[copyStart:]...)
}

func hasBytePrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == prefix
}

func hasHTMLDeclarationPrefix(b []byte) bool {
	return len(b) >= 3 && b[0] == '<' && b[1] == '!' && isASCIILetterByte(b[2])
}

// htmlTagNameEnd returns the length of the tag name at the start of b
// (b starts immediately after '<' or '</').
func htmlTagNameEnd(b []byte) int {
	i := 0
	for i < len(b) && (isASCIILetterByte(b[i]) || isASCIIDigitByte(b[i]) || b[i] == '-') {
		i++
	}
	return i
}

func maybeLower(x []byte, buf *[]byte) []byte {
	hasUpper := false
	for _, b := range x {
		if 'A' <= b && b <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return x
	}
	*buf = (*buf)[:0]
	for _, b := range x {
		if 'A' <= b && b <= 'Z' {
			*buf = append(*buf, b-'A'+'a')
		} else {
			*buf = append(*buf, b)
		}
	}
	return *buf
}
