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

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/crazyants/blockdoc"
)

// LinkReferenceData is the payload [LinkReferenceDefinition] attaches to
// the leaves it produces. It implements the duck-typed interface
// [blockdoc.ReferenceMap.Extract] looks for.
type LinkReferenceData struct {
	label        string
	destination  string
	title        string
	titlePresent bool
}

func (d *LinkReferenceData) ReferenceLabel() string       { return d.label }
func (d *LinkReferenceData) ReferenceDestination() string { return d.destination }
func (d *LinkReferenceData) ReferenceTitle() (string, bool) {
	return d.title, d.titlePresent
}

type linkReferenceDefinitionParser struct{}

// LinkReferenceDefinition recognizes a single-line [link reference
// definition]: "[label]: destination \"title\"". It competes as its own
// leaf-producing parser ahead of [Paragraph] rather than as a side effect
// of closing a paragraph (which is how CommonMark reference
// implementations usually do it): [blockdoc.BlockFinalizer.CloseBlock]
// has no way to splice new sibling blocks into a parent, so there is no
// way to retroactively carve a reference definition out of a paragraph
// that is already most of the way through being recognized as one. The
// cost is that only single-line definitions are recognized; a
// definition whose destination or title wraps onto a second line is
// treated as an ordinary paragraph instead.
//
// [link reference definition]: https://spec.commonmark.org/0.30/#link-reference-definitions
var LinkReferenceDefinition blockdoc.BlockParser = linkReferenceDefinitionParser{}

func (linkReferenceDefinitionParser) CanInterruptParagraph() bool { return false }

func (p linkReferenceDefinitionParser) Match(state *blockdoc.BlockState) blockdoc.MatchResult {
	c := state.Cursor()
	if c.Indent() > 3 {
		return blockdoc.NoMatch
	}
	rest := c.Rest()
	body := rest[indentLength(rest):]
	if len(body) == 0 || body[0] != '[' {
		return blockdoc.NoMatch
	}
	label, destination, title, titlePresent, ok := parseLinkReferenceLine(body)
	if !ok || label == "" {
		return blockdoc.NoMatch
	}
	c.AdvanceBytes(len(rest))
	leaf := state.OpenLeaf(p, &LinkReferenceData{
		label:        normalizeLabel(label),
		destination:  destination,
		title:        title,
		titlePresent: titlePresent,
	})
	leaf.SetNoInline(true)
	return blockdoc.LastDiscard
}

// normalizeLabel case-folds label (Unicode case folding, not just ASCII
// lowercasing) and collapses runs of whitespace to a single space, per
// CommonMark's link label matching rule.
func normalizeLabel(label string) string {
	return labelFold.String(strings.Join(strings.Fields(label), " "))
}

var labelFold = cases.Fold()

// parseLinkReferenceLine parses "[label]: dest \"title\"" starting at a
// leading '['. It requires the whole definition, including any title, on
// one line.
func parseLinkReferenceLine(line []byte) (label, destination, title string, titlePresent, ok bool) {
	if len(line) == 0 || line[0] != '[' {
		return "", "", "", false, false
	}
	i := 1
	labelStart := i
	depth := 0
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
			continue
		case '[':
			depth++
		case ']':
			if depth == 0 {
				goto foundLabel
			}
			depth--
		}
		i++
	}
	return "", "", "", false, false
foundLabel:
	label = string(line[labelStart:i])
	i++ // past ']'
	if i >= len(line) || line[i] != ':' {
		return "", "", "", false, false
	}
	i++
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return "", "", "", false, false
	}

	destStart := i
	if line[i] == '<' {
		i++
		for i < len(line) && line[i] != '>' {
			if line[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(line) {
			return "", "", "", false, false
		}
		destination = string(line[destStart+1 : i])
		i++
	} else {
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			if line[i] == '\\' {
				i++
			}
			i++
		}
		destination = string(line[destStart:i])
	}
	if destination == "" {
		return "", "", "", false, false
	}

	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) || isBlankLine(line[i:]) {
		return label, destination, "", false, true
	}

	open := line[i]
	var close byte
	switch open {
	case '"':
		close = '"'
	case '\'':
		close = '\''
	case '(':
		close = ')'
	default:
		return "", "", "", false, false
	}
	i++
	titleStart := i
	for i < len(line) && line[i] != close {
		if line[i] == '\\' {
			i++
		}
		i++
	}
	if i >= len(line) {
		return "", "", "", false, false
	}
	title = string(line[titleStart:i])
	i++
	if !isBlankLine(line[i:]) {
		return "", "", "", false, false
	}
	return label, destination, title, true, true
}
